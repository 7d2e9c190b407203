package nervos

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/errs"
)

// Dial opens a persistent JSON-RPC connection to the node at rawURL. Requests
// reuse keep-alive HTTP connections and are bounded by timeout when positive.
func Dial(ctx context.Context, rawURL string, timeout time.Duration, maxConns int) (*rpc.Client, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if maxConns > 0 {
		transport.MaxIdleConns = maxConns
		transport.MaxIdleConnsPerHost = maxConns
	}
	transport.IdleConnTimeout = 90 * time.Second

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
	client, err := rpc.DialOptions(ctx, rawURL, rpc.WithHTTPClient(httpClient))
	if err != nil {
		return nil, errors.Wrap(err, "dial node rpc")
	}
	return client, nil
}

// ValidateURL checks that rawURL is an http(s) endpoint with a host.
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.Mark(errors.Wrap(err, "parse rpc url"), errs.Configuration)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.Mark(errors.Newf("rpc url scheme %q not supported, use http or https", parsed.Scheme), errs.Configuration)
	}
	if parsed.Host == "" {
		return errors.Mark(errors.New("rpc url missing host"), errs.Configuration)
	}
	return nil
}
