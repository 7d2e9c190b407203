package nervos

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/errs"
)

const (
	methodGetTipBlockNumber = "get_tip_block_number"
	methodGetBlockByNumber  = "get_block_by_number"
)

// RPCClient wraps a JSON-RPC connection with metrics instrumentation and an
// optional request rate cap.
type RPCClient struct {
	client     RPCCaller
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
}

// NewRPCClient constructs an instrumented RPC client. A non-positive rps disables the rate cap.
func NewRPCClient(client RPCCaller, rpcMetrics RPCMetrics, rps int) *RPCClient {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &RPCClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
	}
}

// GetTipBlockNumber returns the highest block number known to the node.
func (r *RPCClient) GetTipBlockNumber(ctx context.Context) (number hexutil.Uint64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_tip_block_number", err, started)
	}()

	err = r.call(ctx, &number, methodGetTipBlockNumber)
	return number, err
}

// GetBlockByNumber returns the block at number, or nil when the node does not know it.
func (r *RPCClient) GetBlockByNumber(ctx context.Context, number uint64) (res *BlockResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_by_number", err, started)
	}()

	err = r.call(ctx, &res, methodGetBlockByNumber, hexutil.Uint64(number))
	return res, err
}

func (r *RPCClient) call(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.limiter.Take()

	err := r.client.CallContext(ctx, result, method, args...)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Wrapf(ctxErr, "%s", method)
	}
	return classify(errors.Wrapf(err, "%s", method))
}

// classify marks transport failures as transient. Errors reported by the node
// itself are returned unmarked: repeating the request will not change the answer.
func classify(err error) error {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return err
	}
	return errors.Mark(err, errs.TransientRPC)
}
