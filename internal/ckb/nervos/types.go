// Package nervos talks to a CKB node over JSON-RPC and validates what it returns.
package nervos

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCCaller is the JSON-RPC transport, satisfied by *rpc.Client.
	RPCCaller interface {
		CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// BlockRPC is the subset of node calls the history source needs.
	BlockRPC interface {
		GetTipBlockNumber(ctx context.Context) (hexutil.Uint64, error)
		GetBlockByNumber(ctx context.Context, number uint64) (*BlockResult, error)
	}
)
