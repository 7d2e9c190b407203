// Package loader runs the history load: a fetch unit pulls block windows from
// the node and hands them across a backpressure bridge to a write unit that
// commits them to the store.
package loader

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/chain"
	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Source interface {
		TipBlockNumber(ctx context.Context) (uint64, error)
		BlockByNumber(ctx context.Context, number uint64) (chain.Block, error)
	}
	Store interface {
		InsertBlocks(ctx context.Context, blocks []model.InsertBlock) error
		MaxBlockNumber(ctx context.Context) (uint64, bool, error)
	}
	SchemaManager interface {
		Prepare(ctx context.Context) error
		BuildIndexes(ctx context.Context) error
	}

	HistoryLoaderMetrics interface {
		ObserveWindow(err error, started time.Time)
		ObserveFlush(err error, blocks int, started time.Time)
		ObserveDrain(started time.Time)
		SetFetched(number uint64)
		SetCommitted(number uint64)
		ObserveIndexBuild(err error, started time.Time)
	}
)
