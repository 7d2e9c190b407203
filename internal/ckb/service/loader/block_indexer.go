package loader

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/chain"
	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/model"
	"github.com/goodnatureofminers/blockinsight7000-ckb/pkg/batcher"
)

// blockIndexer is the write unit. It commits each batch in one store
// transaction and builds the secondary indexes when the final batch arrives.
type blockIndexer struct {
	store     Store
	schema    SchemaManager
	metrics   HistoryLoaderMetrics
	logger    *zap.Logger
	committed func(number uint64)
}

// Run consumes batches until the final batch is handled, the channel is closed
// or ctx is canceled. Every received batch is acknowledged with its outcome.
func (i *blockIndexer) Run(ctx context.Context, batches <-chan batcher.Batch[chain.Block]) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case batch, ok := <-batches:
			if !ok {
				return nil
			}
			if batch.Final {
				err := i.buildIndexes(ctx)
				batch.Ack(err)
				return err
			}
			err := i.write(ctx, batch.Items)
			batch.Ack(err)
			if err != nil {
				return err
			}
		}
	}
}

func (i *blockIndexer) write(ctx context.Context, blocks []chain.Block) error {
	if len(blocks) == 0 {
		return nil
	}
	first, last := blocks[0].Number, blocks[len(blocks)-1].Number

	started := time.Now()
	rows := lo.Map(blocks, func(b chain.Block, _ int) model.InsertBlock {
		return extractBlock(b)
	})
	err := i.store.InsertBlocks(ctx, rows)
	i.metrics.ObserveFlush(err, len(blocks), started)
	if err != nil {
		i.logger.Error("batch rolled back",
			zap.Uint64("first", first),
			zap.Uint64("last", last),
			zap.Error(err),
		)
		return errors.Wrapf(err, "write blocks [%d, %d]", first, last)
	}

	var counts model.RowCounts
	for _, row := range rows {
		counts.Add(row)
	}
	i.committed(last)
	i.logger.Info("batch committed",
		zap.Uint64("first", first),
		zap.Uint64("last", last),
		zap.Int("transactions", counts.Transactions),
		zap.Int("cells", counts.Cells),
		zap.Int("cell_references", counts.CellReferences),
		zap.Duration("took", time.Since(started)),
	)
	return nil
}

func (i *blockIndexer) buildIndexes(ctx context.Context) error {
	i.logger.Info("all batches committed, building secondary indexes")

	started := time.Now()
	err := i.schema.BuildIndexes(ctx)
	i.metrics.ObserveIndexBuild(err, started)
	if err != nil {
		return errors.Wrap(err, "build secondary indexes")
	}
	return nil
}
