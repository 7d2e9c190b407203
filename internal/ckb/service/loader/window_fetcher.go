package loader

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/chain"
	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/planner"
	"github.com/goodnatureofminers/blockinsight7000-ckb/pkg/batcher"
	"github.com/goodnatureofminers/blockinsight7000-ckb/pkg/workerpool"
)

// windowFetcher is the fetch unit. It keeps up to concurrency windows in
// flight and pushes them to the bridge in window order.
type windowFetcher struct {
	source             Source
	bridge             *batcher.Batcher[chain.Block]
	plan               *planner.Planner
	metrics            HistoryLoaderMetrics
	logger             *zap.Logger
	concurrency        int
	forceDrainInterval uint64
	progressInterval   uint64

	handed uint64
}

// Run fetches every planned window, then drains the bridge and sends the final
// batch. It returns once the write unit acknowledged it.
func (f *windowFetcher) Run(ctx context.Context) error {
	err := workerpool.Ordered(ctx, f.concurrency, f.plan.Next, f.fetchWindow, f.handOff)
	if err != nil {
		return err
	}

	f.logger.Info("all windows fetched, waiting for final drain",
		zap.Uint64("blocks", f.handed),
		zap.Int("pending", f.bridge.Pending()),
	)
	if err := f.bridge.Close(ctx); err != nil {
		return errors.Wrap(err, "finish load")
	}
	return nil
}

// fetchWindow fetches all blocks of w in parallel. Any failure fails the whole
// window and nothing of it is returned.
func (f *windowFetcher) fetchWindow(ctx context.Context, w planner.Window) ([]chain.Block, error) {
	started := time.Now()
	numbers := w.Numbers()
	blocks := make([]chain.Block, len(numbers))

	g, gctx := errgroup.WithContext(ctx)
	for idx, number := range numbers {
		g.Go(func() error {
			b, err := f.source.BlockByNumber(gctx, number)
			if err != nil {
				return err
			}
			blocks[idx] = b
			return nil
		})
	}
	err := g.Wait()
	f.metrics.ObserveWindow(err, started)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch window [%d, %d]", w.Start, w.End)
	}
	return blocks, nil
}

func (f *windowFetcher) handOff(ctx context.Context, blocks []chain.Block) error {
	if len(blocks) == 0 {
		return nil
	}
	before := f.handed
	if err := f.bridge.Push(ctx, blocks...); err != nil {
		return errors.Wrap(err, "push window")
	}
	f.handed += uint64(len(blocks))

	last := blocks[len(blocks)-1].Number
	f.metrics.SetFetched(last)

	if crossed(before, f.handed, f.progressInterval) {
		f.logger.Info("fetch progress",
			zap.Uint64("block", last),
			zap.Uint64("fetched", f.handed),
			zap.Uint64("total", f.plan.Total()),
		)
	}
	if crossed(before, f.handed, f.forceDrainInterval) {
		started := time.Now()
		err := f.bridge.Drain(ctx)
		f.metrics.ObserveDrain(started)
		if err != nil {
			return errors.Wrap(err, "forced drain")
		}
		f.logger.Debug("forced drain done", zap.Uint64("block", last))
	}
	return nil
}

// crossed reports whether a multiple of interval lies in (before, after].
func crossed(before, after, interval uint64) bool {
	return interval > 0 && before/interval != after/interval
}
