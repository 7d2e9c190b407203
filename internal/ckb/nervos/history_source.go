package nervos

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/chain"
	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/errs"
)

const (
	retryBaseDelay = 200 * time.Millisecond
	retryMaxDelay  = 10 * time.Second
)

// HistorySource serves validated blocks to the loader's fetch unit.
type HistorySource struct {
	rpc     BlockRPC
	retries int
	sleep   func(context.Context, time.Duration) error
	logger  *zap.Logger
}

// NewHistorySource creates a HistorySource. Transient RPC failures are retried
// up to retries times with exponential backoff; zero makes them fatal at once.
func NewHistorySource(rpc BlockRPC, retries int, logger *zap.Logger) *HistorySource {
	if retries < 0 {
		retries = 0
	}
	return &HistorySource{
		rpc:     rpc,
		retries: retries,
		sleep:   clock.SleepWithContext,
		logger:  logger,
	}
}

// TipBlockNumber returns the node's tip block number.
func (s *HistorySource) TipBlockNumber(ctx context.Context) (uint64, error) {
	var tip uint64
	err := s.withRetry(ctx, "get tip block number", func() error {
		n, err := s.rpc.GetTipBlockNumber(ctx)
		if err != nil {
			return err
		}
		tip = uint64(n)
		return nil
	})
	return tip, err
}

// BlockByNumber fetches and validates the block at number.
func (s *HistorySource) BlockByNumber(ctx context.Context, number uint64) (chain.Block, error) {
	var res *BlockResult
	err := s.withRetry(ctx, "get block by number", func() error {
		var err error
		res, err = s.rpc.GetBlockByNumber(ctx, number)
		return err
	})
	if err != nil {
		return chain.Block{}, errors.Wrapf(err, "fetch block %d", number)
	}
	return BuildBlock(res, number)
}

func (s *HistorySource) withRetry(ctx context.Context, op string, fn func() error) error {
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if attempt >= s.retries || !errors.Is(err, errs.TransientRPC) {
			return err
		}
		delay := clock.Backoff(attempt, retryBaseDelay, retryMaxDelay)
		s.logger.Warn("transient rpc failure, retrying",
			zap.String("op", op),
			zap.Int("attempt", attempt+1),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
			return err
		}
	}
}
