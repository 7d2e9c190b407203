package loader

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/chain"
	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/planner"
	"github.com/goodnatureofminers/blockinsight7000-ckb/pkg/batcher"
)

// HistoryLoaderService loads the node's block history into the store.
type HistoryLoaderService struct {
	cfg     Config
	source  Source
	store   Store
	schema  SchemaManager
	metrics HistoryLoaderMetrics
	logger  *zap.Logger

	mu            sync.Mutex
	lastCommitted uint64
	hasCommitted  bool
}

// NewHistoryLoaderService builds a HistoryLoaderService with the given dependencies.
func NewHistoryLoaderService(
	cfg Config,
	source Source,
	store Store,
	schema SchemaManager,
	metrics HistoryLoaderMetrics,
	logger *zap.Logger,
) (*HistoryLoaderService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if metrics == nil {
		return nil, errors.New("history loader metrics is required")
	}
	return &HistoryLoaderService{
		cfg:     cfg,
		source:  source,
		store:   store,
		schema:  schema,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Run prepares the schema, loads every block of the planned range and builds
// the secondary indexes. A store that already holds blocks is resumed after
// its highest block.
func (s *HistoryLoaderService) Run(ctx context.Context) error {
	if err := s.schema.Prepare(ctx); err != nil {
		return errors.Wrap(err, "prepare schema")
	}

	start := firstBlockNumber
	last, ok, err := s.store.MaxBlockNumber(ctx)
	if err != nil {
		return errors.Wrap(err, "read max block number")
	}
	if ok {
		s.markCommitted(last)
		start = last + 1
		s.logger.Info("resuming load", zap.Uint64("last_committed", last))
	}

	var end *uint64
	if s.cfg.EndBlock > 0 {
		end = &s.cfg.EndBlock
	}
	plan, err := planner.Plan(ctx, s.source, start, end, s.cfg.WindowSize)
	if err != nil {
		return errors.Wrap(err, "plan block range")
	}
	s.logger.Info("planned block range",
		zap.Uint64("start", plan.Start()),
		zap.Uint64("end", plan.End()),
		zap.Uint64("blocks", plan.Total()),
		zap.Uint64("window_size", s.cfg.WindowSize),
		zap.Int("concurrency", s.cfg.Concurrency),
	)

	bridge := batcher.New[chain.Block](s.logger.Named("bridge"), s.cfg.FlushSize)
	fetcher := &windowFetcher{
		source:             s.source,
		bridge:             bridge,
		plan:               plan,
		metrics:            s.metrics,
		logger:             s.logger.Named("fetcher"),
		concurrency:        s.cfg.Concurrency,
		forceDrainInterval: s.cfg.ForceDrainInterval,
		progressInterval:   s.cfg.ProgressInterval,
	}
	indexer := &blockIndexer{
		store:     s.store,
		schema:    s.schema,
		metrics:   s.metrics,
		logger:    s.logger.Named("indexer"),
		committed: s.markCommitted,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return fetcher.Run(gctx)
	})
	g.Go(func() error {
		return indexer.Run(gctx, bridge.Batches())
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info("history load complete", zap.Uint64("end", plan.End()))
	return nil
}

// LastCommitted returns the highest block number known to be committed.
// ok is false when nothing has been committed yet.
func (s *HistoryLoaderService) LastCommitted() (number uint64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCommitted, s.hasCommitted
}

func (s *HistoryLoaderService) markCommitted(number uint64) {
	s.mu.Lock()
	s.lastCommitted = number
	s.hasCommitted = true
	s.mu.Unlock()

	s.metrics.SetCommitted(number)
}
