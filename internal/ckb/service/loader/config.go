package loader

import (
	"github.com/cockroachdb/errors"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/errs"
)

// Config tunes the load pipeline.
type Config struct {
	// WindowSize is the number of blocks fetched concurrently as one window.
	WindowSize uint64
	// Concurrency is the number of windows in flight.
	Concurrency int
	// EndBlock is the inclusive last block to load; zero loads up to the node tip.
	EndBlock uint64
	// FlushSize is the number of buffered blocks that triggers a write.
	FlushSize int
	// ForceDrainInterval forces a full drain every that many blocks; zero disables it.
	ForceDrainInterval uint64
	// ProgressInterval logs progress every that many blocks; zero disables it.
	ProgressInterval uint64
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		WindowSize:         DefaultWindowSize,
		Concurrency:        DefaultConcurrency,
		FlushSize:          DefaultFlushSize,
		ForceDrainInterval: DefaultForceDrainInterval,
		ProgressInterval:   DefaultProgressInterval,
	}
}

// Validate reports the first invalid setting as a configuration error.
func (c Config) Validate() error {
	switch {
	case c.WindowSize == 0:
		return errors.Mark(errors.New("window size must be positive"), errs.Configuration)
	case c.Concurrency < 1:
		return errors.Mark(errors.Newf("concurrency must be positive, got %d", c.Concurrency), errs.Configuration)
	case c.FlushSize < 1:
		return errors.Mark(errors.Newf("flush size must be positive, got %d", c.FlushSize), errs.Configuration)
	}
	return nil
}
