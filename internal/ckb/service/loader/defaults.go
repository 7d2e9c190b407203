package loader

const (
	// firstBlockNumber is where a load into an empty store starts.
	firstBlockNumber uint64 = 1

	DefaultWindowSize         uint64 = 100
	DefaultConcurrency               = 3
	DefaultFlushSize                 = 20_000
	DefaultForceDrainInterval uint64 = 100_000
	DefaultProgressInterval   uint64 = 1000
)
