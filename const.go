package zmpt101b

const (
	// defaultWindowSize is the median filter window for one batch. It is
	// even, so the filter bumps it to 11.
	defaultWindowSize = 10

	// defaultBatchSize is the number of samples acquired per read. At the
	// default 860 samples/s of the ADS1115 this spans ~150ms, several full
	// cycles of a 50/60Hz mains signal.
	defaultBatchSize = 128
)
