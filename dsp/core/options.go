package core

import "runtime"

// ProcessorConfig holds settings shared by generators and offline processors.
type ProcessorConfig struct {
	SampleRate float64
	// Workers bounds how many goroutines an offline processor may use.
	// 1 means fully sequential processing.
	Workers int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the defaults used when no option is given.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 48000,
		Workers:    1,
	}
}

// WithSampleRate sets the sample rate in Hz. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithWorkers sets the worker limit. Values below 1 are ignored and values
// above GOMAXPROCS are capped.
func WithWorkers(workers int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if workers < 1 {
			return
		}
		if limit := runtime.GOMAXPROCS(0); workers > limit {
			workers = limit
		}
		cfg.Workers = workers
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
// Nil options are skipped.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
