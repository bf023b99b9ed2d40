package mdhtml

import "github.com/rs/zerolog"

// Option configures conversion behavior.
type Option func(*config)

type config struct {
	validate    bool
	frontMatter bool
	nfc         bool
	workers     int
	logger      zerolog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{logger: zerolog.Nop()}
	cfg.apply(opts)
	return cfg
}

func (cfg *config) apply(opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
}

// WithValidation enables or disables rejecting invalid UTF-8 and binary
// input. It is enabled by default for ConvertStream and HTTPConvert.
func WithValidation(enabled bool) Option {
	return func(cfg *config) {
		cfg.validate = enabled
	}
}

// WithFrontMatter enables stripping a leading front matter block.
func WithFrontMatter(enabled bool) Option {
	return func(cfg *config) {
		cfg.frontMatter = enabled
	}
}

// WithNFC enables Unicode NFC normalization of the input.
func WithNFC(enabled bool) Option {
	return func(cfg *config) {
		cfg.nfc = enabled
	}
}

// WithParallelBlocks converts blocks on up to n goroutines. Values below 2
// convert sequentially.
func WithParallelBlocks(n int) Option {
	return func(cfg *config) {
		cfg.workers = n
	}
}

// WithLogger sets the logger used for debug output during conversion.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
