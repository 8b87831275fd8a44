package lz5

// Option configures a single Compress or Decompress call.
type Option func(*config)

type config struct {
	logger *Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger attaches a diagnostics Logger to a single Compress or
// Decompress call. The default (no option, or a nil Logger) silently
// discards all trace output.
func WithLogger(l *Logger) Option {
	return func(c *config) { c.logger = l }
}
