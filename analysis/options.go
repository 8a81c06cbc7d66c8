package analysis

import "github.com/cwbudde/algo-remix/audio"

// Config controls how New builds an Analysis.
type Config struct {
	Buffer *audio.Buffer
	Link   bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig links all levels and attaches no buffer.
func DefaultConfig() Config {
	return Config{Link: true}
}

// WithBuffer attaches the decoded audio of the track. Every quantum of the
// analysis resolves it through Quantum.Buffer.
func WithBuffer(buf *audio.Buffer) Option {
	return func(cfg *Config) {
		cfg.Buffer = buf
	}
}

// WithoutLinking skips Link; the caller may run it later.
func WithoutLinking() Option {
	return func(cfg *Config) {
		cfg.Link = false
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
