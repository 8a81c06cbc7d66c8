package cluster

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/cwbudde/algo-remix/analysis"
)

// DefaultMaxPasses bounds the number of centroid/assignment passes.
const DefaultMaxPasses = 1000

// Config controls a KMeans run.
type Config struct {
	// Field selects the vector that is clustered. Default: timbre.
	Field analysis.Field

	// MaxPasses limits the number of passes. Values <= 0 mean DefaultMaxPasses.
	MaxPasses int

	// Rand drives the initial labelling. Nil means a time-seeded source.
	Rand *rand.Rand

	// Parallel computes the centroids of each pass concurrently.
	Parallel bool

	// Logger receives one debug record per pass. Nil discards.
	Logger *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig clusters timbre sequentially for at most DefaultMaxPasses.
func DefaultConfig() Config {
	return Config{
		Field:     analysis.FieldTimbre,
		MaxPasses: DefaultMaxPasses,
	}
}

// WithField selects the clustered vector.
func WithField(f analysis.Field) Option {
	return func(cfg *Config) {
		cfg.Field = f
	}
}

// WithMaxPasses overrides the pass limit.
func WithMaxPasses(n int) Option {
	return func(cfg *Config) {
		cfg.MaxPasses = n
	}
}

// WithSeed makes the initial labelling reproducible.
func WithSeed(seed int64) Option {
	return func(cfg *Config) {
		cfg.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for the initial labelling.
func WithRand(r *rand.Rand) Option {
	return func(cfg *Config) {
		cfg.Rand = r
	}
}

// WithParallel enables concurrent centroid computation.
func WithParallel(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Parallel = enabled
	}
}

// WithLogger sets the per-pass debug logger.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = l
	}
}

// ApplyOptions applies zero or more options to the default config and fills
// in defaults for unset fields.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.MaxPasses <= 0 {
		cfg.MaxPasses = DefaultMaxPasses
	}

	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	return cfg
}
