package search

import (
	"log/slog"
	"time"

	"github.com/hupe1980/tracego/searchimage"
)

type config struct {
	conn        Connectivity
	imageType   searchimage.Type
	timeout     time.Duration
	reportEvery time.Duration
	progress    ProgressFunc
	logger      *slog.Logger
	strict      bool
}

func defaultConfig() config {
	return config{
		conn:        Conn26,
		imageType:   searchimage.TypeMap,
		reportEvery: time.Second,
	}
}

// Option configures a search engine.
type Option func(*config)

// WithConnectivity selects the neighbor set expanded around each node.
func WithConnectivity(c Connectivity) Option {
	return func(cfg *config) {
		cfg.conn = c
	}
}

// WithSearchImageType selects the SearchImage backend holding node state.
// The engine is backend-agnostic; this is purely a memory/speed trade-off.
func WithSearchImageType(t searchimage.Type) Option {
	return func(cfg *config) {
		cfg.imageType = t
	}
}

// WithTimeout bounds the wall-clock duration of a run. Zero means no
// timeout. A timed-out run returns a normal incomplete result, not an error.
func WithTimeout(d time.Duration) Option {
	return func(cfg *config) {
		cfg.timeout = d
	}
}

// WithProgress registers a progress callback, invoked at most once per
// interval. A non-positive interval defaults to one second.
func WithProgress(fn ProgressFunc, every time.Duration) Option {
	return func(cfg *config) {
		cfg.progress = fn
		cfg.reportEvery = every
	}
}

// WithLogger sets the logger for the engine.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// WithStrictConsistency makes the engine fail with ErrInconsistentHeuristic
// when a cheaper path to an already-closed node is found, instead of
// defensively ignoring the improvement. Intended for tests of custom
// strategies.
func WithStrictConsistency() Option {
	return func(cfg *config) {
		cfg.strict = true
	}
}
