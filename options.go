package tracego

import (
	"time"

	"github.com/hupe1980/tracego/cost"
	"github.com/hupe1980/tracego/heuristic"
	"github.com/hupe1980/tracego/search"
	"github.com/hupe1980/tracego/searchimage"
)

type config struct {
	costType           cost.Type
	costFn             cost.Cost
	heur               heuristic.Heuristic
	unidirectional     bool
	tubenessSigma      float64
	tubenessMultiplier float64
	searchOpts         []search.Option
}

func defaultConfig() config {
	return config{
		costType: cost.TypeReciprocal,
	}
}

// Option customizes a trace.
type Option func(*config)

// WithCostType selects one of the built-in intensity cost strategies,
// parameterized by the volume's statistics. Default is cost.TypeReciprocal.
func WithCostType(t cost.Type) Option {
	return func(c *config) {
		c.costType = t
	}
}

// WithCost supplies a custom cost strategy, overriding WithCostType and
// WithTubeness.
func WithCost(fn cost.Cost) Option {
	return func(c *config) {
		c.costFn = fn
	}
}

// WithTubeness derives the step cost from a Hessian-based tubeness measure
// computed once over the whole volume at the given physical scale. Bright
// tubular structures become cheap, everything else expensive.
func WithTubeness(sigma float64) Option {
	return func(c *config) {
		c.tubenessSigma = sigma
	}
}

// WithTubenessMultiplier overrides the tubeness rescaling factor. By default
// the measure is scaled so the volume's maximum maps to 256.
func WithTubenessMultiplier(m float64) Option {
	return func(c *config) {
		c.tubenessMultiplier = m
	}
}

// WithHeuristic supplies a custom goal-distance estimator. Default is the
// calibrated Euclidean distance.
func WithHeuristic(h heuristic.Heuristic) Option {
	return func(c *config) {
		c.heur = h
	}
}

// WithDijkstra disables the goal-distance estimate, degenerating the search
// to Dijkstra's algorithm.
func WithDijkstra() Option {
	return func(c *config) {
		c.heur = heuristic.NewDijkstra()
	}
}

// WithUnidirectional runs a single-frontier search from start to goal
// instead of the default bidirectional search.
func WithUnidirectional() Option {
	return func(c *config) {
		c.unidirectional = true
	}
}

// WithConnectivity selects the expansion neighborhood. Default is Conn26.
func WithConnectivity(conn search.Connectivity) Option {
	return func(c *config) {
		c.searchOpts = append(c.searchOpts, search.WithConnectivity(conn))
	}
}

// WithSearchImageType selects the per-slice node storage backend. Default
// is the sparse map backend.
func WithSearchImageType(t searchimage.Type) Option {
	return func(c *config) {
		c.searchOpts = append(c.searchOpts, search.WithSearchImageType(t))
	}
}

// WithTimeout bounds the wall-clock duration of the search. An expired
// timeout yields OutcomeTimedOut, not an error.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.searchOpts = append(c.searchOpts, search.WithTimeout(d))
	}
}

// WithProgress installs a callback invoked at most once per every with the
// current open and closed node counts.
func WithProgress(fn search.ProgressFunc, every time.Duration) Option {
	return func(c *config) {
		c.searchOpts = append(c.searchOpts, search.WithProgress(fn, every))
	}
}

// WithLogger sets the logger used by the search engine. Default discards
// all output.
func WithLogger(l *Logger) Option {
	return func(c *config) {
		if l != nil {
			c.searchOpts = append(c.searchOpts, search.WithLogger(l.Logger))
		}
	}
}

// WithStrictConsistency makes the search fail with an error when a cheaper
// route is found to an already-expanded node, instead of ignoring it. Useful
// for validating custom heuristics.
func WithStrictConsistency() Option {
	return func(c *config) {
		c.searchOpts = append(c.searchOpts, search.WithStrictConsistency())
	}
}
