package tracego

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/tracego/cost"
	"github.com/hupe1980/tracego/hessian"
	"github.com/hupe1980/tracego/heuristic"
	"github.com/hupe1980/tracego/model"
	"github.com/hupe1980/tracego/search"
	"github.com/hupe1980/tracego/volume"
)

// Pair names the endpoints of one trace in a batch.
type Pair struct {
	Start model.Voxel
	Goal  model.Voxel
}

// Trace finds the cheapest path between start and goal. By default it runs
// a bidirectional search with a reciprocal-intensity cost and a calibrated
// Euclidean heuristic.
//
// A nil error does not imply a path was found: inspect Result.Outcome.
func Trace(ctx context.Context, vol volume.Volume, cal model.Calibration,
	start, goal model.Voxel, opts ...Option) (*model.Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	costFn, heur, err := cfg.strategies(ctx, vol, cal)
	if err != nil {
		return nil, err
	}
	return runOne(ctx, vol, cal, start, goal, costFn, heur, &cfg)
}

// TraceAll traces every pair concurrently over a shared volume. The cost
// strategy (including the tubeness cache, if requested) is computed once
// and shared by all searches. Results are returned in pair order.
//
// The first search error cancels the remaining searches and is returned.
// Unreachable pairs are not errors; their results carry OutcomeNoPath.
func TraceAll(ctx context.Context, vol volume.Volume, cal model.Calibration,
	pairs []Pair, opts ...Option) ([]*model.Result, error) {
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	costFn, heur, err := cfg.strategies(ctx, vol, cal)
	if err != nil {
		return nil, err
	}

	results := make([]*model.Result, len(pairs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			res, err := runOne(ctx, vol, cal, p.Start, p.Goal, costFn, heur, &cfg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, vol volume.Volume, cal model.Calibration,
	start, goal model.Voxel, costFn cost.Cost, heur heuristic.Heuristic,
	cfg *config) (*model.Result, error) {
	if cfg.unidirectional {
		t, err := search.NewTracer(vol, cal, start, goal, costFn, heur, cfg.searchOpts...)
		if err != nil {
			return nil, err
		}
		return t.Run(ctx)
	}
	s, err := search.NewBiSearch(vol, cal, start, goal, costFn, heur, cfg.searchOpts...)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx)
}

// strategies resolves the cost and heuristic for a trace, computing volume
// statistics or the tubeness cache as needed.
func (c *config) strategies(ctx context.Context, vol volume.Volume,
	cal model.Calibration) (cost.Cost, heuristic.Heuristic, error) {
	if vol == nil {
		return nil, nil, search.ErrNilVolume
	}

	costFn := c.costFn
	if costFn == nil && c.tubenessSigma != 0 {
		if c.tubenessSigma < 0 || math.IsInf(c.tubenessSigma, 0) || math.IsNaN(c.tubenessSigma) {
			return nil, nil, ErrInvalidSigma
		}
		analyzer, err := hessian.NewAnalyzer(vol, cal, c.tubenessSigma)
		if err != nil {
			return nil, nil, err
		}
		cache, err := analyzer.Tubeness(ctx)
		if err != nil {
			return nil, nil, err
		}
		mult := c.tubenessMultiplier
		if mult <= 0 {
			if m := cache.Max(); m > 0 {
				mult = 256 / m
			} else {
				mult = 1
			}
		}
		costFn = cost.NewTubeness(cache, mult)
	}
	if costFn == nil {
		st := volume.ComputeStats(vol)
		fn, err := cost.Provider(c.costType, cost.ImageStats{
			Min:    st.Min,
			Max:    st.Max,
			Mean:   st.Mean,
			StdDev: st.StdDev,
		})
		if err != nil {
			return nil, nil, err
		}
		costFn = fn
	}

	heur := c.heur
	if heur == nil {
		heur = heuristic.NewEuclidean(cal)
	}
	return costFn, heur, nil
}
