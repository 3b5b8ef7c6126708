package search

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/hupe1980/tracego/cost"
	"github.com/hupe1980/tracego/heuristic"
	"github.com/hupe1980/tracego/model"
	"github.com/hupe1980/tracego/searchimage"
	"github.com/hupe1980/tracego/volume"
)

// statusInterval is the number of main-loop iterations between cooperative
// timeout/cancellation checks and progress reports.
const statusInterval = 10_000

// BiSearch is the bidirectional NBA*-style search engine. Construct it with
// NewBiSearch, run it once with Run, then discard it; node state does not
// outlive one invocation.
//
// The engine is a single sequential loop interleaving both frontiers: each
// iteration expands the direction whose open queue is smaller (the from-goal
// frontier on exact ties), which keeps the frontiers in rough lockstep
// without any cross-thread synchronization.
type BiSearch struct {
	vol       volume.Volume
	cal       model.Calibration
	start     model.Voxel
	goal      model.Voxel
	costFn    cost.Cost
	coordCost cost.CoordCost
	heur      heuristic.Heuristic
	cfg       config
	logger    *slog.Logger

	offsets     [][3]int
	minStepCost float64

	nodes       *searchimage.Stack[*BiNode]
	open        [2]*heap
	closedCount [2]int64
	loops       int64
	startedAt   time.Time

	bestPathLength float64
	bestF          [2]float64
	touch          *BiNode

	rep *reporter
}

// NewBiSearch validates all preconditions and returns a ready-to-run engine.
// Malformed input (nil strategies, invalid calibration, endpoints outside
// the volume) is reported immediately, before any search work begins.
func NewBiSearch(vol volume.Volume, cal model.Calibration, start, goal model.Voxel,
	costFn cost.Cost, heur heuristic.Heuristic, opts ...Option,
) (*BiSearch, error) {
	if vol == nil {
		return nil, ErrNilVolume
	}
	if costFn == nil {
		return nil, ErrNilCost
	}
	if heur == nil {
		return nil, ErrNilHeuristic
	}
	if !cal.Valid() {
		return nil, ErrInvalidCalibration
	}
	for _, v := range [2]model.Voxel{start, goal} {
		if !volume.InBounds(vol, v.X, v.Y, v.Z) {
			return nil, &ErrOutOfBounds{Voxel: v, Width: vol.Width(), Height: vol.Height(), Depth: vol.Depth()}
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	supplier, err := searchimage.ForType[*BiNode](cfg.imageType, vol.Width(), vol.Height())
	if err != nil {
		return nil, err
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	coordCost, _ := costFn.(cost.CoordCost)

	s := &BiSearch{
		vol:         vol,
		cal:         cal,
		start:       start,
		goal:        goal,
		costFn:      costFn,
		coordCost:   coordCost,
		heur:        heur,
		cfg:         cfg,
		logger:      logger,
		offsets:     cfg.conn.offsets(),
		minStepCost: costFn.MinStepCost(),
		nodes:       searchimage.NewStack[*BiNode](vol.Depth(), supplier),
		rep:         newReporter(cfg.progress, cfg.reportEvery),
	}
	s.open[FromStart] = newHeap(FromStart)
	s.open[FromGoal] = newHeap(FromGoal)

	return s, nil
}

// PointsConsidered returns the number of nodes that entered either frontier
// so far: open plus closed across both directions.
func (s *BiSearch) PointsConsidered() int64 {
	return int64(s.open[FromStart].Len()) + int64(s.open[FromGoal].Len()) +
		s.closedCount[FromStart] + s.closedCount[FromGoal]
}

// Run executes the search to completion, cancellation or timeout. It blocks
// until one of those happens; cancel from another goroutine through ctx.
//
// Exhausting both frontiers without a meeting is not an error: it yields a
// Result with OutcomeNoPath. Because the cost contract forbids infinite
// costs and the neighbor graph connects every voxel, that outcome guards an
// internal invariant rather than a reachable input. Cancellation and timeout
// yield OutcomeCanceled and OutcomeTimedOut with partial statistics. Errors
// are reserved for contract violations detected mid-run.
func (s *BiSearch) Run(ctx context.Context) (*model.Result, error) {
	s.startedAt = time.Now()

	s.logger.DebugContext(ctx, "bidirectional search started",
		"start", s.start.String(),
		"goal", s.goal.String(),
		"connectivity", s.cfg.conn.String(),
		"backend", s.cfg.imageType.String(),
	)

	// Degenerate trace: no expansion needed, the optimal path is the point.
	if s.start == s.goal {
		pt := s.cal.PointOf(s.start)
		return &model.Result{
			Path:    model.NewPath([]model.Point{pt}, s.cal.Unit),
			Outcome: model.OutcomeComplete,
			Stats:   s.stats(),
		}, nil
	}

	startNode := newBiNode(s.start.X, s.start.Y, s.start.Z)
	goalNode := newBiNode(s.goal.X, s.goal.Y, s.goal.Z)

	hStart, err := s.estimate(s.start, s.goal)
	if err != nil {
		return nil, err
	}
	hGoal, err := s.estimate(s.goal, s.start)
	if err != nil {
		return nil, err
	}

	startNode.setFrom(0, hStart, nil, FromStart)
	goalNode.setFrom(0, hGoal, nil, FromGoal)

	s.bestPathLength = math.Inf(1)
	s.bestF[FromStart] = hStart
	s.bestF[FromGoal] = hGoal
	s.touch = nil

	startNode.states[FromStart].state = Open
	goalNode.states[FromGoal].state = Open
	s.open[FromStart].Push(startNode)
	s.open[FromGoal].Push(goalNode)

	s.nodes.NewSlice(s.start.Z).SetValue(s.start.X, s.start.Y, startNode)
	if s.nodes.Slice(s.goal.Z) == nil {
		s.nodes.NewSlice(s.goal.Z)
	}
	s.nodes.Slice(s.goal.Z).SetValue(s.goal.X, s.goal.Y, goalNode)

	// The search terminates when either frontier is exhausted; every
	// surviving candidate has been proven no better than bestPathLength by
	// then.
	for s.open[FromStart].Len() > 0 && s.open[FromGoal].Len() > 0 {
		s.loops++

		if s.loops%statusInterval == 0 {
			if outcome, done := s.checkStatus(ctx); done {
				s.rep.flush(int64(s.open[FromStart].Len()+s.open[FromGoal].Len()),
					s.closedCount[FromStart]+s.closedCount[FromGoal])
				return &model.Result{Outcome: outcome, Stats: s.stats()}, nil
			}
		}

		// Expand the smaller frontier; the from-goal side on exact ties.
		dir := FromGoal
		if s.open[FromStart].Len() < s.open[FromGoal].Len() {
			dir = FromStart
		}

		p := s.open[dir].Pop()
		p.states[dir].state = Closed
		s.closedCount[dir]++

		s.bestF[dir] = p.F(dir)

		if s.rejected(p, dir) {
			continue
		}

		if err := s.expandNeighbors(p, dir); err != nil {
			return nil, err
		}
	}

	elapsed := time.Since(s.startedAt)
	s.rep.flush(int64(s.open[FromStart].Len()+s.open[FromGoal].Len()),
		s.closedCount[FromStart]+s.closedCount[FromGoal])

	if s.touch == nil {
		s.logger.DebugContext(ctx, "searches did not meet",
			"loops", s.loops,
			"points", s.PointsConsidered(),
			"elapsed", elapsed,
		)
		return &model.Result{Outcome: model.OutcomeNoPath, Stats: s.stats()}, nil
	}

	s.logger.DebugContext(ctx, "searches met",
		"cost", s.bestPathLength,
		"loops", s.loops,
		"elapsed", elapsed,
	)

	return &model.Result{
		Path:    s.reconstructPath(),
		Outcome: model.OutcomeComplete,
		Stats:   s.stats(),
	}, nil
}

// rejected implements the NBA* pruning bound: a stabilized node whose best
// possible completion through either frontier cannot beat the best known
// combined path length is skipped without expansion.
func (s *BiSearch) rejected(p *BiNode, dir Dir) bool {
	ownSeed, otherSeed := s.start, s.goal
	if dir == FromGoal {
		ownSeed, otherSeed = s.goal, s.start
	}

	g := p.G(dir)
	hForward := s.heur.EstimateCostToGoal(p.X, p.Y, p.Z, otherSeed.X, otherSeed.Y, otherSeed.Z) * s.minStepCost
	hBackward := s.heur.EstimateCostToGoal(p.X, p.Y, p.Z, ownSeed.X, ownSeed.Y, ownSeed.Z) * s.minStepCost

	return g+hForward >= s.bestPathLength ||
		g+s.bestF[dir.Opposite()]-hBackward >= s.bestPathLength
}

// expandNeighbors relaxes every in-bounds neighbor of p for one direction.
func (s *BiSearch) expandNeighbors(p *BiNode, dir Dir) error {
	otherSeed := s.goal
	if dir == FromGoal {
		otherSeed = s.start
	}

	for _, off := range s.offsets {
		nx, ny, nz := p.X+off[0], p.Y+off[1], p.Z+off[2]
		if !volume.InBounds(s.vol, nx, ny, nz) {
			continue
		}

		stepCost, err := s.costMovingTo(nx, ny, nz)
		if err != nil {
			return err
		}
		if stepCost < s.minStepCost {
			stepCost = s.minStepCost
		}

		dx := float64(off[0]) * s.cal.X
		dy := float64(off[1]) * s.cal.Y
		dz := float64(off[2]) * s.cal.Z
		stepDistance := math.Sqrt(dx*dx + dy*dy + dz*dz)

		tentativeG := p.G(dir) + stepDistance*stepCost

		h, err := s.estimate(model.Voxel{X: nx, Y: ny, Z: nz}, otherSeed)
		if err != nil {
			return err
		}
		tentativeF := tentativeG + h

		if err := s.testNeighbor(nx, ny, nz, tentativeG, tentativeF, p, dir); err != nil {
			return err
		}
	}
	return nil
}

// testNeighbor applies the relaxation rule to one neighbor coordinate and
// maintains the best meeting candidate.
func (s *BiSearch) testNeighbor(x, y, z int, tentativeG, tentativeF float64, predecessor *BiNode, dir Dir) error {
	slice := s.nodes.Slice(z)
	if slice == nil {
		slice = s.nodes.NewSlice(z)
	}

	node := slice.Value(x, y)
	if node == nil {
		node = newBiNode(x, y, z)
		node.setFrom(tentativeG, tentativeF, predecessor, dir)
		node.states[dir].state = Open
		s.open[dir].Push(node)
		slice.SetValue(x, y, node)
		return nil
	}

	if node.F(dir) <= tentativeF {
		return nil
	}

	// A consistent heuristic never improves a closed node; reopening would
	// invalidate the optimality proof, so the improvement is dropped unless
	// strict checking turns it into an error.
	if node.State(dir) == Closed {
		if s.cfg.strict {
			return &ErrInconsistentHeuristic{Voxel: model.Voxel{X: x, Y: y, Z: z}, Dir: dir}
		}
		return nil
	}

	node.setFrom(tentativeG, tentativeF, predecessor, dir)
	if s.open[dir].Contains(node) {
		s.open[dir].DecreaseKey(node)
	} else {
		node.states[dir].state = Open
		s.open[dir].Push(node)
	}

	// The node now carries cost from this direction; if the opposite
	// frontier reached it too, it is a meeting candidate.
	if combined := node.G(FromStart) + node.G(FromGoal); combined < s.bestPathLength {
		s.bestPathLength = combined
		s.touch = node
	}

	return nil
}

// costMovingTo evaluates the cost strategy at a voxel and enforces its
// contract: finite, strictly positive values only.
func (s *BiSearch) costMovingTo(x, y, z int) (float64, error) {
	var c float64
	if s.coordCost != nil {
		c = s.coordCost.CostMovingToXYZ(x, y, z)
	} else {
		c = s.costFn.CostMovingTo(s.vol.Intensity(x, y, z))
	}
	if c <= 0 || math.IsNaN(c) || math.IsInf(c, 0) {
		return 0, &ErrCostContract{Voxel: model.Voxel{X: x, Y: y, Z: z}, Value: c}
	}
	return c, nil
}

// estimate evaluates the heuristic from a voxel to a seed, scaled by the
// minimum step cost so it never overestimates, and enforces its contract.
func (s *BiSearch) estimate(from, to model.Voxel) (float64, error) {
	h := s.heur.EstimateCostToGoal(from.X, from.Y, from.Z, to.X, to.Y, to.Z)
	if h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, &ErrHeuristicContract{Voxel: from, Value: h}
	}
	return h * s.minStepCost, nil
}

// checkStatus polls timeout, cancellation and progress reporting. It
// returns done=true with the outcome that should be reported when the run
// must stop.
func (s *BiSearch) checkStatus(ctx context.Context) (model.Outcome, bool) {
	if err := ctx.Err(); err != nil {
		s.logger.Debug("search canceled", "loops", s.loops)
		if errors.Is(err, context.DeadlineExceeded) {
			return model.OutcomeTimedOut, true
		}
		return model.OutcomeCanceled, true
	}

	if s.cfg.timeout > 0 && time.Since(s.startedAt) > s.cfg.timeout {
		s.logger.Debug("search timed out", "timeout", s.cfg.timeout, "loops", s.loops)
		return model.OutcomeTimedOut, true
	}

	s.rep.report(int64(s.open[FromStart].Len()+s.open[FromGoal].Len()),
		s.closedCount[FromStart]+s.closedCount[FromGoal])

	return 0, false
}

func (s *BiSearch) stats() model.Stats {
	return model.Stats{
		PointsConsidered: s.PointsConsidered(),
		OpenFromStart:    int64(s.open[FromStart].Len()),
		OpenFromGoal:     int64(s.open[FromGoal].Len()),
		ClosedFromStart:  s.closedCount[FromStart],
		ClosedFromGoal:   s.closedCount[FromGoal],
		Loops:            s.loops,
		Elapsed:          time.Since(s.startedAt),
	}
}
