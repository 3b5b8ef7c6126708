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

// Tracer is the single-frontier A* engine: it grows one search from the
// start voxel and terminates as soon as the goal is closed. BiSearch is
// usually faster on long traces; Tracer is the reference implementation the
// bidirectional result is validated against, and it reuses the same node,
// frontier and cost machinery with only the from-start state records.
type Tracer struct {
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
	open        *heap
	closedCount int64
	loops       int64
	startedAt   time.Time

	rep *reporter
}

// NewTracer validates all preconditions and returns a ready-to-run
// unidirectional engine.
func NewTracer(vol volume.Volume, cal model.Calibration, start, goal model.Voxel,
	costFn cost.Cost, heur heuristic.Heuristic, opts ...Option,
) (*Tracer, error) {
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

	t := &Tracer{
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
		open:        newHeap(FromStart),
		rep:         newReporter(cfg.progress, cfg.reportEvery),
	}
	return t, nil
}

// PointsConsidered returns the number of nodes that entered the frontier so
// far: open plus closed.
func (t *Tracer) PointsConsidered() int64 {
	return int64(t.open.Len()) + t.closedCount
}

// Run executes the search until the goal is closed, the frontier empties,
// or cancellation/timeout fires.
func (t *Tracer) Run(ctx context.Context) (*model.Result, error) {
	t.startedAt = time.Now()

	t.logger.DebugContext(ctx, "tracer search started",
		"start", t.start.String(),
		"goal", t.goal.String(),
	)

	if t.start == t.goal {
		pt := t.cal.PointOf(t.start)
		return &model.Result{
			Path:    model.NewPath([]model.Point{pt}, t.cal.Unit),
			Outcome: model.OutcomeComplete,
			Stats:   t.stats(),
		}, nil
	}

	startNode := newBiNode(t.start.X, t.start.Y, t.start.Z)
	h, err := t.estimate(t.start)
	if err != nil {
		return nil, err
	}
	startNode.setFrom(0, h, nil, FromStart)
	startNode.states[FromStart].state = Open
	t.open.Push(startNode)
	t.nodes.NewSlice(t.start.Z).SetValue(t.start.X, t.start.Y, startNode)

	for t.open.Len() > 0 {
		t.loops++

		if t.loops%statusInterval == 0 {
			if outcome, done := t.checkStatus(ctx); done {
				t.rep.flush(int64(t.open.Len()), t.closedCount)
				return &model.Result{Outcome: outcome, Stats: t.stats()}, nil
			}
		}

		p := t.open.Pop()
		p.states[FromStart].state = Closed
		t.closedCount++

		if p.X == t.goal.X && p.Y == t.goal.Y && p.Z == t.goal.Z {
			t.logger.DebugContext(ctx, "tracer reached goal",
				"cost", p.G(FromStart),
				"loops", t.loops,
			)
			t.rep.flush(int64(t.open.Len()), t.closedCount)
			return &model.Result{
				Path:    t.reconstructPath(p),
				Outcome: model.OutcomeComplete,
				Stats:   t.stats(),
			}, nil
		}

		if err := t.expandNeighbors(p); err != nil {
			return nil, err
		}
	}

	t.rep.flush(int64(t.open.Len()), t.closedCount)
	return &model.Result{Outcome: model.OutcomeNoPath, Stats: t.stats()}, nil
}

func (t *Tracer) expandNeighbors(p *BiNode) error {
	for _, off := range t.offsets {
		nx, ny, nz := p.X+off[0], p.Y+off[1], p.Z+off[2]
		if !volume.InBounds(t.vol, nx, ny, nz) {
			continue
		}

		var stepCost float64
		if t.coordCost != nil {
			stepCost = t.coordCost.CostMovingToXYZ(nx, ny, nz)
		} else {
			stepCost = t.costFn.CostMovingTo(t.vol.Intensity(nx, ny, nz))
		}
		if stepCost <= 0 || math.IsNaN(stepCost) || math.IsInf(stepCost, 0) {
			return &ErrCostContract{Voxel: model.Voxel{X: nx, Y: ny, Z: nz}, Value: stepCost}
		}
		if stepCost < t.minStepCost {
			stepCost = t.minStepCost
		}

		dx := float64(off[0]) * t.cal.X
		dy := float64(off[1]) * t.cal.Y
		dz := float64(off[2]) * t.cal.Z
		stepDistance := math.Sqrt(dx*dx + dy*dy + dz*dz)

		tentativeG := p.G(FromStart) + stepDistance*stepCost
		h, err := t.estimate(model.Voxel{X: nx, Y: ny, Z: nz})
		if err != nil {
			return err
		}
		tentativeF := tentativeG + h

		slice := t.nodes.Slice(nz)
		if slice == nil {
			slice = t.nodes.NewSlice(nz)
		}

		node := slice.Value(nx, ny)
		if node == nil {
			node = newBiNode(nx, ny, nz)
			node.setFrom(tentativeG, tentativeF, p, FromStart)
			node.states[FromStart].state = Open
			t.open.Push(node)
			slice.SetValue(nx, ny, node)
			continue
		}

		if node.F(FromStart) <= tentativeF {
			continue
		}
		if node.State(FromStart) == Closed {
			if t.cfg.strict {
				return &ErrInconsistentHeuristic{Voxel: model.Voxel{X: nx, Y: ny, Z: nz}, Dir: FromStart}
			}
			continue
		}

		node.setFrom(tentativeG, tentativeF, p, FromStart)
		if t.open.Contains(node) {
			t.open.DecreaseKey(node)
		} else {
			node.states[FromStart].state = Open
			t.open.Push(node)
		}
	}
	return nil
}

func (t *Tracer) estimate(from model.Voxel) (float64, error) {
	h := t.heur.EstimateCostToGoal(from.X, from.Y, from.Z, t.goal.X, t.goal.Y, t.goal.Z)
	if h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, &ErrHeuristicContract{Voxel: from, Value: h}
	}
	return h * t.minStepCost, nil
}

func (t *Tracer) reconstructPath(goal *BiNode) *model.Path {
	var chain []*BiNode
	for p := goal; p != nil; p = p.Predecessor(FromStart) {
		chain = append(chain, p)
	}

	points := make([]model.Point, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		n := chain[i]
		points = append(points, t.cal.PointOf(model.Voxel{X: n.X, Y: n.Y, Z: n.Z}))
	}
	return model.NewPath(points, t.cal.Unit)
}

func (t *Tracer) checkStatus(ctx context.Context) (model.Outcome, bool) {
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return model.OutcomeTimedOut, true
		}
		return model.OutcomeCanceled, true
	}
	if t.cfg.timeout > 0 && time.Since(t.startedAt) > t.cfg.timeout {
		return model.OutcomeTimedOut, true
	}
	t.rep.report(int64(t.open.Len()), t.closedCount)
	return 0, false
}

func (t *Tracer) stats() model.Stats {
	return model.Stats{
		PointsConsidered: t.PointsConsidered(),
		OpenFromStart:    int64(t.open.Len()),
		ClosedFromStart:  t.closedCount,
		Loops:            t.loops,
		Elapsed:          time.Since(t.startedAt),
	}
}
