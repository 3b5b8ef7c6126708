package search

import "github.com/hupe1980/tracego/model"

// reconstructPath splices the two predecessor chains rooted at the meeting
// node into one start-to-goal polyline of calibrated points. The meeting
// node appears exactly once; model.NewPath collapses any duplicate splice
// point.
func (s *BiSearch) reconstructPath() *model.Path {
	// Walk back towards the start seed, then reverse.
	var forward []*BiNode
	for p := s.touch.Predecessor(FromStart); p != nil; p = p.Predecessor(FromStart) {
		forward = append(forward, p)
	}

	points := make([]model.Point, 0, len(forward)+1)
	for i := len(forward) - 1; i >= 0; i-- {
		points = append(points, s.pointOf(forward[i]))
	}

	points = append(points, s.pointOf(s.touch))

	// The from-goal chain already runs towards the goal seed.
	for p := s.touch.Predecessor(FromGoal); p != nil; p = p.Predecessor(FromGoal) {
		points = append(points, s.pointOf(p))
	}

	return model.NewPath(points, s.cal.Unit)
}

func (s *BiSearch) pointOf(n *BiNode) model.Point {
	return s.cal.PointOf(model.Voxel{X: n.X, Y: n.Y, Z: n.Z})
}
