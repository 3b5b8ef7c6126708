package search

import "fmt"

// Connectivity selects the neighborhood expanded around a node. On
// single-slice volumes the out-of-plane offsets fall outside the bounds, so
// Conn6 degenerates to 4-connected and Conn26 to 8-connected expansion.
type Connectivity int

const (
	// Conn26 expands all neighbors sharing a face, edge or corner (default).
	Conn26 Connectivity = iota
	// Conn18 expands neighbors sharing a face or an edge.
	Conn18
	// Conn6 expands face neighbors only.
	Conn6
)

func (c Connectivity) String() string {
	switch c {
	case Conn26:
		return "26-connected"
	case Conn18:
		return "18-connected"
	case Conn6:
		return "6-connected"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// offsets returns the neighbor offset set for c.
func (c Connectivity) offsets() [][3]int {
	out := make([][3]int, 0, 26)
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				manhattan := abs(dx) + abs(dy) + abs(dz)
				switch c {
				case Conn6:
					if manhattan > 1 {
						continue
					}
				case Conn18:
					if manhattan > 2 {
						continue
					}
				}
				out = append(out, [3]int{dx, dy, dz})
			}
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
