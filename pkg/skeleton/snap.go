package skeleton

import (
	"math"
)

type cellKey struct {
	x, y int64
}

// snapper merges points closer than tol into the first one seen, so that
// events meeting at one place produce one skeleton vertex.
type snapper struct {
	tol   float64
	cells map[cellKey][]Point
}

func newSnapper(tol float64) *snapper {
	return &snapper{tol: tol, cells: make(map[cellKey][]Point)}
}

func (s *snapper) key(p Point) cellKey {
	return cellKey{x: int64(math.Floor(p.X / s.tol)), y: int64(math.Floor(p.Y / s.tol))}
}

func (s *snapper) snap(p Point) Point {
	k := s.key(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, q := range s.cells[cellKey{x: k.x + dx, y: k.y + dy}] {
				if p.DistanceTo(q) <= s.tol {
					return q
				}
			}
		}
	}
	s.cells[k] = append(s.cells[k], p)
	return p
}
