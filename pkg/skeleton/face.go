package skeleton

import (
	"fmt"
)

// buildFaces walks, for every original edge, the arcs bordering its face
// from the edge's end back to its start.
func buildFaces(edges []Segment, arcs []arcRecord) ([]Polygon, error) {
	byFace := make([][]int, len(edges))
	for i, a := range arcs {
		byFace[a.left] = append(byFace[a.left], i)
		if a.right != a.left {
			byFace[a.right] = append(byFace[a.right], i)
		}
	}

	faces := make([]Polygon, len(edges))
	for i, edge := range edges {
		path, ok := facePath(arcs, byFace[i], edge.End, edge.Start)
		if !ok {
			return nil, violation("", fmt.Sprintf("face of edge %d is not closed", i), edge.Start, edge.End)
		}
		face := make(Polygon, 0, len(path)+1)
		face = append(face, edge.Start)
		face = append(face, path[:len(path)-1]...)
		faces[i] = face
	}
	return faces, nil
}

// facePath finds a path over the given arcs from one point to another. The
// result starts with from and ends with to.
func facePath(arcs []arcRecord, candidates []int, from, to Point) ([]Point, bool) {
	adjacent := make(map[Point][]int)
	for _, i := range candidates {
		s := arcs[i].seg
		adjacent[s.Start] = append(adjacent[s.Start], i)
		adjacent[s.End] = append(adjacent[s.End], i)
	}

	used := make(map[int]bool, len(candidates))
	path := []Point{from}
	var walk func(p Point) bool
	walk = func(p Point) bool {
		if p == to {
			return true
		}
		for _, i := range adjacent[p] {
			if used[i] {
				continue
			}
			q := arcs[i].seg.End
			if q == p {
				q = arcs[i].seg.Start
			}
			used[i] = true
			path = append(path, q)
			if walk(q) {
				return true
			}
			path = path[:len(path)-1]
			used[i] = false
		}
		return false
	}
	if !walk(from) {
		return nil, false
	}
	return path, true
}
