package shapes

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/0x0FACED/go-skeleton/pkg/skeleton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// simple reports whether no two non-adjacent edges of the ring meet.
func simple(points []skeleton.Point) bool {
	n := len(points)
	edge := func(i int) skeleton.Segment {
		return skeleton.Segment{Start: points[i], End: points[(i+1)%n]}
	}
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			if skeleton.IntersectSegments(edge(i), edge(j), 1e-9) {
				return false
			}
		}
	}
	return true
}

func TestGeneratedShapesAreSimple(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, kind := range Kinds {
		for round := 0; round < 5; round++ {
			s := Generate(rng, kind, 8, 100)
			require.GreaterOrEqual(t, len(s.Points), 3, kind)
			assert.Greater(t, skeleton.SignedArea(s.Points), 0.0, "%s is counter-clockwise", kind)
			assert.True(t, simple(s.Points), "%s is simple: %v", kind, s.Points)
			assert.Contains(t, s.Name, "-"+string(kind)+"-")
		}
	}
}

func TestUnknownKindFallsBackToBlob(t *testing.T) {
	s := Generate(rand.New(rand.NewSource(1)), Kind("spiral"), 10, 50)
	assert.Contains(t, s.Name, "-blob-10")
	assert.Len(t, s.Points, 10)
}

func TestRandomNames(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := Random(rng, 12, 100)
	parts := strings.Split(s.Name, "-")
	require.GreaterOrEqual(t, len(parts), 4)
	assert.NotEmpty(t, parts[0])
	assert.NotEmpty(t, parts[1])
}

func TestComb(t *testing.T) {
	points := Comb(3, 50, 30)
	assert.Len(t, points, 2+2*3+2*2)
	// три зубца шириной 10 и высотой 20 над основанием высотой 10
	assert.InDelta(t, 50*10+3*10*20, skeleton.SignedArea(points), 1e-9)
}

func TestLShapeSkeleton(t *testing.T) {
	sk, err := skeleton.New(LShape(10, 10, 5), skeleton.Config{})
	require.NoError(t, err)
	assert.Len(t, sk.Arcs(), 8)
	assert.Equal(t, 0, sk.Stats().SplitEvents)
	assert.InDelta(t, 2.5, sk.MaxDepth(), 1e-9)
}

func TestRectangleSkeleton(t *testing.T) {
	sk, err := skeleton.New(Rectangle(20, 10), skeleton.Config{})
	require.NoError(t, err)
	assert.Len(t, sk.Arcs(), 5)
	assert.Len(t, sk.Faces(), 4)
}

func TestAmoebaIsSimple(t *testing.T) {
	points := Amoeba()
	assert.Len(t, points, 17)
	assert.Greater(t, skeleton.SignedArea(points), 0.0)
	assert.True(t, simple(points))
}

// checkSkeleton asserts what holds for the skeleton of any simple polygon.
func checkSkeleton(t *testing.T, sk *skeleton.Skeleton, points []skeleton.Point) {
	t.Helper()
	g := sk.Graph()
	assert.True(t, g.Connected())
	assert.Equal(t, g.NumVertices()-1, g.NumEdges(), "skeleton is a tree")

	arcs := sk.Arcs()
	for i := range arcs {
		for j := i + 1; j < len(arcs); j++ {
			assert.False(t, skeleton.IntersectSegments(arcs[i], arcs[j], 1e-7), "%v crosses %v", arcs[i], arcs[j])
		}
	}

	area := math.Abs(skeleton.SignedArea(points))
	var total float64
	for _, f := range sk.Faces() {
		total += math.Abs(skeleton.SignedArea(f))
	}
	assert.InDelta(t, area, total, skeleton.AreaTolerance*area, "faces cover the polygon")

	want := skeleton.RemoveCollinearVertices(points)
	slices.Reverse(want)
	caps := sk.Cap(0)
	require.Len(t, caps, 1)
	assert.Equal(t, skeleton.Polygon(want), caps[0])
}

func TestSkeletonOfEveryKind(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, kind := range Kinds {
		for _, n := range []int{4, 8, 12, 20} {
			for round := 0; round < 3; round++ {
				s := Generate(rng, kind, n, 100)
				t.Run(fmt.Sprintf("%s/n=%d/%d", kind, n, round), func(t *testing.T) {
					sk, err := skeleton.New(s.Points, skeleton.Config{})
					require.NoError(t, err, "%v", s.Points)
					checkSkeleton(t, sk, s.Points)
				})
			}
		}
	}
}
