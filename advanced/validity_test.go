package advanced

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const areaEpsilon = 1e-6

// Helper to check that a triangulation is valid. The rules are:
// 1. There are exactly n-2 triangles.
// 2. Every corner is used by some triangle.
// 3. Every polygon edge is an edge of some triangle.
// 4. Every triangle winds the same way as the polygon, and none has zero area.
// 5. The sum of the areas of all triangles is equal to the area of the polygon.
// 6. Sampling the plane, a point is covered by a triangle exactly when it is
// inside the polygon.
func AssertValidTriangulation(t *testing.T, corners []Vec3, triangles []Triangle) {
	t.Helper()
	n := len(corners)
	require.Len(t, triangles, n-2, "triangles: %s", spew.Sdump(triangles))

	points := make([]Vec2, n)
	projection, ok := ProjectPolygon(corners, points)
	require.True(t, ok, "polygon has no tangent frame")

	used := make([]bool, n)
	var triangleArea float64
	edges := make(edgeSet)
	for _, tri := range triangles {
		for _, i := range []int{tri.A, tri.B, tri.C} {
			require.True(t, i >= 0 && i < n, "index out of range in %v", tri)
			used[i] = true
		}
		area := TriangleSignedArea(points[tri.A], points[tri.B], points[tri.C])
		require.NotZero(t, area, "zero area triangle: %v", tri)
		require.True(t, SameWinding(area, projection.Area), "triangle %v winds against the polygon", tri)
		triangleArea += area
		edges.add(tri.A, tri.B)
		edges.add(tri.B, tri.C)
		edges.add(tri.C, tri.A)
	}

	for i, u := range used {
		require.True(t, u, "corner %d is not in any triangle", i)
	}

	for i := range corners {
		j := CircularIndex(i+1, n)
		require.True(t, edges.contains(i, j), "edge %d-%d is not in the triangulation:\n%s", i, j, spew.Sdump(triangles))
	}

	require.InDelta(t, projection.Area, triangleArea, areaEpsilon, "sum of the areas of all triangles is equal to the area of the polygon")

	validateTrianglesBySampling(t, points, triangles)
}

type edge struct {
	lower, upper int
}

type edgeSet map[edge]struct{}

func (set edgeSet) add(a, b int) {
	set[edge{min(a, b), max(a, b)}] = struct{}{}
}

func (set edgeSet) contains(a, b int) bool {
	_, ok := set[edge{min(a, b), max(a, b)}]
	return ok
}

// containsByEvenOdd casts a ray in the +x direction and counts crossings.
func containsByEvenOdd(points []Vec2, p Vec2) bool {
	inside := false
	for i, a := range points {
		b := points[CircularIndex(i+1, len(points))]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x > p.X {
			inside = !inside
		}
	}
	return inside
}

func validateTrianglesBySampling(t *testing.T, points []Vec2, triangles []Triangle) {
	t.Helper()
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// Compute the step size, and nudge the grid off round numbers so samples
	// don't land on edges.
	step := math.Max(maxX-minX, maxY-minY) / 50
	offset := step * 0.3137

	mismatches := 0
	for y := minY + offset; y <= maxY; y += step {
		for x := minX + offset; x <= maxX; x += step {
			p := Vec2{X: x, Y: y}
			covered := false
			for _, tri := range triangles {
				if PointInTriangle(p, points[tri.A], points[tri.B], points[tri.C]) {
					covered = true
					break
				}
			}
			if covered != containsByEvenOdd(points, p) {
				mismatches++
				if mismatches <= 5 {
					assert.Fail(t, "sampling mismatch", "point %v: covered=%v", p, covered)
				}
			}
		}
	}
	assert.Zero(t, mismatches, "points where the triangles disagree with the polygon")
}
