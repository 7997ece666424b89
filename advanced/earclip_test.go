package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func flatten(corners []Vec3) []Vec2 {
	points := make([]Vec2, len(corners))
	for i, c := range corners {
		points[i] = Vec2{X: c.X, Y: c.Y}
	}
	return points
}

func TestClipEars(t *testing.T) {
	t.Run("convex", func(t *testing.T) {
		points := flatten(RegularPolygon(5, 1))
		triangles, ok := ClipEars(nil, points, SignedArea(points))
		assert.True(t, ok)
		// Every corner of a convex polygon is an ear, so the scan never has to
		// move past corner 0.
		assert.Equal(t, []Triangle{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}, triangles)
	})

	t.Run("deep notch", func(t *testing.T) {
		points := flatten(DeepNotchHexagon())
		triangles, ok := ClipEars(nil, points, SignedArea(points))
		assert.True(t, ok)
		// {0, 1, 2} would cover corner 3, so the first ear is at corner 2
		assert.Equal(t, []Triangle{{1, 2, 3}, {3, 4, 5}, {3, 5, 0}, {3, 0, 1}}, triangles)
	})

	t.Run("stall keeps the ears it found", func(t *testing.T) {
		points := flatten(OverlappingPentagon())
		dst := []Triangle{{7, 8, 9}}
		triangles, ok := ClipEars(dst, points, SignedArea(points))
		assert.False(t, ok)
		assert.Equal(t, []Triangle{{7, 8, 9}, {0, 1, 2}, {0, 2, 3}}, triangles)
	})

	t.Run("either winding", func(t *testing.T) {
		for _, corners := range [][]Vec3{DeepNotchHexagon(), Reverse(DeepNotchHexagon())} {
			points := flatten(corners)
			triangles, ok := ClipEars(nil, points, SignedArea(points))
			assert.True(t, ok)
			AssertValidTriangulation(t, corners, triangles)
		}
	})
}

func TestFallbackFan(t *testing.T) {
	assert.Equal(t, []Triangle{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}, FallbackFan(nil, 5))
	assert.Equal(t, []Triangle{{0, 1, 2}}, FallbackFan(nil, 3))
	assert.Empty(t, FallbackFan(nil, 2))
	assert.Empty(t, FallbackFan(nil, 0))

	dst := []Triangle{{5, 5, 5}}
	assert.Equal(t, []Triangle{{5, 5, 5}, {0, 1, 2}}, FallbackFan(dst, 3))
}
