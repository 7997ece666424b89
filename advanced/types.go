package advanced

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Vec3 is a point in a caller-owned vertex buffer.
type Vec3 = r3.Vector

// Vec2 is a polygon corner flattened onto the polygon's tangent plane.
type Vec2 = r2.Point

// Triangle holds three corner indices. Which index space they live in depends on
// the call form: the coordinate form emits local corner indices (0..n-1), while
// the vertex ID form emits the IDs it was given.
//
// Triangles produced by ear clipping keep the winding of the polygon they came
// from. Triangles from the fallback fan keep the corner connectivity, but not
// necessarily anything else.
type Triangle struct {
	A, B, C int
}

// Offset returns the triangle with every index shifted by n.
func (t Triangle) Offset(n int) Triangle {
	return Triangle{t.A + n, t.B + n, t.C + n}
}
