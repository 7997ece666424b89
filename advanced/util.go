package advanced

import "math"

// FloatEpsilon is single precision machine epsilon. A corner whose normal has a
// squared length at or below this is treated as collinear with its neighbors.
const FloatEpsilon = 1.1920928955078125e-07

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// normalize scales v to unit length. Unlike r3.Vector.Normalize, a zero vector
// comes back as NaNs, which is exactly what the degeneracy checks look for.
func normalize(v Vec3) Vec3 {
	return v.Mul(1 / v.Norm())
}

// faceNormal is the unit normal of triangle abc, or NaNs if abc has no area.
func faceNormal(a, b, c Vec3) Vec3 {
	return normalize(b.Sub(a).Cross(c.Sub(a)))
}

func isFinite(v Vec3) bool {
	for _, f := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// SignedArea is the shoelace sum Σ (x[next]-x[cur]) * (y[next]+y[cur]) over the
// polygon's edges. It is twice the enclosed area, negated: counterclockwise
// polygons come out negative. Only its sign matters to the clipper.
func SignedArea(points []Vec2) float64 {
	var sum float64
	for i, cur := range points {
		next := points[CircularIndex(i+1, len(points))]
		sum += (next.X - cur.X) * (next.Y + cur.Y)
	}
	return sum
}

// TriangleSignedArea is SignedArea for the triangle abc.
func TriangleSignedArea(a, b, c Vec2) float64 {
	return (b.X-a.X)*(b.Y+a.Y) + (c.X-b.X)*(c.Y+b.Y) + (a.X-c.X)*(a.Y+c.Y)
}

// SameWinding reports whether area agrees in sign with reference. Zero agrees
// with both signs.
func SameWinding(area, reference float64) bool {
	return (reference >= 0 && area >= 0) || (reference <= 0 && area <= 0)
}

// PointInTriangle reports whether p lies inside triangle abc, in either
// winding. Points on an edge or a corner count as inside.
func PointInTriangle(p, a, b, c Vec2) bool {
	d0 := b.Sub(a).Cross(p.Sub(a))
	d1 := c.Sub(b).Cross(p.Sub(b))
	d2 := a.Sub(c).Cross(p.Sub(c))
	return (d0 >= 0 && d1 >= 0 && d2 >= 0) || (d0 <= 0 && d1 <= 0 && d2 <= 0)
}
