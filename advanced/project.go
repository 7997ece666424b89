package advanced

// Frame is an orthonormal basis a polygon is flattened onto. Origin is the
// polygon's first corner, so the first corner always projects to (0, 0).
type Frame struct {
	Origin    Vec3
	Tangent   Vec3
	Bitangent Vec3
	Normal    Vec3
}

// Project returns p's coordinates in the frame's tangent plane.
func (f Frame) Project(p Vec3) Vec2 {
	d := p.Sub(f.Origin)
	return Vec2{X: d.Dot(f.Tangent), Y: d.Dot(f.Bitangent)}
}

// FindFrame walks the corners looking for the first one that actually turns.
// At each corner the incoming and outgoing edges are normalized and crossed;
// the first cross product with a squared length above FloatEpsilon supplies
// the normal, and the incoming edge supplies the tangent.
//
// It returns false if every corner is collinear with its neighbors (or sits on
// top of one), in which case there is no plane to work in.
func FindFrame(corners []Vec3) (Frame, bool) {
	n := len(corners)
	for i, cur := range corners {
		prev := corners[CircularIndex(i-1, n)]
		next := corners[CircularIndex(i+1, n)]

		tangent := normalize(cur.Sub(prev))
		normal := tangent.Cross(normalize(next.Sub(cur)))
		// NaN from a zero length edge fails this comparison too.
		if !(normal.Norm2() > FloatEpsilon) {
			continue
		}
		normal = normalize(normal)
		return Frame{
			Origin:    corners[0],
			Tangent:   tangent,
			Bitangent: normalize(normal.Cross(tangent)),
			Normal:    normal,
		}, true
	}
	return Frame{}, false
}

// Projection is a polygon flattened onto its frame.
type Projection struct {
	Frame  Frame
	Points []Vec2
	// Area is the SignedArea of Points. Its sign is the reference winding every
	// clipped ear has to agree with.
	Area float64
}

// ProjectPolygon flattens corners into points, which must have the same
// length. It returns false, leaving points untouched, when FindFrame can't
// find a plane.
func ProjectPolygon(corners []Vec3, points []Vec2) (Projection, bool) {
	frame, ok := FindFrame(corners)
	if !ok {
		return Projection{}, false
	}
	for i, corner := range corners {
		points[i] = frame.Project(corner)
	}
	return Projection{
		Frame:  frame,
		Points: points,
		Area:   SignedArea(points),
	}, true
}
