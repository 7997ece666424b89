package advanced

// Ear clipping over a projected polygon.
//
// The remaining corners are kept as a ring of indices into the projected
// points. Each step looks at three consecutive ring entries (prev, cur, next).
// The triple is an ear when its triangle winds the same way as the whole
// polygon and no other remaining corner lies inside it (or on its boundary).
// Clipping an ear emits it and drops cur from the ring.
//
// The scan does not restart from the front of the ring after every clip or
// rejection. It carries on from where the last attempt left off, and after a
// clip it retries at the same prev, which now has a new neighbor. A stall is
// only declared after a full lap of the ring finds nothing.

// ClipEars appends ears clipped from points to dst, in local corner indices,
// until two corners remain. reference is the polygon's SignedArea.
//
// It returns false if it stalls with three or more corners left. The ears
// clipped before the stall are still appended to dst; deciding what to do
// with them is up to the caller.
func ClipEars(dst []Triangle, points []Vec2, reference float64) ([]Triangle, bool) {
	var ring Scratch[int]
	remaining := ring.Resize(len(points))
	for i := range remaining {
		remaining[i] = i
	}

	start := 0
	for ring.Len() >= 3 {
		n := ring.Len()
		clipped := false
		for tries := 0; tries < n; tries++ {
			i0 := CircularIndex(start, n)
			i1 := CircularIndex(start+1, n)
			i2 := CircularIndex(start+2, n)
			if !isEar(points, ring.Items(), i0, i1, i2, reference) {
				start = i1
				continue
			}

			dst = append(dst, Triangle{ring.At(i0), ring.At(i1), ring.At(i2)})
			ring.RemoveAt(i1)
			// Removing the front of the ring shifts prev down with everything else.
			if i1 < i0 {
				i0--
			}
			start = i0
			clipped = true
			break
		}
		if !clipped {
			return dst, false
		}
	}
	return dst, true
}

// isEar tests the ring entries at i0, i1 and i2 as a candidate ear.
func isEar(points []Vec2, ring []int, i0, i1, i2 int, reference float64) bool {
	a, b, c := points[ring[i0]], points[ring[i1]], points[ring[i2]]
	// A reflex corner, or a triangle that would face outward.
	if !SameWinding(TriangleSignedArea(a, b, c), reference) {
		return false
	}
	for i, corner := range ring {
		if i == i0 || i == i1 || i == i2 {
			continue
		}
		if PointInTriangle(points[corner], a, b, c) {
			return false
		}
	}
	return true
}

// FallbackFan appends the fan {0, i+1, i+2} for a polygon with cornerCount
// corners: cornerCount-2 triangles, or none for fewer than three corners. The
// fan ignores geometry entirely, so it always has the right shape even when it
// isn't a sensible triangulation.
func FallbackFan(dst []Triangle, cornerCount int) []Triangle {
	for i := 0; i+2 < cornerCount; i++ {
		dst = append(dst, Triangle{0, i + 1, i + 2})
	}
	return dst
}
