package advanced

// Quads get their own fast path. There are only two ways to split one, so
// rather than flattening and clipping we pick the better diagonal directly.
//
// Candidates are ranked in this order, and the first match wins:
//
//  1. the shorter diagonal, if both halves have normals and don't fold
//  2. the other diagonal, same test
//  3. the shorter diagonal, if both halves have normals at all
//  4. the other diagonal, same test
//  5. Diagonal02, reported as a failure
//
// When the diagonals are the same length, Diagonal02 counts as the shorter one.

// Diagonal names the diagonal a quad is cut along.
type Diagonal int

const (
	// Diagonal02 cuts from corner 0 to corner 2. Its triangles are the same as
	// the fallback fan's.
	Diagonal02 Diagonal = iota
	// Diagonal13 cuts from corner 1 to corner 3.
	Diagonal13
)

// Triangles returns the two halves of a quad cut along d, in local corner
// indices.
func (d Diagonal) Triangles() (Triangle, Triangle) {
	if d == Diagonal13 {
		return Triangle{0, 1, 3}, Triangle{1, 2, 3}
	}
	return Triangle{0, 1, 2}, Triangle{0, 2, 3}
}

func (d Diagonal) other() Diagonal {
	if d == Diagonal02 {
		return Diagonal13
	}
	return Diagonal02
}

// A diagonal is valid when both halves have a finite normal, and flat when it
// is valid and the halves fold by at most 90 degrees.
type diagonalFit struct {
	valid, flat bool
}

func fitDiagonal(corners []Vec3, d Diagonal) diagonalFit {
	t0, t1 := d.Triangles()
	n0 := faceNormal(corners[t0.A], corners[t0.B], corners[t0.C])
	n1 := faceNormal(corners[t1.A], corners[t1.B], corners[t1.C])
	valid := isFinite(n0) && isFinite(n1)
	return diagonalFit{valid: valid, flat: valid && n0.Dot(n1) >= 0}
}

// SelectQuadDiagonal picks the diagonal to split a four corner polygon along.
// It returns false only when neither diagonal yields finite normals (three or
// more coincident or collinear corners), in which case the returned diagonal
// is Diagonal02.
func SelectQuadDiagonal(corners []Vec3) (Diagonal, bool) {
	preferred := Diagonal02
	if corners[0].Sub(corners[2]).Norm2() > corners[1].Sub(corners[3]).Norm2() {
		preferred = Diagonal13
	}
	alternate := preferred.other()

	preferredFit := fitDiagonal(corners, preferred)
	if preferredFit.flat {
		return preferred, true
	}
	alternateFit := fitDiagonal(corners, alternate)
	switch {
	case alternateFit.flat:
		return alternate, true
	case preferredFit.valid:
		return preferred, true
	case alternateFit.valid:
		return alternate, true
	}
	return Diagonal02, false
}
