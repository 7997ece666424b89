// Package advanced holds the pieces of the polygon triangulator: the quad
// diagonal selector, the tangent frame projector, the ear clipper, and the
// fallback fan, plus the dispatch that ties them together. Most callers want
// the root package instead.
package advanced

import "go.uber.org/zap"

var nopLogger = zap.NewNop()

// Options controls how degenerate input is handled.
type Options struct {
	// EnableConvexFallback replaces a stalled or impossible triangulation with
	// the fallback fan. When false, a stalled clip returns just the ears it got
	// through, and a polygon with no usable plane returns nothing.
	EnableConvexFallback bool
	// Logger receives a debug entry whenever a polygon doesn't triangulate
	// cleanly. Nil discards them.
	Logger *zap.Logger
}

// DefaultOptions has the fallback enabled and logging off.
func DefaultOptions() Options {
	return Options{EnableConvexFallback: true}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return nopLogger
	}
	return o.Logger
}

// TriangulatePolygon appends a triangulation of corners to dst, in local corner
// indices. For three or more corners and the fallback enabled, exactly
// len(corners)-2 triangles are appended whatever the geometry looks like.
//
// Triangles are appended in place, so a dst with enough spare capacity is
// filled without allocating. When a stalled clip falls back to the fan, the
// ears it had already appended are dropped first.
func TriangulatePolygon(dst []Triangle, corners []Vec3, opts Options) ([]Triangle, Status) {
	n := len(corners)
	switch {
	case n < 3:
		return dst, IncompleteNoFallback
	case n == 3:
		return append(dst, Triangle{0, 1, 2}), Clean
	case n == 4:
		diagonal, ok := SelectQuadDiagonal(corners)
		t0, t1 := diagonal.Triangles()
		dst = append(dst, t0, t1)
		if !ok {
			opts.logger().Debug("quad has no valid diagonal", zap.Int("corners", n))
			return dst, FallbackUsed
		}
		return dst, Clean
	}

	var scratch Scratch[Vec2]
	projection, ok := ProjectPolygon(corners, scratch.Resize(n))
	if !ok {
		return fallback(dst, n, opts, "no tangent frame")
	}

	mark := len(dst)
	dst, ok = ClipEars(dst, projection.Points, projection.Area)
	if ok {
		return dst, Clean
	}
	if opts.EnableConvexFallback {
		dst = dst[:mark]
	}
	return fallback(dst, n, opts, "ear clipping stalled")
}

func fallback(dst []Triangle, n int, opts Options, reason string) ([]Triangle, Status) {
	logger := opts.logger()
	if !opts.EnableConvexFallback {
		logger.Debug("triangulation incomplete", zap.String("reason", reason), zap.Int("corners", n))
		return dst, IncompleteNoFallback
	}
	logger.Debug("using fallback fan", zap.String("reason", reason), zap.Int("corners", n))
	return FallbackFan(dst, n), FallbackUsed
}

// TriangulateIDs is the vertex ID form of TriangulatePolygon. Each ID is
// resolved against vertices, and the appended triangles hold IDs rather than
// local corner indices.
//
// An ID outside vertices is a caller bug, not bad geometry: TriangulateIDs
// panics with an *IndexOutOfRangeError before appending anything. Use
// HandleTriangulatePanicRecover, or the root package, to get it back as an
// error.
func TriangulateIDs(dst []Triangle, vertices []Vec3, ids []int, opts Options) ([]Triangle, Status) {
	var scratch Scratch[Vec3]
	corners := scratch.Resize(len(ids))
	for i, id := range ids {
		if id < 0 || id >= len(vertices) {
			throwIndexOutOfRange(i, id, len(vertices))
		}
		corners[i] = vertices[id]
	}

	mark := len(dst)
	dst, status := TriangulatePolygon(dst, corners, opts)
	for i := mark; i < len(dst); i++ {
		t := &dst[i]
		t.A, t.B, t.C = ids[t.A], ids[t.B], ids[t.C]
	}
	return dst, status
}

// Triangulator triangulates faces of a single mesh. It borrows the vertex
// buffer: the buffer must outlive the Triangulator and must not be written
// while a call is in progress. A Triangulator holds no other state, so one
// value can serve any number of goroutines.
type Triangulator struct {
	vertices []Vec3
	opts     Options
}

func NewTriangulator(vertices []Vec3, opts Options) *Triangulator {
	return &Triangulator{vertices: vertices, opts: opts}
}

// Vertices returns the borrowed vertex buffer.
func (t *Triangulator) Vertices() []Vec3 {
	return t.vertices
}

// Triangulate is TriangulatePolygon with the Triangulator's options.
func (t *Triangulator) Triangulate(dst []Triangle, corners []Vec3) ([]Triangle, Status) {
	return TriangulatePolygon(dst, corners, t.opts)
}

// TriangulateIDs is TriangulateIDs against the borrowed vertex buffer. It
// panics the same way.
func (t *Triangulator) TriangulateIDs(dst []Triangle, ids []int) ([]Triangle, Status) {
	return TriangulateIDs(dst, t.vertices, ids, t.opts)
}
