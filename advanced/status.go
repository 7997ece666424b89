package advanced

// Status tags the outcome of a triangulation. Only Clean is a fully sound
// triangulation; the other values are quality warnings, never errors.
type Status int

const (
	// Clean means the polygon was split along its own geometry: the quad
	// selector found a usable diagonal, or ear clipping ran to completion.
	Clean Status = iota
	// FallbackUsed means the output is the fixed fan {0, i+1, i+2}. The triangle
	// count is still n-2.
	FallbackUsed
	// IncompleteNoFallback means clipping stalled (or never started) while the
	// fallback was disabled. The output holds only the ears clipped before the
	// stall, so it has fewer than n-2 triangles.
	IncompleteNoFallback
)

// OK reports whether the triangulation is clean.
func (s Status) OK() bool {
	return s == Clean
}

func (s Status) String() string {
	switch s {
	case Clean:
		return "clean"
	case FallbackUsed:
		return "fallback"
	case IncompleteNoFallback:
		return "incomplete"
	}
	return "unknown"
}
