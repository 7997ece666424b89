// Split polygon faces into triangles for mesh export.
//
// This package takes a simple polygon of three or more corners, planar or not,
// and splits it into exactly n-2 triangles. Quads pick the better of their two
// diagonals; larger polygons are flattened onto a tangent plane and ear
// clipped. When the geometry is too broken for either (collinear or coincident
// corners, self-overlap), a plain fan {0, i+1, i+2} is emitted instead, so the
// triangle count always comes out right and per-corner attributes stay
// attachable.
//
// Bad geometry is never an error: check the returned Status. The only error is
// a vertex ID outside the vertex buffer.
package polytri

import "github.com/osuushi/polytri/advanced"

type Vec3 = advanced.Vec3
type Triangle = advanced.Triangle
type Status = advanced.Status
type Options = advanced.Options

const (
	Clean                = advanced.Clean
	FallbackUsed         = advanced.FallbackUsed
	IncompleteNoFallback = advanced.IncompleteNoFallback
)

// DefaultOptions has the fallback fan enabled.
func DefaultOptions() Options {
	return advanced.DefaultOptions()
}

// Triangulate splits a polygon given by its corner coordinates. The triangles
// hold local corner indices.
func Triangulate(corners []Vec3, opts Options) ([]Triangle, Status) {
	return advanced.TriangulatePolygon(make([]Triangle, 0, triangleCount(len(corners))), corners, opts)
}

// TriangulateIDs splits a polygon given as IDs into vertices. The triangles
// hold the IDs. An ID outside vertices returns an error satisfying
// advanced.IsIndexOutOfRange, and no triangles.
func TriangulateIDs(vertices []Vec3, ids []int, opts Options) (result []Triangle, status Status, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			status = IncompleteNoFallback
			err = recoveredErr
		}
	}()
	result, status = advanced.TriangulateIDs(make([]Triangle, 0, triangleCount(len(ids))), vertices, ids, opts)
	return result, status, nil
}

func triangleCount(corners int) int {
	return max(corners-2, 0)
}
