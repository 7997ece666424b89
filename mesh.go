package polytri

import (
	"github.com/osuushi/polytri/advanced"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// FaceReport describes how one face of a mesh was triangulated.
type FaceReport struct {
	Face    int
	Corners int
	// First is the index of the face's first triangle in MeshResult.Triangles,
	// and Count how many it has.
	First  int
	Count  int
	Status Status
	// Err is set when the face referenced a vertex that doesn't exist. Such a
	// face contributes no triangles.
	Err error
}

type MeshResult struct {
	Triangles []Triangle
	Faces     []FaceReport
}

// Clean reports whether every face triangulated cleanly.
func (r *MeshResult) Clean() bool {
	for _, face := range r.Faces {
		if face.Err != nil || !face.Status.OK() {
			return false
		}
	}
	return true
}

// TriangulateMesh triangulates every face of a mesh into one flat triangle
// list of vertex IDs. Faces with bad IDs are skipped and reported, and their
// errors are combined into the returned error; the rest of the mesh is still
// processed.
func TriangulateMesh(vertices []Vec3, faces [][]int, opts Options) (*MeshResult, error) {
	total := 0
	for _, face := range faces {
		total += triangleCount(len(face))
	}
	result := &MeshResult{
		Triangles: make([]Triangle, 0, total),
		Faces:     make([]FaceReport, len(faces)),
	}

	t := advanced.NewTriangulator(vertices, opts)
	var errs error
	for i, face := range faces {
		first := len(result.Triangles)
		triangles, status, err := triangulateFace(t, result.Triangles, face)
		report := FaceReport{Face: i, Corners: len(face), First: first, Status: status, Err: err}
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "face %d", i))
		} else {
			result.Triangles = triangles
			report.Count = len(triangles) - first
		}
		result.Faces[i] = report
	}
	return result, errs
}

func triangulateFace(t *advanced.Triangulator, dst []Triangle, ids []int) (result []Triangle, status Status, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = dst
			status = IncompleteNoFallback
			err = recoveredErr
		}
	}()
	result, status = t.TriangulateIDs(dst, ids)
	return result, status, nil
}
