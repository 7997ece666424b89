package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/osuushi/polytri"
	"github.com/pkg/errors"
)

// writeOBJ writes the vertex buffer and one "f" line per triangle. Faces that
// failed to triangulate are written as comments so the output lines still
// explain where each input face went.
func writeOBJ(w io.Writer, doc *Document, result *polytri.MeshResult) error {
	out := bufio.NewWriter(w)
	for _, v := range doc.Vertices {
		fmt.Fprintf(out, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, face := range result.Faces {
		if face.Err != nil {
			fmt.Fprintf(out, "# face %d (line %d) skipped: %v\n", face.Face, doc.Faces[face.Face].Line, face.Err)
			continue
		}
		if !face.Status.OK() {
			fmt.Fprintf(out, "# face %d (line %d): %s\n", face.Face, doc.Faces[face.Face].Line, face.Status)
		}
		for _, t := range result.Triangles[face.First : face.First+face.Count] {
			// OBJ indices are 1 based
			fmt.Fprintf(out, "f %d %d %d\n", t.A+1, t.B+1, t.C+1)
		}
	}
	return errors.Wrap(out.Flush(), "writing obj")
}
