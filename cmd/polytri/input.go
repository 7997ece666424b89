package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/polytri"
	"github.com/pkg/errors"
)

// Document is parsed input: a vertex buffer and faces indexing into it. Both
// input formats end up here.
type Document struct {
	Vertices []polytri.Vec3
	Faces    []Face
}

type Face struct {
	// Line is the input line the face started on.
	Line int
	IDs  []int
}

// FaceIDs returns the faces' ID lists, in order.
func (d *Document) FaceIDs() [][]int {
	ids := make([][]int, len(d.Faces))
	for i, face := range d.Faces {
		ids[i] = face.IDs
	}
	return ids
}

func readDocument(r io.Reader, format string) (*Document, error) {
	switch format {
	case "obj":
		return readOBJ(r)
	case "points":
		return readPoints(r)
	}
	return nil, errors.Errorf("unknown input format %q", format)
}

// readOBJ reads the subset of Wavefront OBJ that matters here: "v" lines make
// up the vertex buffer and "f" lines are faces. Everything else is ignored.
//
// Face indices are not checked against the vertex buffer; that is the
// triangulator's job, and it reports bad faces one by one.
func readOBJ(r io.Reader) (*Document, error) {
	doc := &Document{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, errors.Errorf("line %d: vertex needs 3 coordinates", line)
			}
			v, err := parseVec3(fields[1:4])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			doc.Vertices = append(doc.Vertices, v)
		case "f":
			face := Face{Line: line}
			for _, field := range fields[1:] {
				id, err := parseFaceIndex(field, len(doc.Vertices))
				if err != nil {
					return nil, errors.Wrapf(err, "line %d", line)
				}
				face.IDs = append(face.IDs, id)
			}
			doc.Faces = append(doc.Faces, face)
		}
	}
	return doc, errors.Wrap(scanner.Err(), "reading obj")
}

// parseFaceIndex converts one "f" entry ("7", "7/2", "7/2/5", "-1") into a
// zero based vertex ID. Negative indices count back from the last vertex read
// so far.
func parseFaceIndex(field string, vertexCount int) (int, error) {
	position, _, _ := strings.Cut(field, "/")
	index, err := strconv.Atoi(position)
	if err != nil {
		return 0, errors.Wrapf(err, "face index %q", field)
	}
	switch {
	case index > 0:
		return index - 1, nil
	case index < 0:
		return vertexCount + index, nil
	}
	return 0, errors.Errorf("face index %q: OBJ indices start at 1", field)
}

// readPoints reads newline separated "x y [z]" points, with polygons separated
// by blank lines. Each polygon's points are appended to the vertex buffer and
// it becomes a face over them.
func readPoints(r io.Reader) (*Document, error) {
	doc := &Document{}
	face := Face{}
	flush := func() {
		if len(face.IDs) > 0 {
			doc.Faces = append(doc.Faces, face)
		}
		face = Face{}
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())

		// An empty line ends the polygon, if we collected any points
		if len(fields) == 0 {
			flush()
			continue
		}
		if strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) < 2 || len(fields) > 3 {
			return nil, errors.Errorf("line %d: expected \"x y\" or \"x y z\"", line)
		}
		if len(fields) == 2 {
			fields = append(fields, "0")
		}
		point, err := parseVec3(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if len(face.IDs) == 0 {
			face.Line = line
		}
		face.IDs = append(face.IDs, len(doc.Vertices))
		doc.Vertices = append(doc.Vertices, point)
	}
	// Handle trailing polygon if any
	flush()
	return doc, errors.Wrap(scanner.Err(), "reading points")
}

func parseVec3(fields []string) (polytri.Vec3, error) {
	var coords [3]float64
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return polytri.Vec3{}, errors.Wrapf(err, "coordinate %q", field)
		}
		coords[i] = f
	}
	return polytri.Vec3{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
