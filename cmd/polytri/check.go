package main

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polytri"
)

// summary counts faces by outcome.
type summary struct {
	Clean, Fallback, Incomplete, Invalid int
}

func summarize(result *polytri.MeshResult) summary {
	var s summary
	for _, face := range result.Faces {
		switch {
		case face.Err != nil:
			s.Invalid++
		case face.Status == polytri.Clean:
			s.Clean++
		case face.Status == polytri.FallbackUsed:
			s.Fallback++
		default:
			s.Incomplete++
		}
	}
	return s
}

func statusLabel(au aurora.Aurora, face polytri.FaceReport) string {
	if face.Err != nil {
		return au.Red("invalid").String()
	}
	switch face.Status {
	case polytri.Clean:
		return au.Green(face.Status).String()
	case polytri.FallbackUsed:
		return au.Yellow(face.Status).String()
	}
	return au.Red(face.Status).String()
}

// writeCheck prints one line per face and a summary. With dump set, each face
// report is pretty-printed underneath its line.
func writeCheck(w io.Writer, au aurora.Aurora, doc *Document, result *polytri.MeshResult, dump bool) {
	for _, face := range result.Faces {
		fmt.Fprintf(w, "face %-5d line %-6d %-10s corners=%d triangles=%d",
			face.Face, doc.Faces[face.Face].Line, statusLabel(au, face), face.Corners, face.Count)
		if face.Err != nil {
			fmt.Fprintf(w, " error=%q", face.Err.Error())
		}
		fmt.Fprintln(w)
		if dump {
			fmt.Fprintln(w, pretty.Sprint(face))
		}
	}

	s := summarize(result)
	fmt.Fprintf(w, "%d faces: %v clean, %v fallback, %v incomplete, %v invalid\n",
		len(result.Faces),
		au.Green(s.Clean), au.Yellow(s.Fallback), au.Red(s.Incomplete), au.Red(s.Invalid))
}
