package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/polytri/advanced"
	"github.com/osuushi/polytri/dbg"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// faceDrawing is one face flattened onto its tangent plane, ready to draw.
type faceDrawing struct {
	Points    []advanced.Vec2
	Triangles []advanced.Triangle
	Status    advanced.Status
}

// drawFace projects and triangulates corners through the coordinate form. It
// returns false when the face has no plane to draw it in.
func drawFace(corners []advanced.Vec3, opts advanced.Options) (faceDrawing, bool) {
	if len(corners) < 3 {
		return faceDrawing{}, false
	}
	points := make([]advanced.Vec2, len(corners))
	if _, ok := advanced.ProjectPolygon(corners, points); !ok {
		return faceDrawing{}, false
	}
	triangles, status := advanced.TriangulatePolygon(nil, corners, opts)
	return faceDrawing{Points: points, Triangles: triangles, Status: status}, true
}

// render draws the face to a PNG at path. Triangles are filled green for a
// clean result and orange otherwise, with the polygon outline on top.
func (d faceDrawing) render(path string, cfg RenderConfig) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range d.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	extent := math.Max(maxX-minX, maxY-minY)
	if extent == 0 || math.IsNaN(extent) || math.IsInf(extent, 0) {
		return errors.New("face has no drawable extent")
	}
	scale := cfg.Size / extent

	// Set up the context
	width := int(scale*(maxX-minX) + cfg.Padding*2)
	height := int(scale*(maxY-minY) + cfg.Padding*2)
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(cfg.Padding, cfg.Padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1.5 / scale)
	for _, t := range d.Triangles {
		a, b, cc := d.Points[t.A], d.Points[t.B], d.Points[t.C]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(cc.X, cc.Y)
		c.ClosePath()
		if d.Status.OK() {
			c.SetRGBA(0, 0.5, 0, 0.6)
		} else {
			c.SetRGBA(0.8, 0.4, 0, 0.6)
		}
		c.FillPreserve()
		c.SetRGB(0.6, 0.6, 0.6)
		c.Stroke()
	}

	c.SetLineWidth(3 / scale)
	c.MoveTo(d.Points[0].X, d.Points[0].Y)
	for _, p := range d.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	// The first corner is the projection origin; mark it so winding is readable.
	c.DrawCircle(d.Points[0].X, d.Points[0].Y, 5/scale)
	c.SetRGB(1, 0, 1)
	c.Fill()

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// renderFaces writes face-NNNN.png for every face with a plane, and prints each
// one to the terminal when inline is set (iTerm only).
func renderFaces(doc *Document, opts advanced.Options, cfg RenderConfig, inline bool, logger *zap.Logger) error {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return errors.Wrap(err, "creating render directory")
	}
	for i := range doc.Faces {
		face := &doc.Faces[i]
		log := logger.With(zap.Int("face", i), zap.String("name", dbg.Name(face)))

		corners, ok := gatherCorners(doc.Vertices, face.IDs)
		if !ok {
			log.Warn("skipping face with out of range vertex index")
			continue
		}
		drawing, ok := drawFace(corners, opts)
		if !ok {
			log.Warn("skipping face with no tangent plane", zap.Int("corners", len(corners)))
			continue
		}

		path := filepath.Join(cfg.Dir, fmt.Sprintf("face-%04d.png", i))
		if err := drawing.render(path, cfg); err != nil {
			log.Warn("could not render face", zap.Error(err))
			continue
		}
		log.Debug("rendered face", zap.String("path", path), zap.Stringer("status", drawing.Status))
		if inline {
			imgcat.CatFile(path, os.Stdout)
		}
	}
	return nil
}

func gatherCorners(vertices []advanced.Vec3, ids []int) ([]advanced.Vec3, bool) {
	corners := make([]advanced.Vec3, len(ids))
	for i, id := range ids {
		if id < 0 || id >= len(vertices) {
			return nil, false
		}
		corners[i] = vertices[id]
	}
	return corners, true
}
