package advanced

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It finds whatever the first polygon is and
// converts it into corners on the z=0 plane, in the order they are listed. If
// anything goes wrong, it bails out.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Vec3 {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointStrings := strings.Fields(polygonEl.Attributes["points"])
	corners := make([]Vec3, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		corners = append(corners, Vec3{X: x, Y: y})
	}
	return corners
}

var fixtureNames = []string{
	"arrow",
	"comb",
	"spiral",
	"star",
}

// Some ad hoc fixtures

// RegularPolygon returns n corners on a circle in the z=0 plane,
// counterclockwise.
func RegularPolygon(n int, radius float64) []Vec3 {
	corners := make([]Vec3, n)
	for i := range corners {
		angle := 2 * math.Pi * float64(i) / float64(n)
		corners[i] = Vec3{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return corners
}

// DeepNotchHexagon is a counterclockwise hexagon whose corner 3 is pushed deep
// into the shape, so the ear at corner 1 would swallow it.
func DeepNotchHexagon() []Vec3 {
	return []Vec3{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: 4},
		{X: 2, Y: 0.5},
		{X: 0, Y: 4},
		{X: -1, Y: 2},
	}
}

// OverlappingPentagon is a square with a fifth corner poking out past its right
// side, so the last two edges cut through it. The lobe that pokes out winds
// the other way from the square.
//
// Ear clipping gets through corners 1 and 2 and then stalls on the last
// triangle {0, 3, 4}, which winds the wrong way.
func OverlappingPentagon() []Vec3 {
	return []Vec3{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: 4},
		{X: 0, Y: 4},
		{X: 6, Y: 2},
	}
}

// Transform maps corners from the z=0 plane into the plane through origin
// spanned by u and v.
func Transform(corners []Vec3, origin, u, v Vec3) []Vec3 {
	out := make([]Vec3, len(corners))
	for i, c := range corners {
		out[i] = origin.Add(u.Mul(c.X)).Add(v.Mul(c.Y))
	}
	return out
}

func Reverse(corners []Vec3) []Vec3 {
	out := make([]Vec3, 0, len(corners))
	for i := len(corners) - 1; i >= 0; i-- {
		out = append(out, corners[i])
	}
	return out
}
