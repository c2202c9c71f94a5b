package body

import (
	"fmt"

	"github.com/pthm-cable/plinko/geom"
)

// Palette names the colours used by the factory functions.
type Palette struct {
	Background string `yaml:"background"`
	Outer      string `yaml:"outer"`
	Inner      string `yaml:"inner"`
	Bumper     string `yaml:"bumper"`
	BumperLit  string `yaml:"bumper_lit"`
	Paddle     string `yaml:"paddle"`
	Pinball    string `yaml:"pinball"`
	Peg        string `yaml:"peg"`
	PegLit     string `yaml:"peg_lit"`
	Sensor     string `yaml:"sensor"`
	SensorLit  string `yaml:"sensor_lit"`
	Edge       string `yaml:"edge"`
	Reset      string `yaml:"reset"`
	Shelf      string `yaml:"shelf"`
	Divider    string `yaml:"divider"`
	Disc       string `yaml:"disc"`
}

// DefaultPalette returns the stock colours of the table.
func DefaultPalette() Palette {
	return Palette{
		Background: "#292d28",
		Outer:      "#495057",
		Inner:      "#15aabf",
		Bumper:     "#fab005",
		BumperLit:  "#fff3bf",
		Paddle:     "#e64980",
		Pinball:    "#dee2e6",
		Peg:        "#cccccc",
		PegLit:     "#ff0000",
		Sensor:     "#ffa500",
		SensorLit:  "#fff3bf",
		Edge:       "#ffa500",
		Reset:      "#ffffff",
		Shelf:      "#cccccc",
		Divider:    "#000000",
		Disc:       "#1497ff",
	}
}

// Factory defaults.
const (
	BumperRadius  = 25.0
	BumperBounce  = 1.5
	WallChamfer   = 10.0
	ResetHeight   = 2.0
	PathLineWidth = 1.0

	DefaultFriction = 0.1
)

func staticMaterial() Material {
	return Material{Friction: DefaultFriction}
}

func newStatic(label string, shape ShapeType, tag Tag, fill string) Descriptor {
	return Descriptor{
		Label:    label,
		Shape:    shape,
		Static:   true,
		Material: staticMaterial(),
		Tag:      tag,
		Style:    Style{Fill: fill, Opacity: 1},
	}
}

// Rect builds a static axis-aligned rectangle centred at (x, y).
func Rect(label string, x, y, w, h float64, fill string) Descriptor {
	d := newStatic(label, ShapeRect, Tag{Kind: KindWall, Index: NoIndex}, fill)
	d.Pos = geom.Vec{X: x, Y: y}
	d.Width = w
	d.Height = h
	return d
}

// Boundary builds an outer edge of the cabinet.
func Boundary(x, y, w, h float64, pal Palette) Descriptor {
	return Rect("boundary", x, y, w, h, pal.Outer)
}

// Wall builds a chamfered static wall segment, optionally rotated.
func Wall(x, y, w, h, angle float64, fill string) Descriptor {
	d := Rect("wall", x, y, w, h, fill)
	d.Angle = angle
	d.Chamfer = WallChamfer
	return d
}

// Reset builds a thin reset zone. Contact with it relaunches the disc.
func Reset(x, y, w float64, pal Palette) Descriptor {
	d := Rect("reset", x, y, w, ResetHeight, pal.Reset)
	d.Tag = Tag{Kind: KindReset, Index: NoIndex}
	return d
}

// Bumper builds a round body that repels the disc.
func Bumper(x, y float64, pal Palette) Descriptor {
	d := newStatic("bumper", ShapeCircle, Tag{Kind: KindBumper, Index: NoIndex}, pal.Bumper)
	d.Pos = geom.Vec{X: x, Y: y}
	d.Radius = BumperRadius

	// Base construction resets restitution; it must be applied afterwards.
	d.Material.Restitution = BumperBounce
	return d
}

// Peg builds one plinko peg. index is its position in the grid.
func Peg(x, y, r float64, index int, pal Palette) Descriptor {
	d := newStatic("peg", ShapeCircle, Tag{Kind: KindPeg, Index: index}, pal.Peg)
	d.Pos = geom.Vec{X: x, Y: y}
	d.Radius = r
	return d
}

// Sensor builds a non-colliding slot detector addressing slot index.
func Sensor(x, y, w, h float64, index int, pal Palette) Descriptor {
	d := Rect("sensor", x, y, w, h, pal.Sensor)
	d.Sensor = true
	d.Tag = Tag{Kind: KindSensor, Index: index}
	return d
}

// Path builds a static polygon from a vertex path string, with its area
// centroid placed at (x, y).
func Path(x, y float64, path string, fill string) (Descriptor, error) {
	verts, err := geom.ParsePath(path)
	if err != nil {
		return Descriptor{}, fmt.Errorf("building path body: %w", err)
	}
	if len(verts) < 3 {
		return Descriptor{}, fmt.Errorf("building path body: need at least 3 vertices, got %d", len(verts))
	}
	return Polygon("path", x, y, verts, fill), nil
}

// Polygon builds a static polygon from vertices, placed by area centroid.
func Polygon(label string, x, y float64, verts []geom.Vec, fill string) Descriptor {
	d := newStatic(label, ShapePolygon, Tag{Kind: KindWall, Index: NoIndex}, fill)
	d.Pos = geom.Vec{X: x, Y: y}
	d.Parts = [][]geom.Vec{geom.PlaceAt(verts, d.Pos)}
	// stroke fills hairline gaps between decomposed fragments
	d.Style.Stroke = fill
	d.Style.LineWidth = PathLineWidth
	return d
}

// Compound groups the same polygon placed at each centre into one rigid
// static body, then rotates the whole group by angle around its centre.
func Compound(label string, centres []geom.Vec, verts []geom.Vec, angle float64, fill string) Descriptor {
	d := newStatic(label, ShapeCompound, Tag{Kind: KindWall, Index: NoIndex}, fill)

	parts := make([][]geom.Vec, 0, len(centres))
	centroids := make([]geom.Vec, 0, len(centres))
	for _, c := range centres {
		p := geom.PlaceAt(verts, c)
		parts = append(parts, p)
		centroids = append(centroids, geom.Centroid(p))
	}

	// parts are congruent, so the mass centre is the mean of part centroids
	d.Pos = geom.Mean(centroids)
	if angle != 0 {
		for i := range parts {
			parts[i] = geom.Rotate(parts[i], angle, d.Pos)
		}
	}
	d.Angle = angle
	d.Parts = parts
	return d
}

// Disc builds the movable ball.
func Disc(x, y, r, restitution, mass float64, pal Palette) Descriptor {
	return Descriptor{
		Label:  "disc",
		Shape:  ShapeCircle,
		Pos:    geom.Vec{X: x, Y: y},
		Radius: r,
		Material: Material{
			Restitution: restitution,
			Friction:    DefaultFriction,
			Mass:        mass,
		},
		Tag:   Tag{Kind: KindBall, Index: NoIndex},
		Style: Style{Fill: pal.Disc, Opacity: 1},
	}
}
