// Package layout derives every body of the table from the viewport size.
//
// All plinko geometry is expressed in multiples of a single scale factor
// s = viewportHeight * ScaleFactor, so the board keeps its proportions on
// any screen. The optional cabinet uses the fixed coordinates of a
// 500×800 pinball table, shifted left of the board when the viewport is
// too narrow to hold both.
package layout

import (
	"fmt"
	"math"

	"github.com/pthm-cable/plinko/body"
	"github.com/pthm-cable/plinko/geom"
)

// Board constants.
const (
	ScaleFactor = 0.055

	PegRows     = 13
	PegColsEven = 8
	PegColsOdd  = 7

	RailParts   = 6
	SensorCount = 9
	Separators  = 8
)

// railPath is the zigzag segment of the side rails, in units of s.
const railPath = "0 0 0.5 0 1 1 0.5 2 0 2"

// deflectorPath caps the launch lane and turns a rising disc left into
// the grid. Units of s, relative to (width/2, 0).
const deflectorPath = "4.1 0 5.1 0 5.1 1"

// boardHalfLeft is how far the board reaches left of centre, in units of s.
const boardHalfLeft = 6.5

// Options controls optional parts of the layout.
type Options struct {
	Palette body.Palette

	// Cabinet adds the fixed-coordinate pinball parts.
	Cabinet bool

	DiscRestitution float64
	DiscMass        float64
}

// DefaultOptions returns the stock layout options.
func DefaultOptions() Options {
	return Options{
		Palette:         body.DefaultPalette(),
		Cabinet:         false,
		DiscRestitution: 0.9,
		DiscMass:        1,
	}
}

// Slot is the on-screen rectangle of one name overlay element.
type Slot struct {
	Index    int
	X, Y     float64
	Width    float64
	Height   float64
	FontSize float64
	Padding  float64
}

// Layout is the output of one layout pass.
type Layout struct {
	Width, Height float64

	Scale float64 // s
	Left  float64 // x of the first peg column
	Top   float64 // y of the first peg row

	Bodies []body.Descriptor
	Slots  []Slot
}

// Build computes the full table for a viewport.
func Build(width, height float64, opts Options) (*Layout, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("invalid viewport %vx%v", width, height)
	}

	s := height * ScaleFactor
	l := &Layout{
		Width:  width,
		Height: height,
		Scale:  s,
		Left:   width/2 - s*4.5,
		Top:    2 * s,
	}
	pal := opts.Palette

	if opts.Cabinet {
		cab, err := cabinet(pal, l.CabinetOffset())
		if err != nil {
			return nil, err
		}
		l.Bodies = append(l.Bodies, cab...)
	}

	l.Bodies = append(l.Bodies, l.pegs(pal)...)
	l.Bodies = append(l.Bodies, l.rails(pal)...)
	l.Bodies = append(l.Bodies, body.Rect("right wall", width/2+s*5.6, 9*s, s, 14*s, pal.Divider))
	l.Bodies = append(l.Bodies, l.deflector(pal))
	l.Bodies = append(l.Bodies, l.shelf(pal)...)
	l.Bodies = append(l.Bodies, l.sensors(pal)...)
	l.Bodies = append(l.Bodies, l.edges(pal)...)
	l.Bodies = append(l.Bodies, l.disc(opts))

	l.Slots = l.slots()
	return l, nil
}

func (l *Layout) pegs(pal body.Palette) []body.Descriptor {
	s := l.Scale
	out := make([]body.Descriptor, 0, PegCount())
	index := 0
	for row := 0; row < PegRows; row++ {
		cols := PegColsEven
		offset := 0.0
		if row%2 == 1 {
			cols = PegColsOdd
			offset = s / 2
		}
		y := l.Top + s*float64(row)
		for col := 0; col < cols; col++ {
			x := l.Left + s*float64(col) + offset
			out = append(out, body.Peg(x, y, s/12, index, pal))
			index++
		}
	}
	return out
}

func (l *Layout) rails(pal body.Palette) []body.Descriptor {
	s := l.Scale
	part := geom.Scale(geom.MustParsePath(railPath), s)

	left := make([]geom.Vec, RailParts)
	right := make([]geom.Vec, RailParts)
	for i := 0; i < RailParts; i++ {
		y := s + 2*s*float64(i+1)
		left[i] = geom.Vec{X: l.Width/2 - s*5.75, Y: y}
		right[i] = geom.Vec{X: l.Width/2 + s*3.75, Y: y}
	}

	return []body.Descriptor{
		body.Compound("left rail", left, part, 0, pal.Shelf),
		body.Compound("right rail", right, part, math.Pi, pal.Shelf),
	}
}

func (l *Layout) deflector(pal body.Palette) body.Descriptor {
	verts := geom.Translate(geom.Scale(geom.MustParsePath(deflectorPath), l.Scale), geom.Vec{X: l.Width / 2})
	c := geom.Centroid(verts)
	return body.Polygon("deflector", c.X, c.Y, verts, pal.Shelf)
}

func (l *Layout) shelf(pal body.Palette) []body.Descriptor {
	s := l.Scale
	cx := l.Width / 2
	out := []body.Descriptor{
		body.Rect("shelf", cx, 16.2*s, 12.28*s, 2.5*s, pal.Shelf),
		body.Rect("shelf left", cx-s*5.89, 14.5*s, s/2, s, pal.Shelf),
		body.Rect("shelf right", cx+s*3.89, 14.5*s, s/2, s, pal.Shelf),
	}
	for i := 0; i < Separators; i++ {
		out = append(out, body.Rect("separator", l.Left+s*float64(i), 14.8*s, s/15, s/2, pal.Shelf))
	}
	return out
}

func (l *Layout) sensors(pal body.Palette) []body.Descriptor {
	s := l.Scale
	out := make([]body.Descriptor, SensorCount)
	for i := range out {
		out[i] = body.Sensor(l.Left-s/2+s*float64(i), 14.6*s, s*0.8, s*0.7, i, pal)
	}
	return out
}

// edges keeps the disc inside the viewport.
func (l *Layout) edges(pal body.Palette) []body.Descriptor {
	w, h := l.Width, l.Height
	return []body.Descriptor{
		body.Rect("top edge", w/2, -1, w, 1, pal.Edge),
		body.Rect("left edge", -1, h/2, 1, h, pal.Edge),
		body.Rect("right edge", w+1, h/2, 1, h, pal.Edge),
		body.Rect("bottom edge", w/2, h+1, w, 1, pal.Edge),
	}
}

func (l *Layout) disc(opts Options) body.Descriptor {
	s := l.Scale
	return body.Disc(l.Width/2+4.6*s, 14.5*s, s*0.357, opts.DiscRestitution, opts.DiscMass, opts.Palette)
}

func (l *Layout) slots() []Slot {
	s := l.Scale
	out := make([]Slot, SensorCount)
	for i := range out {
		out[i] = Slot{
			Index:    i,
			X:        l.Left - s*1.525 + s*float64(i),
			Y:        15.8 * s,
			Width:    1.6 * s,
			Height:   s * 0.325,
			FontSize: s / 3,
			Padding:  s / 4.5,
		}
	}
	return out
}

// BoardLeft is the x the plinko board does not reach past on the left.
func (l *Layout) BoardLeft() float64 {
	return l.Width/2 - boardHalfLeft*l.Scale
}

// CabinetOffset is the horizontal shift applied to the cabinet so its
// right boundary ends at BoardLeft. Wide viewports leave it at 0.
func (l *Layout) CabinetOffset() float64 {
	return min(0, l.BoardLeft()-cabinetRight)
}

// DiscStart returns the disc's spawn position.
func (l *Layout) DiscStart() geom.Vec {
	return l.disc(DefaultOptions()).Pos
}

// PegCount is the number of pegs in the grid.
func PegCount() int {
	even := (PegRows + 1) / 2
	odd := PegRows / 2
	return even*PegColsEven + odd*PegColsOdd
}

// Filter returns the bodies whose tag kind is k, in layout order.
func (l *Layout) Filter(k body.Kind) []body.Descriptor {
	var out []body.Descriptor
	for _, d := range l.Bodies {
		if d.Tag.Kind == k {
			out = append(out, d)
		}
	}
	return out
}
