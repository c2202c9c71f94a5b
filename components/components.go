// Package components defines ECS components for the table's bodies.
package components

import "github.com/pthm-cable/plinko/body"

// Shape holds a body's registration ID and the descriptor it was built from.
// Geometry is in world units and never changes after spawn.
type Shape struct {
	ID   int
	Desc body.Descriptor
}

// Pose is the current placement of a body. Static bodies keep their
// spawn pose; the disc's pose is copied from the physics world each tick.
type Pose struct {
	X, Y  float64
	Angle float64
}

// Style holds the presentation state of a body.
type Style struct {
	Fill      string // current fill, "" for none
	Base      string // fill at spawn, restored on exit
	Stroke    string
	LineWidth float64
	Opacity   float64
	Lit       bool
}

// NewStyle copies the descriptor's style, remembering the spawn fill.
func NewStyle(s body.Style) Style {
	return Style{
		Fill:      s.Fill,
		Base:      s.Fill,
		Stroke:    s.Stroke,
		LineWidth: s.LineWidth,
		Opacity:   s.Opacity,
	}
}

// Light sets the fill to c.
func (s *Style) Light(c string) {
	s.Fill = c
	s.Lit = true
}

// Restore sets the fill to c, or back to the spawn fill if c is empty.
func (s *Style) Restore(c string) {
	if c == "" {
		c = s.Base
	}
	s.Fill = c
	s.Lit = false
}

// Dynamic marks the entity the physics world moves.
type Dynamic struct{}
