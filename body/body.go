// Package body defines body descriptors and the factory functions that
// build them. Descriptors are inert values; registering them with the
// physics world is done elsewhere.
package body

import (
	"fmt"

	"github.com/pthm-cable/plinko/geom"
)

// Kind classifies a body for collision routing.
type Kind uint8

const (
	KindWall   Kind = iota // Boundaries, rails, shelves and other inert statics
	KindPeg                // Plinko pegs: light up and score on contact
	KindBumper             // Round repelling bodies
	KindSensor             // Non-colliding slot detectors under the shelf
	KindReset              // Contact relaunches the disc
	KindBall               // The movable disc
)

var kindNames = [...]string{
	KindWall:   "wall",
	KindPeg:    "peg",
	KindBumper: "bumper",
	KindSensor: "sensor",
	KindReset:  "reset",
	KindBall:   "ball",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// NoIndex marks a tag that does not address a slot.
const NoIndex = -1

// Tag identifies what a body is for the collision router.
// Index is the sensor slot for KindSensor and the grid position for
// KindPeg; NoIndex otherwise.
type Tag struct {
	Kind  Kind
	Index int
}

func (t Tag) String() string {
	if t.Index == NoIndex {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s[%d]", t.Kind, t.Index)
}

// ShapeType selects which geometry fields of a Descriptor are meaningful.
type ShapeType uint8

const (
	ShapeCircle   ShapeType = iota // Pos, Radius
	ShapeRect                      // Pos, Width, Height, Angle, Chamfer
	ShapePolygon                   // Parts[0] in world space
	ShapeCompound                  // Parts, moved as one rigid unit
)

// Material holds the physical response parameters.
type Material struct {
	Restitution float64
	Friction    float64
	Mass        float64 // only used by dynamic bodies
}

// Style is the visual appearance of a body. Colours are hex strings.
type Style struct {
	Fill      string
	Stroke    string
	LineWidth float64
	Opacity   float64
}

// Descriptor fully describes one body before registration.
type Descriptor struct {
	Label string
	Shape ShapeType

	Pos     geom.Vec
	Width   float64
	Height  float64
	Radius  float64
	Angle   float64
	Chamfer float64
	Parts   [][]geom.Vec

	Static bool
	Sensor bool

	Material Material
	Tag      Tag
	Style    Style
}

// Vertices returns every polygon vertex of the body in world space.
// Circles return nothing; rectangles return their corners.
func (d Descriptor) Vertices() []geom.Vec {
	switch d.Shape {
	case ShapeRect:
		return geom.RectCorners(d.Pos, d.Width, d.Height, d.Angle)
	case ShapePolygon, ShapeCompound:
		var out []geom.Vec
		for _, p := range d.Parts {
			out = append(out, p...)
		}
		return out
	}
	return nil
}
