package layout

import (
	"fmt"

	"github.com/pthm-cable/plinko/body"
)

// Fixed cabinet outlines in cabinet units (a 500×800 table).
const (
	pathDome = "0 0 0 250 19 250 20 231.9 25.7 196.1 36.9 161.7 53.3 129.5 74.6 100.2 100.2 74.6 " +
		"129.5 53.3 161.7 36.9 196.1 25.7 231.9 20 268.1 20 303.9 25.7 338.3 36.9 370.5 53.3 " +
		"399.8 74.6 425.4 100.2 446.7 129.5 463.1 161.7 474.3 196.1 480 231.9 480 250 500 250 500 0 0 0"
	pathDropLeft   = "0 0 20 0 70 100 20 150 0 150 0 0"
	pathDropRight  = "50 0 68 0 68 150 50 150 0 100 50 0"
	pathApronLeft  = "0 0 180 120 0 120 0 0"
	pathApronRight = "180 0 180 120 0 120 180 0"

	flipperAngle = 0.96
	resetY       = 781

	// right face of the right boundary
	cabinetRight = 580.0
)

type pathSpec struct {
	name string
	x, y float64
	path string
}

// cabinet returns the pinball parts: outer boundary, dome, inner pegs,
// bumpers, lane walls, drops, slingshots, flipper walls, aprons and the
// reset zones, shifted right by dx.
func cabinet(pal body.Palette, dx float64) ([]body.Descriptor, error) {
	out := []body.Descriptor{
		body.Boundary(250, -30, 500, 100, pal),
		body.Boundary(250, 830, 500, 100, pal),
		body.Boundary(-30, 400, 100, 800, pal),
		body.Boundary(530, 400, 100, 800, pal),
	}

	paths := []pathSpec{
		{"dome", 239, 86, pathDome},
		{"drop left", 25, 360, pathDropLeft},
		{"drop right", 425, 360, pathDropRight},
		{"apron left", 79, 740, pathApronLeft},
		{"apron right", 371, 740, pathApronRight},
	}
	for _, p := range paths {
		d, err := body.Path(p.x+dx, p.y, p.path, pal.Outer)
		if err != nil {
			return nil, fmt.Errorf("cabinet %s: %w", p.name, err)
		}
		d.Label = p.name
		out = append(out, d)
	}

	out = append(out,
		// inner pegs (left, mid, right)
		body.Wall(140, 140, 20, 40, 0, pal.Inner),
		body.Wall(225, 140, 20, 40, 0, pal.Inner),
		body.Wall(310, 140, 20, 40, 0, pal.Inner),

		// top bumpers (left, mid, right)
		body.Bumper(105, 250, pal),
		body.Bumper(225, 250, pal),
		body.Bumper(345, 250, pal),

		// bottom bumpers (left, right)
		body.Bumper(165, 340, pal),
		body.Bumper(285, 340, pal),

		// shooter lane wall
		body.Wall(440, 520, 20, 560, 0, pal.Outer),

		// slingshots (left, right)
		body.Wall(120, 510, 20, 120, 0, pal.Inner),
		body.Wall(330, 510, 20, 120, 0, pal.Inner),

		// out lane walls (left, right)
		body.Wall(60, 529, 20, 160, 0, pal.Inner),
		body.Wall(390, 529, 20, 160, 0, pal.Inner),

		// flipper walls (left, right)
		body.Wall(93, 624, 20, 98, -flipperAngle, pal.Inner),
		body.Wall(357, 624, 20, 98, flipperAngle, pal.Inner),

		// reset zones (center, right)
		body.Reset(225, resetY, 50, pal),
		body.Reset(465, resetY, 30, pal),
	)
	if dx != 0 {
		for i := range out {
			if out[i].Shape != body.ShapePolygon {
				out[i].Pos.X += dx
			}
		}
	}
	return out, nil
}
