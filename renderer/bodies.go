// Package renderer draws table bodies and effects with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plinko/body"
	"github.com/pthm-cable/plinko/camera"
	"github.com/pthm-cable/plinko/components"
	"github.com/pthm-cable/plinko/geom"
)

// BodyRenderer draws descriptors in their current pose and style.
type BodyRenderer struct {
	palette *Palette
	cam     *camera.Camera

	// Outlines draws every body's outline, sensors included
	Outlines bool
}

// NewBodyRenderer creates a renderer drawing through cam.
func NewBodyRenderer(p *Palette, cam *camera.Camera) *BodyRenderer {
	return &BodyRenderer{palette: p, cam: cam}
}

// Draw renders one body.
func (r *BodyRenderer) Draw(shape *components.Shape, pose *components.Pose, style *components.Style) {
	d := &shape.Desc
	fill := r.palette.Color(style.Fill, style.Opacity)
	stroke := r.palette.Color(style.Stroke, style.Opacity)

	switch d.Shape {
	case body.ShapeCircle:
		x, y := r.cam.WorldToScreen(float32(pose.X), float32(pose.Y))
		rad := float32(d.Radius) * r.cam.Zoom
		if fill.A > 0 {
			rl.DrawCircleV(rl.Vector2{X: x, Y: y}, rad, fill)
		}
		if d.Tag.Kind == body.KindBall {
			// spoke shows the disc's spin
			dx := float32(math.Cos(pose.Angle)) * rad
			dy := float32(math.Sin(pose.Angle)) * rad
			rl.DrawLineV(rl.Vector2{X: x, Y: y}, rl.Vector2{X: x + dx, Y: y + dy}, rl.Fade(rl.White, 0.6))
		}
		if r.Outlines || style.LineWidth > 0 {
			rl.DrawCircleLinesV(rl.Vector2{X: x, Y: y}, rad, r.outline(stroke, fill))
		}

	case body.ShapeRect:
		w := float32(d.Width) * r.cam.Zoom
		h := float32(d.Height) * r.cam.Zoom
		x, y := r.cam.WorldToScreen(float32(pose.X), float32(pose.Y))
		rect := rl.Rectangle{X: x, Y: y, Width: w, Height: h}
		if fill.A > 0 {
			rl.DrawRectanglePro(rect, rl.Vector2{X: w / 2, Y: h / 2}, float32(pose.Angle*180/math.Pi), fill)
		}
		if r.Outlines || style.LineWidth > 0 {
			r.drawPolyline(geom.RectCorners(geom.Vec{X: pose.X, Y: pose.Y}, d.Width, d.Height, pose.Angle), r.outline(stroke, fill), style.LineWidth)
		}

	case body.ShapePolygon, body.ShapeCompound:
		for _, part := range d.Parts {
			if fill.A > 0 {
				r.fillPolygon(part, fill)
			}
			if r.Outlines || style.LineWidth > 0 {
				r.drawPolyline(part, r.outline(stroke, fill), style.LineWidth)
			}
		}
	}
}

// outline picks the stroke colour, falling back to the fill.
func (r *BodyRenderer) outline(stroke, fill rl.Color) rl.Color {
	if stroke.A > 0 {
		return stroke
	}
	if fill.A > 0 {
		return fill
	}
	return rl.Magenta
}

// fillPolygon fills a simple polygon, convex or not, from its ear-clipped
// triangles.
func (r *BodyRenderer) fillPolygon(verts []geom.Vec, c rl.Color) {
	// positive area winds clockwise on a y-down screen; raylib wants the reverse
	cw := geom.SignedArea(verts) > 0
	for _, tri := range geom.Triangulate(verts) {
		var pts [3]rl.Vector2
		for i, vi := range tri {
			x, y := r.cam.WorldToScreen(float32(verts[vi].X), float32(verts[vi].Y))
			pts[i] = rl.Vector2{X: x, Y: y}
		}
		if cw {
			pts[1], pts[2] = pts[2], pts[1]
		}
		rl.DrawTriangle(pts[0], pts[1], pts[2], c)
	}
}

func (r *BodyRenderer) drawPolyline(verts []geom.Vec, c rl.Color, width float64) {
	thick := float32(max(width, 1)) * r.cam.Zoom
	for i := range verts {
		a, b := verts[i], verts[(i+1)%len(verts)]
		ax, ay := r.cam.WorldToScreen(float32(a.X), float32(a.Y))
		bx, by := r.cam.WorldToScreen(float32(b.X), float32(b.Y))
		rl.DrawLineEx(rl.Vector2{X: ax, Y: ay}, rl.Vector2{X: bx, Y: by}, thick, c)
	}
}
