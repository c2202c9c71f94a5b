package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plinko/ui"
)

// Draw renders the table, the overlay and the HUD.
func (g *Game) Draw() {
	v := g.view
	v.bodies.Outlines = v.overlays.IsEnabled(ui.OverlayOutlines)

	rl.BeginDrawing()
	rl.ClearBackground(v.letterbox)

	// table area
	x, y := v.cam.WorldToScreen(0, 0)
	rl.DrawRectangleV(
		rl.Vector2{X: x, Y: y},
		rl.Vector2{X: float32(g.layout.Width) * v.cam.Zoom, Y: float32(g.layout.Height) * v.cam.Zoom},
		v.background,
	)

	g.drawStatics()
	if v.overlays.IsEnabled(ui.OverlayEffects) {
		v.particles.Draw(g.particles.Particles)
	}
	v.names.Draw(g.overlay.Slots())
	g.drawDisc()
	v.names.DrawScore(g.overlay.ScoreText())

	if v.overlays.IsEnabled(ui.OverlayHUD) {
		v.hud.Draw(ui.HUDData{
			Tick:     g.tick,
			Speed:    g.stepsPerUpdate,
			FPS:      rl.GetFPS(),
			Paused:   g.paused,
			Launches: g.launches,
			Dragging: g.phys.Dragging(),
		}, v.screenH)
		v.hud.DrawControls(v.screenH, controlsLegend)
	}
	if v.overlays.IsEnabled(ui.OverlaySlotHits) {
		hits := make([]int, g.router.Slots())
		for i := range hits {
			hits[i] = g.router.Hits(i)
		}
		v.slotHits.Draw(g.overlay.Names(), hits)
	}
	if v.overlays.IsEnabled(ui.OverlayControls) {
		v.pending = v.controls.Draw(v.screenW, g.paused, v.overlays)
	}

	rl.EndDrawing()
	g.perfCollector.RecordFrame()
}

// drawStatics draws every static body in layout order.
func (g *Game) drawStatics() {
	query := g.bodyFilter.Query()
	for query.Next() {
		if g.dynamicMap.Has(query.Entity()) {
			continue
		}
		shape, pose, style := query.Get()
		g.view.bodies.Draw(shape, pose, style)
	}
}

func (g *Game) drawDisc() {
	shape := g.shapeMap.Get(g.disc)
	pose := g.poseMap.Get(g.disc)
	style := g.styleMap.Get(g.disc)
	g.view.bodies.Draw(shape, pose, style)
}
