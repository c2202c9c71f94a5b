package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plinko/geom"
	"github.com/pthm-cable/plinko/ui"
)

const maxStepsPerUpdate = 10

// handleInput processes keyboard, mouse and button input.
func (g *Game) handleInput() {
	v := g.view
	v.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.Launch()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.Respawn()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.TogglePause()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		g.changeSpeed(-1)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		g.changeSpeed(1)
	}

	v.overlays.HandleKeys()

	switch v.pending {
	case ui.ActionLaunch:
		g.Launch()
	case ui.ActionReset:
		g.Respawn()
	case ui.ActionPause:
		g.TogglePause()
	case ui.ActionFaster:
		g.changeSpeed(1)
	case ui.ActionSlower:
		g.changeSpeed(-1)
	case ui.ActionNone:
	}
	v.pending = ui.ActionNone

	g.handleDrag()
}

func (g *Game) changeSpeed(d int) {
	g.stepsPerUpdate = min(max(g.stepsPerUpdate+d, 1), maxStepsPerUpdate)
}

// handleDrag grabs the disc under the pointer and drags it while the
// left button is held.
func (g *Game) handleDrag() {
	v := g.view
	mouse := rl.GetMousePosition()
	wx, wy := v.cam.ScreenToWorld(mouse.X, mouse.Y)
	p := geom.Vec{X: float64(wx), Y: float64(wy)}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !g.overControls(mouse) {
		g.phys.Grab(p)
	}
	if !g.phys.Dragging() {
		return
	}
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		g.phys.Drag(p, float64(rl.GetFrameTime()))
	} else {
		g.phys.Release()
	}
}

func (g *Game) overControls(mouse rl.Vector2) bool {
	v := g.view
	if !v.overlays.IsEnabled(ui.OverlayControls) {
		return false
	}
	return rl.CheckCollisionPointRec(mouse, v.controls.Bounds(v.screenW, v.overlays))
}
