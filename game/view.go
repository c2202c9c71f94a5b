package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plinko/body"
	"github.com/pthm-cable/plinko/camera"
	"github.com/pthm-cable/plinko/renderer"
	"github.com/pthm-cable/plinko/ui"
)

const controlsLegend = "Space: launch | R: respawn | P: pause | < >: speed | F11: fullscreen | drag the disc"

// view holds everything needed to draw and read input. It only exists in
// graphical mode.
type view struct {
	cam       *camera.Camera
	palette   *renderer.Palette
	bodies    *renderer.BodyRenderer
	particles *renderer.ParticleRenderer
	names     *ui.NamePanel
	hud       *ui.HUD
	slotHits  *ui.SlotHitsPanel
	controls  *ui.ControlsPanel
	overlays  *ui.OverlayRegistry

	background rl.Color
	letterbox  rl.Color

	screenW, screenH int32

	// action raised by a button during the last Draw
	pending ui.Action
}

func newView(g *Game) *view {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	cam := camera.New(float32(w), float32(h), float32(g.layout.Width), float32(g.layout.Height))
	pal := renderer.NewPalette()
	colors := g.cfg.Colors

	return &view{
		cam:     cam,
		palette: pal,
		bodies:  renderer.NewBodyRenderer(pal, cam),
		particles: renderer.NewParticleRenderer(cam, pal, colors.PegLit, colors.BumperLit,
			[]string{colors.Sensor, colors.Disc, colors.Paddle, colors.Inner, colors.Bumper}),
		names:      ui.NewNamePanel(cam, pal.Color(colors.SensorLit, 1)),
		hud:        ui.NewHUD(),
		slotHits:   ui.NewSlotHitsPanel(10, 50, 180),
		controls:   ui.NewControlsPanel(150),
		overlays:   ui.NewOverlayRegistry(),
		background: pal.Color(colors.Background, 1),
		letterbox:  rl.Black,
		screenW:    w,
		screenH:    h,
	}
}

// handleResize refits the camera when the window changes size.
func (v *view) handleResize() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if w == v.screenW && h == v.screenH {
		return
	}
	v.screenW, v.screenH = w, h
	v.cam.Resize(float32(w), float32(h))
}

// checkColors rejects palettes the renderer cannot parse.
func checkColors(pal body.Palette) error {
	p := renderer.NewPalette()
	for name, c := range map[string]string{
		"background": pal.Background, "outer": pal.Outer, "inner": pal.Inner,
		"bumper": pal.Bumper, "bumper_lit": pal.BumperLit, "paddle": pal.Paddle,
		"pinball": pal.Pinball, "peg": pal.Peg, "peg_lit": pal.PegLit,
		"sensor": pal.Sensor, "sensor_lit": pal.SensorLit, "edge": pal.Edge,
		"reset": pal.Reset, "shelf": pal.Shelf, "divider": pal.Divider, "disc": pal.Disc,
	} {
		if _, err := p.Parse(c); err != nil {
			return fmt.Errorf("colors.%s: %w", name, err)
		}
	}
	return nil
}
