package ui

import (
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Action is a request raised by the controls panel this frame.
type Action uint8

const (
	ActionNone Action = iota
	ActionLaunch
	ActionReset
	ActionPause
	ActionFaster
	ActionSlower
)

// ControlsPanel renders the raygui buttons and overlay checkboxes in the
// top-right corner.
type ControlsPanel struct {
	renderer *Renderer
	width    int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(width int32) *ControlsPanel {
	return &ControlsPanel{renderer: NewRenderer(), width: width}
}

// Draw renders the panel at the right edge of a screen screenWidth wide
// and returns the action of the button pressed, if any. Checkboxes update
// the overlay registry directly.
func (c *ControlsPanel) Draw(screenWidth int32, paused bool, overlays *OverlayRegistry) Action {
	r := c.renderer
	pad := float32(r.Theme.Padding)
	x := float32(screenWidth-c.width) - pad
	y := pad
	w := float32(c.width)
	half := (w - pad) / 2

	r.DrawPanel(int32(x), int32(y), c.width, int32(c.height(overlays)+pad))

	bx := x + pad/2
	by := y + pad
	bw := half - pad/2
	action := ActionNone

	if gui.Button(rl.Rectangle{X: bx, Y: by, Width: bw, Height: 30}, "Launch") {
		action = ActionLaunch
	}
	if gui.Button(rl.Rectangle{X: bx + half, Y: by, Width: bw, Height: 30}, "Reset") {
		action = ActionReset
	}
	by += 30 + pad/2

	pauseText := "Pause"
	if paused {
		pauseText = "Resume"
	}
	if gui.Button(rl.Rectangle{X: bx, Y: by, Width: bw, Height: 30}, pauseText) {
		action = ActionPause
	}
	third := (bw - pad/2) / 2
	if gui.Button(rl.Rectangle{X: bx + half, Y: by, Width: third, Height: 30}, "-") {
		action = ActionSlower
	}
	if gui.Button(rl.Rectangle{X: bx + half + third + pad/2, Y: by, Width: third, Height: 30}, "+") {
		action = ActionFaster
	}
	by += 30 + pad

	for _, category := range overlays.Categories() {
		by = float32(r.DrawSectionHeader(int32(bx), int32(by), strings.ToUpper(category)))
		for _, desc := range overlays.InCategory(category) {
			label := desc.Name + " [" + desc.KeyLabel + "]"
			on := overlays.IsEnabled(desc.ID)
			if next := gui.CheckBox(rl.Rectangle{X: bx, Y: by, Width: 14, Height: 14}, label, on); next != on {
				overlays.SetEnabled(desc.ID, next)
			}
			by += 20
		}
	}

	return action
}

// height is the panel height without the bottom padding: two button rows,
// then a header per category and a row per overlay.
func (c *ControlsPanel) height(overlays *OverlayRegistry) float32 {
	pad := float32(c.renderer.Theme.Padding)
	headers := float32(len(overlays.Categories())) * float32(c.renderer.Theme.LineHeight)
	return 2*30 + pad*3 + headers + float32(len(overlays.All()))*20
}

// Bounds returns the panel's screen rectangle, so pointer input over the
// panel is not taken as a drag on the table.
func (c *ControlsPanel) Bounds(screenWidth int32, overlays *OverlayRegistry) rl.Rectangle {
	pad := float32(c.renderer.Theme.Padding)
	return rl.Rectangle{
		X:      float32(screenWidth-c.width) - pad,
		Y:      pad,
		Width:  float32(c.width),
		Height: c.height(overlays) + pad,
	}
}
