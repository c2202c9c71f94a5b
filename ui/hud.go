package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the HUD.
type HUDData struct {
	Tick     int32
	Speed    int
	FPS      int32
	Paused   bool
	Launches int
	Dragging bool
}

// HUD renders the heads-up display in the bottom-left corner.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData, screenHeight int32) {
	fs := h.renderer.Theme.FontSize
	y := screenHeight - 60

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d | Launches: %d", data.Tick, data.Speed, data.FPS, data.Launches),
		10, y, fs, rl.LightGray,
	)

	status := "Running"
	switch {
	case data.Paused:
		status = "PAUSED"
	case data.Dragging:
		status = "Dragging"
	}
	rl.DrawText(status, 10, y+16, fs, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-20, h.renderer.Theme.FontSize, rl.Gray)
}

// SlotHitsPanel shows how often each slot has been entered.
type SlotHitsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewSlotHitsPanel creates a panel at (x, y).
func NewSlotHitsPanel(x, y, width int32) *SlotHitsPanel {
	return &SlotHitsPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// Draw renders one bar per slot, labelled with the slot's name.
func (p *SlotHitsPanel) Draw(names []string, hits []int) {
	r := p.renderer
	most, total := 0, 0
	for _, h := range hits {
		most = max(most, h)
		total += h
	}

	height := int32(len(hits)+2)*r.Theme.LineHeight + 2*r.Theme.Padding
	r.DrawPanel(p.x, p.y, p.width, height)

	y := r.DrawSectionHeader(p.x+r.Theme.Padding, p.y+r.Theme.Padding, "Slot hits")
	for i, h := range hits {
		label := fmt.Sprintf("%d", i)
		if i < len(names) {
			label = names[i]
		}
		y = r.DrawBar(p.x+r.Theme.Padding, y, label, h, most, p.width-2*r.Theme.Padding)
	}
	r.DrawLabelValue(p.x+r.Theme.Padding, y, "Total", fmt.Sprintf("%d", total))
}
