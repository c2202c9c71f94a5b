package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plinko/camera"
	"github.com/pthm-cable/plinko/overlay"
)

// NamePanel draws the name slots under the sensors and the score label.
type NamePanel struct {
	cam       *camera.Camera
	text      rl.Color
	winner    rl.Color
	winnerBg  rl.Color
	scoreText rl.Color
}

// NewNamePanel creates a panel. winner is the highlight colour of a
// winning slot.
func NewNamePanel(cam *camera.Camera, winner rl.Color) *NamePanel {
	return &NamePanel{
		cam:       cam,
		text:      rl.Black,
		winner:    rl.Black,
		winnerBg:  winner,
		scoreText: rl.White,
	}
}

// Draw renders every slot. Names are centred in their rect and shrunk
// to fit its width.
func (p *NamePanel) Draw(slots []overlay.Slot) {
	for i := range slots {
		s := &slots[i]
		x, y := p.cam.WorldToScreen(float32(s.X), float32(s.Y))
		w := float32(s.Width) * p.cam.Zoom
		h := float32(s.Height) * p.cam.Zoom
		rect := rl.Rectangle{X: x, Y: y, Width: w, Height: h}

		color := p.text
		if s.Winner {
			rl.DrawRectangleRec(rect, p.winnerBg)
			color = p.winner
		}

		size := int32(float32(s.FontSize) * p.cam.Zoom)
		pad := float32(s.Padding) * p.cam.Zoom
		for size > 6 && float32(rl.MeasureText(s.Name, size)) > w-2*pad {
			size--
		}
		tw := float32(rl.MeasureText(s.Name, size))
		rl.DrawText(s.Name, int32(x+(w-tw)/2), int32(y+(h-float32(size))/2), size, color)
	}
}

// DrawScore renders the score label in the top-left corner of the table.
func (p *NamePanel) DrawScore(text string) {
	x, y := p.cam.WorldToScreen(10, 10)
	size := int32(24 * p.cam.Zoom)
	rl.DrawText(text, int32(x), int32(y), max(size, 10), p.scoreText)
}
