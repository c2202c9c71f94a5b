// Layout preview tool - interactive table layout for any viewport size.
//
// Usage: go run ./cmd/layoutpreview
package main

import (
	"fmt"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plinko/body"
	"github.com/pthm-cable/plinko/camera"
	"github.com/pthm-cable/plinko/components"
	"github.com/pthm-cable/plinko/layout"
	"github.com/pthm-cable/plinko/renderer"
)

const (
	windowWidth  = 1100
	windowHeight = 760
	previewSize  = 700
	panelWidth   = windowWidth - previewSize - 40
)

// previewParams holds the layout inputs.
type previewParams struct {
	Width   float32
	Height  float32
	Cabinet bool
}

func defaultParams() previewParams {
	return previewParams{Width: 500, Height: 800}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Layout Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()
	pal := renderer.NewPalette()
	colors := body.DefaultPalette()

	var (
		lay      *layout.Layout
		buildErr error
		cam      *camera.Camera
		bodies   *renderer.BodyRenderer
		outlines bool
	)
	needsRebuild := true

	for !rl.WindowShouldClose() {
		if needsRebuild {
			opts := layout.DefaultOptions()
			opts.Cabinet = params.Cabinet
			lay, buildErr = layout.Build(float64(params.Width), float64(params.Height), opts)
			if buildErr == nil {
				cam = camera.New(previewSize, previewSize, float32(lay.Width), float32(lay.Height))
				cam.OffsetX += 10
				cam.OffsetY += 10
				bodies = renderer.NewBodyRenderer(pal, cam)
			}
			needsRebuild = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		rl.DrawRectangle(10, 10, previewSize, previewSize, rl.Black)

		if buildErr != nil {
			rl.DrawText(buildErr.Error(), 20, 20, 16, rl.Red)
		} else {
			bodies.Outlines = outlines
			x, y := cam.WorldToScreen(0, 0)
			rl.DrawRectangleV(rl.Vector2{X: x, Y: y},
				rl.Vector2{X: float32(lay.Width) * cam.Zoom, Y: float32(lay.Height) * cam.Zoom},
				pal.Color(colors.Background, 1))
			for id, d := range lay.Bodies {
				shape := components.Shape{ID: id, Desc: d}
				pose := components.Pose{X: d.Pos.X, Y: d.Pos.Y, Angle: d.Angle}
				style := components.NewStyle(d.Style)
				bodies.Draw(&shape, &pose, &style)
			}
			for _, s := range lay.Slots {
				sx, sy := cam.WorldToScreen(float32(s.X), float32(s.Y))
				rl.DrawRectangleLinesEx(rl.Rectangle{X: sx, Y: sy, Width: float32(s.Width) * cam.Zoom, Height: float32(s.Height) * cam.Zoom}, 1, rl.Yellow)
			}
		}

		// Control panel
		panelX := float32(previewSize + 30)
		panelY := float32(10)

		rl.DrawText("Layout Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		rl.DrawText("Viewport width", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newWidth := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"200", "1600",
			params.Width, 200, 1600,
		)
		rl.DrawText(fmt.Sprintf("%.0f", params.Width), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if float32(int(newWidth)) != params.Width {
			params.Width = float32(int(newWidth))
			needsRebuild = true
		}
		panelY += 35

		rl.DrawText("Viewport height", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newHeight := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"200", "1600",
			params.Height, 200, 1600,
		)
		rl.DrawText(fmt.Sprintf("%.0f", params.Height), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if float32(int(newHeight)) != params.Height {
			params.Height = float32(int(newHeight))
			needsRebuild = true
		}
		panelY += 35

		if next := gui.CheckBox(rl.Rectangle{X: panelX, Y: panelY, Width: 16, Height: 16}, "Cabinet", params.Cabinet); next != params.Cabinet {
			params.Cabinet = next
			needsRebuild = true
		}
		panelY += 25
		outlines = gui.CheckBox(rl.Rectangle{X: panelX, Y: panelY, Width: 16, Height: 16}, "Outlines", outlines)
		panelY += 35

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			needsRebuild = true
		}
		panelY += 50

		if buildErr == nil {
			stats := []string{
				fmt.Sprintf("Scale: %.2f", lay.Scale),
				fmt.Sprintf("Left: %.1f  Top: %.1f", lay.Left, lay.Top),
				fmt.Sprintf("Bodies: %d  Pegs: %d", len(lay.Bodies), len(lay.Filter(body.KindPeg))),
				fmt.Sprintf("Sensors: %d  Slots: %d", len(lay.Filter(body.KindSensor)), len(lay.Slots)),
			}
			for _, line := range stats {
				rl.DrawText(line, int32(panelX), int32(panelY), 16, rl.DarkGray)
				panelY += 20
			}
			panelY += 15
		}

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		yamlLines := configLines(params)
		for _, line := range yamlLines {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(strings.Join(yamlLines, "\n"))
		}

		rl.EndDrawing()
	}
}

func configLines(p previewParams) []string {
	return []string{
		"screen:",
		fmt.Sprintf("  width: %.0f", p.Width),
		fmt.Sprintf("  height: %.0f", p.Height),
		"layout:",
		fmt.Sprintf("  cabinet: %t", p.Cabinet),
	}
}
