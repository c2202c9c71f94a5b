package camera

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestNewIdentity(t *testing.T) {
	cam := New(500, 800, 500, 800)
	if !cam.Identity() {
		t.Errorf("expected identity fit, got zoom %f offset (%f, %f)", cam.Zoom, cam.OffsetX, cam.OffsetY)
	}
	sx, sy := cam.WorldToScreen(120, 340)
	if sx != 120 || sy != 340 {
		t.Errorf("expected (120, 340), got (%f, %f)", sx, sy)
	}
}

func TestResizeLetterboxes(t *testing.T) {
	cam := New(500, 800, 500, 800)
	cam.Resize(1920, 1080)

	// height limits: 1080/800
	if !approx(cam.Zoom, 1.35) {
		t.Fatalf("expected zoom 1.35, got %f", cam.Zoom)
	}
	if !approx(cam.OffsetY, 0) {
		t.Errorf("expected no vertical bar, got %f", cam.OffsetY)
	}
	if !approx(cam.OffsetX, (1920-500*1.35)/2) {
		t.Errorf("unexpected horizontal bar %f", cam.OffsetX)
	}

	sx, sy := cam.WorldToScreen(250, 400)
	if !approx(sx, 960) || !approx(sy, 540) {
		t.Errorf("world centre should map to screen centre, got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1024, 768, 500, 800)
	for _, p := range [][2]float32{{0, 0}, {500, 800}, {123.5, 456.25}} {
		sx, sy := cam.WorldToScreen(p[0], p[1])
		wx, wy := cam.ScreenToWorld(sx, sy)
		if !approx(wx, p[0]) || !approx(wy, p[1]) {
			t.Errorf("roundtrip of %v gave (%f, %f)", p, wx, wy)
		}
	}
}

func TestContains(t *testing.T) {
	cam := New(1600, 800, 500, 800)
	if cam.Contains(10, 400) {
		t.Error("left letterbox bar should be outside the world")
	}
	if !cam.Contains(800, 400) {
		t.Error("screen centre should be inside the world")
	}
}

func TestDegenerateViewport(t *testing.T) {
	cam := New(0, 0, 500, 800)
	if cam.Zoom != 1 {
		t.Errorf("expected zoom 1 for an empty viewport, got %f", cam.Zoom)
	}
}
