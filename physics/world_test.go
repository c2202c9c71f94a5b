package physics

import (
	"math"
	"testing"

	"github.com/pthm-cable/plinko/body"
	"github.com/pthm-cable/plinko/contact"
	"github.com/pthm-cable/plinko/geom"
)

const dt = 1.0 / 60.0

func testWorld(t *testing.T) *World {
	t.Helper()
	return New(Config{Gravity: 1000, Iterations: 10, Substeps: 4})
}

func mustAdd(t *testing.T, w *World, id int, d body.Descriptor) {
	t.Helper()
	if err := w.Add(id, d); err != nil {
		t.Fatalf("Add(%d, %s): %v", id, d.Label, err)
	}
}

// run steps the world and collects every pair reported.
func run(w *World, steps int) (starts, ends []contact.Pair) {
	for i := 0; i < steps; i++ {
		b := w.Step(dt)
		starts = append(starts, b.Start...)
		ends = append(ends, b.End...)
	}
	return starts, ends
}

func involves(pairs []contact.Pair, id int, kind body.Kind) bool {
	for _, p := range pairs {
		for _, r := range []contact.Ref{p.A, p.B} {
			if r.ID == id && r.Tag.Kind == kind {
				return true
			}
		}
	}
	return false
}

func TestDiscHitsPeg(t *testing.T) {
	w := testWorld(t)
	pal := body.DefaultPalette()
	mustAdd(t, w, 7, body.Peg(0, 100, 4, 0, pal))
	mustAdd(t, w, 1, body.Disc(0, 0, 10, 0.9, 1, pal))

	starts, _ := run(w, 60)
	if !involves(starts, 7, body.KindPeg) {
		t.Fatalf("expected a start pair with the peg, got %v", starts)
	}
	if !involves(starts, 1, body.KindBall) {
		t.Errorf("expected the disc in the start pair, got %v", starts)
	}
}

func TestSensorReportsEnterAndExit(t *testing.T) {
	w := testWorld(t)
	pal := body.DefaultPalette()
	mustAdd(t, w, 3, body.Sensor(0, 100, 60, 20, 4, pal))
	mustAdd(t, w, 1, body.Disc(0, 0, 10, 0.9, 1, pal))

	starts, ends := run(w, 90)
	if !involves(starts, 3, body.KindSensor) {
		t.Errorf("expected sensor enter, got %v", starts)
	}
	if !involves(ends, 3, body.KindSensor) {
		t.Errorf("expected sensor exit, got %v", ends)
	}
	// sensors do not stop the disc
	if w.BallPosition().Y <= 120 {
		t.Errorf("disc should fall through the sensor, at %v", w.BallPosition())
	}
}

func TestShelfStopsDisc(t *testing.T) {
	w := testWorld(t)
	pal := body.DefaultPalette()
	mustAdd(t, w, 2, body.Rect("shelf", 0, 100, 200, 20, pal.Shelf))
	mustAdd(t, w, 1, body.Disc(0, 0, 10, 0, 1, pal))

	run(w, 180)
	if y := w.BallPosition().Y; y > 90.5 {
		t.Errorf("disc should rest on the shelf, at y=%v", y)
	}
}

func TestSecondDiscRejected(t *testing.T) {
	w := testWorld(t)
	pal := body.DefaultPalette()
	mustAdd(t, w, 1, body.Disc(0, 0, 10, 0.9, 1, pal))
	if err := w.Add(2, body.Disc(50, 0, 10, 0.9, 1, pal)); err == nil {
		t.Error("expected error registering a second disc")
	}
}

func TestBadDescriptorsRejected(t *testing.T) {
	w := testWorld(t)
	pal := body.DefaultPalette()
	bad := []body.Descriptor{
		body.Rect("flat", 0, 0, 0, 10, pal.Shelf),
		body.Peg(0, 0, 0, 0, pal),
		{Label: "sliver", Shape: body.ShapePolygon, Static: true, Parts: [][]geom.Vec{{{X: 0, Y: 0}, {X: 1, Y: 1}}}},
	}
	for i, d := range bad {
		if err := w.Add(i, d); err == nil {
			t.Errorf("%s: expected error", d.Label)
		}
	}
}

func TestLaunchAndRespawn(t *testing.T) {
	w := New(Config{Gravity: 0, Substeps: 1})
	pal := body.DefaultPalette()
	mustAdd(t, w, 1, body.Disc(10, 20, 5, 0.9, 1, pal))

	w.Launch(600)
	w.Step(dt)
	if y := w.BallPosition().Y; y >= 20 {
		t.Fatalf("launched disc should move up, at y=%v", y)
	}
	if math.Abs(w.BallSpeed()-600) > 1e-6 {
		t.Errorf("expected speed 600, got %v", w.BallSpeed())
	}

	w.Respawn()
	if p := w.BallPosition(); p.X != 10 || p.Y != 20 {
		t.Errorf("expected respawn at (10,20), got %v", p)
	}
	if w.BallSpeed() != 0 {
		t.Errorf("respawned disc should be at rest, speed %v", w.BallSpeed())
	}
}

func TestConcavePathUsesSegments(t *testing.T) {
	w := testWorld(t)
	dome, err := body.Path(239, 86, "0 0 0 250 19 250 20 231.9 100.2 74.6 231.9 20 268.1 20 399.8 74.6 480 231.9 480 250 500 250 500 0", "#495057")
	if err != nil {
		t.Fatal(err)
	}
	mustAdd(t, w, 1, dome)
	if n := w.ShapeCount(); n != len(dome.Parts[0]) {
		t.Errorf("expected %d segments, got %d shapes", len(dome.Parts[0]), n)
	}

	rail := body.Compound("rail", []geom.Vec{{X: 0, Y: 0}, {X: 0, Y: 10}}, geom.MustParsePath("0 0 1 0 2 2 1 4 0 4"), 0, "#ccc")
	mustAdd(t, w, 2, rail)
	if n := w.ShapeCount(); n != len(dome.Parts[0])+2 {
		t.Errorf("convex compound parts should add one shape each, got %d", n)
	}
}

func TestDragMovesDisc(t *testing.T) {
	w := New(Config{Gravity: 0, Substeps: 1})
	pal := body.DefaultPalette()
	mustAdd(t, w, 1, body.Disc(0, 0, 10, 0.9, 1, pal))

	if w.Grab(geom.Vec{X: 100, Y: 100}) {
		t.Fatal("grab far from the disc should miss")
	}
	if !w.Grab(geom.Vec{X: 2, Y: 0}) {
		t.Fatal("grab on the disc should hold it")
	}
	for i := 0; i < 30; i++ {
		w.Drag(geom.Vec{X: 2 + float64(i), Y: 0}, dt)
		w.Step(dt)
	}
	if x := w.BallPosition().X; x < 5 {
		t.Errorf("dragged disc should follow the pointer, at x=%v", x)
	}
	w.Release()
	if w.Dragging() {
		t.Error("release should drop the constraint")
	}
}
