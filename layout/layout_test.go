package layout

import (
	"math"
	"sort"
	"testing"

	"github.com/pthm-cable/plinko/body"
)

const eps = 1e-6

func mustBuild(t *testing.T, w, h float64, opts Options) *Layout {
	t.Helper()
	l, err := Build(w, h, opts)
	if err != nil {
		t.Fatalf("Build(%v, %v): %v", w, h, err)
	}
	return l
}

func TestBuildRejectsBadViewport(t *testing.T) {
	for _, vp := range [][2]float64{{0, 800}, {500, 0}, {-1, 10}, {math.NaN(), 10}, {10, math.Inf(1)}} {
		if _, err := Build(vp[0], vp[1], DefaultOptions()); err == nil {
			t.Errorf("expected error for viewport %v", vp)
		}
	}
}

func TestSensorsMatchSlots(t *testing.T) {
	for _, vp := range [][2]float64{{500, 800}, {1280, 720}, {320, 480}, {3840, 2160}, {1, 1}} {
		l := mustBuild(t, vp[0], vp[1], DefaultOptions())

		sensors := l.Filter(body.KindSensor)
		if len(sensors) != SensorCount {
			t.Fatalf("%v: expected %d sensors, got %d", vp, SensorCount, len(sensors))
		}
		if len(l.Slots) != SensorCount {
			t.Fatalf("%v: expected %d slots, got %d", vp, SensorCount, len(l.Slots))
		}

		seen := make(map[int]bool)
		for _, s := range sensors {
			if !s.Sensor || !s.Static {
				t.Errorf("%v: sensor %v must be static and non-colliding", vp, s.Tag)
			}
			seen[s.Tag.Index] = true
		}
		for _, slot := range l.Slots {
			if !seen[slot.Index] {
				t.Errorf("%v: slot %d has no sensor", vp, slot.Index)
			}
		}
		if len(seen) != SensorCount {
			t.Errorf("%v: sensor indices not unique: %v", vp, seen)
		}
	}
}

func TestPegGrid(t *testing.T) {
	l := mustBuild(t, 500, 800, DefaultOptions())
	pegs := l.Filter(body.KindPeg)
	if len(pegs) != PegCount() || PegCount() != 98 {
		t.Fatalf("expected 98 pegs, got %d (PegCount %d)", len(pegs), PegCount())
	}

	rows := make(map[int][]float64)
	for _, p := range pegs {
		row := int(math.Round((p.Pos.Y - l.Top) / l.Scale))
		rows[row] = append(rows[row], p.Pos.X)
	}
	if len(rows) != PegRows {
		t.Fatalf("expected %d rows, got %d", PegRows, len(rows))
	}
	for row := 0; row < PegRows; row++ {
		want := PegColsEven
		if row%2 == 1 {
			want = PegColsOdd
		}
		if len(rows[row]) != want {
			t.Errorf("row %d: expected %d pegs, got %d", row, want, len(rows[row]))
		}
	}
}

func TestExampleViewport500x800(t *testing.T) {
	l := mustBuild(t, 500, 800, DefaultOptions())

	if math.Abs(l.Scale-44) > eps {
		t.Fatalf("expected scale 44, got %v", l.Scale)
	}
	if math.Abs(l.Left-52) > eps || math.Abs(l.Top-88) > eps {
		t.Errorf("expected offsets (52, 88), got (%v, %v)", l.Left, l.Top)
	}

	var row0, row1 []float64
	for _, p := range l.Filter(body.KindPeg) {
		switch {
		case math.Abs(p.Pos.Y-88) < eps:
			row0 = append(row0, p.Pos.X)
		case math.Abs(p.Pos.Y-132) < eps:
			row1 = append(row1, p.Pos.X)
		}
	}
	if len(row0) != 8 || len(row1) != 7 {
		t.Fatalf("expected 8 and 7 pegs, got %d and %d", len(row0), len(row1))
	}
	sort.Float64s(row0)
	sort.Float64s(row1)
	if math.Abs(row0[0]-52) > eps {
		t.Errorf("row 0 should start at x=52, got %v", row0[0])
	}
	if math.Abs(row1[0]-(row0[0]+22)) > eps {
		t.Errorf("row 1 should be offset by s/2: %v vs %v", row1[0], row0[0])
	}

	for _, p := range l.Filter(body.KindPeg) {
		if math.Abs(p.Radius-44.0/12) > eps {
			t.Fatalf("expected peg radius s/12, got %v", p.Radius)
		}
	}
}

func TestSingleDisc(t *testing.T) {
	l := mustBuild(t, 500, 800, DefaultOptions())
	discs := l.Filter(body.KindBall)
	if len(discs) != 1 {
		t.Fatalf("expected one disc, got %d", len(discs))
	}
	d := discs[0]
	if d.Static {
		t.Error("disc must be dynamic")
	}
	if math.Abs(d.Pos.X-(250+4.6*44)) > eps || math.Abs(d.Pos.Y-14.5*44) > eps {
		t.Errorf("unexpected disc position %v", d.Pos)
	}
	if l.DiscStart() != d.Pos {
		t.Errorf("DiscStart %v != disc %v", l.DiscStart(), d.Pos)
	}
}

func TestSlotGeometry(t *testing.T) {
	l := mustBuild(t, 500, 800, DefaultOptions())
	s := l.Scale
	for i, slot := range l.Slots {
		if slot.Index != i {
			t.Errorf("slot %d has index %d", i, slot.Index)
		}
		wantX := l.Left - s*1.525 + s*float64(i)
		if math.Abs(slot.X-wantX) > eps || math.Abs(slot.Y-15.8*s) > eps {
			t.Errorf("slot %d at (%v,%v), want (%v,%v)", i, slot.X, slot.Y, wantX, 15.8*s)
		}
	}
}

func TestRailsMirrored(t *testing.T) {
	l := mustBuild(t, 500, 800, Options{Palette: body.DefaultPalette()})
	var rails []body.Descriptor
	for _, d := range l.Bodies {
		if d.Shape == body.ShapeCompound {
			rails = append(rails, d)
		}
	}
	if len(rails) != 2 {
		t.Fatalf("expected 2 rails, got %d", len(rails))
	}
	for _, r := range rails {
		if len(r.Parts) != RailParts {
			t.Errorf("%s: expected %d parts, got %d", r.Label, RailParts, len(r.Parts))
		}
	}
	if rails[0].Angle != 0 || math.Abs(rails[1].Angle-math.Pi) > eps {
		t.Errorf("unexpected rail angles %v %v", rails[0].Angle, rails[1].Angle)
	}
}

func TestCabinetOptional(t *testing.T) {
	without := mustBuild(t, 500, 800, DefaultOptions())
	opts := DefaultOptions()
	opts.Cabinet = true
	with := mustBuild(t, 500, 800, opts)

	if got := len(with.Filter(body.KindBumper)); got != 5 {
		t.Errorf("expected 5 bumpers with cabinet, got %d", got)
	}
	if got := len(with.Filter(body.KindReset)); got != 2 {
		t.Errorf("expected 2 reset zones with cabinet, got %d", got)
	}
	if len(without.Filter(body.KindBumper)) != 0 || len(without.Filter(body.KindReset)) != 0 {
		t.Error("cabinet parts present with Cabinet=false")
	}
	if len(with.Bodies)-len(without.Bodies) != 26 {
		t.Errorf("expected 26 cabinet bodies, got %d", len(with.Bodies)-len(without.Bodies))
	}
}

func TestScaleIsShared(t *testing.T) {
	// Doubling the viewport doubles every plinko coordinate.
	opts := DefaultOptions()
	opts.Cabinet = false
	a := mustBuild(t, 400, 600, opts)
	b := mustBuild(t, 800, 1200, opts)
	if len(a.Bodies) != len(b.Bodies) {
		t.Fatalf("body counts differ: %d vs %d", len(a.Bodies), len(b.Bodies))
	}
	for i := range a.Bodies {
		pa, pb := a.Bodies[i].Pos, b.Bodies[i].Pos
		if math.Abs(pb.X-2*pa.X) > 1e-6 || math.Abs(pb.Y-2*pa.Y) > 1e-6 {
			// viewport edges sit one unit outside the screen and do not scale
			if a.Bodies[i].Label == "top edge" || a.Bodies[i].Label == "left edge" ||
				a.Bodies[i].Label == "right edge" || a.Bodies[i].Label == "bottom edge" {
				continue
			}
			t.Errorf("%s: %v does not scale to %v", a.Bodies[i].Label, pa, pb)
		}
	}
}

// maxX returns the rightmost extent of a body.
func maxX(d body.Descriptor) float64 {
	if d.Shape == body.ShapeCircle {
		return d.Pos.X + d.Radius
	}
	right := math.Inf(-1)
	for _, v := range d.Vertices() {
		right = math.Max(right, v.X)
	}
	return right
}

func TestCabinetClearsBoard(t *testing.T) {
	opts := DefaultOptions()
	opts.Cabinet = true
	for _, vp := range [][2]float64{{500, 800}, {1280, 720}, {1920, 1080}} {
		l := mustBuild(t, vp[0], vp[1], opts)
		cabinetBodies := len(l.Bodies) - len(mustBuild(t, vp[0], vp[1], DefaultOptions()).Bodies)
		for _, d := range l.Bodies[:cabinetBodies] {
			if x := maxX(d); x > l.BoardLeft()+eps {
				t.Errorf("%v: cabinet %s reaches x=%v, board starts at %v", vp, d.Label, x, l.BoardLeft())
			}
		}
		disc := l.Filter(body.KindBall)[0]
		if disc.Pos.X-disc.Radius < l.BoardLeft() {
			t.Errorf("%v: disc left of the board", vp)
		}
	}

	// wide enough for both: the cabinet keeps its own coordinates
	wide := mustBuild(t, 2560, 1080, opts)
	if wide.CabinetOffset() != 0 {
		t.Errorf("expected no cabinet shift at 2560x1080, got %v", wide.CabinetOffset())
	}
}

func TestDeflectorCapsLaunchLane(t *testing.T) {
	l := mustBuild(t, 500, 800, DefaultOptions())
	var defl *body.Descriptor
	for i := range l.Bodies {
		if l.Bodies[i].Label == "deflector" {
			defl = &l.Bodies[i]
		}
	}
	if defl == nil {
		t.Fatal("no deflector")
	}

	disc := l.Filter(body.KindBall)[0]
	part := defl.Parts[0]
	lo, hi := math.Inf(1), math.Inf(-1)
	bottom := math.Inf(-1)
	for _, v := range part {
		lo, hi = math.Min(lo, v.X), math.Max(hi, v.X)
		bottom = math.Max(bottom, v.Y)
	}
	// the disc rises into the slope, and the turned disc clears the rail tops
	if disc.Pos.X-disc.Radius < lo || disc.Pos.X+disc.Radius > hi {
		t.Errorf("lane %v..%v does not cover the disc at %v", lo, hi, disc.Pos.X)
	}
	if bottom+2*disc.Radius > l.Top {
		t.Errorf("deflector reaches y=%v, too low for the disc to pass above the rails", bottom)
	}
	if !defl.Static || defl.Sensor {
		t.Error("deflector must be a solid static body")
	}
}
