package overlay

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pthm-cable/plinko/layout"
	"github.com/pthm-cable/plinko/router"
)

func testRects(n int) []layout.Slot {
	rects := make([]layout.Slot, n)
	for i := range rects {
		rects[i] = layout.Slot{Index: i, X: float64(i) * 10, Width: 8, Height: 4}
	}
	return rects
}

func TestShuffleIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 100; trial++ {
		in := append([]string(nil), DefaultNames...)
		out := Shuffle(rng, in)

		got := append([]string(nil), out...)
		want := append([]string(nil), DefaultNames...)
		slices.Sort(got)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			t.Fatalf("trial %d: not a permutation: %v", trial, out)
		}
	}
}

func TestShuffleEdgeCases(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := Shuffle(rng, []int{}); len(got) != 0 {
		t.Errorf("empty: %v", got)
	}
	if got := Shuffle(rng, []int{7}); len(got) != 1 || got[0] != 7 {
		t.Errorf("single: %v", got)
	}
}

func TestShuffleUniform(t *testing.T) {
	// All 24 orderings of 4 elements should be about equally likely.
	const trials = 48000
	rng := rand.New(rand.NewSource(42))
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		p := Shuffle(rng, []string{"a", "b", "c", "d"})
		counts[strings.Join(p, "")]++
	}
	if len(counts) != 24 {
		t.Fatalf("expected 24 distinct permutations, got %d", len(counts))
	}

	obs := make([]float64, 0, 24)
	exp := make([]float64, 0, 24)
	for _, c := range counts {
		obs = append(obs, float64(c))
		exp = append(exp, trials/24.0)
	}
	chi := stat.ChiSquare(obs, exp)
	p := distuv.ChiSquared{K: 23}.Survival(chi)
	if p < 1e-4 {
		t.Errorf("shuffle looks biased: chi2=%.2f p=%.2g", chi, p)
	}
}

func TestNewBindsShuffledPrefix(t *testing.T) {
	o, err := New(DefaultNames, testRects(9), 9, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slots := o.Slots()
	if len(slots) != 9 {
		t.Fatalf("expected 9 slots, got %d", len(slots))
	}
	seen := make(map[string]bool)
	for i, s := range slots {
		if s.Index != i {
			t.Errorf("slot %d carries index %d", i, s.Index)
		}
		if !slices.Contains(DefaultNames, s.Name) {
			t.Errorf("slot %d has unknown name %q", i, s.Name)
		}
		if seen[s.Name] {
			t.Errorf("name %q bound twice", s.Name)
		}
		seen[s.Name] = true
		if s.Winner {
			t.Errorf("slot %d starts highlighted", i)
		}
	}
}

func TestNewDoesNotMutatePool(t *testing.T) {
	pool := append([]string(nil), DefaultNames...)
	if _, err := New(pool, testRects(9), 9, rand.New(rand.NewSource(9))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(pool, DefaultNames) {
		t.Error("New reordered the caller's pool")
	}
}

func TestNewRejectsMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := New(DefaultNames, testRects(8), 9, rng); err == nil {
		t.Error("expected error for slot/sensor mismatch")
	}
	if _, err := New(DefaultNames[:4], testRects(9), 9, rng); err == nil {
		t.Error("expected error for short pool")
	}
	bad := testRects(9)
	bad[3].Index = 5
	if _, err := New(DefaultNames, bad, 9, rng); err == nil {
		t.Error("expected error for misindexed slot")
	}
}

func TestWinnerStateMachine(t *testing.T) {
	o, err := New(DefaultNames, testRects(9), 9, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := o.MarkWinner(2); err != nil {
		t.Fatal(err)
	}
	if w := o.Winners(); len(w) != 1 || w[0] != 2 {
		t.Errorf("expected winners [2], got %v", w)
	}
	if err := o.ClearWinner(2); err != nil {
		t.Fatal(err)
	}
	if w := o.Winners(); len(w) != 0 {
		t.Errorf("expected no winners, got %v", w)
	}

	if err := o.MarkWinner(9); err == nil {
		t.Error("expected out-of-range error")
	}
	if err := o.ClearWinner(-1); err == nil {
		t.Error("expected out-of-range error")
	}
}

func TestApply(t *testing.T) {
	o, err := New(DefaultNames, testRects(9), 9, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmds := []router.Command{
		{Kind: router.CmdScore, Score: 3},
		{Kind: router.CmdMarkWinner, Slot: 5},
		{Kind: router.CmdLight, Body: 12, Fill: "#ff0000"},
		{Kind: router.CmdRespawn},
	}
	for _, c := range cmds {
		if err := o.Apply(c); err != nil {
			t.Fatalf("apply %v: %v", c.Kind, err)
		}
	}
	if o.ScoreText() != "3" {
		t.Errorf("expected score text 3, got %q", o.ScoreText())
	}
	if !o.Slots()[5].Winner {
		t.Error("slot 5 should be highlighted")
	}

	if err := o.Apply(router.Command{Kind: router.CmdClearWinner, Slot: 42}); err == nil {
		t.Error("expected error for bad slot")
	}
}

func TestNamesFollowSlots(t *testing.T) {
	o, err := New(DefaultNames, testRects(9), 9, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}
	names := o.Names()
	for i, s := range o.Slots() {
		if names[i] != s.Name {
			t.Errorf("slot %d: %q vs %q", i, names[i], s.Name)
		}
	}
}
