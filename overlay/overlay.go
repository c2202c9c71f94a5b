// Package overlay models the name slots and score label drawn over the
// board. It holds presentation state only; drawing lives in ui.
package overlay

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/pthm-cable/plinko/layout"
	"github.com/pthm-cable/plinko/router"
)

// DefaultNames is the stock name pool.
var DefaultNames = []string{
	"Asim", "Bradley", "Brett", "Bryan", "Chris", "Drew", "Dom", "G",
	"Gregory", "Jesse", "John", "Jordan", "Megan", "Rich", "Tyler", "Ytalo",
}

// Shuffle permutes a in place with the Fisher–Yates algorithm and returns it.
func Shuffle[T any](rng *rand.Rand, a []T) []T {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
	return a
}

// Slot is one name element positioned over a sensor.
type Slot struct {
	layout.Slot
	Name   string
	Winner bool
}

// Overlay holds the name slots and the score.
type Overlay struct {
	slots []Slot
	score int
}

// New shuffles a copy of pool and binds its first len(rects) names to the
// slot rectangles. sensors must equal len(rects): every sensor index has
// to address exactly one slot.
func New(pool []string, rects []layout.Slot, sensors int, rng *rand.Rand) (*Overlay, error) {
	if len(rects) != sensors {
		return nil, fmt.Errorf("overlay: %d slots for %d sensors", len(rects), sensors)
	}
	if len(pool) < sensors {
		return nil, fmt.Errorf("overlay: name pool has %d names, need %d", len(pool), sensors)
	}

	names := Shuffle(rng, append([]string(nil), pool...))
	o := &Overlay{slots: make([]Slot, sensors)}
	for i, r := range rects {
		if r.Index != i {
			return nil, fmt.Errorf("overlay: slot %d carries index %d", i, r.Index)
		}
		o.slots[i] = Slot{Slot: r, Name: names[i]}
	}
	return o, nil
}

// MarkWinner highlights slot i.
func (o *Overlay) MarkWinner(i int) error {
	if i < 0 || i >= len(o.slots) {
		return fmt.Errorf("overlay: slot %d out of range [0,%d)", i, len(o.slots))
	}
	o.slots[i].Winner = true
	return nil
}

// ClearWinner removes the highlight from slot i.
func (o *Overlay) ClearWinner(i int) error {
	if i < 0 || i >= len(o.slots) {
		return fmt.Errorf("overlay: slot %d out of range [0,%d)", i, len(o.slots))
	}
	o.slots[i].Winner = false
	return nil
}

// SetScore updates the score label.
func (o *Overlay) SetScore(n int) {
	o.score = n
}

// Apply applies the overlay-relevant part of a router command. Commands
// that do not concern the overlay are ignored.
func (o *Overlay) Apply(cmd router.Command) error {
	switch cmd.Kind {
	case router.CmdScore:
		o.SetScore(cmd.Score)
	case router.CmdMarkWinner:
		return o.MarkWinner(cmd.Slot)
	case router.CmdClearWinner:
		return o.ClearWinner(cmd.Slot)
	case router.CmdLight, router.CmdRestore, router.CmdRespawn:
	}
	return nil
}

// Slots returns the slots in index order. The slice must not be modified.
func (o *Overlay) Slots() []Slot {
	return o.slots
}

// Score returns the displayed score.
func (o *Overlay) Score() int {
	return o.score
}

// ScoreText returns the score label text.
func (o *Overlay) ScoreText() string {
	return strconv.Itoa(o.score)
}

// Winners returns the indices of highlighted slots.
func (o *Overlay) Winners() []int {
	var out []int
	for i, s := range o.slots {
		if s.Winner {
			out = append(out, i)
		}
	}
	return out
}

// Names returns the bound names in slot order.
func (o *Overlay) Names() []string {
	out := make([]string, len(o.slots))
	for i, s := range o.slots {
		out[i] = s.Name
	}
	return out
}
