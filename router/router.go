// Package router turns collision batches into game state changes and
// presentation commands.
package router

import (
	"fmt"

	"github.com/pthm-cable/plinko/body"
	"github.com/pthm-cable/plinko/contact"
)

// CommandKind selects the effect a Command describes.
type CommandKind uint8

const (
	CmdLight       CommandKind = iota // Set Body's fill to Fill
	CmdRestore                        // Restore Body's fill to Fill
	CmdScore                          // Score label now reads Score
	CmdMarkWinner                     // Highlight name slot Slot
	CmdClearWinner                    // Un-highlight name slot Slot
	CmdRespawn                        // Put the disc back at its start
)

var commandNames = [...]string{
	CmdLight:       "light",
	CmdRestore:     "restore",
	CmdScore:       "score",
	CmdMarkWinner:  "mark_winner",
	CmdClearWinner: "clear_winner",
	CmdRespawn:     "respawn",
}

func (k CommandKind) String() string {
	if int(k) < len(commandNames) {
		return commandNames[k]
	}
	return fmt.Sprintf("command(%d)", k)
}

// Command is one presentation update produced by Route.
type Command struct {
	Kind  CommandKind
	Body  int      // registration ID, for CmdLight/CmdRestore
	Tag   body.Tag // tag of the body that triggered the command
	Fill  string
	Slot  int
	Score int
}

// Options configures routing behaviour.
type Options struct {
	// HighlightOnEnter marks a name slot as winner when the disc enters
	// its sensor. When false only the exit path (clear) is active.
	HighlightOnEnter bool

	PegLit    string
	SensorLit string
	Sensor    string
}

// DefaultOptions derives routing colours from the palette.
func DefaultOptions(pal body.Palette) Options {
	return Options{
		HighlightOnEnter: true,
		PegLit:           pal.PegLit,
		SensorLit:        pal.SensorLit,
		Sensor:           pal.Sensor,
	}
}

// Router owns the game state touched by collisions: the score and the
// per-slot highlight flags.
type Router struct {
	opts        Options
	score       int
	highlighted []bool
	hits        []int
}

// New creates a router for the given number of sensor slots.
func New(slots int, opts Options) *Router {
	return &Router{
		opts:        opts,
		highlighted: make([]bool, slots),
		hits:        make([]int, slots),
	}
}

// Route processes one batch: start pairs first, then end pairs. It returns
// the commands the presentation layer must apply, in order.
func (r *Router) Route(b *contact.Batch) []Command {
	if b == nil || b.Empty() {
		return nil
	}

	var cmds []Command
	respawn := false
	for _, p := range b.Start {
		for _, ref := range [2]contact.Ref{p.A, p.B} {
			var rs bool
			cmds, rs = r.start(cmds, ref)
			respawn = respawn || rs
		}
	}
	for _, p := range b.End {
		for _, ref := range [2]contact.Ref{p.A, p.B} {
			cmds = r.end(cmds, ref)
		}
	}
	if respawn {
		cmds = append(cmds, Command{Kind: CmdRespawn, Tag: body.Tag{Kind: body.KindReset, Index: body.NoIndex}})
	}
	return cmds
}

func (r *Router) start(cmds []Command, ref contact.Ref) ([]Command, bool) {
	switch ref.Tag.Kind {
	case body.KindPeg:
		r.score++
		cmds = append(cmds,
			Command{Kind: CmdLight, Body: ref.ID, Tag: ref.Tag, Fill: r.opts.PegLit},
			Command{Kind: CmdScore, Tag: ref.Tag, Score: r.score},
		)
	case body.KindSensor:
		if !r.opts.HighlightOnEnter || !r.validSlot(ref.Tag.Index) {
			break
		}
		i := ref.Tag.Index
		r.highlighted[i] = true
		r.hits[i]++
		cmds = append(cmds,
			Command{Kind: CmdLight, Body: ref.ID, Tag: ref.Tag, Fill: r.opts.SensorLit},
			Command{Kind: CmdMarkWinner, Tag: ref.Tag, Slot: i},
		)
	case body.KindReset:
		return cmds, true
	case body.KindBumper, body.KindWall, body.KindBall:
	}
	return cmds, false
}

func (r *Router) end(cmds []Command, ref contact.Ref) []Command {
	switch ref.Tag.Kind {
	case body.KindSensor:
		if !r.validSlot(ref.Tag.Index) {
			break
		}
		i := ref.Tag.Index
		r.highlighted[i] = false
		cmds = append(cmds,
			Command{Kind: CmdRestore, Body: ref.ID, Tag: ref.Tag, Fill: r.opts.Sensor},
			Command{Kind: CmdClearWinner, Tag: ref.Tag, Slot: i},
		)
	case body.KindPeg, body.KindBumper, body.KindWall, body.KindReset, body.KindBall:
	}
	return cmds
}

func (r *Router) validSlot(i int) bool {
	return i >= 0 && i < len(r.highlighted)
}

// Score returns the current score.
func (r *Router) Score() int {
	return r.score
}

// Highlighted reports whether slot i is currently highlighted.
func (r *Router) Highlighted(i int) bool {
	return r.validSlot(i) && r.highlighted[i]
}

// Hits returns how many times the disc has entered slot i.
func (r *Router) Hits(i int) int {
	if !r.validSlot(i) {
		return 0
	}
	return r.hits[i]
}

// Slots returns the number of sensor slots.
func (r *Router) Slots() int {
	return len(r.highlighted)
}
