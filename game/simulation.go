package game

import (
	"log/slog"

	"github.com/pthm-cable/plinko/body"
	"github.com/pthm-cable/plinko/contact"
	"github.com/pthm-cable/plinko/geom"
	"github.com/pthm-cable/plinko/router"
	"github.com/pthm-cable/plinko/telemetry"
)

// step advances the table by one fixed tick.
func (g *Game) step() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhasePhysics)
	batch := g.phys.Step(g.cfg.Physics.DT)
	g.syncDisc()

	g.handleBatch(batch)

	g.particles.Update()
	g.checkRest()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.tick++
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// handleBatch routes one collision batch and applies the resulting
// commands. The batch is only read.
func (g *Game) handleBatch(batch *contact.Batch) {
	g.perfCollector.StartPhase(telemetry.PhaseRoute)
	cmds := g.router.Route(batch)

	g.perfCollector.StartPhase(telemetry.PhaseApply)
	g.emitContactEffects(batch)
	for _, cmd := range cmds {
		g.apply(cmd)
	}
}

// apply performs one routed command against the entities, the physics
// world, the overlay and telemetry.
func (g *Game) apply(cmd router.Command) {
	switch cmd.Kind {
	case router.CmdLight:
		if st := g.styleOf(cmd.Body); st != nil {
			st.Light(cmd.Fill)
		}
		g.emitLightEffect(cmd)
	case router.CmdRestore:
		if st := g.styleOf(cmd.Body); st != nil {
			st.Restore(cmd.Fill)
		}
	case router.CmdRespawn:
		g.phys.Respawn()
		g.syncDisc()
		g.restTicks = 0
		slog.Info("respawn", "tick", g.tick, "score", g.router.Score(), "reason", "reset_zone")
	case router.CmdScore, router.CmdMarkWinner, router.CmdClearWinner:
	}

	if err := g.overlay.Apply(cmd); err != nil {
		slog.Error("applying command", "command", cmd.Kind.String(), "slot", cmd.Slot, "error", err)
	}
	g.collector.RecordCommand(g.tick, cmd)
	if g.cfg.Telemetry.LogEvents {
		g.events = append(g.events, telemetry.NewEventRecord(g.tick, cmd))
	}
}

// emitLightEffect bursts particles where a body lit up.
func (g *Game) emitLightEffect(cmd router.Command) {
	switch cmd.Tag.Kind {
	case body.KindPeg:
		e, ok := g.entity(cmd.Body)
		if !ok {
			return
		}
		p := g.poseMap.Get(e)
		g.particles.EmitSpark(float32(p.X), float32(p.Y))
	case body.KindSensor:
		slots := g.layout.Slots
		if i := cmd.Tag.Index; i >= 0 && i < len(slots) {
			s := slots[i]
			g.particles.EmitConfetti(float32(s.X+s.Width/2), float32(s.Y), float32(s.Width))
		}
	}
}

// emitContactEffects flashes bumpers the disc touched. Bumpers carry no
// game rule, so this reads the batch directly.
func (g *Game) emitContactEffects(batch *contact.Batch) {
	for _, pair := range batch.Start {
		for _, ref := range [2]contact.Ref{pair.A, pair.B} {
			if ref.Tag.Kind != body.KindBumper {
				continue
			}
			e, ok := g.entity(ref.ID)
			if !ok {
				continue
			}
			shape := g.shapeMap.Get(e)
			g.particles.EmitFlash(float32(shape.Desc.Pos.X), float32(shape.Desc.Pos.Y), float32(shape.Desc.Radius))
		}
	}
}

// checkRest counts resting ticks and relaunches the disc when automatic
// launching is on. Headless runs always relaunch.
func (g *Game) checkRest() {
	if g.phys.Dragging() || g.phys.BallSpeed() >= g.cfg.Gameplay.RestSpeed {
		g.restTicks = 0
		return
	}
	g.restTicks++
	if !g.headless && !g.cfg.Gameplay.AutoLaunch {
		return
	}
	if g.restTicks < max(g.cfg.Derived.RestTicks, 1) {
		return
	}

	// a disc resting away from the start goes back before relaunching
	if geom.Dist(g.phys.BallPosition(), g.layout.DiscStart()) > 1 {
		g.Respawn()
	}
	g.Launch()
}
