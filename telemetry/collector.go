package telemetry

import "github.com/pthm-cable/plinko/router"

// Collector accumulates events over a window of ticks.
type Collector struct {
	windowDurationTicks int32
	dt                  float64
	lastFlushTick       int32

	pegHits     int
	slotEntries int
	launches    int
	respawns    int
	slotHits    []int
	dropTimes   []float64

	// tick of the last launch, -1 once the drop has landed or been reset
	launchTick int32
}

// NewCollector creates a collector flushing every windowDurationSec
// seconds of simulated time, tracking the given number of slots.
func NewCollector(windowDurationSec, dt float64, slots int) *Collector {
	ticks := int32(windowDurationSec/dt + 0.5)
	if ticks < 1 {
		ticks = 1
	}
	return &Collector{
		windowDurationTicks: ticks,
		dt:                  dt,
		slotHits:            make([]int, slots),
		launchTick:          -1,
	}
}

// RecordLaunch records a launch at tick.
func (c *Collector) RecordLaunch(tick int32) {
	c.launches++
	c.launchTick = tick
}

// RecordRespawn records the disc being put back at its start.
func (c *Collector) RecordRespawn() {
	c.respawns++
	c.launchTick = -1
}

// RecordCommand counts a routed command.
func (c *Collector) RecordCommand(tick int32, cmd router.Command) {
	switch cmd.Kind {
	case router.CmdScore:
		c.pegHits++
	case router.CmdMarkWinner:
		c.slotEntries++
		if cmd.Slot >= 0 && cmd.Slot < len(c.slotHits) {
			c.slotHits[cmd.Slot]++
		}
		if c.launchTick >= 0 {
			c.dropTimes = append(c.dropTimes, float64(tick-c.launchTick)*c.dt)
			c.launchTick = -1
		}
	case router.CmdRespawn:
		c.RecordRespawn()
	}
}

// ShouldFlush returns true if the window has elapsed.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.lastFlushTick >= c.windowDurationTicks
}

// Flush computes stats for the current window and resets counters.
func (c *Collector) Flush(currentTick int32, score int) WindowStats {
	mean, p50, p90 := ComputeDropStats(c.dropTimes)
	hits := append([]int(nil), c.slotHits...)

	stats := WindowStats{
		WindowStartTick: c.lastFlushTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,
		Score:           score,
		PegHits:         c.pegHits,
		SlotEntries:     c.slotEntries,
		Launches:        c.launches,
		Respawns:        c.respawns,
		DropTimeMean:    mean,
		DropTimeP50:     p50,
		DropTimeP90:     p90,
		SlotHits:        hits,
		SlotHist:        FormatSlotHits(hits),
	}

	c.pegHits = 0
	c.slotEntries = 0
	c.launches = 0
	c.respawns = 0
	c.dropTimes = c.dropTimes[:0]
	clear(c.slotHits)
	c.lastFlushTick = currentTick

	return stats
}

// WindowDurationTicks returns the window size in ticks.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
