package game

import "log/slog"

// flushTelemetry writes the stats window once it has elapsed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.router.Score())
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteScores(stats); err != nil {
		slog.Error("failed to write scores", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
	g.writeEvents()
}

// writeEvents appends buffered command events to events.csv.
func (g *Game) writeEvents() {
	if len(g.events) == 0 {
		return
	}
	if err := g.outputManager.WriteEvents(g.events); err != nil {
		slog.Error("failed to write events", "error", err)
	}
	g.events = g.events[:0]
}
