package telemetry

import (
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Score at window end
	Score int `csv:"score"`

	// Events during window
	PegHits     int `csv:"peg_hits"`
	SlotEntries int `csv:"slot_entries"`
	Launches    int `csv:"launches"`
	Respawns    int `csv:"respawns"`

	// Seconds from launch to the first slot entry, for drops that landed
	DropTimeMean float64 `csv:"drop_time_mean"`
	DropTimeP50  float64 `csv:"drop_time_p50"`
	DropTimeP90  float64 `csv:"drop_time_p90"`

	// Entries per slot, pipe separated in slot order
	SlotHits []int  `csv:"-"`
	SlotHist string `csv:"slot_hits"`
}

// Percentile returns the p-th percentile of sorted values using linear
// interpolation. p is in [0, 1].
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	idx := p * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper {
		return sorted[lower]
	}
	frac := idx - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// ComputeDropStats returns mean, p50 and p90 of drop times.
// values is sorted in place.
func ComputeDropStats(values []float64) (mean, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	sort.Float64s(values)
	return stat.Mean(values, nil), Percentile(values, 0.5), Percentile(values, 0.9)
}

// FormatSlotHits joins per-slot counts as "a|b|c".
func FormatSlotHits(hits []int) string {
	parts := make([]string, len(hits))
	for i, h := range hits {
		parts[i] = strconv.Itoa(h)
	}
	return strings.Join(parts, "|")
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("score", s.Score),
		slog.Int("peg_hits", s.PegHits),
		slog.Int("slot_entries", s.SlotEntries),
		slog.Int("launches", s.Launches),
		slog.Int("respawns", s.Respawns),
		slog.Float64("drop_time_mean", s.DropTimeMean),
		slog.Float64("drop_time_p50", s.DropTimeP50),
		slog.Float64("drop_time_p90", s.DropTimeP90),
		slog.String("slot_hits", s.SlotHist),
	)
}

// LogStats logs the window using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
