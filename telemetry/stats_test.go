package telemetry

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeDropStats(t *testing.T) {
	values := []float64{3, 1, 2, 5, 4}
	mean, p50, p90 := ComputeDropStats(values)
	if math.Abs(mean-3) > 1e-9 {
		t.Errorf("mean = %v, want 3", mean)
	}
	if math.Abs(p50-3) > 1e-9 {
		t.Errorf("p50 = %v, want 3", p50)
	}
	if math.Abs(p90-4.6) > 1e-9 {
		t.Errorf("p90 = %v, want 4.6", p90)
	}

	mean, p50, p90 = ComputeDropStats(nil)
	if mean != 0 || p50 != 0 || p90 != 0 {
		t.Errorf("empty input should give zeros, got %v %v %v", mean, p50, p90)
	}
}

func TestFormatSlotHits(t *testing.T) {
	if got := FormatSlotHits([]int{0, 3, 1}); got != "0|3|1" {
		t.Errorf("got %q", got)
	}
	if got := FormatSlotHits(nil); got != "" {
		t.Errorf("got %q for no slots", got)
	}
}
