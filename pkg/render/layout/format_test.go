package layout

import (
	"math"
	"reflect"
	"testing"
)

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		x        float64
		decimals int
		want     string
	}{
		{7.5, 1, "7.5"},
		{7, 1, "7.0"},
		{7.25, 1, "7.3"},
		{7.35, 1, "7.3"}, // 7.35 is stored just below the tie
		{-7.25, 1, "-7.3"},
		{0.25, 1, "0.3"},
		{2.5, 0, "3"},
		{33.333333, 1, "33.3"},
		{66.666666, 1, "66.7"},
		{100, 1, "100.0"},
	}

	for _, tt := range tests {
		if got := FormatFixed(tt.x, tt.decimals); got != tt.want {
			t.Errorf("FormatFixed(%v, %d) = %q, want %q", tt.x, tt.decimals, got, tt.want)
		}
	}
}

func TestNiceRangeExtremes(t *testing.T) {
	tests := []struct{ lo, hi float64 }{
		{-1e308, 1e308},
		{0, 1.7e308},
		{-5, 1e308},
	}

	for _, tt := range tests {
		start, end, ticks := niceRange(tt.lo, tt.hi)
		if len(ticks) < 2 || len(ticks) > maxTicks+1 {
			t.Fatalf("niceRange(%v, %v) ticks = %v", tt.lo, tt.hi, ticks)
		}
		tol := 1e-9 * math.Max(math.Abs(tt.lo), math.Abs(tt.hi))
		if start > tt.lo+tol || end < tt.hi-tol || math.IsInf(start, 0) || math.IsInf(end, 0) {
			t.Errorf("niceRange(%v, %v) = %v, %v, want finite bounds covering the data", tt.lo, tt.hi, start, end)
		}
		for i := 1; i < len(ticks); i++ {
			if math.IsInf(ticks[i], 0) || ticks[i] <= ticks[i-1] {
				t.Errorf("niceRange(%v, %v) ticks = %v, want finite increasing values", tt.lo, tt.hi, ticks)
				break
			}
		}
	}
}

func TestNiceRange(t *testing.T) {
	tests := []struct {
		lo, hi     float64
		start, end float64
		ticks      []float64
	}{
		{0, 10, 0, 10, []float64{0, 2, 4, 6, 8, 10}},
		{0, 87, 0, 100, []float64{0, 20, 40, 60, 80, 100}},
		{0, 0, 0, 1, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{-3, 5, -4, 6, []float64{-4, -2, 0, 2, 4, 6}},
		{0, 0.3, 0, 0.3, []float64{0, 0.1, 0.2, 0.3}},
	}

	for _, tt := range tests {
		start, end, ticks := niceRange(tt.lo, tt.hi)
		if start != tt.start || end != tt.end || !reflect.DeepEqual(ticks, tt.ticks) {
			t.Errorf("niceRange(%v, %v) = %v, %v, %v, want %v, %v, %v",
				tt.lo, tt.hi, start, end, ticks, tt.start, tt.end, tt.ticks)
		}
	}
}
