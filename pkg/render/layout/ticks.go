package layout

import "math"

const (
	targetTicks = 5
	maxTicks    = 20
)

// niceRange extends [lo, hi] to round tick boundaries and returns the tick
// values, using the classic "nice numbers" steps of 1, 2, 5 and 10 times a
// power of ten. A degenerate range is widened to include zero, or to [0, 1]
// when both bounds are zero. Ranges too wide for round steps are split
// evenly between the bounds instead.
func niceRange(lo, hi float64) (start, end float64, ticks []float64) {
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		if lo == 0 {
			hi = 1
		} else if lo > 0 {
			lo = 0
		} else {
			hi = 0
		}
	}

	span := hi - lo
	if math.IsInf(span, 0) {
		return lo, hi, spread(lo, hi, targetTicks-1)
	}

	step := niceNumber(niceNumber(span, false)/(targetTicks-1), true)
	start = roundTo(math.Floor(lo/step)*step, step)
	end = roundTo(math.Ceil(hi/step)*step, step)

	n := math.Round((end - start) / step)
	if !(n >= 1 && n <= maxTicks) || math.IsInf(start, 0) || math.IsInf(end, 0) {
		return lo, hi, spread(lo, hi, targetTicks-1)
	}
	ticks = make([]float64, 0, int(n)+1)
	for i := 0; i <= int(n); i++ {
		// Snap to the step's precision to avoid 0.30000000000000004.
		ticks = append(ticks, roundTo(start+float64(i)*step, step))
	}
	return start, end, ticks
}

// spread returns n+1 evenly spaced values from lo to hi. It interpolates
// rather than accumulating so the full float64 range never overflows.
func spread(lo, hi float64, n int) []float64 {
	out := make([]float64, n+1)
	for i := range out {
		t := float64(i) / float64(n)
		out[i] = lo*(1-t) + hi*t
	}
	out[n] = hi
	return out
}

func niceNumber(x float64, round bool) float64 {
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)

	var nf float64
	if round {
		switch {
		case f < 1.5:
			nf = 1
		case f < 3:
			nf = 2
		case f < 7:
			nf = 5
		default:
			nf = 10
		}
	} else {
		switch {
		case f <= 1:
			nf = 1
		case f <= 2:
			nf = 2
		case f <= 5:
			nf = 5
		default:
			nf = 10
		}
	}
	return nf * math.Pow(10, exp)
}

func roundTo(v, step float64) float64 {
	digits := math.Max(0, -math.Floor(math.Log10(step))+1)
	p := math.Pow(10, digits)
	if math.IsInf(p, 0) {
		return v
	}
	return math.Round(v*p) / p
}
