package calculator

import "math"

// AxisRange computes the value-axis display range for one NAV series,
// padding both ends by marginRatio. The lower bound is clamped at zero
// since NAV is never negative. Both bounds are rounded to 4 decimals.
// An empty series yields the fixed default (1.0, 0.0).
func AxisRange(values []float64, marginRatio float64) (yMax, yMin float64) {
	if len(values) == 0 {
		return 1.0, 0.0
	}
	max := values[0]
	min := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	yMax = max * (1 + marginRatio)
	yMin = min * (1 - marginRatio)
	if yMin < 0 {
		yMin = 0
	}
	return round4(yMax), round4(yMin)
}

// CombinedRange merges per-series ranges so every series stays inside
// the shared axis: the overall max of maxes and min of mins. ok is
// false when no ranges were given.
func CombinedRange(ranges [][2]float64) (yMax, yMin float64, ok bool) {
	if len(ranges) == 0 {
		return 0, 0, false
	}
	yMax = ranges[0][0]
	yMin = ranges[0][1]
	for _, r := range ranges[1:] {
		if r[0] > yMax {
			yMax = r[0]
		}
		if r[1] < yMin {
			yMin = r[1]
		}
	}
	return yMax, yMin, true
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
