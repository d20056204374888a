package cuffbp

// crossing searches slopes[from:to] for the defined, non-negative slope
// below threshold that is closest to it. Ties keep the earliest position.
func crossing(slopes []slope, from, to int, threshold float64) (int, bool) {
	if from < 0 {
		from = 0
	}
	if to > len(slopes) {
		to = len(slopes)
	}

	idx := -1
	best := 0.0
	for i := from; i < to; i++ {
		s := slopes[i]
		if !s.ok || s.value < 0 || s.value >= threshold {
			continue
		}
		d := threshold - s.value
		if idx < 0 || d < best {
			best = d
			idx = i
		}
	}

	return idx, idx >= 0
}

// bounds holds the reading indices of the systolic and diastolic points.
// An index of -1 means the point could not be determined.
type bounds struct {
	systolic  int
	diastolic int
}

// extractBounds locates the systolic point before the extremum and the
// diastolic point after it. The reported index is the reading that closes
// the selected slope.
func extractBounds(slopes []slope, m mark, sysRatio, diaRatio float64) bounds {
	b := bounds{systolic: -1, diastolic: -1}

	if i, ok := crossing(slopes, 0, m.index, sysRatio*m.value); ok {
		b.systolic = i + 1
	}
	if i, ok := crossing(slopes, m.index+1, len(slopes), diaRatio*m.value); ok {
		b.diastolic = i + 1
	}

	return b
}

func pressureAt(readings []Reading, i int) Estimate {
	if i < 0 || i >= len(readings) {
		return Estimate{}
	}
	return Estimate{Value: readings[i].Pressure, Valid: true}
}
