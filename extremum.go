package cuffbp

// mark is the largest defined slope and the first position it occurs at.
// It approximates where the mean arterial pressure is.
type mark struct {
	value float64
	index int
}

func extremum(slopes []slope) (mark, error) {
	m := mark{index: -1}
	for i, s := range slopes {
		if !s.ok {
			continue
		}
		if m.index < 0 || s.value > m.value {
			m = mark{value: s.value, index: i}
		}
	}
	if m.index < 0 {
		return mark{}, ErrNoExtremum
	}

	return m, nil
}
