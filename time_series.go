package cuffbp

// Reading is a calibrated pressure sample.
type Reading struct {
	// Pressure in mmHg.
	Pressure float64
	// Time in seconds since the session started.
	Time float64
}

// slope between two consecutive readings. ok is false when both readings
// share the same timestamp and the slope is undefined.
type slope struct {
	value float64
	ok    bool
}

// tSeries is a bounded, append-only series of readings and the slope
// sequence derived from them. slopes[i] is the slope between readings i
// and i+1.
type tSeries struct {
	readings []Reading
	slopes   []slope
}

func newTSeries(size int) *tSeries {
	if size < 1 {
		size = defaultCapacity
	}
	return &tSeries{
		readings: make([]Reading, 0, size),
		slopes:   make([]slope, 0, size-1),
	}
}

func (t *tSeries) len() int {
	return len(t.readings)
}

func (t *tSeries) full() bool {
	return len(t.readings) == cap(t.readings)
}

// add appends a reading and derives the slope it closes. It never grows
// the series beyond its capacity.
func (t *tSeries) add(r Reading) error {
	if t.full() {
		return ErrCapacityExceeded
	}
	t.readings = append(t.readings, r)

	n := len(t.readings)
	if n < 2 {
		return nil
	}
	prev := t.readings[n-2]
	dt := r.Time - prev.Time
	if dt <= 0 {
		t.slopes = append(t.slopes, slope{})
		return nil
	}
	t.slopes = append(t.slopes, slope{
		value: (r.Pressure - prev.Pressure) / dt,
		ok:    true,
	})

	return nil
}

// lastDefined reports whether the most recent slope is defined.
func (t *tSeries) lastDefined() bool {
	if len(t.slopes) == 0 {
		return true
	}
	return t.slopes[len(t.slopes)-1].ok
}
