// Package cuffsim simulates the pressure in a blood pressure cuff while it
// is pumped up and slowly released.
package cuffsim

import (
	"math"
	"time"

	"github.com/cgxeiji/cuffbp"
)

// Cuff generates raw sensor counts for a simulated arm. It is
// deterministic: the same settings always produce the same trace.
type Cuff struct {
	// Peak is the pressure the cuff is pumped to, in mmHg.
	Peak float64
	// Inflate and Deflate are the pump and release rates in mmHg/s.
	Inflate float64
	Deflate float64
	// MAP is the mean arterial pressure, where oscillations are largest.
	MAP float64
	// Amplitude of the oscillations at MAP, in mmHg.
	Amplitude float64
	// Width is the spread of the oscillation envelope around MAP, in mmHg.
	Width float64
	// HeartRate in beats per minute.
	HeartRate float64
	// Interval between two readings.
	Interval time.Duration
	// InvalidEvery flags every n-th reading as invalid. Zero disables it.
	InvalidEvery int

	start    time.Time
	n        int
	base     float64
	released bool
}

// New returns a cuff with a typical healthy adult profile.
func New() *Cuff {
	return &Cuff{
		Peak:      170,
		Inflate:   40,
		Deflate:   4,
		MAP:       93,
		Amplitude: 2.5,
		Width:     22,
		HeartRate: 72,
		Interval:  100 * time.Millisecond,
		start:     time.Unix(0, 0),
	}
}

func (c *Cuff) dt() float64 {
	return c.Interval.Seconds()
}

// Next returns the next pressure in mmHg and advances the time.
func (c *Cuff) Next() float64 {
	c.n++
	t := float64(c.n) * c.dt()

	if !c.released {
		c.base += c.Inflate * c.dt()
		if c.base > c.Peak {
			c.released = true
		}
		return c.base
	}

	c.base -= c.Deflate * c.dt()
	if c.base < 0 {
		c.base = 0
	}

	env := c.Amplitude * gauss(c.base, c.MAP, c.Width)
	return c.base + env*math.Sin(2*math.Pi*c.HeartRate/60*t)
}

// Count returns the next reading as a raw sensor count.
func (c *Cuff) Count() (uint32, bool, error) {
	p := c.Next()
	valid := c.InvalidEvery == 0 || c.n%c.InvalidEvery != 0
	return cuffbp.RawCount(p), valid, nil
}

// Close does nothing; it makes Cuff usable as a sensor.
func (c *Cuff) Close() {}

// Now returns the simulated time of the last reading.
func (c *Cuff) Now() time.Time {
	return c.start.Add(time.Duration(c.n) * c.Interval)
}

func gauss(x, mu, sigma float64) float64 {
	z := (x - mu) / sigma
	return math.Exp(-0.5 * z * z)
}
