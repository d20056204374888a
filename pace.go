package cuffbp

import "time"

// Pace is an advisory on how fast the cuff is being released.
type Pace int

// Deflation paces.
const (
	PaceNone Pace = iota
	PaceTooSlow
	PaceNominal
	PaceTooFast
)

func (p Pace) String() string {
	switch p {
	case PaceTooSlow:
		return "too slow"
	case PaceNominal:
		return "nominal"
	case PaceTooFast:
		return "too fast"
	}
	return "none"
}

// Advice returns the message shown to the person releasing the cuff.
func (p Pace) Advice() string {
	switch p {
	case PaceTooSlow:
		return "Pace up! Releasing too slow"
	case PaceNominal:
		return "Maintain the pace"
	case PaceTooFast:
		return "Slow down! Releasing too fast"
	}
	return ""
}

// paceAdvisor classifies the pressure drop between two consecutive samples.
type paceAdvisor struct {
	slow float64
	fast float64
}

// newPaceAdvisor scales the reference thresholds to the sample interval.
func newPaceAdvisor(interval time.Duration) paceAdvisor {
	if interval <= 0 {
		interval = refInterval
	}
	k := float64(interval) / float64(refInterval)
	return paceAdvisor{
		slow: paceSlow * k,
		fast: paceFast * k,
	}
}

func (a paceAdvisor) classify(prev, cur float64) Pace {
	diff := prev - cur
	switch {
	case diff < a.slow:
		return PaceTooSlow
	case diff > a.fast:
		return PaceTooFast
	}
	return PaceNominal
}
