package cuffbp

// State is the phase of a measurement session.
type State int

// Session phases. A session only moves forward through them.
const (
	Idle State = iota
	Inflating
	Deflating
	Complete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Inflating:
		return "inflating"
	case Deflating:
		return "deflating"
	case Complete:
		return "complete"
	}
	return "unknown"
}

type step int

const (
	stepInflating step = iota
	stepCapture
	stepComplete
	stepDone
)

// phase tracks the cuff phase from calibrated pressures.
type phase struct {
	state State
	// pendingDeflation is set by the sample that crosses the start
	// pressure. That sample still counts as inflation; deflation is
	// evaluated from the next one on.
	pendingDeflation bool

	start float64
	end   float64
}

func newPhase(start, end float64) phase {
	return phase{start: start, end: end}
}

func (p *phase) advance(pressure float64) step {
	switch p.state {
	case Idle:
		if pressure > p.start {
			p.state = Inflating
			p.pendingDeflation = true
		}
		return stepInflating

	case Inflating:
		if !p.pendingDeflation {
			return stepInflating
		}
		p.pendingDeflation = false
		p.state = Deflating
		return p.deflate(pressure)

	case Deflating:
		return p.deflate(pressure)
	}

	return stepDone
}

func (p *phase) deflate(pressure float64) step {
	if pressure <= p.end {
		p.state = Complete
		return stepComplete
	}
	return stepCapture
}

// finish forces the session to Complete.
func (p *phase) finish() {
	p.pendingDeflation = false
	p.state = Complete
}
