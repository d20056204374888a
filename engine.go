package cuffbp

import (
	"errors"
	"log/slog"
	"time"

	"github.com/cgxeiji/cuffbp/internal/log"
)

// RawSample is a single count read from the pressure sensor.
type RawSample struct {
	Count uint32
	// Valid is false when the sensor status flagged the reading.
	Valid bool
}

// Clock returns the current time. Readings are timestamped relative to
// the first call after a session starts.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// EventKind identifies what a processed sample did to the session.
type EventKind int

// Event kinds.
const (
	StillInflating EventKind = iota
	Capturing
	SessionComplete
)

func (k EventKind) String() string {
	switch k {
	case StillInflating:
		return "inflating"
	case Capturing:
		return "capturing"
	case SessionComplete:
		return "complete"
	}
	return "unknown"
}

// Event describes the effect of a single processed sample.
type Event struct {
	Kind EventKind
	// Pressure is the calibrated pressure of the sample in mmHg.
	Pressure float64
	// Pace is set while capturing.
	Pace Pace
	// Captured is true if the sample was added to the session buffer.
	Captured bool
	// Result is set once the session completes.
	Result *Result
}

// session holds everything that belongs to a single measurement. It is
// replaced as a whole on reset.
type session struct {
	phase  phase
	series *tSeries
	origin time.Time
	last   float64 // time of the last reading, in seconds

	prev    float64
	hasPrev bool

	result *Result
}

// Engine estimates blood pressure and heart rate from the readings of a
// single cuff deflation. An Engine is not safe for concurrent use.
type Engine struct {
	cfg  settings
	log  log.Logger
	pace paceAdvisor
	s    *session
}

// NewEngine returns an engine ready for a new session.
func NewEngine(options ...Option) *Engine {
	cfg := defaults()
	cfg.apply(options...)
	if cfg.clock == nil {
		cfg.clock = wallClock{}
	}

	e := &Engine{
		cfg:  cfg,
		log:  log.Wrap(cfg.logger),
		pace: newPaceAdvisor(cfg.interval),
	}
	e.Reset()

	return e
}

// Reset discards the current session, including any captured readings,
// and starts a new one.
func (e *Engine) Reset() {
	e.s = &session{
		phase:  newPhase(e.cfg.start, e.cfg.end),
		series: newTSeries(e.cfg.capacity),
		origin: e.cfg.clock.Now(),
	}
}

// State returns the phase of the current session.
func (e *Engine) State() State {
	return e.s.phase.state
}

// Readings returns a copy of the readings captured so far.
func (e *Engine) Readings() []Reading {
	r := make([]Reading, len(e.s.series.readings))
	copy(r, e.s.series.readings)
	return r
}

// Result returns the result of the session, or false if it has not
// completed yet.
func (e *Engine) Result() (Result, bool) {
	if e.s.result == nil {
		return Result{}, false
	}
	return *e.s.result, true
}

// ProcessSample advances the session by one sensor sample. Invalid samples
// are skipped with ErrInvalidSample. Once the session is complete, every
// call returns the final result along with ErrSessionComplete.
func (e *Engine) ProcessSample(raw RawSample) (Event, error) {
	s := e.s
	if s.phase.state == Complete {
		return e.completeEvent(), ErrSessionComplete
	}
	if !raw.Valid {
		e.log.Debug("invalid sample", slog.Uint64("count", uint64(raw.Count)))
		return Event{}, ErrInvalidSample
	}

	p := Pressure(float64(raw.Count))
	t := e.elapsed()
	defer func() {
		s.prev = p
		s.hasPrev = true
	}()

	from := s.phase.state
	st := s.phase.advance(p)
	if to := s.phase.state; to != from {
		e.log.Info("phase changed",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
			slog.Float64("pressure", p),
		)
	}

	switch st {
	case stepInflating:
		return Event{Kind: StillInflating, Pressure: p}, nil

	case stepComplete:
		e.finish(false)
		ev := e.completeEvent()
		ev.Pressure = p
		return ev, nil
	}

	ev := Event{Kind: Capturing, Pressure: p, Pace: PaceNone}
	if s.hasPrev {
		ev.Pace = e.pace.classify(s.prev, p)
		e.log.Debug("pace", slog.String("pace", ev.Pace.String()))
	}

	if p >= e.cfg.ceiling {
		return ev, nil
	}

	err := s.series.add(Reading{Pressure: p, Time: t})
	if errors.Is(err, ErrCapacityExceeded) {
		e.log.Warn("capture buffer full, completing session early",
			slog.Int("capacity", cap(s.series.readings)),
		)
		s.phase.finish()
		e.finish(true)
		done := e.completeEvent()
		done.Pressure = p
		return done, nil
	}
	if !s.series.lastDefined() {
		e.log.Debug("slope omitted, zero time delta", slog.Float64("time", t))
	}
	ev.Captured = true

	return ev, nil
}

func (e *Engine) elapsed() float64 {
	t := e.cfg.clock.Now().Sub(e.s.origin).Seconds()
	if t < e.s.last {
		t = e.s.last
	}
	e.s.last = t
	return t
}

func (e *Engine) completeEvent() Event {
	r := *e.s.result
	return Event{Kind: SessionComplete, Result: &r}
}

func (e *Engine) finish(degraded bool) {
	r := analyze(e.s.series, e.cfg, e.log)
	r.Degraded = degraded
	e.s.result = &r

	e.log.Info("session complete",
		slog.String("systolic", r.Systolic.String()),
		slog.String("diastolic", r.Diastolic.String()),
		slog.String("heart_rate", r.HeartRate.String()),
		slog.String("category", r.Category.String()),
		slog.Int("samples", r.Samples),
		slog.Bool("degraded", r.Degraded),
	)
}

// Analyze estimates the result of a completed deflation from its
// readings, as if they had all been captured by an engine.
func Analyze(readings []Reading, options ...Option) Result {
	cfg := defaults()
	cfg.apply(options...)

	s := newTSeries(len(readings))
	for _, r := range readings {
		_ = s.add(r)
	}

	return analyze(s, cfg, log.Wrap(cfg.logger))
}

func analyze(s *tSeries, cfg settings, l log.Logger) Result {
	r := Result{Samples: s.len()}

	m, err := extremum(s.slopes)
	if err != nil {
		l.Warn("no slope maximum", slog.Int("samples", s.len()))
		return r
	}

	b := extractBounds(s.slopes, m, cfg.sysRatio, cfg.diaRatio)
	r.Systolic = pressureAt(s.readings, b.systolic)
	r.Diastolic = pressureAt(s.readings, b.diastolic)
	r.HeartRate = heartRate(s, b, cfg.bias)
	if r.Systolic.Valid && r.Diastolic.Valid {
		r.Category = Classify(r.Systolic.Value, r.Diastolic.Value)
	}

	return r
}
