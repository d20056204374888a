// Package cuffbp estimates blood pressure and heart rate with the
// oscillometric method, from the pressure readings of a cuff while it is
// slowly released.
package cuffbp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cgxeiji/cuffbp/internal/log"
	"github.com/cgxeiji/cuffbp/mpr"
)

var (
	// ErrInvalidSample is returned when the sensor flagged a sample. The
	// sample is skipped.
	ErrInvalidSample = errors.New("invalid sample")
	// ErrCapacityExceeded means the capture buffer is full. The engine
	// completes the session with what it has and marks the result as
	// degraded.
	ErrCapacityExceeded = errors.New("capture buffer full")
	// ErrNoExtremum means no slope could be computed from the captured
	// readings. Every estimate of such a session is indeterminate.
	ErrNoExtremum = errors.New("no slope maximum")
	// ErrSessionComplete is returned when a sample is fed to a session that
	// already completed. Reset the engine to start a new one.
	ErrSessionComplete = errors.New("session complete")
	// ErrTimeout is returned when the cuff was not inflated and released
	// before the monitor timeout.
	ErrTimeout = errors.New("measurement timed out")
)

// Sensor provides raw pressure counts.
type Sensor interface {
	Count() (count uint32, valid bool, err error)
	Close()
}

// Monitor couples a cuff pressure sensor to an engine.
type Monitor struct {
	sensor   Sensor
	engine   *Engine
	interval time.Duration
	timeout  time.Duration
	onEvent  func(Event)
	log      log.Logger
}

// New returns a new monitor. Unless a sensor is given with WithSensor, it
// opens the MPR pressure sensor on the I²C bus.
func New(options ...Option) (*Monitor, error) {
	cfg := defaults()
	cfg.apply(options...)

	sensor := cfg.sensor
	if sensor == nil {
		dev, err := mpr.New(cfg.bus, cfg.addr)
		if err != nil {
			return nil, fmt.Errorf("cuffbp: could not open pressure sensor: %w", err)
		}
		sensor = dev
	}
	if cfg.interval <= 0 {
		cfg.interval = refInterval
	}

	return &Monitor{
		sensor:   sensor,
		engine:   NewEngine(options...),
		interval: cfg.interval,
		timeout:  cfg.timeout,
		onEvent:  cfg.onEvent,
		log:      log.Wrap(cfg.logger),
	}, nil
}

// Close closes the sensor.
func (m *Monitor) Close() {
	m.sensor.Close()
}

// Measure runs a full session: it samples the sensor at every interval
// until the cuff has been inflated and released, and returns the result.
// If that does not happen before the timeout, it returns ErrTimeout.
func (m *Monitor) Measure(ctx context.Context) (Result, error) {
	m.engine.Reset()

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	t := time.NewTicker(m.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return Result{}, fmt.Errorf("cuffbp: could not measure: %w", ErrTimeout)
			}
			return Result{}, fmt.Errorf("cuffbp: could not measure: %w", ctx.Err())
		case <-t.C:
		}

		count, valid, err := m.sensor.Count()
		if errors.Is(err, mpr.ErrBusy) {
			m.log.Debug("sensor busy")
			continue
		} else if err != nil {
			return Result{}, fmt.Errorf("cuffbp: could not read sensor: %w", err)
		}

		ev, err := m.engine.ProcessSample(RawSample{Count: count, Valid: valid})
		if errors.Is(err, ErrInvalidSample) {
			continue
		} else if err != nil {
			return Result{}, fmt.Errorf("cuffbp: could not process sample: %w", err)
		}

		if m.onEvent != nil {
			m.onEvent(ev)
		}
		if ev.Kind == SessionComplete {
			m.log.Info("measurement done", slog.String("result", ev.Result.String()))
			return *ev.Result, nil
		}
	}
}
