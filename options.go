package cuffbp

import (
	"log/slog"
	"time"
)

type settings struct {
	capacity int
	ceiling  float64
	start    float64
	end      float64
	sysRatio float64
	diaRatio float64
	bias     float64
	interval time.Duration
	timeout  time.Duration
	clock    Clock
	logger   *slog.Logger

	bus     string
	addr    uint16
	sensor  Sensor
	onEvent func(Event)
}

func defaults() settings {
	return settings{
		capacity: defaultCapacity,
		ceiling:  captureCeiling,
		start:    startPressure,
		end:      endPressure,
		sysRatio: systolicRatio,
		diaRatio: diastolicRatio,
		bias:     hrBias,
		interval: refInterval,
		timeout:  defaultTimeout,
		clock:    wallClock{},
	}
}

func (s *settings) apply(options ...Option) {
	for _, opt := range options {
		opt(s)
	}
}

// An Option configures an engine or a monitor. Calling an option returns
// an option that restores the previous value.
type Option func(s *settings) Option

// Capacity sets the maximum number of readings captured in a session.
// By default, the capacity is 1000 readings.
func Capacity(n int) Option {
	return func(s *settings) Option {
		old := s.capacity
		s.capacity = n
		return Capacity(old)
	}
}

// CaptureCeiling sets the pressure in mmHg below which deflation readings
// are captured. By default, the ceiling is 140 mmHg.
func CaptureCeiling(p float64) Option {
	return func(s *settings) Option {
		old := s.ceiling
		s.ceiling = p
		return CaptureCeiling(old)
	}
}

// StartPressure sets the pressure in mmHg the cuff must exceed before
// deflation is tracked. By default, it is 150 mmHg.
func StartPressure(p float64) Option {
	return func(s *settings) Option {
		old := s.start
		s.start = p
		return StartPressure(old)
	}
}

// EndPressure sets the pressure in mmHg at which the session completes.
// By default, it is 30 mmHg.
func EndPressure(p float64) Option {
	return func(s *settings) Option {
		old := s.end
		s.end = p
		return EndPressure(old)
	}
}

// Ratios sets the fractions of the maximum slope used to find the
// systolic and diastolic points. By default, they are 0.5 and 0.8.
func Ratios(systolic, diastolic float64) Option {
	return func(s *settings) Option {
		oldS, oldD := s.sysRatio, s.diaRatio
		s.sysRatio, s.diaRatio = systolic, diastolic
		return Ratios(oldS, oldD)
	}
}

// HeartRateBias sets the calibration term added to the pulse frequency
// before converting it to beats per minute. By default, it is 0.5.
func HeartRateBias(b float64) Option {
	return func(s *settings) Option {
		old := s.bias
		s.bias = b
		return HeartRateBias(old)
	}
}

// Interval sets the time between two sensor readings. The pace thresholds
// scale with it. By default, the interval is 79ms.
func Interval(d time.Duration) Option {
	return func(s *settings) Option {
		old := s.interval
		s.interval = d
		return Interval(old)
	}
}

// Timeout sets how long a monitor waits for a session to complete.
// By default, the timeout is 3 minutes.
func Timeout(d time.Duration) Option {
	return func(s *settings) Option {
		old := s.timeout
		s.timeout = d
		return Timeout(old)
	}
}

// WithClock sets the clock used to timestamp readings.
func WithClock(c Clock) Option {
	return func(s *settings) Option {
		old := s.clock
		s.clock = c
		return WithClock(old)
	}
}

// WithLogger sets the logger. By default, nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) Option {
		old := s.logger
		s.logger = l
		return WithLogger(old)
	}
}

// OnBus can be used to specify I²C bus name
// ("/dev/i2c-2", "I2C2", "2"). By default, the bus name is "", which selects
// the first available bus.
func OnBus(name string) Option {
	return func(s *settings) Option {
		old := s.bus
		s.bus = name
		return OnBus(old)
	}
}

// OnAddr can be used to specify alternative I²C address.
// By default, the address is 0x18.
func OnAddr(addr uint16) Option {
	return func(s *settings) Option {
		old := s.addr
		s.addr = addr
		return OnAddr(old)
	}
}

// WithSensor makes a monitor read from sensor instead of opening the I²C
// pressure sensor.
func WithSensor(sensor Sensor) Option {
	return func(s *settings) Option {
		old := s.sensor
		s.sensor = sensor
		return WithSensor(old)
	}
}

// OnEvent registers a function called by a monitor for every processed
// reading.
func OnEvent(fn func(Event)) Option {
	return func(s *settings) Option {
		old := s.onEvent
		s.onEvent = fn
		return OnEvent(old)
	}
}
