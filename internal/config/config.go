// Package config loads measurement settings from a TOML file.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/cgxeiji/cuffbp"
)

// Duration is a time.Duration written as a string ("79ms", "3m").
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Config holds every tunable of a measurement. Zero values keep the
// library defaults.
type Config struct {
	Sensor struct {
		Bus  string `toml:"bus"`
		Addr uint16 `toml:"addr"`
	} `toml:"sensor"`

	Session struct {
		Capacity       int      `toml:"capacity"`
		StartPressure  float64  `toml:"start_pressure"`
		EndPressure    float64  `toml:"end_pressure"`
		CaptureCeiling float64  `toml:"capture_ceiling"`
		Interval       Duration `toml:"interval"`
		Timeout        Duration `toml:"timeout"`
	} `toml:"session"`

	Calibration struct {
		SystolicRatio  float64  `toml:"systolic_ratio"`
		DiastolicRatio float64  `toml:"diastolic_ratio"`
		HeartRateBias  *float64 `toml:"heart_rate_bias"`
	} `toml:"calibration"`

	NATS struct {
		URL string `toml:"url"`
	} `toml:"nats"`

	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Load reads a configuration file.
func Load(path string) (*Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("config: could not load %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &c, nil
}

// Parse reads a configuration from a TOML document.
func Parse(doc string) (*Config, error) {
	var c Config
	if _, err := toml.Decode(doc, &c); err != nil {
		return nil, fmt.Errorf("config: could not parse: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &c, nil
}

func (c *Config) validate() error {
	s := c.Session
	if s.Capacity < 0 {
		return fmt.Errorf("negative capacity %d", s.Capacity)
	}
	if s.StartPressure != 0 && s.EndPressure != 0 && s.EndPressure >= s.StartPressure {
		return fmt.Errorf("end pressure %v must be below start pressure %v", s.EndPressure, s.StartPressure)
	}
	if r := c.Calibration.SystolicRatio; r < 0 || r > 1 {
		return fmt.Errorf("systolic ratio %v out of [0, 1]", r)
	}
	if r := c.Calibration.DiastolicRatio; r < 0 || r > 1 {
		return fmt.Errorf("diastolic ratio %v out of [0, 1]", r)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level. It defaults to info.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return l, nil
}

// Options converts the configuration to monitor options. Unset values are
// left out so the library defaults apply.
func (c *Config) Options() []cuffbp.Option {
	var opts []cuffbp.Option

	if c.Sensor.Bus != "" {
		opts = append(opts, cuffbp.OnBus(c.Sensor.Bus))
	}
	if c.Sensor.Addr != 0 {
		opts = append(opts, cuffbp.OnAddr(c.Sensor.Addr))
	}

	s := c.Session
	if s.Capacity > 0 {
		opts = append(opts, cuffbp.Capacity(s.Capacity))
	}
	if s.StartPressure != 0 {
		opts = append(opts, cuffbp.StartPressure(s.StartPressure))
	}
	if s.EndPressure != 0 {
		opts = append(opts, cuffbp.EndPressure(s.EndPressure))
	}
	if s.CaptureCeiling != 0 {
		opts = append(opts, cuffbp.CaptureCeiling(s.CaptureCeiling))
	}
	if s.Interval.Duration > 0 {
		opts = append(opts, cuffbp.Interval(s.Interval.Duration))
	}
	if s.Timeout.Duration > 0 {
		opts = append(opts, cuffbp.Timeout(s.Timeout.Duration))
	}

	cal := c.Calibration
	if cal.SystolicRatio != 0 || cal.DiastolicRatio != 0 {
		sys, dia := cal.SystolicRatio, cal.DiastolicRatio
		if sys == 0 {
			sys = 0.5
		}
		if dia == 0 {
			dia = 0.8
		}
		opts = append(opts, cuffbp.Ratios(sys, dia))
	}
	if cal.HeartRateBias != nil {
		opts = append(opts, cuffbp.HeartRateBias(*cal.HeartRateBias))
	}

	return opts
}
