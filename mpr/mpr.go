// Package mpr reads raw pressure counts from a Honeywell MPR series sensor
// over I²C.
package mpr

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/host"
)

var (
	// ErrBusy is returned when the sensor is still converting after the
	// maximum wait.
	ErrBusy = errors.New("mpr: sensor busy")
	// ErrShortRead is returned when the bus returns less than a full
	// status and data word.
	ErrShortRead = errors.New("mpr: short read")
)

// Status is the status byte sent before every measurement.
type Status byte

// Valid reports whether the measurement that came with the status can be
// used.
func (s Status) Valid() bool {
	return s&Powered != 0 && s&(Busy|Integrity|Saturated) == 0
}

func (s Status) String() string {
	return fmt.Sprintf("%#08b", byte(s))
}

type conn interface {
	Tx(w, r []byte) error
}

// Device defines an MPR pressure sensor.
type Device struct {
	dev   conn
	bus   i2c.BusCloser
	sleep func(time.Duration)
}

// New returns a new MPR device.
//
// Argument "busName" can be used to specify the exact bus to use ("/dev/i2c-2", "I2C2", "2").
// Argument "addr" can be used to specify alternative address if default (0x18) is unavailable and changed.
// If "busName" argument is specified as an empty string "" the first available bus will be used.
func New(busName string, addr uint16) (*Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("mpr: could not initialize host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("mpr: could not open I2C bus: %w", err)
	}

	if addr == 0 {
		addr = Addr
	}

	return &Device{
		dev: &i2c.Dev{
			Addr: addr,
			Bus:  bus,
		},
		bus:   bus,
		sleep: time.Sleep,
	}, nil
}

// Close closes the devices and cleans after itself.
func (d *Device) Close() {
	if d.bus != nil {
		d.bus.Close()
	}
}

// Count triggers a measurement and returns the 24-bit pressure count.
// valid is false when the status byte flags the measurement.
func (d *Device) Count() (count uint32, valid bool, err error) {
	if err := d.dev.Tx([]byte{cmdMeasure, 0x00, 0x00}, nil); err != nil {
		return 0, false, fmt.Errorf("mpr: could not start measurement: %w", err)
	}
	d.sleep(conversionDelay)

	b := make([]byte, 4)
	for i := 0; ; i++ {
		if err := d.dev.Tx(nil, b); err != nil {
			return 0, false, fmt.Errorf("mpr: could not read measurement: %w", err)
		}
		if Status(b[0])&Busy == 0 {
			break
		}
		if i >= maxBusyPolls {
			return 0, false, ErrBusy
		}
		d.sleep(busyPoll)
	}

	count, status, err := decode(b)
	if err != nil {
		return 0, false, err
	}

	return count, status.Valid(), nil
}

// decode splits a status and data word. Data is sent MSB first.
func decode(b []byte) (uint32, Status, error) {
	if len(b) < 4 {
		return 0, 0, ErrShortRead
	}

	count := uint32(b[1])<<16 |
		uint32(b[2])<<8 |
		uint32(b[3])

	return count, Status(b[0]), nil
}
