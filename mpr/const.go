package mpr

import "time"

// Device constants
const (
	Addr = 0x18

	cmdMeasure = 0xAA
)

// Status flags
const (
	Powered   Status = (1 << 6)
	Busy      Status = (1 << 5)
	Integrity Status = (1 << 2)
	Saturated Status = (1 << 0)
)

// Timing. The datasheet asks for at least 5ms between the measure command
// and the read.
const (
	conversionDelay = 15 * time.Millisecond
	busyPoll        = time.Millisecond
	maxBusyPolls    = 20
)
