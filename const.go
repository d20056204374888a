package cuffbp

import "time"

// Sensor transfer function. The MPR cuff sensor reports 0 to 300 mmHg
// between 2.5% and 22.5% of its 24-bit output range.
const (
	PMin = 0.0
	PMax = 300.0

	OMin = 0.025 * (1 << 24)
	OMax = 0.225 * (1 << 24)

	maxCount = 1<<24 - 1
)

// Phase thresholds in mmHg.
const (
	startPressure   = 150.0
	endPressure     = 30.0
	captureCeiling  = 140.0
	defaultCapacity = 1000
)

// Extraction thresholds as a fraction of the maximum slope.
const (
	systolicRatio  = 0.5
	diastolicRatio = 0.8
)

// hrBias compensates for the sensor lag. Tuned against a handful of
// reference measurements on a single cuff; not a physical constant.
const hrBias = 0.5

// Pace thresholds in mmHg per sample, calibrated at refInterval.
const (
	refInterval = 79 * time.Millisecond
	paceSlow    = 0.05
	paceFast    = 1.75
)

const defaultTimeout = 3 * time.Minute
