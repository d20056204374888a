package cuffbp

// Pressure converts a raw sensor count to mmHg using the sensor transfer
// function. No clamping is done: counts outside [OMin, OMax] map to
// pressures outside [PMin, PMax].
func Pressure(count float64) float64 {
	return (count-OMin)/(OMax-OMin)*(PMax-PMin) + PMin
}

// RawCount converts a pressure in mmHg back to the sensor count that
// reports it, limited to the 24-bit output range.
func RawCount(pressure float64) uint32 {
	c := (pressure-PMin)/(PMax-PMin)*(OMax-OMin) + OMin
	switch {
	case c < 0:
		return 0
	case c > maxCount:
		return maxCount
	}
	return uint32(c + 0.5)
}
