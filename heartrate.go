package cuffbp

import "math"

// heartRate estimates beats per minute from the rising slopes between the
// systolic and diastolic points. Each rising slope counts as one pulse.
func heartRate(s *tSeries, b bounds, bias float64) Estimate {
	if b.systolic < 1 || b.diastolic < 0 || b.diastolic >= len(s.readings) {
		return Estimate{}
	}

	n := 0
	for i := b.systolic - 1; i < b.diastolic && i < len(s.slopes); i++ {
		if s.slopes[i].ok && s.slopes[i].value > 0 {
			n++
		}
	}

	dt := s.readings[b.diastolic].Time - s.readings[b.systolic].Time
	if n == 0 || dt <= 0 {
		return Estimate{}
	}

	bpm := 60 / (float64(n)/dt + bias)
	if math.IsNaN(bpm) || math.IsInf(bpm, 0) || bpm <= 0 {
		return Estimate{}
	}

	return Estimate{Value: bpm, Valid: true}
}
