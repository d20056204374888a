package cuffbp

import (
	"encoding/json"
	"fmt"
)

// Estimate is a value that may not have been determined.
type Estimate struct {
	Value float64
	Valid bool
}

func (e Estimate) String() string {
	if !e.Valid {
		return "indeterminate"
	}
	return fmt.Sprintf("%.1f", e.Value)
}

// MarshalJSON encodes an indeterminate estimate as null.
func (e Estimate) MarshalJSON() ([]byte, error) {
	if !e.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(e.Value)
}

// Result is the outcome of a completed session.
type Result struct {
	// Systolic and Diastolic pressures in mmHg.
	Systolic  Estimate `json:"systolic"`
	Diastolic Estimate `json:"diastolic"`
	// HeartRate in beats per minute.
	HeartRate Estimate `json:"heart_rate"`
	Category  Category `json:"-"`
	// Samples is the number of readings captured during deflation.
	Samples int `json:"samples"`
	// Degraded is set when the capture buffer filled up before the cuff
	// was released, so only part of the deflation was analysed.
	Degraded bool `json:"degraded"`
}

// Complete reports whether every field was determined.
func (r Result) Complete() bool {
	return r.Systolic.Valid && r.Diastolic.Valid && r.HeartRate.Valid
}

func (r Result) String() string {
	s := fmt.Sprintf("systole=%v diastole=%v hr=%v (%v)",
		r.Systolic, r.Diastolic, r.HeartRate, r.Category)
	if r.Degraded {
		s += " [degraded]"
	}
	return s
}

// MarshalJSON adds the category label to the encoded result.
func (r Result) MarshalJSON() ([]byte, error) {
	type result Result
	return json.Marshal(struct {
		result
		Category string `json:"category"`
	}{
		result:   result(r),
		Category: r.Category.String(),
	})
}
