package cuffbp

// Category is a blood pressure category for adults.
type Category int

// Blood pressure categories.
const (
	Indeterminate Category = iota
	Normal
	Elevated
	Hypertension1
	Hypertension2
)

func (c Category) String() string {
	switch c {
	case Normal:
		return "Normal"
	case Elevated:
		return "Elevated"
	case Hypertension1:
		return "Hypertension Stage 1"
	case Hypertension2:
		return "Hypertension Stage 2"
	}
	return "Indeterminate"
}

// Advice returns a short recommendation for the category.
func (c Category) Advice() string {
	switch c {
	case Hypertension1, Hypertension2:
		return "Consult a physician"
	case Elevated:
		return "Relax"
	case Normal:
		return "Normal"
	}
	return "Measure again"
}

// Classify maps a systolic and diastolic pressure in mmHg to a category.
// The first matching rule wins.
func Classify(systolic, diastolic float64) Category {
	switch {
	case systolic > 140 && diastolic > 90:
		return Hypertension2
	case systolic > 130 && diastolic > 81:
		return Hypertension1
	case systolic > 120:
		return Elevated
	}
	return Normal
}
