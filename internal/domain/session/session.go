// Package session defines the exercise session variants and the metric
// formulas that turn raw sensor inputs into distance, mean speed and
// calorie figures.
//
// Conventions:
// - Sessions are immutable value objects; every metric method is pure.
// - External errors must be wrapped via this package's sentinel errors.
package session

import "github.com/okian/stride/internal/domain/report"

// Unit conversion constants shared by all variants.
const (
	metersPerKm    = 1000.0
	minutesPerHour = 60.0
)

// Session is the capability set every workout variant implements.
type Session interface {
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the mean speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns the energy spent in kcal.
	SpentCalories() float64
	// BuildReport assembles the session summary.
	BuildReport() report.Report
}

// base holds the raw sensor inputs shared by all variants. Duration must be
// positive (metrics divide by it); the sensors guarantee this and the
// formulas do not re-check it.
//
// base deliberately has no SpentCalories: calorie calibration is
// variant-specific, so a variant that forgets to implement it does not
// satisfy Session and fails to compile rather than report a bogus number.
type base struct {
	actions  int     // action count: steps, or pool laps for swimming
	duration float64 // session duration, hours
	weight   float64 // athlete weight, kg
}

// distance converts the action count into km given the per-action length
// in meters.
func (b base) distance(actionLenM float64) float64 {
	return float64(b.actions) * actionLenM / metersPerKm
}

// meanSpeed is the default speed formula: distance over duration.
func (b base) meanSpeed(actionLenM float64) float64 {
	return b.distance(actionLenM) / b.duration
}
