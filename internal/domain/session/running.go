package session

import "github.com/okian/stride/internal/domain/report"

// Running calibration constants. The stride length is shared with walking;
// the calorie coefficients are fixed calibration values, not derived.
const (
	strideLengthM      = 0.65 // distance covered by one step, meters
	runSpeedMultiplier = 18.0
	runSpeedShift      = 1.79
)

// Running is a running session.
type Running struct {
	base
}

// NewRunning builds a running session from raw sensor inputs.
func NewRunning(actions int, durationHours, weightKg float64) *Running {
	return &Running{base{
		actions:  actions,
		duration: durationHours,
		weight:   weightKg,
	}}
}

// Distance returns the covered distance in km.
func (r *Running) Distance() float64 {
	return r.distance(strideLengthM)
}

// MeanSpeed returns the mean speed in km/h.
func (r *Running) MeanSpeed() float64 {
	return r.meanSpeed(strideLengthM)
}

// SpentCalories returns the energy spent in kcal.
func (r *Running) SpentCalories() float64 {
	return (runSpeedMultiplier*r.MeanSpeed() + runSpeedShift) *
		r.weight / metersPerKm * (r.duration * minutesPerHour)
}

// BuildReport assembles the session summary.
func (r *Running) BuildReport() report.Report {
	return report.New("Running", r.duration, r.Distance(), r.MeanSpeed(), r.SpentCalories())
}
