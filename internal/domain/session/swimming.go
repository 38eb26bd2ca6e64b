package session

import "github.com/okian/stride/internal/domain/report"

// Swimming calibration constants. A swimming "action" is one pool lap, not
// a step, hence the longer per-action length.
const (
	lapLengthM           = 1.38 // distance covered by one lap action, meters
	swimSpeedShift       = 1.1
	swimWeightMultiplier = 2.0
)

// Swimming is a swimming session. Mean speed is computed from the pool
// geometry rather than from the action count.
type Swimming struct {
	base
	poolLength  float64 // pool length, meters
	poolLengths int     // how many times the pool was crossed
}

// NewSwimming builds a swimming session from raw sensor inputs.
func NewSwimming(actions int, durationHours, weightKg, poolLengthM float64, poolLengths int) *Swimming {
	return &Swimming{
		base: base{
			actions:  actions,
			duration: durationHours,
			weight:   weightKg,
		},
		poolLength:  poolLengthM,
		poolLengths: poolLengths,
	}
}

// Distance returns the covered distance in km.
func (s *Swimming) Distance() float64 {
	return s.distance(lapLengthM)
}

// MeanSpeed returns the mean speed in km/h, derived from the pool length
// and the crossing count instead of the default action-based formula.
func (s *Swimming) MeanSpeed() float64 {
	return s.poolLength * float64(s.poolLengths) / metersPerKm / s.duration
}

// SpentCalories returns the energy spent in kcal.
func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimSpeedShift) * swimWeightMultiplier * s.weight * s.duration
}

// BuildReport assembles the session summary.
func (s *Swimming) BuildReport() report.Report {
	return report.New("Swimming", s.duration, s.Distance(), s.MeanSpeed(), s.SpentCalories())
}
