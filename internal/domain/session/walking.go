package session

import "github.com/okian/stride/internal/domain/report"

// Walking calibration constants.
const (
	walkWeightMultiplier      = 0.035
	walkSpeedHeightMultiplier = 0.029
	kmhToMetersPerSecond      = 0.278
	cmPerMeter                = 100.0
)

// Walking is a sports walking session. On top of the shared inputs it
// carries the athlete's height, which the calorie formula depends on.
type Walking struct {
	base
	height float64 // athlete height, cm
}

// NewWalking builds a walking session from raw sensor inputs.
func NewWalking(actions int, durationHours, weightKg, heightCm float64) *Walking {
	return &Walking{
		base: base{
			actions:  actions,
			duration: durationHours,
			weight:   weightKg,
		},
		height: heightCm,
	}
}

// Distance returns the covered distance in km.
func (w *Walking) Distance() float64 {
	return w.distance(strideLengthM)
}

// MeanSpeed returns the mean speed in km/h.
func (w *Walking) MeanSpeed() float64 {
	return w.meanSpeed(strideLengthM)
}

// SpentCalories returns the energy spent in kcal. The formula works on the
// speed in m/s and the height in meters.
func (w *Walking) SpentCalories() float64 {
	speedMS := w.MeanSpeed() * kmhToMetersPerSecond
	return (walkWeightMultiplier*w.weight +
		speedMS*speedMS/(w.height/cmPerMeter)*walkSpeedHeightMultiplier*w.weight) *
		(w.duration * minutesPerHour)
}

// BuildReport assembles the session summary.
func (w *Walking) BuildReport() report.Report {
	return report.New("Walking", w.duration, w.Distance(), w.MeanSpeed(), w.SpentCalories())
}
