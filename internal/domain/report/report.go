// Package report contains the computed summary of a single exercise session.
package report

import "fmt"

// messageTemplate is the fixed report line format. Every numeric field is
// rendered fixed-point with exactly three decimals and a dot separator,
// independent of locale.
const messageTemplate = "Session type: %s; " +
	"Duration: %.3f h.; " +
	"Distance: %.3f km; " +
	"Mean speed: %.3f km/h; " +
	"Calories burned: %.3f."

// Report is the derived summary of one session. It is built once per
// session, formatted, and discarded; nothing persists it.
type Report struct {
	SessionType   string  // human-facing variant name, e.g. "Running"
	DurationHours float64 // session duration in hours
	DistanceKm    float64 // covered distance in km
	MeanSpeedKmh  float64 // mean speed in km/h
	Calories      float64 // energy spent in kcal
}

// New assembles a Report from the computed session metrics.
func New(sessionType string, durationHours, distanceKm, meanSpeedKmh, calories float64) Report {
	return Report{
		SessionType:   sessionType,
		DurationHours: durationHours,
		DistanceKm:    distanceKm,
		MeanSpeedKmh:  meanSpeedKmh,
		Calories:      calories,
	}
}

// Message renders the report as a single fixed-format line.
func (r Report) Message() string {
	return fmt.Sprintf(messageTemplate,
		r.SessionType,
		r.DurationHours,
		r.DistanceKm,
		r.MeanSpeedKmh,
		r.Calories,
	)
}
