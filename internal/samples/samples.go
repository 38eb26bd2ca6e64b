// Package samples holds the fixed sensor-package sample set the driver runs.
package samples

import "github.com/okian/stride/internal/domain/session"

// Packages returns the hardcoded sample sensor packages, in report order.
func Packages() []session.Package {
	return []session.Package{
		{Code: session.CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
		{Code: session.CodeRunning, Data: []float64{15000, 1, 75}},
		{Code: session.CodeWalking, Data: []float64{9000, 1, 75, 180}},
	}
}
