// Package money holds currency helpers shared by services and payloads.
package money

import "math"

// Round2 rounds to cents. Totals are computed on raw float64s; rounding
// happens only at reporting boundaries.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
