// Package astro provides star records and celestial coordinate helpers.
package astro

import "math"

// Equatorial coordinate bounds.
const (
	RAHoursMax = 24.0 // exclusive upper bound for right ascension
	DecDegMin  = -90.0
	DecDegMax  = 90.0

	degPerHour = 15.0
)

// HoursToDegrees converts right ascension in hours to degrees.
func HoursToDegrees(h float64) float64 {
	return h * degPerHour
}

// DegreesToHours converts right ascension in degrees to hours.
func DegreesToHours(deg float64) float64 {
	return deg / degPerHour
}

// ValidRA reports whether h is a finite right ascension in [0, 24).
func ValidRA(h float64) bool {
	return isFinite(h) && h >= 0 && h < RAHoursMax
}

// ValidDec reports whether d is a finite declination in [-90, 90].
func ValidDec(d float64) bool {
	return isFinite(d) && d >= DecDegMin && d <= DecDegMax
}

// NormalizeHours wraps an hour angle into [0, 24).
func NormalizeHours(h float64) float64 {
	h = math.Mod(h, RAHoursMax)
	if h < 0 {
		h += RAHoursMax
	}
	return h
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
