package astro

import (
	"fmt"
	"sort"
)

// Star represents a cataloged star with position and brightness.
type Star struct {
	Name    string  // Common name (e.g., "Sirius", "Vega")
	RAHours float64 // Right Ascension in hours (J2000, 0-24)
	DecDeg  float64 // Declination in degrees (J2000, -90 to +90)
	Mag     float64 // Apparent visual magnitude (lower = brighter)
}

// RAdeg returns the right ascension in degrees.
func (s Star) RAdeg() float64 {
	return HoursToDegrees(s.RAHours)
}

func (s Star) String() string {
	return fmt.Sprintf("%s (RA %.3fh, Dec %+.3f°, mag %.2f)", s.Name, s.RAHours, s.DecDeg, s.Mag)
}

// Brightest returns up to n stars ordered by ascending magnitude.
// Ties keep catalogue order. The input slice is not modified.
func Brightest(stars []Star, n int) []Star {
	if n <= 0 || len(stars) == 0 {
		return nil
	}
	sorted := make([]Star, len(stars))
	copy(sorted, stars)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Mag < sorted[j].Mag
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
