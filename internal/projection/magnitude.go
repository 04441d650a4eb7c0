package projection

import (
	"math"

	"github.com/litescript/ls-starchart/internal/errors"
)

// MagnitudeScale maps apparent magnitude onto a marker radius.
//
// The radius follows the square root of relative flux,
// 10^(-0.2*(mag-Bright)), so marker area tracks brightness. The curve is
// rescaled so Bright maps to MaxSize and Faint maps to MinSize; magnitudes
// outside [Bright, Faint] are clamped.
type MagnitudeScale struct {
	Bright  float64 // magnitude drawn at MaxSize
	Faint   float64 // magnitude drawn at MinSize
	MinSize float64
	MaxSize float64
}

// DefaultMagnitudeScale covers naked-eye stars from Sirius to the
// visibility limit.
func DefaultMagnitudeScale() MagnitudeScale {
	return MagnitudeScale{
		Bright:  -1.5,
		Faint:   6.0,
		MinSize: 1.5,
		MaxSize: 12,
	}
}

// Validate checks that the scale is well formed.
func (s MagnitudeScale) Validate() error {
	if !(s.Faint > s.Bright) {
		return errors.NewInvalidConfigError("magnitude range", s.Faint-s.Bright, "faint limit must exceed bright limit")
	}
	if !(s.MinSize > 0) || !(s.MaxSize > s.MinSize) {
		return errors.NewInvalidConfigError("marker size", s.MaxSize-s.MinSize, "need 0 < min < max")
	}
	return nil
}

// Size returns the marker radius for mag. It is strictly decreasing on
// [Bright, Faint] and always within [MinSize, MaxSize].
func (s MagnitudeScale) Size(mag float64) float64 {
	m := math.Max(s.Bright, math.Min(s.Faint, mag))
	floor := relativeRadius(s.Faint - s.Bright)
	f := (relativeRadius(m-s.Bright) - floor) / (1 - floor)
	return s.MinSize + (s.MaxSize-s.MinSize)*f
}

// relativeRadius is the radius ratio for a magnitude offset dm, so that the
// area ratio equals the flux ratio 10^(-0.4*dm).
func relativeRadius(dm float64) float64 {
	return math.Pow(10, -0.2*dm)
}
