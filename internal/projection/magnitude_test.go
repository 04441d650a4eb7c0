package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-starchart/internal/errors"
)

func TestMagnitudeScale_Endpoints(t *testing.T) {
	s := DefaultMagnitudeScale()

	assert.InDelta(t, s.MaxSize, s.Size(s.Bright), 1e-9)
	assert.InDelta(t, s.MinSize, s.Size(s.Faint), 1e-9)
}

func TestMagnitudeScale_StrictlyDecreasing(t *testing.T) {
	s := DefaultMagnitudeScale()

	prev := s.Size(-1.5)
	for mag := -1.49; mag <= 6.0; mag += 0.01 {
		size := s.Size(mag)
		if size >= prev {
			t.Fatalf("Size(%v) = %v, not smaller than previous %v", mag, size, prev)
		}
		prev = size
	}
}

func TestMagnitudeScale_Bounded(t *testing.T) {
	s := DefaultMagnitudeScale()

	for mag := -5.0; mag <= 12; mag += 0.25 {
		size := s.Size(mag)
		if size < s.MinSize || size > s.MaxSize {
			t.Errorf("Size(%v) = %v, outside [%v, %v]", mag, size, s.MinSize, s.MaxSize)
		}
	}

	// Clamped beyond the limits
	assert.Equal(t, s.Size(-1.5), s.Size(-4))
	assert.Equal(t, s.Size(6), s.Size(9))
}

func TestMagnitudeScale_BrightStarsDominate(t *testing.T) {
	s := DefaultMagnitudeScale()

	// One magnitude brighter should give a clearly larger marker near the
	// bright end of the range.
	sirius := s.Size(-1.46)
	vega := s.Size(0.03)
	polaris := s.Size(2.02)

	assert.Greater(t, sirius-vega, 1.0)
	assert.Greater(t, vega-polaris, 1.0)
}

func TestMagnitudeScale_Validate(t *testing.T) {
	require.NoError(t, DefaultMagnitudeScale().Validate())

	tests := []struct {
		name  string
		scale MagnitudeScale
	}{
		{"inverted range", MagnitudeScale{Bright: 6, Faint: -1.5, MinSize: 1, MaxSize: 10}},
		{"empty range", MagnitudeScale{Bright: 1, Faint: 1, MinSize: 1, MaxSize: 10}},
		{"zero min size", MagnitudeScale{Bright: -1.5, Faint: 6, MinSize: 0, MaxSize: 10}},
		{"min above max", MagnitudeScale{Bright: -1.5, Faint: 6, MinSize: 10, MaxSize: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scale.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidConfig(err))
		})
	}
}
