package render

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-starchart/internal/errors"
)

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	DefaultTheme = ThemeDark
)

// palettes holds background/foreground hex pairs per theme.
var palettes = map[string][2]string{
	ThemeDark:  {"#000000", "#ffffff"},
	ThemeLight: {"#f2f2f2", "#111111"},
}

// Theme is a resolved chart palette.
type Theme struct {
	Name       string
	Background colorful.Color
	Foreground colorful.Color

	MarkerAlpha float64 // opacity of star markers
	GridAlpha   float64 // opacity of grid lines and frame
}

// ThemeNames returns the supported theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupTheme resolves a theme by name.
func LookupTheme(name string) (Theme, error) {
	pal, ok := palettes[name]
	if !ok {
		return Theme{}, errors.NewInvalidConfigError("theme", fmt.Sprintf("%q", name),
			"must be one of "+strings.Join(ThemeNames(), ", "))
	}

	bg, err := colorful.Hex(pal[0])
	if err != nil {
		return Theme{}, fmt.Errorf("theme %s background: %w", name, err)
	}
	fg, err := colorful.Hex(pal[1])
	if err != nil {
		return Theme{}, fmt.Errorf("theme %s foreground: %w", name, err)
	}

	return Theme{
		Name:        name,
		Background:  bg,
		Foreground:  fg,
		MarkerAlpha: 0.8,
		GridAlpha:   0.2,
	}, nil
}

// BackgroundColor returns the opaque background colour.
func (t Theme) BackgroundColor() color.Color {
	return withAlpha(t.Background, 1)
}

// ForegroundColor returns the opaque foreground colour used for text.
func (t Theme) ForegroundColor() color.Color {
	return withAlpha(t.Foreground, 1)
}

// MarkerColor returns the translucent marker colour.
func (t Theme) MarkerColor() color.Color {
	return withAlpha(t.Foreground, t.MarkerAlpha)
}

// GridColor returns the translucent grid colour.
func (t Theme) GridColor() color.Color {
	return withAlpha(t.Foreground, t.GridAlpha)
}

// Hex returns the background and foreground as hex strings.
func (t Theme) Hex() (bg, fg string) {
	return t.Background.Hex(), t.Foreground.Hex()
}

func withAlpha(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}
