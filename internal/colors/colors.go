// Package colors implements the WCAG contrast math used to validate color
// themes: sRGB relative luminance, contrast ratios and AA/AAA ratings. It is
// advisory only; theme validation never blocks pricing or submission.
package colors

import (
	"fmt"
	"math"
	"strings"

	"github.com/lendaria/calculadoria/internal/catalog"
)

// RGB is a color with 8-bit channels.
type RGB struct {
	R, G, B int
}

// ParseHex parses a "#RRGGBB" color (the leading # is optional). Malformed
// values are rejected so callers can keep the last valid color.
func ParseHex(hex string) (RGB, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	for _, c := range s {
		if !isHexDigit(c) {
			return RGB{}, false
		}
	}

	var rgb RGB
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &rgb.R, &rgb.G, &rgb.B); err != nil {
		return RGB{}, false
	}
	return rgb, true
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Hex renders the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Luminance computes WCAG relative luminance for a hex color. Malformed
// colors have luminance 0.
func Luminance(hex string) float64 {
	rgb, ok := ParseHex(hex)
	if !ok {
		return 0
	}

	linear := func(channel int) float64 {
		c := float64(channel) / 255
		if c <= 0.03928 {
			return c / 12.92
		}
		return math.Pow((c+0.055)/1.055, 2.4)
	}

	return 0.2126*linear(rgb.R) + 0.7152*linear(rgb.G) + 0.0722*linear(rgb.B)
}

// ContrastRatio computes the WCAG contrast ratio between two colors,
// from 1 (identical) to 21 (black on white).
func ContrastRatio(a, b string) float64 {
	la := Luminance(a)
	lb := Luminance(b)
	brightest := math.Max(la, lb)
	darkest := math.Min(la, lb)
	return (brightest + 0.05) / (darkest + 0.05)
}

// MeetsAA reports WCAG AA compliance (4.5:1, or 3:1 for large text).
func MeetsAA(foreground, background string, largeText bool) bool {
	ratio := ContrastRatio(foreground, background)
	if largeText {
		return ratio >= 3
	}
	return ratio >= 4.5
}

// MeetsAAA reports WCAG AAA compliance (7:1, or 4.5:1 for large text).
func MeetsAAA(foreground, background string, largeText bool) bool {
	ratio := ContrastRatio(foreground, background)
	if largeText {
		return ratio >= 4.5
	}
	return ratio >= 7
}

// Grade is an accessibility rating for a color pair.
type Grade string

const (
	GradeAAA  Grade = "AAA"
	GradeAA   Grade = "AA"
	GradeFail Grade = "Fail"
)

// Rating grades the contrast of a foreground/background pair for normal
// body text.
func Rating(foreground, background string) Grade {
	ratio := ContrastRatio(foreground, background)
	switch {
	case ratio >= 7:
		return GradeAAA
	case ratio >= 4.5:
		return GradeAA
	default:
		return GradeFail
	}
}

// AdjustBrightness lightens (positive percent) or darkens (negative
// percent) a color. Malformed input is returned unchanged.
func AdjustBrightness(hex string, percent float64) string {
	rgb, ok := ParseHex(hex)
	if !ok {
		return hex
	}

	adjust := func(channel int) int {
		return clampChannel(int(math.Round(float64(channel) * (1 + percent/100))))
	}
	return RGB{R: adjust(rgb.R), G: adjust(rgb.G), B: adjust(rgb.B)}.Hex()
}

// ValidateTheme checks the standard pairings of a theme and returns the
// list of problems found. An empty result means the theme passes AA.
func ValidateTheme(theme catalog.ColorTheme) []string {
	var issues []string

	if !MeetsAA(theme.Text, theme.Background, false) {
		issues = append(issues, "texto principal sem contraste suficiente com o fundo")
	}
	if !MeetsAA(theme.TextSecondary, theme.Background, false) {
		issues = append(issues, "texto secundário sem contraste suficiente com o fundo")
	}
	if !MeetsAA(theme.Primary, theme.Background, false) {
		issues = append(issues, "cor primária sem contraste suficiente com o fundo")
	}
	if !MeetsAA(theme.Text, theme.Surface, false) {
		issues = append(issues, "texto sem contraste suficiente em superfícies")
	}

	return issues
}

// AutoFixTheme nudges a theme toward AA compliance: text colors snap to
// black/white/grey against the background and the primary color is shifted
// 30% toward the opposite brightness.
func AutoFixTheme(theme catalog.ColorTheme) catalog.ColorTheme {
	fixed := theme
	lightBackground := Luminance(theme.Background) > 0.5

	if !MeetsAA(theme.Text, theme.Background, false) {
		if lightBackground {
			fixed.Text = "#000000"
		} else {
			fixed.Text = "#FFFFFF"
		}
	}
	if !MeetsAA(theme.TextSecondary, theme.Background, false) {
		if lightBackground {
			fixed.TextSecondary = "#666666"
		} else {
			fixed.TextSecondary = "#CCCCCC"
		}
	}
	if !MeetsAA(theme.Primary, theme.Background, false) {
		if lightBackground {
			fixed.Primary = AdjustBrightness(theme.Primary, -30)
		} else {
			fixed.Primary = AdjustBrightness(theme.Primary, 30)
		}
	}

	return fixed
}
