package colors

import (
	"math"
	"testing"

	"github.com/lendaria/calculadoria/internal/catalog"
)

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"#FFFFFF", RGB{255, 255, 255}, true},
		{"000000", RGB{0, 0, 0}, true},
		{" #beb484 ", RGB{190, 180, 132}, true},
		{"#FFF", RGB{}, false},
		{"#GGGGGG", RGB{}, false},
		{"", RGB{}, false},
	}

	for _, c := range cases {
		got, ok := ParseHex(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("ParseHex(%q) = %+v, %v; want %+v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestContrastRatio_BlackOnWhite(t *testing.T) {
	ratio := ContrastRatio("#000000", "#FFFFFF")
	if math.Abs(ratio-21) > 0.01 {
		t.Fatalf("black/white ratio = %v, want 21", ratio)
	}

	if r := ContrastRatio("#808080", "#808080"); math.Abs(r-1) > 0.01 {
		t.Fatalf("identical colors ratio = %v, want 1", r)
	}
}

func TestContrastRatio_Symmetric(t *testing.T) {
	a := ContrastRatio("#BEB484", "#161616")
	b := ContrastRatio("#161616", "#BEB484")
	if math.Abs(a-b) > 1e-12 {
		t.Fatalf("ratio not symmetric: %v vs %v", a, b)
	}
}

func TestRating(t *testing.T) {
	if got := Rating("#000000", "#FFFFFF"); got != GradeAAA {
		t.Fatalf("black/white grade = %v, want AAA", got)
	}
	if got := Rating("#767676", "#FFFFFF"); got != GradeAA {
		t.Fatalf("grey/white grade = %v, want AA", got)
	}
	if got := Rating("#AAAAAA", "#FFFFFF"); got != GradeFail {
		t.Fatalf("light grey/white grade = %v, want Fail", got)
	}
}

func TestMeetsAA_LargeTextThreshold(t *testing.T) {
	// ~3.9:1 pair: passes AA for large text only.
	fg, bg := "#8A8A8A", "#FFFFFF"
	ratio := ContrastRatio(fg, bg)
	if ratio < 3 || ratio >= 4.5 {
		t.Fatalf("test pair ratio = %v, want within [3, 4.5)", ratio)
	}
	if MeetsAA(fg, bg, false) {
		t.Fatal("pair must fail AA for normal text")
	}
	if !MeetsAA(fg, bg, true) {
		t.Fatal("pair must pass AA for large text")
	}
}

func TestLuminance_MalformedIsZero(t *testing.T) {
	if got := Luminance("not-a-color"); got != 0 {
		t.Fatalf("Luminance(junk) = %v, want 0", got)
	}
}

func TestAdjustBrightness(t *testing.T) {
	if got := AdjustBrightness("#808080", 100); got != "#FFFFFF" {
		t.Fatalf("doubling #808080 = %q, want #FFFFFF", got)
	}
	if got := AdjustBrightness("#808080", -100); got != "#000000" {
		t.Fatalf("zeroing #808080 = %q, want #000000", got)
	}
	if got := AdjustBrightness("junk", 50); got != "junk" {
		t.Fatalf("malformed input = %q, want passthrough", got)
	}
}

func TestValidateTheme_DefaultThemesPass(t *testing.T) {
	for _, name := range catalog.ThemeNames() {
		theme, _ := catalog.ThemeByName(name)
		if issues := ValidateTheme(theme); len(issues) != 0 {
			t.Fatalf("theme %q reported issues: %v", name, issues)
		}
	}
}

func TestValidateTheme_FlagsLowContrast(t *testing.T) {
	theme := catalog.DefaultTheme
	theme.Text = theme.Background

	if issues := ValidateTheme(theme); len(issues) == 0 {
		t.Fatal("expected low-contrast text to be flagged")
	}
}

func TestAutoFixTheme(t *testing.T) {
	theme := catalog.DefaultTheme
	theme.Text = "#1A1A1A" // near-invisible on the dark background

	fixed := AutoFixTheme(theme)
	if fixed.Text != "#FFFFFF" {
		t.Fatalf("fixed text = %q, want #FFFFFF on dark background", fixed.Text)
	}
	if !MeetsAA(fixed.Text, fixed.Background, false) {
		t.Fatal("fixed theme must pass AA for body text")
	}

	// A compliant theme is returned unchanged.
	if again := AutoFixTheme(fixed); again != fixed {
		t.Fatalf("AutoFixTheme changed a compliant theme: %+v", again)
	}
}
