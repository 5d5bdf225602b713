package catalog

// ColorTheme is the 8-color palette applied to the live preview and the
// final proposal document.
type ColorTheme struct {
	Primary       string
	Secondary     string
	Accent        string
	Background    string
	Surface       string
	Text          string
	TextSecondary string
	Border        string
}

// LegendaryTheme is the default dark theme.
var LegendaryTheme = ColorTheme{
	Primary:       "#BEB484",
	Secondary:     "#BEB484",
	Accent:        "#BEB484",
	Background:    "#161616",
	Surface:       "#242424",
	Text:          "#FFFFFF",
	TextSecondary: "#B8B8B8",
	Border:        "#484848",
}

// ProfessionalTheme is a light theme in dark blue and brown.
var ProfessionalTheme = ColorTheme{
	Primary:       "#002D5A",
	Secondary:     "#8B4513",
	Accent:        "#002D5A",
	Background:    "#FFFFFF",
	Surface:       "#F8FAFC",
	Text:          "#1A202C",
	TextSecondary: "#2D3748",
	Border:        "#E2E8F0",
}

// ElegantTheme is a light theme in dark slate and navy.
var ElegantTheme = ColorTheme{
	Primary:       "#2F4F4F",
	Secondary:     "#000080",
	Accent:        "#2F4F4F",
	Background:    "#FFFFFF",
	Surface:       "#F8FAFC",
	Text:          "#1A202C",
	TextSecondary: "#2D3748",
	Border:        "#E2E8F0",
}

// NaturalTheme is a light theme in dark green and brown.
var NaturalTheme = ColorTheme{
	Primary:       "#006400",
	Secondary:     "#8B4513",
	Accent:        "#006400",
	Background:    "#FFFFFF",
	Surface:       "#F8FAFC",
	Text:          "#1A202C",
	TextSecondary: "#2D3748",
	Border:        "#E2E8F0",
}

// DefaultTheme is the theme applied before the user picks one.
var DefaultTheme = LegendaryTheme

var themeNames = []string{"lendario", "profissional", "elegante", "natural"}

// ThemeNames lists the predefined theme keys in display order.
func ThemeNames() []string {
	names := make([]string, len(themeNames))
	copy(names, themeNames)
	return names
}

// ThemeByName returns a predefined theme by key.
func ThemeByName(name string) (ColorTheme, bool) {
	switch name {
	case "lendario":
		return LegendaryTheme, true
	case "profissional":
		return ProfessionalTheme, true
	case "elegante":
		return ElegantTheme, true
	case "natural":
		return NaturalTheme, true
	}
	return ColorTheme{}, false
}
