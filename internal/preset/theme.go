package preset

import (
	"fmt"
	"io"
)

// Theme is the legacy two-way surface, kept as a read-only projection of
// Variant. Premium is a modern-family skin and projects to the modern table.
type Theme string

const (
	ThemeModern Theme = "modern"
	ThemeTrad   Theme = "trad"
)

// Theme projects the variant onto the legacy theme.
func (v Variant) Theme() Theme {
	if v == Trad {
		return ThemeTrad
	}
	return ThemeModern
}

// ThemeConfig is one static table of presentation values, written onto the
// document root as CSS custom properties.
type ThemeConfig struct {
	Background      string
	BackgroundMuted string
	Surface         string
	Foreground      string
	ForegroundMuted string

	Primary           string
	PrimaryForeground string
	PrimaryContrast   string

	Secondary           string
	SecondaryForeground string

	Accent           string
	AccentForeground string
	AccentContrast   string

	Border string
	Ring   string

	FontFamily        string
	FontFamilyDisplay string
	FontFamilyBody    string

	Radius      string
	RadiusLarge string
	RadiusSmall string

	ShadowElevation1 string
	ShadowElevation2 string
	ShadowElevation3 string

	Spacing string

	BackdropBlur      string
	BackgroundTexture string
	PatternOpacity    string
}

var modernTheme = ThemeConfig{
	Background:      "hsl(0, 0%, 4%)",
	BackgroundMuted: "hsl(0, 0%, 6%)",
	Surface:         "hsl(0, 0%, 6%)",
	Foreground:      "hsl(0, 0%, 98%)",
	ForegroundMuted: "hsl(215, 20%, 65%)",

	Primary:           "hsl(45, 93%, 58%)",
	PrimaryForeground: "hsl(0, 0%, 98%)",
	PrimaryContrast:   "hsl(0, 0%, 9%)",

	Secondary:           "hsl(217, 32%, 17%)",
	SecondaryForeground: "hsl(0, 0%, 98%)",

	Accent:           "hsl(38, 92%, 50%)",
	AccentForeground: "hsl(0, 0%, 9%)",
	AccentContrast:   "hsl(0, 0%, 98%)",

	Border: "hsl(217, 32%, 17%)",
	Ring:   "hsl(45, 93%, 58%)",

	FontFamily:        "'Montserrat', sans-serif",
	FontFamilyDisplay: "'Montserrat', sans-serif",
	FontFamilyBody:    "'Montserrat', sans-serif",

	Radius:      "0.75rem",
	RadiusLarge: "1rem",
	RadiusSmall: "0.5rem",

	ShadowElevation1: "0 2px 4px rgba(0, 0, 0, 0.1)",
	ShadowElevation2: "0 4px 8px rgba(0, 0, 0, 0.15)",
	ShadowElevation3: "0 8px 16px rgba(0, 0, 0, 0.2)",

	Spacing: "0.25rem",

	BackdropBlur:      "blur(12px)",
	BackgroundTexture: "none",
	PatternOpacity:    "0",
}

// tradTheme is the Vietnamese traditional palette: lacquer red, jade green,
// imperial yellow over warm darks.
var tradTheme = ThemeConfig{
	Background:      "hsl(30, 15%, 5%)",
	BackgroundMuted: "hsl(25, 35%, 8%)",
	Surface:         "hsl(25, 35%, 8%)",
	Foreground:      "hsl(40, 25%, 92%)",
	ForegroundMuted: "hsl(35, 20%, 75%)",

	Primary:           "hsl(0, 91%, 35%)",
	PrimaryForeground: "hsl(40, 25%, 92%)",
	PrimaryContrast:   "hsl(40, 25%, 92%)",

	Secondary:           "hsl(168, 45%, 35%)",
	SecondaryForeground: "hsl(40, 25%, 92%)",

	Accent:           "hsl(45, 85%, 62%)",
	AccentForeground: "hsl(30, 15%, 5%)",
	AccentContrast:   "hsl(30, 15%, 5%)",

	Border: "hsl(42, 25%, 42%)",
	Ring:   "hsl(45, 85%, 62%)",

	FontFamily:        "'Be Vietnam Pro', 'Inter', sans-serif",
	FontFamilyDisplay: "'Noto Serif Display', 'Noto Serif', serif",
	FontFamilyBody:    "'Be Vietnam Pro', 'Inter', sans-serif",

	Radius:      "1rem",
	RadiusLarge: "1.5rem",
	RadiusSmall: "0.75rem",

	ShadowElevation1: "0 2px 8px rgba(178, 10, 10, 0.1)",
	ShadowElevation2: "0 4px 16px rgba(178, 10, 10, 0.15)",
	ShadowElevation3: "0 8px 24px rgba(178, 10, 10, 0.2)",

	Spacing: "0.375rem",

	BackdropBlur:      "blur(8px)",
	BackgroundTexture: `url("/themes/trad/pattern.svg")`,
	PatternOpacity:    "0.08",
}

// Config returns the static table backing a theme.
func (t Theme) Config() ThemeConfig {
	if t == ThemeTrad {
		return tradTheme
	}
	return modernTheme
}

// CSSVar is one custom property applied to the document root.
type CSSVar struct {
	Name  string
	Value string
}

// Vars returns the theme's custom properties in application order.
func (t Theme) Vars() []CSSVar {
	c := t.Config()
	return []CSSVar{
		{"--bg", c.Background},
		{"--bg-muted", c.BackgroundMuted},
		{"--surface", c.Surface},
		{"--text", c.Foreground},
		{"--text-muted", c.ForegroundMuted},
		{"--primary", c.Primary},
		{"--primary-contrast", c.PrimaryContrast},
		{"--primary-foreground", c.PrimaryForeground},
		{"--accent", c.Accent},
		{"--accent-contrast", c.AccentContrast},
		{"--accent-foreground", c.AccentForeground},
		{"--secondary", c.Secondary},
		{"--secondary-foreground", c.SecondaryForeground},
		{"--border", c.Border},
		{"--ring", c.Ring},
		{"--font-family", c.FontFamily},
		{"--font-family-display", c.FontFamilyDisplay},
		{"--font-family-body", c.FontFamilyBody},
		{"--radius", c.Radius},
		{"--radius-large", c.RadiusLarge},
		{"--radius-small", c.RadiusSmall},
		{"--shadow-elev-1", c.ShadowElevation1},
		{"--shadow-elev-2", c.ShadowElevation2},
		{"--shadow-elev-3", c.ShadowElevation3},
		{"--spacing", c.Spacing},
		{"--backdrop-blur", c.BackdropBlur},
		{"--background-texture", c.BackgroundTexture},
		{"--pattern-opacity", c.PatternOpacity},
	}
}

// WriteCSS renders the theme's variables as a :root block.
func WriteCSS(w io.Writer, t Theme) error {
	if _, err := io.WriteString(w, ":root {\n"); err != nil {
		return err
	}
	for _, v := range t.Vars() {
		if _, err := fmt.Fprintf(w, "  %s: %s;\n", v.Name, v.Value); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}
