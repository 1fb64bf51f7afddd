package theme

import (
	"fmt"
	"math"
	"regexp"
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ColorPalette is the complete color scheme of a theme. All color fields
// hold 6-digit hex values; PrimaryRGB is a derived "r, g, b" string kept
// for opacity composition in CSS.
type ColorPalette struct {
	Primary      string `json:"primary"`
	PrimaryLight string `json:"primaryLight"`
	PrimaryDark  string `json:"primaryDark"`
	PrimaryRGB   string `json:"primaryRgb"`

	Accent      string `json:"accent"`
	AccentLight string `json:"accentLight"`
	AccentDark  string `json:"accentDark"`

	Secondary      string `json:"secondary"`
	SecondaryLight string `json:"secondaryLight"`

	Background         string `json:"background"`
	BackgroundAlt      string `json:"backgroundAlt"`
	BackgroundElevated string `json:"backgroundElevated"`

	Text      string `json:"text"`
	TextLight string `json:"textLight"`
	TextMuted string `json:"textMuted"`

	Border string `json:"border"`

	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
}

func (p ColorPalette) colorFields() map[string]string {
	return map[string]string{
		"primary":            p.Primary,
		"primaryLight":       p.PrimaryLight,
		"primaryDark":        p.PrimaryDark,
		"accent":             p.Accent,
		"accentLight":        p.AccentLight,
		"accentDark":         p.AccentDark,
		"secondary":          p.Secondary,
		"secondaryLight":     p.SecondaryLight,
		"background":         p.Background,
		"backgroundAlt":      p.BackgroundAlt,
		"backgroundElevated": p.BackgroundElevated,
		"text":               p.Text,
		"textLight":          p.TextLight,
		"textMuted":          p.TextMuted,
		"border":             p.Border,
		"success":            p.Success,
		"warning":            p.Warning,
		"error":              p.Error,
	}
}

func (p ColorPalette) Validate() error {
	for name, color := range p.colorFields() {
		if !hexColorRe.MatchString(color) {
			return fmt.Errorf("invalid color for %s: %q, must be a 6-digit hex color", name, color)
		}
	}
	return nil
}

// IsComplete reports whether every required color field is populated.
func (p ColorPalette) IsComplete() bool {
	for _, color := range p.colorFields() {
		if color == "" {
			return false
		}
	}
	return true
}

func hexToRGB(hex string) (r, g, b int, ok bool) {
	if !hexColorRe.MatchString(hex) {
		return 0, 0, 0, false
	}
	_, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	return r, g, b, err == nil
}

func rgbToHex(r, g, b float64) string {
	clamp := func(x float64) int {
		v := int(math.Round(x))
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return v
	}
	return fmt.Sprintf("#%02x%02x%02x", clamp(r), clamp(g), clamp(b))
}

// Lighten interpolates each RGB channel toward 255 by percent/100.
func Lighten(hex string, percent float64) string {
	r, g, b, ok := hexToRGB(hex)
	if !ok {
		return hex
	}
	f := percent / 100
	return rgbToHex(
		float64(r)+(255-float64(r))*f,
		float64(g)+(255-float64(g))*f,
		float64(b)+(255-float64(b))*f,
	)
}

// Darken scales each RGB channel toward 0 by factor (1 - percent/100).
func Darken(hex string, percent float64) string {
	r, g, b, ok := hexToRGB(hex)
	if !ok {
		return hex
	}
	f := 1 - percent/100
	return rgbToHex(float64(r)*f, float64(g)*f, float64(b)*f)
}

// RGBString renders a hex color as "r, g, b" for rgba() composition.
func RGBString(hex string) string {
	r, g, b, ok := hexToRGB(hex)
	if !ok {
		return "0, 0, 0"
	}
	return fmt.Sprintf("%d, %d, %d", r, g, b)
}

// PaletteFromPrimaryAndAccent synthesizes a full palette from a primary
// and accent color. customBackground may be empty. Note the dark-mode
// asymmetry: the input primary is stored as PrimaryDark and a lightened
// variant becomes the working Primary (light mode stores the input
// verbatim as Primary).
func PaletteFromPrimaryAndAccent(primary, accent string, mode Mode, customBackground string) (ColorPalette, error) {
	var p ColorPalette
	if mode == ModeLight {
		bg := "#ffffff"
		bgAlt := "#f8fafc"
		bgElevated := "#ffffff"
		border := "#e2e8f0"
		if customBackground != "" {
			bg = customBackground
			bgAlt = Darken(customBackground, 3)
			bgElevated = Lighten(customBackground, 2)
			border = Darken(customBackground, 12)
		}
		p = ColorPalette{
			Primary:      primary,
			PrimaryLight: Lighten(primary, 20),
			PrimaryDark:  Darken(primary, 15),
			PrimaryRGB:   RGBString(primary),

			Accent:      accent,
			AccentLight: Lighten(accent, 20),
			AccentDark:  Darken(accent, 15),

			Secondary:      "#64748b",
			SecondaryLight: "#94a3b8",

			Background:         bg,
			BackgroundAlt:      bgAlt,
			BackgroundElevated: bgElevated,

			Text:      "#1e293b",
			TextLight: "#64748b",
			TextMuted: "#94a3b8",

			Border: border,

			Success: "#10b981",
			Warning: "#f59e0b",
			Error:   "#ef4444",
		}
	} else {
		lightPrimary := Lighten(primary, 15)
		bg := "#0f172a"
		bgAlt := "#1e293b"
		bgElevated := "#334155"
		border := "#334155"
		if customBackground != "" {
			bg = customBackground
			bgAlt = Lighten(customBackground, 8)
			bgElevated = Lighten(customBackground, 15)
			border = Lighten(customBackground, 15)
		}
		p = ColorPalette{
			Primary:      lightPrimary,
			PrimaryLight: Lighten(primary, 30),
			PrimaryDark:  primary,
			PrimaryRGB:   RGBString(lightPrimary),

			Accent:      Lighten(accent, 15),
			AccentLight: Lighten(accent, 30),
			AccentDark:  accent,

			Secondary:      "#94a3b8",
			SecondaryLight: "#cbd5e1",

			Background:         bg,
			BackgroundAlt:      bgAlt,
			BackgroundElevated: bgElevated,

			Text:      "#f1f5f9",
			TextLight: "#94a3b8",
			TextMuted: "#64748b",

			Border: border,

			Success: "#10b981",
			Warning: "#f59e0b",
			Error:   "#ef4444",
		}
	}
	if err := p.Validate(); err != nil {
		return ColorPalette{}, err
	}
	return p, nil
}

// CSSVariables renders the palette as CSS custom properties, including
// the computed gradient set.
func (p ColorPalette) CSSVariables() map[string]string {
	return map[string]string{
		"--color-primary":       p.Primary,
		"--color-primary-light": p.PrimaryLight,
		"--color-primary-dark":  p.PrimaryDark,
		"--color-primary-rgb":   p.PrimaryRGB,

		"--color-accent":       p.Accent,
		"--color-accent-light": p.AccentLight,
		"--color-accent-dark":  p.AccentDark,

		"--color-secondary":       p.Secondary,
		"--color-secondary-light": p.SecondaryLight,

		"--color-background":          p.Background,
		"--color-background-alt":      p.BackgroundAlt,
		"--color-background-elevated": p.BackgroundElevated,
		"--color-background-rgb":      RGBString(p.Background),

		"--color-text":       p.Text,
		"--color-text-light": p.TextLight,
		"--color-text-muted": p.TextMuted,

		"--color-border": p.Border,

		"--color-success": p.Success,
		"--color-warning": p.Warning,
		"--color-error":   p.Error,

		"--gradient-primary":         fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", p.Primary, p.Accent),
		"--gradient-primary-reverse": fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", p.Accent, p.Primary),
		"--gradient-subtle":          fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", p.Background, p.BackgroundAlt),
		"--gradient-text":            fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", p.Primary, p.Accent),
		"--gradient-glow":            fmt.Sprintf("radial-gradient(circle at center, rgba(%s, 0.15) 0%%, transparent 70%%)", p.PrimaryRGB),
	}
}
