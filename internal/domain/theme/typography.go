package theme

import "fmt"

type FontFamily string

const (
	FontInter           FontFamily = "Inter"
	FontRoboto          FontFamily = "Roboto"
	FontOpenSans        FontFamily = "Open Sans"
	FontLato            FontFamily = "Lato"
	FontMontserrat      FontFamily = "Montserrat"
	FontPoppins         FontFamily = "Poppins"
	FontSourceSansPro   FontFamily = "Source Sans Pro"
	FontRaleway         FontFamily = "Raleway"
	FontNunito          FontFamily = "Nunito"
	FontPlayfairDisplay FontFamily = "Playfair Display"
	FontMerriweather    FontFamily = "Merriweather"
	FontSystemUI        FontFamily = "system-ui"
)

var fontStacks = map[FontFamily]string{
	FontInter:           "'Inter', system-ui, -apple-system, sans-serif",
	FontRoboto:          "'Roboto', system-ui, -apple-system, sans-serif",
	FontOpenSans:        "'Open Sans', system-ui, -apple-system, sans-serif",
	FontLato:            "'Lato', system-ui, -apple-system, sans-serif",
	FontMontserrat:      "'Montserrat', system-ui, -apple-system, sans-serif",
	FontPoppins:         "'Poppins', system-ui, -apple-system, sans-serif",
	FontSourceSansPro:   "'Source Sans Pro', system-ui, -apple-system, sans-serif",
	FontRaleway:         "'Raleway', system-ui, -apple-system, sans-serif",
	FontNunito:          "'Nunito', system-ui, -apple-system, sans-serif",
	FontPlayfairDisplay: "'Playfair Display', Georgia, serif",
	FontMerriweather:    "'Merriweather', Georgia, serif",
	FontSystemUI:        "system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif",
}

// GoogleFontSpecs maps loadable families to their fonts.googleapis.com
// family spec. system-ui is absent: nothing to load.
var GoogleFontSpecs = map[FontFamily]string{
	FontInter:           "Inter:wght@400;500;600;700;800",
	FontRoboto:          "Roboto:wght@400;500;700",
	FontOpenSans:        "Open+Sans:wght@400;500;600;700",
	FontLato:            "Lato:wght@400;700",
	FontMontserrat:      "Montserrat:wght@400;500;600;700;800",
	FontPoppins:         "Poppins:wght@400;500;600;700",
	FontSourceSansPro:   "Source+Sans+Pro:wght@400;600;700",
	FontRaleway:         "Raleway:wght@400;500;600;700",
	FontNunito:          "Nunito:wght@400;600;700",
	FontPlayfairDisplay: "Playfair+Display:wght@400;600;700",
	FontMerriweather:    "Merriweather:wght@400;700",
}

func (f FontFamily) IsValid() bool {
	_, ok := fontStacks[f]
	return ok
}

// Stack returns the full CSS font stack with fallbacks.
func (f FontFamily) Stack() string {
	if s, ok := fontStacks[f]; ok {
		return s
	}
	return fontStacks[FontSystemUI]
}

type Typography struct {
	HeadingFont       FontFamily `json:"headingFont"`
	BodyFont          FontFamily `json:"bodyFont"`
	MonoFont          string     `json:"monoFont"`
	BaseFontSize      int        `json:"baseFontSize"`
	LineHeight        float64    `json:"lineHeight"`
	HeadingLineHeight float64    `json:"headingLineHeight"`
	HeadingWeight     int        `json:"headingWeight"`
	BodyWeight        int        `json:"bodyWeight"`
}

func (t Typography) Validate() error {
	if !t.HeadingFont.IsValid() {
		return fmt.Errorf("unknown heading font %q", t.HeadingFont)
	}
	if !t.BodyFont.IsValid() {
		return fmt.Errorf("unknown body font %q", t.BodyFont)
	}
	if t.BaseFontSize < 12 || t.BaseFontSize > 24 {
		return fmt.Errorf("base font size must be between 12 and 24 pixels, got %d", t.BaseFontSize)
	}
	if t.LineHeight < 1.2 || t.LineHeight > 2.0 {
		return fmt.Errorf("line height must be between 1.2 and 2.0, got %g", t.LineHeight)
	}
	if t.HeadingLineHeight < 1.0 || t.HeadingLineHeight > 1.6 {
		return fmt.Errorf("heading line height must be between 1.0 and 1.6, got %g", t.HeadingLineHeight)
	}
	if t.HeadingWeight != 600 && t.HeadingWeight != 700 && t.HeadingWeight != 800 {
		return fmt.Errorf("heading weight must be 600, 700 or 800, got %d", t.HeadingWeight)
	}
	if t.BodyWeight != 400 && t.BodyWeight != 500 {
		return fmt.Errorf("body weight must be 400 or 500, got %d", t.BodyWeight)
	}
	return nil
}

func DefaultTypography() Typography {
	return Typography{
		HeadingFont:       FontInter,
		BodyFont:          FontInter,
		MonoFont:          "ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, 'Courier New', monospace",
		BaseFontSize:      16,
		LineHeight:        1.6,
		HeadingLineHeight: 1.1,
		HeadingWeight:     700,
		BodyWeight:        400,
	}
}

func (t Typography) CSSVariables() map[string]string {
	return map[string]string{
		"--font-heading":        t.HeadingFont.Stack(),
		"--font-body":           t.BodyFont.Stack(),
		"--font-mono":           t.MonoFont,
		"--font-size-base":      fmt.Sprintf("%dpx", t.BaseFontSize),
		"--line-height":         fmt.Sprintf("%g", t.LineHeight),
		"--line-height-heading": fmt.Sprintf("%g", t.HeadingLineHeight),
		"--font-weight-heading": fmt.Sprintf("%d", t.HeadingWeight),
		"--font-weight-body":    fmt.Sprintf("%d", t.BodyWeight),
	}
}
