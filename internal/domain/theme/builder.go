package theme

const (
	defaultPrimary = "#6366f1"
	defaultAccent  = "#ec4899"
)

// Builder accumulates theme settings and produces a validated Theme.
// A complete explicit palette wins over color synthesis; otherwise the
// palette is derived from the primary and accent colors, falling back
// to the default pair when neither was set.
type Builder struct {
	id         string
	name       string
	mode       Mode
	primary    string
	accent     string
	background string
	palette    *ColorPalette
	typography Typography
	customCSS  string
}

func NewBuilder() *Builder {
	return &Builder{
		mode:       ModeLight,
		typography: DefaultTypography(),
	}
}

func (b *Builder) WithID(id string) *Builder {
	b.id = id
	return b
}

func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

func (b *Builder) WithMode(mode Mode) *Builder {
	b.mode = mode
	return b
}

func (b *Builder) WithPrimaryColor(hex string) *Builder {
	b.primary = hex
	return b
}

func (b *Builder) WithAccentColor(hex string) *Builder {
	b.accent = hex
	return b
}

func (b *Builder) WithBackground(hex string) *Builder {
	b.background = hex
	return b
}

func (b *Builder) WithPalette(p ColorPalette) *Builder {
	b.palette = &p
	return b
}

func (b *Builder) WithHeadingFont(f FontFamily) *Builder {
	b.typography.HeadingFont = f
	return b
}

func (b *Builder) WithBodyFont(f FontFamily) *Builder {
	b.typography.BodyFont = f
	return b
}

func (b *Builder) WithFontSize(px int) *Builder {
	b.typography.BaseFontSize = px
	return b
}

func (b *Builder) WithLineHeight(lh float64) *Builder {
	b.typography.LineHeight = lh
	return b
}

func (b *Builder) WithTypography(t Typography) *Builder {
	b.typography = t
	return b
}

func (b *Builder) WithCustomCSS(css string) *Builder {
	b.customCSS = css
	return b
}

func (b *Builder) Build() (Theme, error) {
	var palette ColorPalette
	switch {
	case b.palette != nil && b.palette.IsComplete():
		palette = *b.palette
	case b.primary != "" && b.accent != "":
		p, err := PaletteFromPrimaryAndAccent(b.primary, b.accent, b.mode, b.background)
		if err != nil {
			return Theme{}, err
		}
		palette = p
	default:
		p, err := PaletteFromPrimaryAndAccent(defaultPrimary, defaultAccent, b.mode, b.background)
		if err != nil {
			return Theme{}, err
		}
		palette = p
	}

	id := b.id
	if id == "" {
		id = "custom-" + string(b.mode)
	}
	name := b.name
	if name == "" {
		name = "Custom Theme"
	}

	return NewTheme(Theme{
		ID:         id,
		Name:       name,
		PresetID:   PresetCustom,
		Mode:       b.mode,
		Colors:     palette,
		Typography: b.typography,
		CustomCSS:  b.customCSS,
	})
}
