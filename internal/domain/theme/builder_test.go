package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderSynthesizesFromColors(t *testing.T) {
	built, err := NewBuilder().
		WithName("Mine").
		WithMode(ModeLight).
		WithPrimaryColor("#10b981").
		WithAccentColor("#f59e0b").
		Build()
	require.NoError(t, err)

	assert.Equal(t, PresetCustom, built.PresetID)
	assert.True(t, built.IsCustom())
	assert.Equal(t, "#10b981", built.Colors.Primary)
	assert.Equal(t, Lighten("#10b981", 20), built.Colors.PrimaryLight)
	assert.Equal(t, "#ffffff", built.Colors.Background)
	assert.Equal(t, DefaultTypography(), built.Typography)
}

func TestBuilderUsesCompletePaletteVerbatim(t *testing.T) {
	palette := GetPreset(PresetNeon, ModeDark).Colors
	built, err := NewBuilder().
		WithMode(ModeDark).
		WithPrimaryColor("#000000").
		WithAccentColor("#ffffff").
		WithPalette(palette).
		Build()
	require.NoError(t, err)
	assert.Equal(t, palette, built.Colors)
}

func TestBuilderFallsBackToDefaultColors(t *testing.T) {
	built, err := NewBuilder().WithMode(ModeDark).Build()
	require.NoError(t, err)

	// Default primary survives as the dark variant per dark-mode synthesis.
	assert.Equal(t, defaultPrimary, built.Colors.PrimaryDark)
	assert.Equal(t, "#0f172a", built.Colors.Background)
}

func TestBuilderTypographyOverrides(t *testing.T) {
	built, err := NewBuilder().
		WithPrimaryColor("#6366f1").
		WithAccentColor("#ec4899").
		WithHeadingFont(FontPoppins).
		WithFontSize(18).
		WithLineHeight(1.8).
		Build()
	require.NoError(t, err)
	assert.Equal(t, FontPoppins, built.Typography.HeadingFont)
	assert.Equal(t, 18, built.Typography.BaseFontSize)
	assert.InDelta(t, 1.8, built.Typography.LineHeight, 1e-9)

	_, err = NewBuilder().
		WithPrimaryColor("#6366f1").
		WithAccentColor("#ec4899").
		WithFontSize(40).
		Build()
	assert.Error(t, err)
}
