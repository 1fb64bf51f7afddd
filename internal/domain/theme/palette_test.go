package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteValidationRejectsMalformedHex(t *testing.T) {
	valid, err := PaletteFromPrimaryAndAccent("#6366f1", "#ec4899", ModeLight, "")
	require.NoError(t, err)
	assert.NoError(t, valid.Validate())

	for _, bad := range []string{"", "6366f1", "#66f", "#6366g1", "#6366f1f", "rgb(1,2,3)"} {
		p := valid
		p.Primary = bad
		assert.Error(t, p.Validate(), "value %q", bad)
	}
}

func TestLightenDarken(t *testing.T) {
	assert.Equal(t, "#808080", Lighten("#000000", 50))
	assert.Equal(t, "#808080", Darken("#ffffff", 50))
	assert.Equal(t, "#ffffff", Lighten("#ffffff", 20))
	assert.Equal(t, "#000000", Darken("#000000", 20))
	// 0% is the identity.
	assert.Equal(t, "#6366f1", Lighten("#6366f1", 0))
	assert.Equal(t, "#6366f1", Darken("#6366f1", 0))
}

func TestRGBString(t *testing.T) {
	assert.Equal(t, "99, 102, 241", RGBString("#6366f1"))
	assert.Equal(t, "0, 0, 0", RGBString("#000000"))
}

func TestSynthesisLightMode(t *testing.T) {
	p, err := PaletteFromPrimaryAndAccent("#6366f1", "#ec4899", ModeLight, "")
	require.NoError(t, err)

	assert.Equal(t, "#6366f1", p.Primary)
	assert.Equal(t, Lighten("#6366f1", 20), p.PrimaryLight)
	assert.Equal(t, Darken("#6366f1", 15), p.PrimaryDark)
	assert.Equal(t, "#ffffff", p.Background)
	assert.Equal(t, "#f8fafc", p.BackgroundAlt)
	assert.Equal(t, "#ffffff", p.BackgroundElevated)
	assert.Equal(t, "#e2e8f0", p.Border)
	assert.Equal(t, "99, 102, 241", p.PrimaryRGB)
	assert.True(t, p.IsComplete())
}

func TestSynthesisDarkModeKeepsInputAsDarkVariant(t *testing.T) {
	p, err := PaletteFromPrimaryAndAccent("#6366f1", "#ec4899", ModeDark, "")
	require.NoError(t, err)

	// The input becomes the dark variant and a lightened value leads.
	assert.Equal(t, "#6366f1", p.PrimaryDark)
	assert.Equal(t, Lighten("#6366f1", 15), p.Primary)
	assert.NotEqual(t, "#6366f1", p.Primary)
	assert.Equal(t, Lighten("#6366f1", 30), p.PrimaryLight)
	assert.Equal(t, "#0f172a", p.Background)
	assert.Equal(t, "#1e293b", p.BackgroundAlt)
	assert.Equal(t, "#334155", p.BackgroundElevated)
}

func TestSynthesisWithCustomBackground(t *testing.T) {
	light, err := PaletteFromPrimaryAndAccent("#6366f1", "#ec4899", ModeLight, "#f0f0f0")
	require.NoError(t, err)
	assert.Equal(t, "#f0f0f0", light.Background)
	assert.Equal(t, Darken("#f0f0f0", 3), light.BackgroundAlt)
	assert.Equal(t, Lighten("#f0f0f0", 2), light.BackgroundElevated)
	assert.Equal(t, Darken("#f0f0f0", 12), light.Border)

	dark, err := PaletteFromPrimaryAndAccent("#6366f1", "#ec4899", ModeDark, "#101418")
	require.NoError(t, err)
	assert.Equal(t, "#101418", dark.Background)
	assert.Equal(t, Lighten("#101418", 8), dark.BackgroundAlt)
	assert.Equal(t, Lighten("#101418", 15), dark.BackgroundElevated)
}

func TestSynthesisRejectsBadInput(t *testing.T) {
	_, err := PaletteFromPrimaryAndAccent("blue", "#ec4899", ModeLight, "")
	assert.Error(t, err)
	_, err = PaletteFromPrimaryAndAccent("#6366f1", "pink", ModeDark, "")
	assert.Error(t, err)
}
