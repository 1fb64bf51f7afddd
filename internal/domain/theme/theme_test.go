package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeJSONRoundTrip(t *testing.T) {
	original := GetPreset(PresetOcean, ModeDark)
	original.CustomCSS = ".hero { opacity: 0.9; }"

	data, err := original.ToJSON()
	require.NoError(t, err)

	decoded, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestFromJSONRejectsInvalidTheme(t *testing.T) {
	_, err := FromJSON([]byte(`{"id":"x","name":"X","presetId":"ocean","mode":"sideways"}`))
	assert.Error(t, err)

	_, err = FromJSON([]byte(`not json`))
	assert.Error(t, err)
}

func TestThemeEqualityIsByID(t *testing.T) {
	a := GetPreset(PresetOcean, ModeLight)
	b := a
	b.Name = "Renamed"
	b.Colors.Primary = "#123456"
	assert.True(t, a.Equals(b))

	c := b
	c.ID = "other"
	assert.False(t, a.Equals(c))
}

func TestModeOpposite(t *testing.T) {
	assert.Equal(t, ModeDark, ModeLight.Opposite())
	assert.Equal(t, ModeLight, ModeDark.Opposite())
}

func TestGetPresetFallsBackToDefault(t *testing.T) {
	got := GetPreset(PresetID("bogus"), ModeDark)
	assert.Equal(t, PresetDefault, got.PresetID)
	assert.Equal(t, ModeDark, got.Mode)
}

func TestPresetCatalogIsComplete(t *testing.T) {
	infos := AvailablePresets()
	require.Len(t, infos, 12)
	for _, info := range infos {
		for _, mode := range []Mode{ModeLight, ModeDark} {
			preset := GetPreset(info.ID, mode)
			assert.Equal(t, info.ID, preset.PresetID, "preset %s %s", info.ID, mode)
			assert.Equal(t, mode, preset.Mode)
			assert.NoError(t, preset.Validate(), "preset %s %s", info.ID, mode)
		}
	}
}

func TestTypographyValidation(t *testing.T) {
	base := DefaultTypography()
	assert.NoError(t, base.Validate())

	tooSmall := base
	tooSmall.BaseFontSize = 11
	assert.Error(t, tooSmall.Validate())

	tooBig := base
	tooBig.BaseFontSize = 25
	assert.Error(t, tooBig.Validate())

	badLineHeight := base
	badLineHeight.LineHeight = 2.5
	assert.Error(t, badLineHeight.Validate())

	badWeight := base
	badWeight.HeadingWeight = 900
	assert.Error(t, badWeight.Validate())

	unknownFont := base
	unknownFont.HeadingFont = FontFamily("Comic Sans")
	assert.Error(t, unknownFont.Validate())
}
