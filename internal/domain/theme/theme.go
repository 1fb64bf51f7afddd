package theme

import (
	"encoding/json"
	"fmt"
)

type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

func (m Mode) IsValid() bool {
	return m == ModeLight || m == ModeDark
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == ModeLight {
		return ModeDark
	}
	return ModeLight
}

type PresetID string

const (
	PresetDefault      PresetID = "default"
	PresetSpring       PresetID = "spring"
	PresetSummer       PresetID = "summer"
	PresetAutumn       PresetID = "autumn"
	PresetWinter       PresetID = "winter"
	PresetProfessional PresetID = "professional"
	PresetCreative     PresetID = "creative"
	PresetOcean        PresetID = "ocean"
	PresetForest       PresetID = "forest"
	PresetSunset       PresetID = "sunset"
	PresetMidnight     PresetID = "midnight"
	PresetNeon         PresetID = "neon"
	PresetCustom       PresetID = "custom"
)

var validPresetIDs = map[PresetID]struct{}{
	PresetDefault: {}, PresetSpring: {}, PresetSummer: {}, PresetAutumn: {},
	PresetWinter: {}, PresetProfessional: {}, PresetCreative: {},
	PresetOcean: {}, PresetForest: {}, PresetSunset: {}, PresetMidnight: {},
	PresetNeon: {}, PresetCustom: {},
}

func (id PresetID) IsValid() bool {
	_, ok := validPresetIDs[id]
	return ok
}

// Theme combines a palette and typography under an identity. Identity
// (and equality) is the ID alone; two themes with the same ID are the
// same theme regardless of their colors.
type Theme struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	PresetID   PresetID     `json:"presetId"`
	Mode       Mode         `json:"mode"`
	Colors     ColorPalette `json:"colors"`
	Typography Typography   `json:"typography"`
	CustomCSS  string       `json:"customCSS,omitempty"`
}

func NewTheme(t Theme) (Theme, error) {
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

func (t Theme) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("theme id is required")
	}
	if !t.PresetID.IsValid() {
		return fmt.Errorf("unknown preset id %q", t.PresetID)
	}
	if !t.Mode.IsValid() {
		return fmt.Errorf("unknown theme mode %q", t.Mode)
	}
	if err := t.Colors.Validate(); err != nil {
		return err
	}
	return t.Typography.Validate()
}

func (t Theme) IsCustom() bool {
	return t.PresetID == PresetCustom
}

func (t Theme) IsDark() bool {
	return t.Mode == ModeDark
}

func (t Theme) Equals(other Theme) bool {
	return t.ID == other.ID
}

// CSSVariables merges palette and typography custom properties.
func (t Theme) CSSVariables() map[string]string {
	vars := t.Colors.CSSVariables()
	for k, v := range t.Typography.CSSVariables() {
		vars[k] = v
	}
	return vars
}

func (t Theme) ToJSON() ([]byte, error) {
	return json.Marshal(t)
}

func FromJSON(data []byte) (Theme, error) {
	var t Theme
	if err := json.Unmarshal(data, &t); err != nil {
		return Theme{}, err
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}
