package theme

// Preset catalog. The color tables are configuration data carried from
// the site's design system; tweak them there, not in code review.

func preset(id string, name string, presetID PresetID, mode Mode, colors ColorPalette) Theme {
	return Theme{
		ID:         id,
		Name:       name,
		PresetID:   presetID,
		Mode:       mode,
		Colors:     colors,
		Typography: DefaultTypography(),
	}
}

var allPresets = []Theme{
	preset("preset-default-light", "Default", PresetDefault, ModeLight, ColorPalette{
		Primary: "#6366f1", PrimaryLight: "#818cf8", PrimaryDark: "#4f46e5", PrimaryRGB: "99, 102, 241",
		Accent: "#ec4899", AccentLight: "#f472b6", AccentDark: "#db2777",
		Secondary: "#64748b", SecondaryLight: "#94a3b8",
		Background: "#ffffff", BackgroundAlt: "#f8fafc", BackgroundElevated: "#ffffff",
		Text: "#1e293b", TextLight: "#64748b", TextMuted: "#94a3b8",
		Border:  "#e2e8f0",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-default-dark", "Default Dark", PresetDefault, ModeDark, ColorPalette{
		Primary: "#818cf8", PrimaryLight: "#a5b4fc", PrimaryDark: "#6366f1", PrimaryRGB: "129, 140, 248",
		Accent: "#f472b6", AccentLight: "#f9a8d4", AccentDark: "#ec4899",
		Secondary: "#94a3b8", SecondaryLight: "#cbd5e1",
		Background: "#0f172a", BackgroundAlt: "#1e293b", BackgroundElevated: "#334155",
		Text: "#f1f5f9", TextLight: "#94a3b8", TextMuted: "#64748b",
		Border:  "#334155",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-spring-light", "Spring", PresetSpring, ModeLight, ColorPalette{
		Primary: "#ec4899", PrimaryLight: "#f472b6", PrimaryDark: "#db2777", PrimaryRGB: "236, 72, 153",
		Accent: "#22c55e", AccentLight: "#4ade80", AccentDark: "#16a34a",
		Secondary: "#a78bfa", SecondaryLight: "#c4b5fd",
		Background: "#ffffff", BackgroundAlt: "#fdf2f8", BackgroundElevated: "#ffffff",
		Text: "#1e293b", TextLight: "#64748b", TextMuted: "#94a3b8",
		Border:  "#fce7f3",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-spring-dark", "Spring Dark", PresetSpring, ModeDark, ColorPalette{
		Primary: "#f472b6", PrimaryLight: "#f9a8d4", PrimaryDark: "#ec4899", PrimaryRGB: "244, 114, 182",
		Accent: "#4ade80", AccentLight: "#86efac", AccentDark: "#22c55e",
		Secondary: "#c4b5fd", SecondaryLight: "#ddd6fe",
		Background: "#1a0f1e", BackgroundAlt: "#2d1f33", BackgroundElevated: "#3d2a45",
		Text: "#f1f5f9", TextLight: "#94a3b8", TextMuted: "#64748b",
		Border:  "#3d2a45",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-summer-light", "Summer", PresetSummer, ModeLight, ColorPalette{
		Primary: "#f97316", PrimaryLight: "#fb923c", PrimaryDark: "#ea580c", PrimaryRGB: "249, 115, 22",
		Accent: "#06b6d4", AccentLight: "#22d3ee", AccentDark: "#0891b2",
		Secondary: "#eab308", SecondaryLight: "#facc15",
		Background: "#ffffff", BackgroundAlt: "#fff7ed", BackgroundElevated: "#ffffff",
		Text: "#1e293b", TextLight: "#64748b", TextMuted: "#94a3b8",
		Border:  "#fed7aa",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-summer-dark", "Summer Dark", PresetSummer, ModeDark, ColorPalette{
		Primary: "#fb923c", PrimaryLight: "#fdba74", PrimaryDark: "#f97316", PrimaryRGB: "251, 146, 60",
		Accent: "#22d3ee", AccentLight: "#67e8f9", AccentDark: "#06b6d4",
		Secondary: "#facc15", SecondaryLight: "#fde047",
		Background: "#0c1929", BackgroundAlt: "#1a2d3d", BackgroundElevated: "#2a3d4d",
		Text: "#f1f5f9", TextLight: "#94a3b8", TextMuted: "#64748b",
		Border:  "#2a3d4d",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-autumn-light", "Autumn", PresetAutumn, ModeLight, ColorPalette{
		Primary: "#d97706", PrimaryLight: "#f59e0b", PrimaryDark: "#b45309", PrimaryRGB: "217, 119, 6",
		Accent: "#dc2626", AccentLight: "#ef4444", AccentDark: "#b91c1c",
		Secondary: "#78350f", SecondaryLight: "#92400e",
		Background: "#ffffff", BackgroundAlt: "#fffbeb", BackgroundElevated: "#ffffff",
		Text: "#1e293b", TextLight: "#64748b", TextMuted: "#94a3b8",
		Border:  "#fde68a",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-autumn-dark", "Autumn Dark", PresetAutumn, ModeDark, ColorPalette{
		Primary: "#f59e0b", PrimaryLight: "#fbbf24", PrimaryDark: "#d97706", PrimaryRGB: "245, 158, 11",
		Accent: "#ef4444", AccentLight: "#f87171", AccentDark: "#dc2626",
		Secondary: "#92400e", SecondaryLight: "#a16207",
		Background: "#1c1412", BackgroundAlt: "#2d2420", BackgroundElevated: "#3d342f",
		Text: "#f1f5f9", TextLight: "#94a3b8", TextMuted: "#64748b",
		Border:  "#3d342f",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-winter-light", "Winter", PresetWinter, ModeLight, ColorPalette{
		Primary: "#3b82f6", PrimaryLight: "#60a5fa", PrimaryDark: "#2563eb", PrimaryRGB: "59, 130, 246",
		Accent: "#8b5cf6", AccentLight: "#a78bfa", AccentDark: "#7c3aed",
		Secondary: "#64748b", SecondaryLight: "#94a3b8",
		Background: "#ffffff", BackgroundAlt: "#f0f9ff", BackgroundElevated: "#ffffff",
		Text: "#1e293b", TextLight: "#64748b", TextMuted: "#94a3b8",
		Border:  "#bfdbfe",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-winter-dark", "Winter Dark", PresetWinter, ModeDark, ColorPalette{
		Primary: "#60a5fa", PrimaryLight: "#93c5fd", PrimaryDark: "#3b82f6", PrimaryRGB: "96, 165, 250",
		Accent: "#a78bfa", AccentLight: "#c4b5fd", AccentDark: "#8b5cf6",
		Secondary: "#94a3b8", SecondaryLight: "#cbd5e1",
		Background: "#0c1222", BackgroundAlt: "#1a2535", BackgroundElevated: "#2a3545",
		Text: "#f1f5f9", TextLight: "#94a3b8", TextMuted: "#64748b",
		Border:  "#2a3545",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-professional-light", "Professional", PresetProfessional, ModeLight, ColorPalette{
		Primary: "#475569", PrimaryLight: "#64748b", PrimaryDark: "#334155", PrimaryRGB: "71, 85, 105",
		Accent: "#0ea5e9", AccentLight: "#38bdf8", AccentDark: "#0284c7",
		Secondary: "#64748b", SecondaryLight: "#94a3b8",
		Background: "#ffffff", BackgroundAlt: "#f8fafc", BackgroundElevated: "#ffffff",
		Text: "#1e293b", TextLight: "#64748b", TextMuted: "#94a3b8",
		Border:  "#e2e8f0",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-professional-dark", "Professional Dark", PresetProfessional, ModeDark, ColorPalette{
		Primary: "#94a3b8", PrimaryLight: "#cbd5e1", PrimaryDark: "#64748b", PrimaryRGB: "148, 163, 184",
		Accent: "#38bdf8", AccentLight: "#7dd3fc", AccentDark: "#0ea5e9",
		Secondary: "#94a3b8", SecondaryLight: "#cbd5e1",
		Background: "#0f172a", BackgroundAlt: "#1e293b", BackgroundElevated: "#334155",
		Text: "#f1f5f9", TextLight: "#94a3b8", TextMuted: "#64748b",
		Border:  "#334155",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-creative-light", "Creative", PresetCreative, ModeLight, ColorPalette{
		Primary: "#8b5cf6", PrimaryLight: "#a78bfa", PrimaryDark: "#7c3aed", PrimaryRGB: "139, 92, 246",
		Accent: "#f43f5e", AccentLight: "#fb7185", AccentDark: "#e11d48",
		Secondary: "#06b6d4", SecondaryLight: "#22d3ee",
		Background: "#ffffff", BackgroundAlt: "#faf5ff", BackgroundElevated: "#ffffff",
		Text: "#1e293b", TextLight: "#64748b", TextMuted: "#94a3b8",
		Border:  "#e9d5ff",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-creative-dark", "Creative Dark", PresetCreative, ModeDark, ColorPalette{
		Primary: "#a78bfa", PrimaryLight: "#c4b5fd", PrimaryDark: "#8b5cf6", PrimaryRGB: "167, 139, 250",
		Accent: "#fb7185", AccentLight: "#fda4af", AccentDark: "#f43f5e",
		Secondary: "#22d3ee", SecondaryLight: "#67e8f9",
		Background: "#1a1625", BackgroundAlt: "#2d2438", BackgroundElevated: "#3d344a",
		Text: "#f1f5f9", TextLight: "#94a3b8", TextMuted: "#64748b",
		Border:  "#3d344a",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-ocean-light", "Ocean", PresetOcean, ModeLight, ColorPalette{
		Primary: "#0891b2", PrimaryLight: "#22d3ee", PrimaryDark: "#0e7490", PrimaryRGB: "8, 145, 178",
		Accent: "#0d9488", AccentLight: "#2dd4bf", AccentDark: "#0f766e",
		Secondary: "#64748b", SecondaryLight: "#94a3b8",
		Background: "#ffffff", BackgroundAlt: "#ecfeff", BackgroundElevated: "#ffffff",
		Text: "#164e63", TextLight: "#0e7490", TextMuted: "#67e8f9",
		Border:  "#a5f3fc",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-ocean-dark", "Ocean Dark", PresetOcean, ModeDark, ColorPalette{
		Primary: "#22d3ee", PrimaryLight: "#67e8f9", PrimaryDark: "#0891b2", PrimaryRGB: "34, 211, 238",
		Accent: "#2dd4bf", AccentLight: "#5eead4", AccentDark: "#0d9488",
		Secondary: "#94a3b8", SecondaryLight: "#cbd5e1",
		Background: "#083344", BackgroundAlt: "#0c4a5e", BackgroundElevated: "#155e75",
		Text: "#ecfeff", TextLight: "#a5f3fc", TextMuted: "#67e8f9",
		Border:  "#155e75",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-forest-light", "Forest", PresetForest, ModeLight, ColorPalette{
		Primary: "#15803d", PrimaryLight: "#22c55e", PrimaryDark: "#166534", PrimaryRGB: "21, 128, 61",
		Accent: "#ca8a04", AccentLight: "#eab308", AccentDark: "#a16207",
		Secondary: "#57534e", SecondaryLight: "#78716c",
		Background: "#ffffff", BackgroundAlt: "#f0fdf4", BackgroundElevated: "#ffffff",
		Text: "#14532d", TextLight: "#166534", TextMuted: "#86efac",
		Border:  "#bbf7d0",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-forest-dark", "Forest Dark", PresetForest, ModeDark, ColorPalette{
		Primary: "#22c55e", PrimaryLight: "#4ade80", PrimaryDark: "#15803d", PrimaryRGB: "34, 197, 94",
		Accent: "#eab308", AccentLight: "#facc15", AccentDark: "#ca8a04",
		Secondary: "#a8a29e", SecondaryLight: "#d6d3d1",
		Background: "#14532d", BackgroundAlt: "#166534", BackgroundElevated: "#15803d",
		Text: "#f0fdf4", TextLight: "#bbf7d0", TextMuted: "#86efac",
		Border:  "#15803d",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-sunset-light", "Sunset", PresetSunset, ModeLight, ColorPalette{
		Primary: "#ea580c", PrimaryLight: "#f97316", PrimaryDark: "#c2410c", PrimaryRGB: "234, 88, 12",
		Accent: "#db2777", AccentLight: "#ec4899", AccentDark: "#be185d",
		Secondary: "#78716c", SecondaryLight: "#a8a29e",
		Background: "#ffffff", BackgroundAlt: "#fff7ed", BackgroundElevated: "#ffffff",
		Text: "#431407", TextLight: "#9a3412", TextMuted: "#fdba74",
		Border:  "#fed7aa",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-sunset-dark", "Sunset Dark", PresetSunset, ModeDark, ColorPalette{
		Primary: "#fb923c", PrimaryLight: "#fdba74", PrimaryDark: "#ea580c", PrimaryRGB: "251, 146, 60",
		Accent: "#f472b6", AccentLight: "#f9a8d4", AccentDark: "#db2777",
		Secondary: "#a8a29e", SecondaryLight: "#d6d3d1",
		Background: "#431407", BackgroundAlt: "#7c2d12", BackgroundElevated: "#9a3412",
		Text: "#fff7ed", TextLight: "#fed7aa", TextMuted: "#fdba74",
		Border:  "#9a3412",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-midnight-light", "Midnight", PresetMidnight, ModeLight, ColorPalette{
		Primary: "#4c1d95", PrimaryLight: "#7c3aed", PrimaryDark: "#3b0764", PrimaryRGB: "76, 29, 149",
		Accent: "#ca8a04", AccentLight: "#eab308", AccentDark: "#a16207",
		Secondary: "#64748b", SecondaryLight: "#94a3b8",
		Background: "#ffffff", BackgroundAlt: "#faf5ff", BackgroundElevated: "#ffffff",
		Text: "#2e1065", TextLight: "#4c1d95", TextMuted: "#c4b5fd",
		Border:  "#e9d5ff",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-midnight-dark", "Midnight Dark", PresetMidnight, ModeDark, ColorPalette{
		Primary: "#a78bfa", PrimaryLight: "#c4b5fd", PrimaryDark: "#7c3aed", PrimaryRGB: "167, 139, 250",
		Accent: "#fbbf24", AccentLight: "#fcd34d", AccentDark: "#f59e0b",
		Secondary: "#94a3b8", SecondaryLight: "#cbd5e1",
		Background: "#0f0720", BackgroundAlt: "#1e1033", BackgroundElevated: "#2e1a4a",
		Text: "#f5f3ff", TextLight: "#c4b5fd", TextMuted: "#a78bfa",
		Border:  "#2e1a4a",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-neon-light", "Neon", PresetNeon, ModeLight, ColorPalette{
		Primary: "#d946ef", PrimaryLight: "#e879f9", PrimaryDark: "#c026d3", PrimaryRGB: "217, 70, 239",
		Accent: "#06b6d4", AccentLight: "#22d3ee", AccentDark: "#0891b2",
		Secondary: "#64748b", SecondaryLight: "#94a3b8",
		Background: "#ffffff", BackgroundAlt: "#fdf4ff", BackgroundElevated: "#ffffff",
		Text: "#701a75", TextLight: "#a21caf", TextMuted: "#f0abfc",
		Border:  "#f5d0fe",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
	preset("preset-neon-dark", "Neon Dark", PresetNeon, ModeDark, ColorPalette{
		Primary: "#e879f9", PrimaryLight: "#f0abfc", PrimaryDark: "#d946ef", PrimaryRGB: "232, 121, 249",
		Accent: "#22d3ee", AccentLight: "#67e8f9", AccentDark: "#06b6d4",
		Secondary: "#94a3b8", SecondaryLight: "#cbd5e1",
		Background: "#0a0a0a", BackgroundAlt: "#171717", BackgroundElevated: "#262626",
		Text: "#fdf4ff", TextLight: "#f5d0fe", TextMuted: "#d946ef",
		Border:  "#262626",
		Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444",
	}),
}

// GetPreset returns the catalog theme for a preset id and mode, falling
// back to the default preset for unknown ids.
func GetPreset(id PresetID, mode Mode) Theme {
	for _, t := range allPresets {
		if t.PresetID == id && t.Mode == mode {
			return t
		}
	}
	return GetPreset(PresetDefault, mode)
}

// AllPresets returns a copy of the full catalog.
func AllPresets() []Theme {
	return append([]Theme(nil), allPresets...)
}

// PresetInfo is catalog metadata for preset pickers.
type PresetInfo struct {
	ID              PresetID `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	PrimaryColor    string   `json:"primaryColor"`
	AccentColor     string   `json:"accentColor"`
	LightBackground string   `json:"lightBackground"`
	DarkBackground  string   `json:"darkBackground"`
}

var presetInfo = []PresetInfo{
	{PresetDefault, "Default", "Modern indigo and pink gradient", "#6366f1", "#ec4899", "#f8fafc", "#0f172a"},
	{PresetSpring, "Spring", "Cherry blossoms and fresh greens", "#ec4899", "#22c55e", "#fdf2f8", "#1a0f1e"},
	{PresetSummer, "Summer", "Warm coral and cool teal", "#f97316", "#06b6d4", "#fff7ed", "#0c1929"},
	{PresetAutumn, "Autumn", "Amber and warm rust tones", "#d97706", "#dc2626", "#fffbeb", "#1c1412"},
	{PresetWinter, "Winter", "Ice blue and silver", "#3b82f6", "#8b5cf6", "#f0f9ff", "#0c1222"},
	{PresetProfessional, "Professional", "Minimal and corporate", "#475569", "#0ea5e9", "#f8fafc", "#0f172a"},
	{PresetCreative, "Creative", "Vibrant purple and pink", "#8b5cf6", "#f43f5e", "#faf5ff", "#1a1625"},
	{PresetOcean, "Ocean", "Deep blues and teals", "#0891b2", "#0d9488", "#ecfeff", "#083344"},
	{PresetForest, "Forest", "Natural greens and earth tones", "#15803d", "#ca8a04", "#f0fdf4", "#14532d"},
	{PresetSunset, "Sunset", "Warm oranges and pinks", "#ea580c", "#db2777", "#fff7ed", "#431407"},
	{PresetMidnight, "Midnight", "Deep purples with gold accents", "#4c1d95", "#ca8a04", "#faf5ff", "#0f0720"},
	{PresetNeon, "Neon", "Vibrant cyberpunk colors", "#d946ef", "#06b6d4", "#fdf4ff", "#0a0a0a"},
}

// AvailablePresets returns preset picker metadata for the catalog.
func AvailablePresets() []PresetInfo {
	return append([]PresetInfo(nil), presetInfo...)
}
