package theme

import "time"

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

func (s Season) IsValid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter:
		return true
	}
	return false
}

// SeasonalMap assigns a preset to each of the four seasons. Every season
// always has an entry.
type SeasonalMap map[Season]PresetID

// DefaultSeasonalMap pairs each season with its eponymous preset.
func DefaultSeasonalMap() SeasonalMap {
	return SeasonalMap{
		SeasonSpring: PresetSpring,
		SeasonSummer: PresetSummer,
		SeasonAutumn: PresetAutumn,
		SeasonWinter: PresetWinter,
	}
}

// CurrentSeason maps a calendar month to its meteorological season.
func CurrentSeason(now time.Time) Season {
	switch m := now.Month(); {
	case m >= time.March && m <= time.May:
		return SeasonSpring
	case m >= time.June && m <= time.August:
		return SeasonSummer
	case m >= time.September && m <= time.November:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}
