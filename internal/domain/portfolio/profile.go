package portfolio

// ProfileStat is a headline figure shown on the hero section,
// e.g. {"5+", "Years Experience"} with an optional link.
type ProfileStat struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Link  string `json:"link,omitempty"`
}

type Profile struct {
	Name            string        `json:"name"`
	Title           string        `json:"title"`
	Greeting        string        `json:"greeting"`
	Description     string        `json:"description"`
	AboutParagraphs []string      `json:"aboutParagraphs"`
	PhotoURL        string        `json:"photoUrl"`
	Stats           []ProfileStat `json:"stats"`
}

// Clone returns a deep copy so draft edits never alias canonical state.
func (p Profile) Clone() Profile {
	out := p
	out.AboutParagraphs = append([]string(nil), p.AboutParagraphs...)
	out.Stats = append([]ProfileStat(nil), p.Stats...)
	return out
}
