package portfolio

import "github.com/google/uuid"

// Draft is the mutable editing buffer: a deep, independent copy of one
// portfolio version's content. Mutating a draft never touches the
// registry's canonical Portfolio until an explicit save.
type Draft struct {
	Version         string          `json:"version"`
	Profile         Profile         `json:"profile"`
	SkillCategories []SkillCategory `json:"skillCategories"`
	Projects        []Project       `json:"projects"`
	Contact         ContactInfo     `json:"contact"`
}

// NewDraft deep-copies a canonical portfolio into a fresh editing buffer.
func NewDraft(p *Portfolio) *Draft {
	d := &Draft{
		Version: p.Version,
		Profile: p.Profile.Clone(),
		Contact: p.Contact.Clone(),
	}
	d.SkillCategories = make([]SkillCategory, len(p.SkillCategories))
	for i, cat := range p.SkillCategories {
		d.SkillCategories[i] = cat.Clone()
	}
	d.Projects = make([]Project, len(p.Projects))
	for i, proj := range p.Projects {
		d.Projects[i] = proj.Clone()
	}
	return d
}

// Clone deep-copies the draft itself, used when mirroring into the
// preview registry slot.
func (d *Draft) Clone() *Draft {
	out := &Draft{
		Version: d.Version,
		Profile: d.Profile.Clone(),
		Contact: d.Contact.Clone(),
	}
	out.SkillCategories = make([]SkillCategory, len(d.SkillCategories))
	for i, cat := range d.SkillCategories {
		out.SkillCategories[i] = cat.Clone()
	}
	out.Projects = make([]Project, len(d.Projects))
	for i, proj := range d.Projects {
		out.Projects[i] = proj.Clone()
	}
	return out
}

// ToPortfolio reifies the draft back into a canonical aggregate registered
// under id. Validation failures (e.g. a skill level edited out of range)
// surface here, at commit time.
func (d *Draft) ToPortfolio(id string) (*Portfolio, error) {
	if id == "" {
		id = "portfolio-" + uuid.NewString()
	}
	clone := d.Clone()
	return New(id, clone.Version, clone.Profile, clone.SkillCategories, clone.Projects, clone.Contact)
}
