package portfolio

import (
	"fmt"
	"time"
)

// Portfolio is the aggregate root for one named version of the site's
// content: exactly one Profile and one ContactInfo, plus ordered skill
// categories and projects. It is replaced wholesale on every save, never
// mutated in place.
type Portfolio struct {
	ID              string          `json:"id"`
	Version         string          `json:"version"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	Profile         Profile         `json:"profile"`
	SkillCategories []SkillCategory `json:"skillCategories"`
	Projects        []Project       `json:"projects"`
	Contact         ContactInfo     `json:"contact"`
}

func New(id, version string, profile Profile, categories []SkillCategory, projects []Project, contact ContactInfo) (*Portfolio, error) {
	now := time.Now().UTC()
	p := &Portfolio{
		ID:              id,
		Version:         version,
		CreatedAt:       now,
		UpdatedAt:       now,
		Profile:         profile,
		SkillCategories: categories,
		Projects:        projects,
		Contact:         contact,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Portfolio) Validate() error {
	seen := make(map[string]struct{}, len(p.Projects))
	for _, proj := range p.Projects {
		if err := proj.Validate(); err != nil {
			return fmt.Errorf("project %q: %w", proj.Title, err)
		}
		if _, dup := seen[proj.ID]; dup {
			return fmt.Errorf("duplicate project id %q", proj.ID)
		}
		seen[proj.ID] = struct{}{}
	}
	for _, cat := range p.SkillCategories {
		if err := cat.Validate(); err != nil {
			return fmt.Errorf("skill category %q: %w", cat.Category, err)
		}
	}
	if err := p.Contact.Validate(); err != nil {
		return err
	}
	return nil
}

func (p *Portfolio) Equals(other *Portfolio) bool {
	return other != nil && p.ID == other.ID
}
