package portfolio

import "errors"

var ErrSkillLevel = errors.New("skill level must be between 0 and 100")

// Skill is a single technology with a proficiency level in [0, 100].
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

func NewSkill(name string, level int) (Skill, error) {
	s := Skill{Name: name, Level: level}
	if err := s.Validate(); err != nil {
		return Skill{}, err
	}
	return s, nil
}

func (s Skill) Validate() error {
	if s.Level < 0 || s.Level > 100 {
		return ErrSkillLevel
	}
	return nil
}

type SkillCategory struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

func (c SkillCategory) Validate() error {
	for _, s := range c.Skills {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c SkillCategory) Clone() SkillCategory {
	return SkillCategory{
		Category: c.Category,
		Skills:   append([]Skill(nil), c.Skills...),
	}
}
