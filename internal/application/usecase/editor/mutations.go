package editor

import (
	"context"

	"github.com/hengtai25/portfolio-api/internal/domain/portfolio"
	"github.com/hengtai25/portfolio-api/pkg/idgen"
)

// Field-level draft mutations. Every mutation follows the same contract:
// it is a silent no-op when no draft is loaded or an index is out of
// range, and on success it marks the draft dirty, refreshes the preview
// slot, persists the draft, and notifies subscribers.

// ProfileUpdate carries a partial profile edit; nil fields are left
// unchanged.
type ProfileUpdate struct {
	Name        *string `json:"name"`
	Title       *string `json:"title"`
	Greeting    *string `json:"greeting"`
	Description *string `json:"description"`
	PhotoURL    *string `json:"photoUrl"`
}

// ContactUpdate carries a partial contact edit; nil fields are left
// unchanged.
type ContactUpdate struct {
	Email    *string `json:"email"`
	Location *string `json:"location"`
}

// mutate runs apply against the draft under the lock. apply reports
// whether it changed anything.
func (s *Service) mutate(ctx context.Context, apply func(d *portfolio.Draft) bool) {
	s.mu.Lock()
	if s.draft == nil || !apply(s.draft) {
		s.mu.Unlock()
		return
	}
	s.dirty = true
	s.mirrorPreview()
	s.persistDraft(ctx)
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notify(subs)
}

func validIndex(i, length int) bool {
	return i >= 0 && i < length
}

func (s *Service) UpdateProfile(ctx context.Context, update ProfileUpdate) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if update.Name != nil {
			d.Profile.Name = *update.Name
		}
		if update.Title != nil {
			d.Profile.Title = *update.Title
		}
		if update.Greeting != nil {
			d.Profile.Greeting = *update.Greeting
		}
		if update.Description != nil {
			d.Profile.Description = *update.Description
		}
		if update.PhotoURL != nil {
			d.Profile.PhotoURL = *update.PhotoURL
		}
		return true
	})
}

func (s *Service) AddProfileStat(ctx context.Context, stat portfolio.ProfileStat) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		d.Profile.Stats = append(d.Profile.Stats, stat)
		return true
	})
}

func (s *Service) UpdateProfileStat(ctx context.Context, index int, stat portfolio.ProfileStat) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if !validIndex(index, len(d.Profile.Stats)) {
			return false
		}
		d.Profile.Stats[index] = stat
		return true
	})
}

func (s *Service) RemoveProfileStat(ctx context.Context, index int) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if !validIndex(index, len(d.Profile.Stats)) {
			return false
		}
		d.Profile.Stats = append(d.Profile.Stats[:index], d.Profile.Stats[index+1:]...)
		return true
	})
}

func (s *Service) AddAboutParagraph(ctx context.Context, text string) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		d.Profile.AboutParagraphs = append(d.Profile.AboutParagraphs, text)
		return true
	})
}

func (s *Service) UpdateAboutParagraph(ctx context.Context, index int, text string) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if !validIndex(index, len(d.Profile.AboutParagraphs)) {
			return false
		}
		d.Profile.AboutParagraphs[index] = text
		return true
	})
}

func (s *Service) RemoveAboutParagraph(ctx context.Context, index int) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if !validIndex(index, len(d.Profile.AboutParagraphs)) {
			return false
		}
		d.Profile.AboutParagraphs = append(d.Profile.AboutParagraphs[:index], d.Profile.AboutParagraphs[index+1:]...)
		return true
	})
}

func (s *Service) AddSkillCategory(ctx context.Context, category string) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		d.SkillCategories = append(d.SkillCategories, portfolio.SkillCategory{
			Category: category,
			Skills:   []portfolio.Skill{},
		})
		return true
	})
}

func (s *Service) UpdateSkillCategory(ctx context.Context, index int, category string) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if !validIndex(index, len(d.SkillCategories)) {
			return false
		}
		d.SkillCategories[index].Category = category
		return true
	})
}

func (s *Service) RemoveSkillCategory(ctx context.Context, index int) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if !validIndex(index, len(d.SkillCategories)) {
			return false
		}
		d.SkillCategories = append(d.SkillCategories[:index], d.SkillCategories[index+1:]...)
		return true
	})
}

func (s *Service) AddSkill(ctx context.Context, categoryIndex int, skill portfolio.Skill) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if !validIndex(categoryIndex, len(d.SkillCategories)) {
			return false
		}
		cat := &d.SkillCategories[categoryIndex]
		cat.Skills = append(cat.Skills, skill)
		return true
	})
}

func (s *Service) UpdateSkill(ctx context.Context, categoryIndex, skillIndex int, skill portfolio.Skill) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if !validIndex(categoryIndex, len(d.SkillCategories)) {
			return false
		}
		cat := &d.SkillCategories[categoryIndex]
		if !validIndex(skillIndex, len(cat.Skills)) {
			return false
		}
		cat.Skills[skillIndex] = skill
		return true
	})
}

func (s *Service) RemoveSkill(ctx context.Context, categoryIndex, skillIndex int) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if !validIndex(categoryIndex, len(d.SkillCategories)) {
			return false
		}
		cat := &d.SkillCategories[categoryIndex]
		if !validIndex(skillIndex, len(cat.Skills)) {
			return false
		}
		cat.Skills = append(cat.Skills[:skillIndex], cat.Skills[skillIndex+1:]...)
		return true
	})
}

// AddProject appends a project to the draft, generating an id when the
// caller did not supply one.
func (s *Service) AddProject(ctx context.Context, project portfolio.Project) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if project.ID == "" {
			project.ID = idgen.NewProjectID()
		}
		d.Projects = append(d.Projects, project)
		return true
	})
}

// UpdateProject replaces the project at index, keeping its existing id
// when the update leaves the id blank.
func (s *Service) UpdateProject(ctx context.Context, index int, project portfolio.Project) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if !validIndex(index, len(d.Projects)) {
			return false
		}
		if project.ID == "" {
			project.ID = d.Projects[index].ID
		}
		d.Projects[index] = project
		return true
	})
}

func (s *Service) RemoveProject(ctx context.Context, index int) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if !validIndex(index, len(d.Projects)) {
			return false
		}
		d.Projects = append(d.Projects[:index], d.Projects[index+1:]...)
		return true
	})
}

// ReorderProjects moves the project at from to position to. A single
// positional move, not a swap.
func (s *Service) ReorderProjects(ctx context.Context, from, to int) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if !validIndex(from, len(d.Projects)) || !validIndex(to, len(d.Projects)) {
			return false
		}
		moved := d.Projects[from]
		rest := append(d.Projects[:from], d.Projects[from+1:]...)
		d.Projects = append(rest[:to], append([]portfolio.Project{moved}, rest[to:]...)...)
		return true
	})
}

func (s *Service) UpdateContact(ctx context.Context, update ContactUpdate) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if update.Email != nil {
			d.Contact.Email = *update.Email
		}
		if update.Location != nil {
			d.Contact.Location = *update.Location
		}
		return true
	})
}

func (s *Service) AddSocialLink(ctx context.Context, link portfolio.SocialLink) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		d.Contact.SocialLinks = append(d.Contact.SocialLinks, link)
		return true
	})
}

func (s *Service) UpdateSocialLink(ctx context.Context, index int, link portfolio.SocialLink) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if !validIndex(index, len(d.Contact.SocialLinks)) {
			return false
		}
		d.Contact.SocialLinks[index] = link
		return true
	})
}

func (s *Service) RemoveSocialLink(ctx context.Context, index int) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if !validIndex(index, len(d.Contact.SocialLinks)) {
			return false
		}
		d.Contact.SocialLinks = append(d.Contact.SocialLinks[:index], d.Contact.SocialLinks[index+1:]...)
		return true
	})
}

func (s *Service) AddContactField(ctx context.Context, field portfolio.ContactField) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		d.Contact.CustomFields = append(d.Contact.CustomFields, field)
		return true
	})
}

func (s *Service) UpdateContactField(ctx context.Context, index int, field portfolio.ContactField) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if !validIndex(index, len(d.Contact.CustomFields)) {
			return false
		}
		d.Contact.CustomFields[index] = field
		return true
	})
}

func (s *Service) RemoveContactField(ctx context.Context, index int) {
	s.mutate(ctx, func(d *portfolio.Draft) bool {
		if !validIndex(index, len(d.Contact.CustomFields)) {
			return false
		}
		d.Contact.CustomFields = append(d.Contact.CustomFields[:index], d.Contact.CustomFields[index+1:]...)
		return true
	})
}
