package editor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/hengtai25/portfolio-api/adapters/persistence"
	"github.com/hengtai25/portfolio-api/internal/domain/portfolio"
	"github.com/hengtai25/portfolio-api/pkg/apperror"
	"github.com/hengtai25/portfolio-api/pkg/logger"
)

func testPortfolio(t *testing.T, id, version, name string) *portfolio.Portfolio {
	t.Helper()
	p, err := portfolio.New(id, version,
		portfolio.Profile{
			Name:            name,
			Title:           "Engineer",
			Greeting:        "Hi",
			Description:     "desc",
			AboutParagraphs: []string{"first paragraph"},
			Stats:           []portfolio.ProfileStat{{Value: "5+", Label: "Years"}},
		},
		[]portfolio.SkillCategory{
			{Category: "Backend", Skills: []portfolio.Skill{{Name: "Go", Level: 90}}},
		},
		[]portfolio.Project{
			{ID: id + "-p1", Title: "One", Description: "d", Tags: []string{"go"}, LiveURL: "https://one.example"},
			{ID: id + "-p2", Title: "Two", Description: "d", Tags: []string{"go"}, LiveURL: "https://two.example"},
			{ID: id + "-p3", Title: "Three", Description: "d", Tags: []string{"go"}, LiveURL: "https://three.example"},
		},
		portfolio.ContactInfo{
			Email:    "a@example.com",
			Location: "Hanoi",
			SocialLinks: []portfolio.SocialLink{
				portfolio.NewSocialLink(portfolio.PlatformGithub, "https://github.com/a", "GitHub"),
			},
		},
	)
	if err != nil {
		t.Fatalf("seed portfolio: %v", err)
	}
	return p
}

type EditorSuite struct {
	suite.Suite
	ctx      context.Context
	registry *portfolio.Registry
	store    *persistence.MemoryKVStore
	svc      *Service
}

func (s *EditorSuite) SetupTest() {
	s.ctx = context.Background()
	s.registry = portfolio.NewRegistry()
	s.registry.Register("alpha", testPortfolio(s.T(), "pf-alpha", "alpha", "A"))
	s.registry.Register("beta", testPortfolio(s.T(), "pf-beta", "beta", "B"))
	s.Require().NoError(s.registry.SetDefault("alpha"))
	s.store = persistence.NewMemoryKVStore()
	s.svc = NewService(s.registry, s.store, nil, logger.NewNop())
}

func TestEditorSuite(t *testing.T) {
	suite.Run(t, new(EditorSuite))
}

func (s *EditorSuite) TestLoadVersionIsIdempotent() {
	s.Require().NoError(s.svc.LoadVersion(s.ctx, "alpha"))
	first := s.svc.Draft()
	s.False(s.svc.IsDirty())

	s.Require().NoError(s.svc.LoadVersion(s.ctx, "alpha"))
	s.Equal(first, s.svc.Draft())
	s.False(s.svc.IsDirty())
}

func (s *EditorSuite) TestLoadUnknownVersionFails() {
	err := s.svc.LoadVersion(s.ctx, "gamma")
	s.Require().Error(err)
	var appErr *apperror.AppError
	s.Require().ErrorAs(err, &appErr)
	s.ErrorIs(err, apperror.ErrNotFound)
	s.Nil(s.svc.Draft())
}

func (s *EditorSuite) TestMutationsAreNoOpsWithoutDraft() {
	s.svc.AddSkillCategory(s.ctx, "Infra")
	s.svc.RemoveProject(s.ctx, 0)
	s.False(s.svc.IsDirty())
	s.Nil(s.svc.Draft())
}

func (s *EditorSuite) TestAddCategoryThenDiscard() {
	s.Require().NoError(s.svc.LoadVersion(s.ctx, "alpha"))
	before := s.svc.Draft()

	s.svc.AddSkillCategory(s.ctx, "Infra")
	draft := s.svc.Draft()
	s.Require().Len(draft.SkillCategories, len(before.SkillCategories)+1)
	added := draft.SkillCategories[len(draft.SkillCategories)-1]
	s.Equal("Infra", added.Category)
	s.Empty(added.Skills)
	s.True(s.svc.IsDirty())

	s.Require().NoError(s.svc.DiscardChanges(s.ctx))
	s.Equal(before.SkillCategories, s.svc.Draft().SkillCategories)
	s.False(s.svc.IsDirty())
}

func (s *EditorSuite) TestAddProjectGeneratesUniqueID() {
	s.Require().NoError(s.svc.LoadVersion(s.ctx, "alpha"))

	s.svc.AddProject(s.ctx, portfolio.Project{Title: "X", LiveURL: "https://x", Tags: []string{}})
	draft := s.svc.Draft()
	added := draft.Projects[len(draft.Projects)-1]
	s.NotEmpty(added.ID)
	for _, p := range draft.Projects[:len(draft.Projects)-1] {
		s.NotEqual(p.ID, added.ID)
	}
}

func (s *EditorSuite) TestReorderProjectsMovesNotSwaps() {
	s.Require().NoError(s.svc.LoadVersion(s.ctx, "alpha"))
	titles := func() []string {
		var out []string
		for _, p := range s.svc.Draft().Projects {
			out = append(out, p.Title)
		}
		return out
	}
	s.Equal([]string{"One", "Two", "Three"}, titles())

	s.svc.ReorderProjects(s.ctx, 0, 2)
	s.Equal([]string{"Two", "Three", "One"}, titles())
}

func (s *EditorSuite) TestIndexSafety() {
	s.Require().NoError(s.svc.LoadVersion(s.ctx, "alpha"))
	before := s.svc.Draft()

	s.svc.UpdateProfileStat(s.ctx, 99, portfolio.ProfileStat{Value: "0", Label: "x"})
	s.svc.RemoveSkillCategory(s.ctx, -1)
	s.svc.UpdateSkill(s.ctx, 0, 42, portfolio.Skill{Name: "Rust", Level: 50})
	s.svc.ReorderProjects(s.ctx, 0, 3)
	s.svc.RemoveSocialLink(s.ctx, 5)

	s.Equal(before, s.svc.Draft())
	s.False(s.svc.IsDirty())
}

func (s *EditorSuite) TestDirtyFlagLifecycle() {
	s.Require().NoError(s.svc.LoadVersion(s.ctx, "alpha"))
	s.False(s.svc.IsDirty())

	name := "Alice"
	s.svc.UpdateProfile(s.ctx, ProfileUpdate{Name: &name})
	s.True(s.svc.IsDirty())

	s.Require().NoError(s.svc.SaveCurrentVersion(s.ctx))
	s.False(s.svc.IsDirty())

	s.svc.AddAboutParagraph(s.ctx, "more")
	s.True(s.svc.IsDirty())

	s.Require().NoError(s.svc.SaveAsNewVersion(s.ctx, "alpha-2"))
	s.False(s.svc.IsDirty())
	s.Equal("alpha-2", s.svc.CurrentVersion())
}

func (s *EditorSuite) TestSaveOverwritesRegisteredVersion() {
	s.Require().NoError(s.svc.LoadVersion(s.ctx, "alpha"))
	name := "Renamed"
	s.svc.UpdateProfile(s.ctx, ProfileUpdate{Name: &name})
	s.Require().NoError(s.svc.SaveCurrentVersion(s.ctx))

	p, err := s.registry.Get("alpha")
	s.Require().NoError(err)
	s.Equal("Renamed", p.Profile.Name)
}

func (s *EditorSuite) TestSaveAsRejectsCollision() {
	s.Require().NoError(s.svc.LoadVersion(s.ctx, "alpha"))
	err := s.svc.SaveAsNewVersion(s.ctx, "beta")
	s.Require().Error(err)
	s.ErrorIs(err, apperror.ErrConflict)
	s.Equal("alpha", s.svc.CurrentVersion())
}

func (s *EditorSuite) TestPublishSavesDirtyCurrentVersion() {
	s.Require().NoError(s.svc.LoadVersion(s.ctx, "beta"))
	name := "B2"
	s.svc.UpdateProfile(s.ctx, ProfileUpdate{Name: &name})

	s.Require().NoError(s.svc.PublishVersion(s.ctx, "beta"))
	s.False(s.svc.IsDirty())
	s.Equal("beta", s.registry.DefaultVersion())

	p, err := s.registry.Get("")
	s.Require().NoError(err)
	s.Equal("B2", p.Profile.Name)
}

func (s *EditorSuite) TestPublishUnknownVersionFails() {
	err := s.svc.PublishVersion(s.ctx, "gamma")
	s.ErrorIs(err, apperror.ErrNotFound)
	s.Equal("alpha", s.registry.DefaultVersion())
}

func (s *EditorSuite) TestMutationMirrorsPreview() {
	s.Require().NoError(s.svc.LoadVersion(s.ctx, "alpha"))
	s.svc.AddSkillCategory(s.ctx, "Infra")

	preview, err := s.registry.Get(portfolio.PreviewVersion)
	s.Require().NoError(err)
	s.Equal("Infra", preview.SkillCategories[len(preview.SkillCategories)-1].Category)
}

func (s *EditorSuite) TestSubscription() {
	calls := 0
	unsubscribe := s.svc.Subscribe(func() { calls++ })

	s.Require().NoError(s.svc.LoadVersion(s.ctx, "alpha"))
	s.svc.AddAboutParagraph(s.ctx, "p")
	s.Equal(2, calls)

	unsubscribe()
	s.svc.AddAboutParagraph(s.ctx, "q")
	s.Equal(2, calls)
}

func (s *EditorSuite) TestRestoreResumesDraftAsDirty() {
	s.Require().NoError(s.svc.LoadVersion(s.ctx, "alpha"))
	s.svc.AddAboutParagraph(s.ctx, "pending edit")
	s.Require().NoError(s.svc.SaveAsNewVersion(s.ctx, "custom-1"))
	s.svc.AddAboutParagraph(s.ctx, "unsaved edit")
	s.Require().NoError(s.svc.PublishVersion(s.ctx, "alpha"))

	// A fresh registry simulates process restart; only built-ins exist.
	registry := portfolio.NewRegistry()
	registry.Register("alpha", testPortfolio(s.T(), "pf-alpha", "alpha", "A"))
	s.Require().NoError(registry.SetDefault("alpha"))

	revived := NewService(registry, s.store, nil, logger.NewNop())

	s.True(registry.Has("custom-1"))
	s.Equal("alpha", registry.DefaultVersion())
	s.True(revived.IsDirty())
	s.Equal("custom-1", revived.CurrentVersion())
	draft := revived.Draft()
	s.Require().NotNil(draft)
	s.Contains(draft.Profile.AboutParagraphs, "unsaved edit")
}

func (s *EditorSuite) TestRestoreResumesUnderSavedAsVersion() {
	s.Require().NoError(s.svc.LoadVersion(s.ctx, "alpha"))
	s.svc.AddAboutParagraph(s.ctx, "pending edit")
	s.Require().NoError(s.svc.SaveAsNewVersion(s.ctx, "v2"))
	// No mutation after the save: the stored draft alone must carry
	// the new version label across a restart.

	registry := portfolio.NewRegistry()
	registry.Register("alpha", testPortfolio(s.T(), "pf-alpha", "alpha", "A"))
	s.Require().NoError(registry.SetDefault("alpha"))

	revived := NewService(registry, s.store, nil, logger.NewNop())

	s.Equal("v2", revived.CurrentVersion())
	s.True(registry.Has("v2"))
	draft := revived.Draft()
	s.Require().NotNil(draft)
	s.Equal("v2", draft.Version)
	s.Contains(draft.Profile.AboutParagraphs, "pending edit")
}

func TestValidIndex(t *testing.T) {
	assert.True(t, validIndex(0, 1))
	assert.True(t, validIndex(2, 3))
	assert.False(t, validIndex(3, 3))
	assert.False(t, validIndex(-1, 3))
	assert.False(t, validIndex(0, 0))
}
