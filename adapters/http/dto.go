package http

import (
	"github.com/hengtai25/portfolio-api/internal/domain/portfolio"
	"github.com/hengtai25/portfolio-api/internal/domain/theme"
)

type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	Title       *string `json:"title"`
	Greeting    *string `json:"greeting"`
	Description *string `json:"description"`
	PhotoURL    *string `json:"photoUrl"`
}

type ProfileStatRequest struct {
	Value string `json:"value" binding:"required"`
	Label string `json:"label" binding:"required"`
	Link  string `json:"link"`
}

type ParagraphRequest struct {
	Text string `json:"text" binding:"required"`
}

type SkillCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

type SkillRequest struct {
	Name  string `json:"name" binding:"required"`
	Level int    `json:"level" binding:"min=0,max=100"`
}

type ProjectRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	ImageURL    *string  `json:"imageUrl"`
	LiveURL     string   `json:"liveUrl" binding:"required"`
	GithubURL   *string  `json:"githubUrl"`
}

func (r ProjectRequest) toDomain() portfolio.Project {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return portfolio.Project{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Tags:        tags,
		ImageURL:    r.ImageURL,
		LiveURL:     r.LiveURL,
		GithubURL:   r.GithubURL,
	}
}

type ReorderProjectsRequest struct {
	From *int `json:"from" binding:"required"`
	To   *int `json:"to" binding:"required"`
}

type UpdateContactRequest struct {
	Email    *string `json:"email"`
	Location *string `json:"location"`
}

type SocialLinkRequest struct {
	Platform   string `json:"platform" binding:"required"`
	URL        string `json:"url" binding:"required"`
	Label      string `json:"label" binding:"required"`
	CustomIcon string `json:"customIcon"`
}

func (r SocialLinkRequest) toDomain() portfolio.SocialLink {
	link := portfolio.NewSocialLink(portfolio.SocialPlatform(r.Platform), r.URL, r.Label)
	link.CustomIcon = r.CustomIcon
	return link
}

type ContactFieldRequest struct {
	Label string `json:"label" binding:"required"`
	Value string `json:"value" binding:"required"`
	Icon  string `json:"icon"`
}

type SaveAsRequest struct {
	Name string `json:"name" binding:"required"`
}

type PublishRequest struct {
	Version string `json:"version" binding:"required"`
}

type SetPresetRequest struct {
	PresetID string `json:"presetId" binding:"required"`
}

type SetModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

type PairThemesRequest struct {
	LightID string `json:"lightId" binding:"required"`
	DarkID  string `json:"darkId" binding:"required"`
}

type SeasonalThemeRequest struct {
	Season   string `json:"season" binding:"required"`
	PresetID string `json:"presetId" binding:"required"`
}

type BuildThemeRequest struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Mode         string              `json:"mode" binding:"required"`
	PrimaryColor string              `json:"primaryColor"`
	AccentColor  string              `json:"accentColor"`
	Background   string              `json:"background"`
	Palette      *theme.ColorPalette `json:"palette"`
	Typography   *theme.Typography   `json:"typography"`
	CustomCSS    string              `json:"customCss"`
}
