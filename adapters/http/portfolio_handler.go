package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hengtai25/portfolio-api/internal/application/usecase/version"
	"github.com/hengtai25/portfolio-api/internal/domain/portfolio"
)

// PortfolioHandler serves the public read-only site content. The active
// version resolves per request from the version query parameter,
// falling back to the registry default.
type PortfolioHandler struct {
	registry *portfolio.Registry
}

func NewPortfolioHandler(registry *portfolio.Registry) *PortfolioHandler {
	return &PortfolioHandler{registry: registry}
}

func (h *PortfolioHandler) manager(c *gin.Context) *version.Manager {
	return version.NewManager(h.registry, version.ResolveOptions{
		QueryParam: c.Query("version"),
	})
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	p, err := h.manager(c).Portfolio()
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PortfolioHandler) GetProfile(c *gin.Context) {
	profile, err := h.manager(c).Profile()
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *PortfolioHandler) GetSkills(c *gin.Context) {
	categories, err := h.manager(c).SkillCategories()
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *PortfolioHandler) GetProjects(c *gin.Context) {
	projects, err := h.manager(c).Projects()
	if err != nil {
		c.Error(err)
		return
	}

	out := make([]gin.H, 0, len(projects))
	for _, p := range projects {
		out = append(out, gin.H{
			"id":          p.ID,
			"title":       p.Title,
			"description": p.Description,
			"tags":        p.Tags,
			"imageUrl":    p.PreviewImageURL(),
			"liveUrl":     p.LiveURL,
			"githubUrl":   p.GithubURL,
			"hasGithub":   p.HasGithub(),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *PortfolioHandler) GetContact(c *gin.Context) {
	contact, err := h.manager(c).ContactInfo()
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *PortfolioHandler) GetVersions(c *gin.Context) {
	m := h.manager(c)
	c.JSON(http.StatusOK, gin.H{
		"versions": m.AvailableVersions(),
		"default":  h.registry.DefaultVersion(),
		"current":  m.CurrentVersion(),
	})
}
