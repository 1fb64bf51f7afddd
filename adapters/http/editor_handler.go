package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hengtai25/portfolio-api/internal/application/usecase/editor"
	"github.com/hengtai25/portfolio-api/internal/domain/portfolio"
	"github.com/hengtai25/portfolio-api/pkg/apperror"
)

// EditorHandler exposes the draft editing workflow to the admin UI.
// Index-addressed mutations are silent no-ops when out of range, so
// every mutation responds with the refreshed editor state and the
// client re-renders from that.
type EditorHandler struct {
	svc *editor.Service
}

func NewEditorHandler(svc *editor.Service) *EditorHandler {
	return &EditorHandler{svc: svc}
}

func (h *EditorHandler) state() gin.H {
	return gin.H{
		"currentVersion": h.svc.CurrentVersion(),
		"isDirty":        h.svc.IsDirty(),
		"draft":          h.svc.Draft(),
	}
}

func (h *EditorHandler) respondState(c *gin.Context) {
	c.JSON(http.StatusOK, h.state())
}

func indexParam(c *gin.Context, name string) (int, bool) {
	i, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.Error(apperror.NewInvalidInput("index must be an integer", err))
		return 0, false
	}
	return i, true
}

func (h *EditorHandler) GetState(c *gin.Context) {
	h.respondState(c)
}

func (h *EditorHandler) LoadVersion(c *gin.Context) {
	if err := h.svc.LoadVersion(c.Request.Context(), c.Param("version")); err != nil {
		c.Error(err)
		return
	}
	h.respondState(c)
}

func (h *EditorHandler) Save(c *gin.Context) {
	if err := h.svc.SaveCurrentVersion(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	h.respondState(c)
}

func (h *EditorHandler) SaveAs(c *gin.Context) {
	var req SaveAsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	if err := h.svc.SaveAsNewVersion(c.Request.Context(), req.Name); err != nil {
		c.Error(err)
		return
	}
	h.respondState(c)
}

func (h *EditorHandler) Discard(c *gin.Context) {
	if err := h.svc.DiscardChanges(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	h.respondState(c)
}

func (h *EditorHandler) Publish(c *gin.Context) {
	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	if err := h.svc.PublishVersion(c.Request.Context(), req.Version); err != nil {
		c.Error(err)
		return
	}
	h.respondState(c)
}

func (h *EditorHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	h.svc.UpdateProfile(c.Request.Context(), editor.ProfileUpdate{
		Name:        req.Name,
		Title:       req.Title,
		Greeting:    req.Greeting,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
	})
	h.respondState(c)
}

func (h *EditorHandler) AddProfileStat(c *gin.Context) {
	var req ProfileStatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	h.svc.AddProfileStat(c.Request.Context(), portfolio.ProfileStat{Value: req.Value, Label: req.Label, Link: req.Link})
	h.respondState(c)
}

func (h *EditorHandler) UpdateProfileStat(c *gin.Context) {
	index, ok := indexParam(c, "index")
	if !ok {
		return
	}
	var req ProfileStatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	h.svc.UpdateProfileStat(c.Request.Context(), index, portfolio.ProfileStat{Value: req.Value, Label: req.Label, Link: req.Link})
	h.respondState(c)
}

func (h *EditorHandler) RemoveProfileStat(c *gin.Context) {
	index, ok := indexParam(c, "index")
	if !ok {
		return
	}
	h.svc.RemoveProfileStat(c.Request.Context(), index)
	h.respondState(c)
}

func (h *EditorHandler) AddAboutParagraph(c *gin.Context) {
	var req ParagraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	h.svc.AddAboutParagraph(c.Request.Context(), req.Text)
	h.respondState(c)
}

func (h *EditorHandler) UpdateAboutParagraph(c *gin.Context) {
	index, ok := indexParam(c, "index")
	if !ok {
		return
	}
	var req ParagraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	h.svc.UpdateAboutParagraph(c.Request.Context(), index, req.Text)
	h.respondState(c)
}

func (h *EditorHandler) RemoveAboutParagraph(c *gin.Context) {
	index, ok := indexParam(c, "index")
	if !ok {
		return
	}
	h.svc.RemoveAboutParagraph(c.Request.Context(), index)
	h.respondState(c)
}

func (h *EditorHandler) AddSkillCategory(c *gin.Context) {
	var req SkillCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	h.svc.AddSkillCategory(c.Request.Context(), req.Category)
	h.respondState(c)
}

func (h *EditorHandler) UpdateSkillCategory(c *gin.Context) {
	index, ok := indexParam(c, "categoryIndex")
	if !ok {
		return
	}
	var req SkillCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	h.svc.UpdateSkillCategory(c.Request.Context(), index, req.Category)
	h.respondState(c)
}

func (h *EditorHandler) RemoveSkillCategory(c *gin.Context) {
	index, ok := indexParam(c, "categoryIndex")
	if !ok {
		return
	}
	h.svc.RemoveSkillCategory(c.Request.Context(), index)
	h.respondState(c)
}

func (h *EditorHandler) AddSkill(c *gin.Context) {
	categoryIndex, ok := indexParam(c, "categoryIndex")
	if !ok {
		return
	}
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	skill, err := portfolio.NewSkill(req.Name, req.Level)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill", err))
		return
	}
	h.svc.AddSkill(c.Request.Context(), categoryIndex, skill)
	h.respondState(c)
}

func (h *EditorHandler) UpdateSkill(c *gin.Context) {
	categoryIndex, ok := indexParam(c, "categoryIndex")
	if !ok {
		return
	}
	skillIndex, ok := indexParam(c, "skillIndex")
	if !ok {
		return
	}
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	skill, err := portfolio.NewSkill(req.Name, req.Level)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill", err))
		return
	}
	h.svc.UpdateSkill(c.Request.Context(), categoryIndex, skillIndex, skill)
	h.respondState(c)
}

func (h *EditorHandler) RemoveSkill(c *gin.Context) {
	categoryIndex, ok := indexParam(c, "categoryIndex")
	if !ok {
		return
	}
	skillIndex, ok := indexParam(c, "skillIndex")
	if !ok {
		return
	}
	h.svc.RemoveSkill(c.Request.Context(), categoryIndex, skillIndex)
	h.respondState(c)
}

func (h *EditorHandler) AddProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	h.svc.AddProject(c.Request.Context(), req.toDomain())
	h.respondState(c)
}

func (h *EditorHandler) UpdateProject(c *gin.Context) {
	index, ok := indexParam(c, "index")
	if !ok {
		return
	}
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	h.svc.UpdateProject(c.Request.Context(), index, req.toDomain())
	h.respondState(c)
}

func (h *EditorHandler) RemoveProject(c *gin.Context) {
	index, ok := indexParam(c, "index")
	if !ok {
		return
	}
	h.svc.RemoveProject(c.Request.Context(), index)
	h.respondState(c)
}

func (h *EditorHandler) ReorderProjects(c *gin.Context) {
	var req ReorderProjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	h.svc.ReorderProjects(c.Request.Context(), *req.From, *req.To)
	h.respondState(c)
}

func (h *EditorHandler) UpdateContact(c *gin.Context) {
	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	h.svc.UpdateContact(c.Request.Context(), editor.ContactUpdate{Email: req.Email, Location: req.Location})
	h.respondState(c)
}

func (h *EditorHandler) AddSocialLink(c *gin.Context) {
	var req SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	link := req.toDomain()
	if err := link.Validate(); err != nil {
		c.Error(apperror.NewInvalidInput("invalid social link", err))
		return
	}
	h.svc.AddSocialLink(c.Request.Context(), link)
	h.respondState(c)
}

func (h *EditorHandler) UpdateSocialLink(c *gin.Context) {
	index, ok := indexParam(c, "index")
	if !ok {
		return
	}
	var req SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	link := req.toDomain()
	if err := link.Validate(); err != nil {
		c.Error(apperror.NewInvalidInput("invalid social link", err))
		return
	}
	h.svc.UpdateSocialLink(c.Request.Context(), index, link)
	h.respondState(c)
}

func (h *EditorHandler) RemoveSocialLink(c *gin.Context) {
	index, ok := indexParam(c, "index")
	if !ok {
		return
	}
	h.svc.RemoveSocialLink(c.Request.Context(), index)
	h.respondState(c)
}

func (h *EditorHandler) AddContactField(c *gin.Context) {
	var req ContactFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	h.svc.AddContactField(c.Request.Context(), portfolio.ContactField{Label: req.Label, Value: req.Value, Icon: req.Icon})
	h.respondState(c)
}

func (h *EditorHandler) UpdateContactField(c *gin.Context) {
	index, ok := indexParam(c, "index")
	if !ok {
		return
	}
	var req ContactFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	h.svc.UpdateContactField(c.Request.Context(), index, portfolio.ContactField{Label: req.Label, Value: req.Value, Icon: req.Icon})
	h.respondState(c)
}

func (h *EditorHandler) RemoveContactField(c *gin.Context) {
	index, ok := indexParam(c, "index")
	if !ok {
		return
	}
	h.svc.RemoveContactField(c.Request.Context(), index)
	h.respondState(c)
}
