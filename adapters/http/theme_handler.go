package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hengtai25/portfolio-api/internal/application/usecase/themesvc"
	"github.com/hengtai25/portfolio-api/internal/domain/theme"
	"github.com/hengtai25/portfolio-api/pkg/apperror"
	"github.com/hengtai25/portfolio-api/pkg/idgen"
)

type ThemeHandler struct {
	svc *themesvc.Service
}

func NewThemeHandler(svc *themesvc.Service) *ThemeHandler {
	return &ThemeHandler{svc: svc}
}

// GetCurrent returns the active theme. A theme or season query parameter
// previews the matching preset for this response without changing the
// stored selection.
func (h *ThemeHandler) GetCurrent(c *gin.Context) {
	if id := theme.PresetID(c.Query("theme")); id != "" && id.IsValid() && id != theme.PresetCustom {
		c.JSON(http.StatusOK, theme.GetPreset(id, h.svc.Current().Mode))
		return
	}
	if season := theme.Season(c.Query("season")); season.IsValid() {
		c.JSON(http.StatusOK, theme.GetPreset(h.svc.SeasonalThemes()[season], h.svc.Current().Mode))
		return
	}
	c.JSON(http.StatusOK, h.svc.Current())
}

// GetCSSVariables returns the active theme as CSS custom properties for
// the presentation layer to inline.
func (h *ThemeHandler) GetCSSVariables(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.CSSVariables())
}

func (h *ThemeHandler) GetPresets(c *gin.Context) {
	c.JSON(http.StatusOK, theme.AvailablePresets())
}

func (h *ThemeHandler) SetPreset(c *gin.Context) {
	var req SetPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	id := theme.PresetID(req.PresetID)
	if !id.IsValid() || id == theme.PresetCustom {
		c.Error(apperror.NewNotFound("theme preset", req.PresetID))
		return
	}
	h.svc.SetPreset(c.Request.Context(), id)
	c.JSON(http.StatusOK, h.svc.Current())
}

func (h *ThemeHandler) SetMode(c *gin.Context) {
	var req SetModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	mode := theme.Mode(req.Mode)
	if !mode.IsValid() {
		c.Error(apperror.NewInvalidInput("mode must be light or dark", nil))
		return
	}
	if err := h.svc.SetMode(c.Request.Context(), mode); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, h.svc.Current())
}

func (h *ThemeHandler) ToggleMode(c *gin.Context) {
	if err := h.svc.ToggleMode(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, h.svc.Current())
}

func (h *ThemeHandler) ListCustomThemes(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.CustomThemes())
}

// SaveCustomTheme builds a custom theme from the request and stores it.
// A full palette is used verbatim; otherwise one is synthesized from
// the primary and accent colors.
func (h *ThemeHandler) SaveCustomTheme(c *gin.Context) {
	var req BuildThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	mode := theme.Mode(req.Mode)
	if !mode.IsValid() {
		c.Error(apperror.NewInvalidInput("mode must be light or dark", nil))
		return
	}

	id := req.ID
	if id == "" {
		id = idgen.NewThemeID()
	}
	builder := theme.NewBuilder().
		WithID(id).
		WithName(req.Name).
		WithMode(mode).
		WithCustomCSS(req.CustomCSS)
	if req.PrimaryColor != "" {
		builder = builder.WithPrimaryColor(req.PrimaryColor)
	}
	if req.AccentColor != "" {
		builder = builder.WithAccentColor(req.AccentColor)
	}
	if req.Background != "" {
		builder = builder.WithBackground(req.Background)
	}
	if req.Palette != nil {
		builder = builder.WithPalette(*req.Palette)
	}
	if req.Typography != nil {
		builder = builder.WithTypography(*req.Typography)
	}

	built, err := builder.Build()
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid theme", err))
		return
	}
	if err := h.svc.SaveCustomTheme(c.Request.Context(), built); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, built)
}

func (h *ThemeHandler) ApplyCustomTheme(c *gin.Context) {
	t, err := h.svc.CustomTheme(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.svc.SetTheme(c.Request.Context(), t); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, h.svc.Current())
}

func (h *ThemeHandler) DeleteCustomTheme(c *gin.Context) {
	if err := h.svc.DeleteCustomTheme(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ThemeHandler) PairThemes(c *gin.Context) {
	var req PairThemesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	if err := h.svc.PairCustomThemes(c.Request.Context(), req.LightID, req.DarkID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lightId": req.LightID, "darkId": req.DarkID})
}

func (h *ThemeHandler) UnpairTheme(c *gin.Context) {
	h.svc.UnpairCustomTheme(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *ThemeHandler) GetPairedTheme(c *gin.Context) {
	partner := h.svc.PairedThemeID(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"pairedThemeId": partner})
}

func (h *ThemeHandler) GetSeasonalThemes(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.SeasonalThemes())
}

func (h *ThemeHandler) SetSeasonalTheme(c *gin.Context) {
	var req SeasonalThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	if err := h.svc.SetSeasonalTheme(c.Request.Context(), theme.Season(req.Season), theme.PresetID(req.PresetID)); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, h.svc.SeasonalThemes())
}
