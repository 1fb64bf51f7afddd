package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/hengtai25/portfolio-api/adapters/persistence"
	"github.com/hengtai25/portfolio-api/internal/application/usecase/auth"
	"github.com/hengtai25/portfolio-api/internal/application/usecase/editor"
	"github.com/hengtai25/portfolio-api/internal/application/usecase/themesvc"
	"github.com/hengtai25/portfolio-api/internal/config"
	"github.com/hengtai25/portfolio-api/internal/domain/portfolio"
	"github.com/hengtai25/portfolio-api/internal/domain/theme"
	"github.com/hengtai25/portfolio-api/internal/seed"
	pkgauth "github.com/hengtai25/portfolio-api/pkg/auth"
	"github.com/hengtai25/portfolio-api/pkg/logger"
)

type APITestSuite struct {
	suite.Suite
	router   *gin.Engine
	registry *portfolio.Registry
	token    string
	password string
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.password = "test_password_123"
	hash, err := pkgauth.HashPassword(s.password)
	s.Require().NoError(err)

	var cfg config.Config
	cfg.Auth.AdminEmail = "admin@example.com"
	cfg.Auth.AdminPasswordHash = hash
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenLifespan = time.Hour

	log := logger.NewNop()
	store := persistence.NewMemoryKVStore()

	s.registry = portfolio.NewRegistry()
	s.Require().NoError(seed.Register(s.registry))

	jwtSvc := pkgauth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	editorSvc := editor.NewService(s.registry, store, nil, log)
	themeSvc := themesvc.NewService(store, nil, log, themesvc.ResolveOptions{DefaultMode: theme.ModeLight})

	loginUC := auth.NewLoginUseCase(cfg, jwtSvc, log)

	s.router = NewRouter(
		jwtSvc,
		NewAuthHandler(loginUC),
		NewPortfolioHandler(s.registry),
		NewThemeHandler(themeSvc),
		NewEditorHandler(editorSvc),
		nil,
	)

	token, err := jwtSvc.GenerateToken(cfg.Auth.AdminEmail)
	s.Require().NoError(err)
	s.token = token
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) do(method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APITestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/api/health", nil, false)
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestLogin() {
	w := s.do(http.MethodPost, "/api/admin/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": s.password,
	}, false)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.NotEmpty(resp["access_token"])
}

func (s *APITestSuite) TestLoginRejectsBadPassword() {
	w := s.do(http.MethodPost, "/api/admin/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "wrong",
	}, false)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestAdminRoutesRequireToken() {
	w := s.do(http.MethodGet, "/api/admin/editor", nil, false)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestPublicPortfolio() {
	w := s.do(http.MethodGet, "/api/portfolio/profile", nil, false)
	s.Require().Equal(http.StatusOK, w.Code)

	var profile portfolio.Profile
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &profile))
	s.Equal("Demo User", profile.Name)
}

func (s *APITestSuite) TestUnknownVersionIs404() {
	w := s.do(http.MethodGet, "/api/portfolio?version=nope", nil, false)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *APITestSuite) TestEditorWorkflow() {
	w := s.do(http.MethodPost, "/api/admin/editor/load/demo", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodPut, "/api/admin/editor/profile", gin.H{"name": "Edited"}, true)
	s.Require().Equal(http.StatusOK, w.Code)

	var state struct {
		CurrentVersion string           `json:"currentVersion"`
		IsDirty        bool             `json:"isDirty"`
		Draft          *portfolio.Draft `json:"draft"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &state))
	s.True(state.IsDirty)
	s.Equal("Edited", state.Draft.Profile.Name)

	// Canonical content is untouched until save.
	p, err := s.registry.Get("demo")
	s.Require().NoError(err)
	s.Equal("Demo User", p.Profile.Name)

	w = s.do(http.MethodPost, "/api/admin/editor/save-as", gin.H{"name": "v2"}, true)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/api/admin/editor/publish", gin.H{"version": "v2"}, true)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("v2", s.registry.DefaultVersion())

	// save-as onto an existing version name conflicts.
	w = s.do(http.MethodPost, "/api/admin/editor/save-as", gin.H{"name": "demo"}, true)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *APITestSuite) TestSkillRoutes() {
	w := s.do(http.MethodPost, "/api/admin/editor/load/demo", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/api/admin/editor/skills", gin.H{"category": "Infra"}, true)
	s.Require().Equal(http.StatusOK, w.Code)

	var state struct {
		Draft *portfolio.Draft `json:"draft"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &state))
	last := len(state.Draft.SkillCategories) - 1
	s.Equal("Infra", state.Draft.SkillCategories[last].Category)

	path := "/api/admin/editor/skills/" + strconv.Itoa(last)
	w = s.do(http.MethodPost, path+"/items", gin.H{"name": "Terraform", "level": 70}, true)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodPut, path+"/items/0", gin.H{"name": "Terraform", "level": 85}, true)
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &state))
	s.Equal(85, state.Draft.SkillCategories[last].Skills[0].Level)

	w = s.do(http.MethodDelete, path+"/items/0", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodPut, path, gin.H{"category": "Platform"}, true)
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &state))
	s.Equal("Platform", state.Draft.SkillCategories[last].Category)
	s.Empty(state.Draft.SkillCategories[last].Skills)

	w = s.do(http.MethodDelete, path, nil, true)
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &state))
	s.Len(state.Draft.SkillCategories, last)
}

func (s *APITestSuite) TestThemeEndpoints() {
	w := s.do(http.MethodGet, "/api/theme/presets", nil, false)
	s.Require().Equal(http.StatusOK, w.Code)

	var presets []theme.PresetInfo
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &presets))
	s.Len(presets, 12)

	w = s.do(http.MethodPut, "/api/admin/theme/preset", gin.H{"presetId": "ocean"}, true)
	s.Require().Equal(http.StatusOK, w.Code)

	var current theme.Theme
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &current))
	s.Equal(theme.PresetOcean, current.PresetID)

	w = s.do(http.MethodPut, "/api/admin/theme/preset", gin.H{"presetId": "bogus"}, true)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/api/admin/theme/custom", gin.H{
		"name":         "Mine",
		"mode":         "light",
		"primaryColor": "#10b981",
		"accentColor":  "#f59e0b",
	}, true)
	s.Require().Equal(http.StatusCreated, w.Code)

	var built theme.Theme
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &built))
	s.True(built.IsCustom())
	s.Equal("#10b981", built.Colors.Primary)
}
