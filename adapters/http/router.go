package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hengtai25/portfolio-api/pkg/auth"
)

// NewRouter assembles the public site API and the authenticated admin
// surface. The media handler is optional; without an uploader the
// upload route is simply absent.
func NewRouter(
	jwtSvc *auth.JWTService,
	authHandler *AuthHandler,
	portfolioHandler *PortfolioHandler,
	themeHandler *ThemeHandler,
	editorHandler *EditorHandler,
	mediaHandler *MediaHandler,
) *gin.Engine {
	router := gin.Default()
	router.Use(ErrorMiddleware())

	api := router.Group("/api")
	{
		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

			public.GET("/portfolio", portfolioHandler.GetPortfolio)
			public.GET("/portfolio/profile", portfolioHandler.GetProfile)
			public.GET("/portfolio/skills", portfolioHandler.GetSkills)
			public.GET("/portfolio/projects", portfolioHandler.GetProjects)
			public.GET("/portfolio/contact", portfolioHandler.GetContact)
			public.GET("/portfolio/versions", portfolioHandler.GetVersions)

			public.GET("/theme", themeHandler.GetCurrent)
			public.GET("/theme/css", themeHandler.GetCSSVariables)
			public.GET("/theme/presets", themeHandler.GetPresets)
		}

		admin := api.Group("/admin")
		{
			adminAuth := admin.Group("/auth")
			adminAuth.POST("/login", authHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(AuthMiddleware(jwtSvc))
			{
				ed := adminPrivate.Group("/editor")
				{
					ed.GET("", editorHandler.GetState)
					ed.POST("/load/:version", editorHandler.LoadVersion)
					ed.POST("/save", editorHandler.Save)
					ed.POST("/save-as", editorHandler.SaveAs)
					ed.POST("/discard", editorHandler.Discard)
					ed.POST("/publish", editorHandler.Publish)

					ed.PUT("/profile", editorHandler.UpdateProfile)
					ed.POST("/profile/stats", editorHandler.AddProfileStat)
					ed.PUT("/profile/stats/:index", editorHandler.UpdateProfileStat)
					ed.DELETE("/profile/stats/:index", editorHandler.RemoveProfileStat)
					ed.POST("/profile/paragraphs", editorHandler.AddAboutParagraph)
					ed.PUT("/profile/paragraphs/:index", editorHandler.UpdateAboutParagraph)
					ed.DELETE("/profile/paragraphs/:index", editorHandler.RemoveAboutParagraph)

					ed.POST("/skills", editorHandler.AddSkillCategory)
					ed.PUT("/skills/:categoryIndex", editorHandler.UpdateSkillCategory)
					ed.DELETE("/skills/:categoryIndex", editorHandler.RemoveSkillCategory)
					ed.POST("/skills/:categoryIndex/items", editorHandler.AddSkill)
					ed.PUT("/skills/:categoryIndex/items/:skillIndex", editorHandler.UpdateSkill)
					ed.DELETE("/skills/:categoryIndex/items/:skillIndex", editorHandler.RemoveSkill)

					ed.POST("/projects", editorHandler.AddProject)
					ed.PUT("/projects/:index", editorHandler.UpdateProject)
					ed.DELETE("/projects/:index", editorHandler.RemoveProject)
					ed.POST("/projects/reorder", editorHandler.ReorderProjects)

					ed.PUT("/contact", editorHandler.UpdateContact)
					ed.POST("/contact/links", editorHandler.AddSocialLink)
					ed.PUT("/contact/links/:index", editorHandler.UpdateSocialLink)
					ed.DELETE("/contact/links/:index", editorHandler.RemoveSocialLink)
					ed.POST("/contact/fields", editorHandler.AddContactField)
					ed.PUT("/contact/fields/:index", editorHandler.UpdateContactField)
					ed.DELETE("/contact/fields/:index", editorHandler.RemoveContactField)
				}

				th := adminPrivate.Group("/theme")
				{
					th.PUT("/preset", themeHandler.SetPreset)
					th.PUT("/mode", themeHandler.SetMode)
					th.POST("/toggle", themeHandler.ToggleMode)

					th.GET("/custom", themeHandler.ListCustomThemes)
					th.POST("/custom", themeHandler.SaveCustomTheme)
					th.POST("/custom/:id/apply", themeHandler.ApplyCustomTheme)
					th.DELETE("/custom/:id", themeHandler.DeleteCustomTheme)

					th.POST("/pairs", themeHandler.PairThemes)
					th.GET("/pairs/:id", themeHandler.GetPairedTheme)
					th.DELETE("/pairs/:id", themeHandler.UnpairTheme)

					th.GET("/seasonal", themeHandler.GetSeasonalThemes)
					th.PUT("/seasonal", themeHandler.SetSeasonalTheme)
				}

				if mediaHandler != nil {
					adminPrivate.POST("/media", mediaHandler.UploadAsset)
				}
			}
		}
	}

	return router
}
