package httpserver

const (
	contactRateLimitMessage = "Rate limit exceeded. Please try again later."
	chatRateLimitMessage    = "Rate limit exceeded. Please wait a moment before sending more messages."
)

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	if s.config.UploadsDir != "" && s.config.UploadsURLPrefix != "" {
		s.echo.Static(s.config.UploadsURLPrefix, s.config.UploadsDir)
	}

	api := s.echo.Group("/api")
	api.GET("/health", s.apiHealth)

	api.GET("/blogs", s.listBlogs)
	api.GET("/blogs/:slug", s.getBlog)
	api.POST("/blogs/:slug/like", s.likeBlog)
	api.GET("/projects", s.listProjects)
	api.GET("/projects/:slug", s.getProject)
	api.GET("/services", s.listServices)
	api.GET("/services/:slug", s.getService)
	api.GET("/tools", s.listTools)
	api.GET("/tools/:slug", s.getTool)
	api.POST("/tools/:slug/click", s.clickTool)
	api.GET("/categories", s.listCategories)
	api.GET("/tags", s.listTags)
	api.GET("/stats", s.getStats)

	api.POST("/contact", s.submitContact, s.middleware.RateLimit.Handler("contact", contactRateLimitMessage))
	api.POST("/chat", s.chat, s.middleware.RateLimit.Handler("chat", chatRateLimitMessage))

	api.POST("/admin/login", s.login)

	admin := api.Group("/admin")
	admin.Use(s.middleware.JWT.RequireAdmin())
	admin.POST("/logout", s.logout)

	admin.GET("/blogs", s.adminListBlogs)
	admin.GET("/blogs/:slug", s.adminGetBlog)
	admin.POST("/blogs", s.adminCreateBlog)
	admin.PUT("/blogs/:slug", s.adminUpdateBlog)
	admin.DELETE("/blogs/:slug", s.adminDeleteBlog)

	admin.GET("/projects", s.adminListProjects)
	admin.GET("/projects/:slug", s.adminGetProject)
	admin.POST("/projects", s.adminCreateProject)
	admin.PUT("/projects/:slug", s.adminUpdateProject)
	admin.DELETE("/projects/:slug", s.adminDeleteProject)

	admin.GET("/services", s.adminListServices)
	admin.GET("/services/:slug", s.adminGetService)
	admin.POST("/services", s.adminCreateService)
	admin.PUT("/services/:slug", s.adminUpdateService)
	admin.DELETE("/services/:slug", s.adminDeleteService)

	admin.POST("/tools", s.adminCreateTool)
	admin.PUT("/tools/:id", s.adminUpdateTool)
	admin.DELETE("/tools/:id", s.adminDeleteTool)

	admin.POST("/categories", s.adminCreateCategory)
	admin.DELETE("/categories/:id", s.adminDeleteCategory)
	admin.POST("/tags", s.adminCreateTag)
	admin.DELETE("/tags/:id", s.adminDeleteTag)

	admin.POST("/upload", s.uploadFile, s.uploadBodyLimit())
	admin.GET("/assets", s.listAssets)
	admin.GET("/assets/:id/signed-url", s.assetSignedURL)
	admin.DELETE("/assets/:id", s.deleteAsset)
}
