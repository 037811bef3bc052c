package app

import (
	"dsa_prep_backend/docs"
	"dsa_prep_backend/internal/config"
	"dsa_prep_backend/internal/middleware"
	"dsa_prep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		auth := public.Group("/auth")
		{
			auth.POST("/register", c.auth.Register)
			auth.POST("/login", c.auth.Login)
			auth.POST("/refresh", middleware.RefreshMiddleware(cfg), c.auth.Refresh)
			auth.POST("/forgot-password", c.auth.ForgotPassword)
			auth.POST("/reset-password", c.auth.ResetPassword)
		}

		// 课程表和资源目录是静态内容，游客可浏览
		public.GET("/resources", c.roadmap.ListResources)
		public.GET("/roadmap", c.roadmap.GetRoadmap)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.user.GetProfile)
		authGroup.PUT("/profile", c.user.UpdateProfile)
		authGroup.POST("/profile/avatar", c.user.UploadAvatar)
		authGroup.PUT("/preferences", c.user.UpdatePreferences)

		authGroup.GET("/sessions", c.session.ListSessions)
		authGroup.DELETE("/sessions/:id", c.session.RevokeSession)

		authGroup.GET("/notifications", c.notification.ListNotifications)
		authGroup.POST("/notifications/:id/read", c.notification.MarkRead)
		authGroup.POST("/notifications/read-all", c.notification.MarkAllRead)

		authGroup.GET("/progress", c.progress.GetProgress)
		authGroup.POST("/progress", c.progress.UpdateProgress)
		authGroup.GET("/calendar", c.progress.GetCalendar)

		authGroup.POST("/pomodoro", c.pomodoro.Start)
		authGroup.POST("/pomodoro/:id/complete", c.pomodoro.Complete)
		authGroup.GET("/pomodoro/history", c.pomodoro.History)

		authGroup.POST("/notes", c.note.Create)
		authGroup.GET("/notes", c.note.List)
		authGroup.GET("/notes/:id", c.note.Get)
		authGroup.PUT("/notes/:id", c.note.Update)
		authGroup.DELETE("/notes/:id", c.note.Delete)

		authGroup.GET("/search", c.search.Search)

		ai := authGroup.Group("/ai")
		{
			ai.POST("/ask", c.ai.Ask)
			ai.GET("/history", c.ai.History)
			ai.POST("/study-plan", c.ai.StudyPlan)
			ai.POST("/quiz", c.ai.Quiz)
			ai.POST("/summarize", c.ai.Summarize)
		}

		authGroup.GET("/dashboard", c.dashboard.GetDashboard)
	}
}
