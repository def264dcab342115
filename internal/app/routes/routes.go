package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pharmahub/backend/internal/app/controllers"
	"github.com/pharmahub/backend/internal/app/crud"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/middleware"
)

// Handlers groups everything the API routes dispatch to
type Handlers struct {
	Auth          *controllers.AuthController
	Admin         *controllers.AdminController
	Public        *controllers.PublicController
	Jobs          *controllers.JobController
	Announcements *controllers.AnnouncementController
	Internships   *controllers.InternshipController
	DidYouKnow    *controllers.DidYouKnowController
	Lectures      *controllers.LectureController
	PharmaHub     *controllers.PharmaHubController
	CRUD          []*crud.Handler
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	loginLimiter middleware.Limiter,
) {
	api := router.Group("/api")

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.OKResponse{OK: true})
	})

	adminOnly := authMiddleware.RequireAuth()

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		if loginLimiter != nil {
			auth.POST("/login", middleware.RateLimit(loginLimiter, "login"), h.Auth.Login)
		} else {
			auth.POST("/login", h.Auth.Login)
		}
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", h.Auth.Me)
	}

	// --- Admin routes, all behind the guard ---
	admin := api.Group("/admin", adminOnly)
	{
		admin.POST("/upload", h.Admin.Upload)
		admin.GET("/files", h.Admin.ListFiles)
		admin.DELETE("/files/:id", h.Admin.DeleteFile)
		for _, handler := range h.CRUD {
			handler.Register(admin)
		}
	}

	// --- Public read-only site content ---
	public := api.Group("/public")
	{
		public.GET("/news", h.Public.News)
		public.GET("/publications", h.Public.Publications)
		public.GET("/lectures", h.Public.Lectures)
		public.GET("/graduates", h.Public.Graduates)
	}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", h.Jobs.List)
		jobs.GET("/admin/all", adminOnly, h.Jobs.ListAll)
		jobs.GET("/:id", h.Jobs.Get)
		jobs.POST("", adminOnly, h.Jobs.Create)
		jobs.PUT("/:id", adminOnly, h.Jobs.Update)
		jobs.DELETE("/:id", adminOnly, h.Jobs.Delete)
	}

	announcements := api.Group("/announcements")
	{
		announcements.GET("", h.Announcements.List)
		announcements.GET("/admin/all", adminOnly, h.Announcements.ListAll)
		announcements.GET("/:id", h.Announcements.Get)
		announcements.POST("", adminOnly, h.Announcements.Create)
		announcements.PUT("/:id", adminOnly, h.Announcements.Update)
		announcements.DELETE("/:id", adminOnly, h.Announcements.Delete)
	}

	internships := api.Group("/internships")
	{
		internships.GET("/public", h.Internships.ListPublic)
		internships.GET("/admin/all", adminOnly, h.Internships.ListAll)
		internships.GET("/:id", h.Internships.Get)
		internships.POST("", adminOnly, h.Internships.Create)
		internships.PUT("/:id", adminOnly, h.Internships.Update)
		internships.DELETE("/:id", adminOnly, h.Internships.Delete)
	}

	facts := api.Group("/did-you-know")
	{
		facts.GET("", h.DidYouKnow.List)
		facts.GET("/:id", h.DidYouKnow.Get)
		facts.POST("", adminOnly, h.DidYouKnow.Create)
		facts.PUT("/:id", adminOnly, h.DidYouKnow.Update)
		facts.DELETE("/:id", adminOnly, h.DidYouKnow.Delete)
	}

	lectures := api.Group("/lectures")
	{
		lectures.GET("", h.Lectures.List)
		lectures.GET("/public", h.Lectures.ListPublic)
		lectures.GET("/:id", h.Lectures.Get)
		lectures.POST("", adminOnly, h.Lectures.Create)
		lectures.PUT("/:id", adminOnly, h.Lectures.Update)
		lectures.DELETE("/:id", adminOnly, h.Lectures.Delete)
	}

	// Pharma Hub forum, open to everyone
	hub := api.Group("/pharma-hub")
	{
		hub.GET("/questions", h.PharmaHub.ListQuestions)
		hub.GET("/questions/:id", h.PharmaHub.GetQuestion)
		hub.POST("/questions", h.PharmaHub.CreateQuestion)
		hub.PUT("/questions/:id", h.PharmaHub.UpdateQuestion)
		hub.DELETE("/questions/:id", h.PharmaHub.DeleteQuestion)
		hub.GET("/questions/:id/comments", h.PharmaHub.ListComments)
		hub.POST("/questions/:id/comments", h.PharmaHub.AddComment)
		hub.PUT("/comments/:id", h.PharmaHub.UpdateComment)
		hub.DELETE("/comments/:id", h.PharmaHub.DeleteComment)
		hub.GET("/stats", h.PharmaHub.Stats)
	}
}

// SetupStatic serves uploaded files from dir at /uploads
func SetupStatic(router *gin.Engine, dir string) {
	uploads := router.Group("/uploads", middleware.ImmutableCache())
	uploads.Static("/", dir)
}
