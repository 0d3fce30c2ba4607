package routes

import (
	"net/http"

	"amonarq/handlers"
	"amonarq/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterInvitationRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterInboxRoutes(r, hb)
	RegisterSettingsRoutes(r, hb)
	RegisterUploadRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterEmailRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "API is healthy"})
	})
}

// RegisterAuthRoutes registers login and first-run setup endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
		api.GET("/setup-status", hb.Auth.SetupStatusHandler)
		api.POST("/setup-superadmin", hb.Auth.SetupSuperAdminHandler)
	}
}

// RegisterUserRoutes registers user management endpoints (superadmin only).
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.JWTAuthMiddleware(), middleware.SuperAdminMiddleware(hb.UserRepo))
	{
		api.GET("", hb.Users.GetUsersHandler)
		api.POST("", hb.Users.CreateUserHandler)
		api.PUT("/:id", hb.Users.UpdateUserHandler)
		api.DELETE("/:id", hb.Users.DeleteUserHandler)
	}
}

// RegisterInvitationRoutes registers the invitation lifecycle endpoints.
// Verify and complete are public: the invitation token is the credential.
func RegisterInvitationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invitations")
	{
		api.GET("/verify/:token", hb.Invitation.VerifyInvitationHandler)
		api.POST("/complete", hb.Invitation.CompleteInvitationHandler)

		api.POST("/send",
			middleware.JWTAuthMiddleware(),
			middleware.SuperAdminMiddleware(hb.UserRepo),
			hb.Invitation.SendInvitationHandler)
	}
}

// RegisterContentRoutes registers the content section endpoints. Reads are
// public so the site can render; writes require an admin token.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/content")
	{
		api.GET("", hb.Content.ListContentHandler)
		api.GET("/effective", hb.Content.EffectiveContentHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.PUT("/:sectionId", hb.Content.UpsertSectionHandler)
		protected.POST("/bulk-upsert", hb.Content.BulkUpsertHandler)
		protected.POST("/sections", hb.Content.CreateSectionHandler)
		protected.DELETE("/:sectionId", hb.Content.DeleteSectionHandler)
	}
}

// RegisterInboxRoutes registers the contact-form and inbox endpoints.
func RegisterInboxRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/inbox")
	{
		api.POST("/submit", hb.Inbox.SubmitHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.GET("", hb.Inbox.ListMessagesHandler)
		protected.PATCH("/:id/read", hb.Inbox.MarkReadHandler)
		protected.POST("/:id/reply", hb.Inbox.ReplyHandler)
		protected.DELETE("/:id", hb.Inbox.DeleteMessageHandler)
	}
}

// RegisterSettingsRoutes registers the singleton settings endpoints.
func RegisterSettingsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/settings")
	{
		api.GET("", hb.Settings.GetSettingsHandler)
		api.PUT("", middleware.JWTAuthMiddleware(), hb.Settings.UpdateSettingsHandler)
	}
}

// RegisterUploadRoutes registers the file upload endpoints.
func RegisterUploadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/upload")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("/image", hb.Upload.UploadImageHandler)
		api.POST("/assets", hb.Upload.UploadAssetsHandler)
	}
}

// RegisterDashboardRoutes registers the admin dashboard endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("/stats", hb.Dashboard.StatsHandler)
	}
}

// RegisterEmailRoutes registers the mail configuration check endpoint.
func RegisterEmailRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/email")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("/test", hb.Email.TestEmailHandler)
	}
}
