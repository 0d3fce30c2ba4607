package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"amonarq/config"
	"amonarq/database"
	contentRepoPkg "amonarq/database/repository/content"
	inboxRepoPkg "amonarq/database/repository/inbox"
	settingsRepoPkg "amonarq/database/repository/settings"
	userRepoPkg "amonarq/database/repository/user"
	"amonarq/handlers"
	"amonarq/middleware"
	"amonarq/routes"
	"amonarq/services/content"
	"amonarq/services/inbox"
	"amonarq/services/invitation"
	"amonarq/services/mailer"
	"amonarq/services/settings"
	"amonarq/services/storage"
	"amonarq/services/user"
	"amonarq/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	db, err := database.Connect(context.Background(), config.AppConfig.DatabaseURL, config.AppConfig.DatabaseName)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to database: %v", err)
	}
	logger.Sugar().Info("main: connected to MongoDB")

	storageService, err := storage.NewCloudinaryStorage(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	mailService := mailer.NewSMTPMailer(mailer.Config{
		Host:        config.AppConfig.EmailHost,
		Port:        config.AppConfig.EmailPort,
		Username:    config.AppConfig.EmailUser,
		Password:    config.AppConfig.EmailPassword,
		From:        config.AppConfig.EmailFrom,
		FrontendURL: config.AppConfig.FrontendURL,
	})

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	// repositories.
	contentRepo := contentRepoPkg.NewMongoContentRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	inboxRepo := inboxRepoPkg.NewMongoInboxRepo(db)
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo(db)

	// services.
	contentService := &content.DefaultContentService{Repo: contentRepo}
	userService := &user.DefaultUserService{Repo: userRepo}
	invitationService := &invitation.DefaultInvitationService{Repo: userRepo, Mailer: mailService}
	inboxService := &inbox.DefaultInboxService{Repo: inboxRepo, Settings: settingsRepo, Mailer: mailService}
	settingsService := &settings.DefaultSettingsService{Repo: settingsRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:   userRepo,
		Auth:       handlers.NewAuthHandler(userService),
		Users:      handlers.NewUserHandler(userService),
		Invitation: handlers.NewInvitationHandler(invitationService),
		Content:    handlers.NewContentHandler(contentService),
		Inbox:      handlers.NewInboxHandler(inboxService),
		Settings:   handlers.NewSettingsHandler(settingsService),
		Upload:     handlers.NewUploadHandler(storageService),
		Dashboard:  handlers.NewDashboardHandler(inboxService, userService),
		Email:      handlers.NewEmailHandler(mailService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(context.Background(), db); err != nil {
		logger.Sugar().Errorf("main: failed to close database connection: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
