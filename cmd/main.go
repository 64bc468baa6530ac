package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskhub-backend/internal/config"
	"taskhub-backend/internal/features/activities"
	memberships_controllers "taskhub-backend/internal/features/memberships/controllers"
	memberships_models "taskhub-backend/internal/features/memberships/models"
	"taskhub-backend/internal/features/notifications"
	projects_controllers "taskhub-backend/internal/features/projects/controllers"
	projects_models "taskhub-backend/internal/features/projects/models"
	users_controllers "taskhub-backend/internal/features/users/controllers"
	users_middleware "taskhub-backend/internal/features/users/middleware"
	users_models "taskhub-backend/internal/features/users/models"
	users_services "taskhub-backend/internal/features/users/services"
	"taskhub-backend/internal/storage"
	env_utils "taskhub-backend/internal/util/env"
	"taskhub-backend/internal/util/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// @title TaskHub Backend API
// @version 1.0
// @description Membership and invitation API for TaskHub

// @host localhost:4010
// @BasePath /api/v1
// @schemes http
func main() {
	log := logger.GetLogger()

	if err := storage.Migrate(
		&users_models.User{},
		&projects_models.Project{},
		&projects_models.Team{},
		&memberships_models.ProjectMembership{},
		&memberships_models.TeamMembership{},
		&notifications.Notification{},
		&activities.Activity{},
	); err != nil {
		log.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	ginApp.Use(gzip.Gzip(gzip.DefaultCompression))

	enableCors(ginApp)
	setUpRoutes(ginApp)

	startServerWithGracefulShutdown(log, ginApp)
}

func setUpRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Public routes (only user auth routes should be public)
	userController := users_controllers.GetUserController()
	userController.RegisterRoutes(v1)

	userService := users_services.GetUserService()
	authMiddleware := users_middleware.AuthMiddleware(userService)

	// Protected routes
	protected := v1.Group("")
	protected.Use(authMiddleware)

	userController.RegisterProtectedRoutes(protected)
	projects_controllers.GetProjectController().RegisterRoutes(protected)
	memberships_controllers.GetMembershipController().RegisterRoutes(protected)
	memberships_controllers.GetTeamMembershipController().RegisterRoutes(protected)
	notifications.GetNotificationController().RegisterRoutes(protected)
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	host := ""
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		// localhost in dev avoids firewall prompts on each run
		host = "127.0.0.1"
	}

	srv := &http.Server{
		Addr:    host + ":" + config.GetEnv().HTTPPort,
		Handler: app,
	}

	go func() {
		log.Info("Starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen:", "error", err)
		}
	}()

	log.Info("TaskHub backend is running!", "http", "http://localhost:"+config.GetEnv().HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	// give in-flight requests 10 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	log.Info("Server gracefully stopped")
}

func enableCors(ginApp *gin.Engine) {
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		ginApp.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders: []string{
				"Origin",
				"Content-Length",
				"Content-Type",
				"Authorization",
				"Accept",
			},
			AllowCredentials: true,
		}))
	}
}
