package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"portal/backend/internal/config"
	"portal/backend/internal/db"
	"portal/backend/internal/handler"
	transport "portal/backend/internal/http"
	"portal/backend/internal/logger"
	"portal/backend/internal/repository"
	"portal/backend/internal/service"
	"portal/backend/internal/service/ai"
	"portal/backend/internal/snowflake"
)

// @title Portal API
// @version 1.0
// @description Internal team portal: users, servers, projects, applications, weekly accomplishments and AI roll-up summaries.
// @BasePath /api
func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(1); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	userRepo := repository.NewUserRepository(dbConn)
	accomplishmentRepo := repository.NewAccomplishmentRepository(dbConn)
	serverRepo := repository.NewServerRepository(dbConn)
	projectRepo := repository.NewProjectRepository(dbConn)
	applicationRepo := repository.NewApplicationRepository(dbConn)
	settingsRepo := repository.NewSettingsRepository(dbConn)

	rateLimiter := ai.NewRateLimiter(ai.DefaultRateLimit)

	userService := service.NewUserService(userRepo, accomplishmentRepo)
	serverService := service.NewServerService(serverRepo)
	projectService := service.NewProjectService(projectRepo)
	applicationService := service.NewApplicationService(applicationRepo, userRepo, serverRepo)
	accomplishmentService := service.NewAccomplishmentService(accomplishmentRepo, userRepo, applicationRepo)
	summaryService := service.NewSummaryService(userRepo, accomplishmentRepo, settingsRepo, rateLimiter)
	settingsService := service.NewSettingsService(settingsRepo)
	authService := service.NewAuthService(userRepo, settingsRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	serverHandler := handler.NewServerHandler(serverService)
	projectHandler := handler.NewProjectHandler(projectService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	accomplishmentHandler := handler.NewAccomplishmentHandler(accomplishmentService)
	summaryHandler := handler.NewSummaryHandler(summaryService)
	settingsHandler := handler.NewSettingsHandler(settingsService)

	router := transport.NewRouter(
		authService,
		authHandler,
		userHandler,
		serverHandler,
		projectHandler,
		applicationHandler,
		accomplishmentHandler,
		summaryHandler,
		settingsHandler,
	)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		_ = dbConn.Close()
		os.Exit(0)
	}()

	logger.Info("server starting",
		"module", "main",
		"action", "start",
		"resource", "server",
		"result", "ok",
		"addr", cfg.Addr,
		"version", config.AppVersion,
	)
	if err := router.Start(cfg.Addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}
