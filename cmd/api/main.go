package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"alfredoptarigan/job-portal/internal/config"
	"alfredoptarigan/job-portal/internal/handlers"
	"alfredoptarigan/job-portal/internal/logger"
	"alfredoptarigan/job-portal/internal/repositories"
	"alfredoptarigan/job-portal/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	log.Info().Msg("Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	store := repositories.NewStore(db)
	log.Info().Msg("Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatal().Err(err).Msg("Failed to create upload directory")
	}

	validator := services.NewInputValidator()
	pdfParser := services.NewPDFParserService()

	userService := services.NewUserService(store, validator, storageService, pdfParser, cfg.Storage.MaxFileSize)
	companyService := services.NewCompanyService(store, validator)
	jobService := services.NewJobService(store, validator, cfg.Application.JobsPageLimit)
	applicationService := services.NewApplicationService(store, cfg.Application.EnforceListOwnership)
	notificationService := services.NewNotificationService(store)
	log.Info().
		Bool("enforce_list_ownership", cfg.Application.EnforceListOwnership).
		Msg("Services initialized successfully")

	// Initialize handlers
	h := handlers.Handlers{
		User:         handlers.NewUserHandler(userService),
		Upload:       handlers.NewUploadHandler(userService, cfg.Storage.MaxFileSize),
		Company:      handlers.NewCompanyHandler(companyService),
		Job:          handlers.NewJobHandler(jobService),
		Application:  handlers.NewApplicationHandler(applicationService),
		Notification: handlers.NewNotificationHandler(notificationService),
	}

	app := fiber.New(fiber.Config{
		AppName:      "Job Portal API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1<<20,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(handlers.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + cfg.Auth.UserHeader,
	}))

	api := app.Group("/api/v1")
	handlers.RegisterRoutes(api, h, handlers.RequireUser(cfg.Auth.UserHeader))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Job Portal API",
			"version": "1.0.0",
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("Server starting")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
