package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"resumeworks/ats-parser/internal/config"
	"resumeworks/ats-parser/internal/handlers"
	"resumeworks/ats-parser/internal/logger"
	"resumeworks/ats-parser/internal/parser"
	"resumeworks/ats-parser/internal/repositories"
	"resumeworks/ats-parser/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	logger.Info().Msg("Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize database")
	}

	// Initialize repositories
	candidateRepo := repositories.NewCandidateRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	logger.Info().Msg("Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create upload directory")
	}

	// The linguistic pipeline loads its model once; a missing model is fatal
	// at startup, never per request.
	pipeline, err := parser.NewPipeline(cfg.Parser.ModelPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize linguistic pipeline")
	}
	resumeParser := parser.NewResumeParser(pipeline, parser.NewPDFTextExtractor())
	logger.Info().Msg("Resume parser initialized successfully")

	// Initialize mail notification
	mailer := services.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Sender, cfg.SMTP.Password)
	notifier := services.NewNotifier(mailer, cfg.Worker.Concurrency)

	ctx := context.Background()
	notifier.Start(ctx)
	logger.Info().Msg("Notifier started successfully")

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(
		candidateRepo,
		storageService,
		resumeParser,
		cfg.Storage.MaxFileSize,
	)
	candidateHandler := handlers.NewCandidateHandler(candidateRepo, notifier)
	interviewHandler := handlers.NewInterviewHandler(candidateRepo, interviewRepo, notifier)
	logger.Info().Msg("Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ATS Resume Parser API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/candidates", uploadHandler.HandleUpload)
	api.Get("/candidates", candidateHandler.HandleList)
	api.Get("/candidates/:id", candidateHandler.HandleGet)
	api.Patch("/candidates/:id/status", candidateHandler.HandleUpdateStatus)
	api.Post("/candidates/:id/interviews", interviewHandler.HandleSchedule)
	api.Get("/candidates/:id/interviews", interviewHandler.HandleListByCandidate)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ATS Resume Parser API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/candidates",
				"GET /api/v1/candidates",
				"GET /api/v1/candidates/:id",
				"PATCH /api/v1/candidates/:id/status",
				"POST /api/v1/candidates/:id/interviews",
				"GET /api/v1/candidates/:id/interviews",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info().Msg("Shutting down server...")
		notifier.Stop()
		if err := app.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("Server forced to shutdown")
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("Server starting")

	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
