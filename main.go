package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"quick-notes/app"
	"quick-notes/config"
	"quick-notes/database"
	"quick-notes/events"
	"quick-notes/handlers"
	"quick-notes/middleware"
	"quick-notes/pkg/audio"
	"quick-notes/services"
)

func main() {
	config.Load()

	logger := setupLogger()
	slog.SetDefault(logger)

	// Initialize SQLite database
	db, err := database.New(config.AppConfig.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("database initialized", "path", config.AppConfig.DBPath)

	audioStore, err := audio.NewStore(config.AppConfig.AudioDir)
	if err != nil {
		logger.Error("failed to prepare audio directory", "error", err)
		os.Exit(1)
	}

	repo := database.NewRepository(db)
	bus := events.New(logger)

	noteService := services.NewNoteService(repo, bus)
	voiceService := services.NewVoiceService(repo, audioStore, bus)
	folderService := services.NewFolderService(repo, bus)
	categoryService := services.NewCategoryService(repo)
	feedService := services.NewFeedService(repo, repo, bus)

	// First-run bootstrap; failures degrade to an empty folder list
	folderService.EnsureDefaults()

	a := app.New(noteService, voiceService, folderService, categoryService,
		feedService, audioStore, bus, logger)

	server := fiber.New(fiber.Config{
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 30,
		DisableStartupMessage: config.AppConfig.Env == "production",
		BodyLimit:             32 * 1024 * 1024,
	})

	server.Use(
		recover.New(),
		middleware.StructuredLogger(logger),
		middleware.Security(),
		cors.New(cors.Config{
			AllowOrigins:     config.GetEnv("CORS_ORIGINS", "*"),
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept",
			AllowCredentials: false,
			MaxAge:           86400,
		}),
		limiter.New(limiter.Config{
			Max:        200,
			Expiration: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Rate limit exceeded",
				})
			},
		}),
	)

	server.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	api := server.Group("/api")
	api.Get("/feed", handlers.GetRecentFeed(a))
	api.Get("/notes", handlers.GetPlainNotes(a))
	api.Post("/notes", handlers.CreatePlainNote(a))
	api.Get("/notes/:id", handlers.GetPlainNote(a))
	api.Put("/notes/:id", handlers.UpdatePlainNote(a))
	api.Delete("/notes/:id", handlers.DeletePlainNote(a))
	api.Get("/voice", handlers.GetVoiceNotes(a))
	api.Post("/voice", handlers.CreateVoiceNote(a))
	api.Post("/voice/audio", handlers.UploadAudio(a))
	api.Put("/voice/:id", handlers.UpdateVoiceNote(a))
	api.Delete("/voice/:id", handlers.DeleteVoiceNote(a))
	api.Get("/folders", handlers.GetFolders(a))
	api.Post("/folders", handlers.CreateFolder(a))
	api.Delete("/folders/:name", handlers.DeleteFolder(a))
	api.Get("/categories", handlers.GetCategorySuggestions(a))
	api.Post("/categories", handlers.RememberCategory(a))

	logger.Info("starting server", "port", config.AppConfig.Port, "env", config.AppConfig.Env)

	go func() {
		if err := server.Listen(":" + config.AppConfig.Port); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

func setupLogger() *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(),
		AddSource: config.AppConfig.Env == "development",
	}

	if config.AppConfig.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func getLogLevel() slog.Level {
	level := config.GetEnv("LOG_LEVEL", "info")
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
