package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"

	"productapi/internal/config"
	"productapi/internal/handlers"
	"productapi/internal/middleware"
	"productapi/internal/repositories"
	"productapi/internal/services"
	"productapi/pkg/database"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.Load()

	// --- Database ---
	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	// --- Wiring ---
	productRepo := repositories.NewGORMProductRepository(db)
	productService := services.NewProductService(productRepo, log)
	productHandler := handlers.NewProductHandler(productService, log)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	// Reads are open; writes require basic auth.
	api := app.Group("/api")
	writeGate := middleware.BasicAuth(cfg.AuthUsers)
	productHandler.RegisterRoutes(api, writeGate)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Info().Str("port", cfg.AppPort).Msg("starting server")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Info().Msg("shutting down server")

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server gracefully stopped")
}
