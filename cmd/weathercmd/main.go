package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/irclabs/weathercmd/internal/api/http"
	"github.com/irclabs/weathercmd/internal/cache"
	"github.com/irclabs/weathercmd/internal/config"
	"github.com/irclabs/weathercmd/internal/geo"
	"github.com/irclabs/weathercmd/internal/scheduler"
	"github.com/irclabs/weathercmd/internal/shorten"
	"github.com/irclabs/weathercmd/internal/store"
	"github.com/irclabs/weathercmd/internal/weather"
	"github.com/irclabs/weathercmd/internal/weather/wunderground"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Durable location table plus its in-memory read-through cache.
	locStore, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open location store: %v", err)
	}
	defer locStore.Close()

	locCache := cache.New(locStore)
	if err := locCache.Load(context.Background()); err != nil {
		log.Fatalf("failed to load location cache: %v", err)
	}

	// External collaborators.
	geocoder := geo.New(httpClient, cfg.GoogleAPIKey, cfg.RegionBias)
	shortener := shorten.NewIsGd(httpClient)
	fetcher := wunderground.New(httpClient, cfg.WunderKey, shortener)

	// Core service orchestrating cache, geocode and fetch.
	service := weather.NewService(cfg.GoogleAPIKey, cfg.WunderKey, locCache, geocoder, fetcher)

	// Scheduler that periodically resyncs the cache from the database.
	sched := scheduler.New(locCache, cfg.CacheResyncInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weathercmd",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weathercmd",
		})
	})

	// Command routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
