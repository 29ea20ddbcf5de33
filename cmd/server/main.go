package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/RajoelinaAaron/api-travel-visas/config"
	"github.com/RajoelinaAaron/api-travel-visas/db"
	"github.com/RajoelinaAaron/api-travel-visas/docs"
	"github.com/RajoelinaAaron/api-travel-visas/handlers"
	"github.com/RajoelinaAaron/api-travel-visas/models"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	database, err := db.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close(database)

	// Run migrations
	if err := db.AutoMigrate(database,
		&models.Country{},
		&models.Nationality{},
		&models.OfficialPortal{},
		&models.EntryProfile{},
		&models.EntryDocument{},
		&models.TravelRequirements{},
		&models.HealthRequirements{},
		&models.CountryGuide{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStore(100)))

	// Point the OpenAPI document at the public address
	if base, err := url.Parse(cfg.PublicBaseURL); err == nil && base.Host != "" {
		docs.SwaggerInfo.Host = base.Host
		docs.SwaggerInfo.Schemes = []string{base.Scheme}
	}

	h := handlers.New(database, cfg)
	handlers.Register(e, h)

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
