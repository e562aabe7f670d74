package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"estimate_agent/internal/adapter/http/routes"
	"estimate_agent/internal/app"
	"estimate_agent/internal/config"
	"estimate_agent/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Estimate Agent API
// @version         1.0
// @description     AI-assisted software cost estimation wizard.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(&logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer a.Close()

	return routes.Run(ctx, a)
}
