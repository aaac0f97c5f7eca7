// Package main is the entry point for Sotora.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/samdwyer/sotora/internal/game"
	"github.com/samdwyer/sotora/internal/logger"
	"github.com/samdwyer/sotora/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_SOTORA_API_KEY and SOTORA_* available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg)
	stop()
	if err != nil {
		log.Fatalf("%v", err)
	}
}

// run owns every resource opened after configuration, so the log file and
// the tracer are released before main exits on an error.
func run(ctx context.Context, cfg game.Config) error {
	logs, closeLogs, err := logger.Setup(logger.Options{
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
		Path:        cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer func() {
		if err := closeLogs(); err != nil {
			log.Printf("Error closing log file: %v", err)
		}
	}()

	// Initialize telemetry
	sessionID := uuid.NewString()
	shutdown, err := telemetry.Setup(ctx, sessionID)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	// Create and run game
	g, err := game.New(cfg, logs, game.WithSessionID(sessionID))
	if err != nil {
		logger.WithError(logs, err).Error("game init failed")
		return fmt.Errorf("initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		logger.WithError(logs, err).Error("game stopped with error")
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// The .env file may hold an unexpanded variable reference, so the
	// header is built here
	apiKey := os.Getenv("HONEYCOMB_SOTORA_API_KEY")
	dataset := os.Getenv("HONEYCOMB_SOTORA_DATASET")
	if dataset == "" {
		dataset = "sotora"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
