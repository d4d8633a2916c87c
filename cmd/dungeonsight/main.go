// Package main is the entry point for dungeonsight.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonsight/internal/game"
	"github.com/samdwyer/dungeonsight/internal/logging"
	"github.com/samdwyer/dungeonsight/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	closer, err := logging.Init()
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer closer.Close()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, telemetry.ConfigFromEnv(os.Getenv))
	switch {
	case errors.Is(err, telemetry.ErrDisabled):
		logging.Log.Debug("telemetry disabled")
	case err != nil:
		logging.Log.WithError(err).Warn("telemetry setup failed, running without tracing")
	default:
		defer func() {
			if err := shutdown(ctx); err != nil {
				logging.Log.WithError(err).Error("telemetry shutdown failed")
			}
		}()
	}

	cfg, err := game.ConfigFromEnv(os.Getenv)
	if err != nil {
		logging.Log.WithError(err).Fatal("invalid configuration")
	}

	g, err := game.New(cfg)
	if err != nil {
		logging.Log.WithError(err).Fatal("failed to initialize game")
	}

	if err := g.Run(ctx); err != nil {
		logging.Log.WithError(err).Fatal("game error")
	}
}
