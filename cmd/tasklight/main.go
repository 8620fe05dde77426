package main

import (
	"log"

	fyneapp "fyne.io/fyne/v2/app"

	"tasklight/internal/app"
	"tasklight/internal/config"
	"tasklight/internal/logger"
	"tasklight/internal/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration load failed: %v", err)
	}

	appLogger := newLogger(cfg.Logging)
	appLogger.Info("Main", "starting application", map[string]interface{}{
		"backend_enabled": cfg.Backend.Enabled,
		"log_level":       cfg.Logging.Level,
	})

	fyneApp := fyneapp.NewWithID(app.AppID)
	application := app.NewApplication(fyneApp, cfg, appLogger)

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register(application)
	shutdownManager.Listen()

	if err := application.Run(shutdownManager.Context()); err != nil {
		appLogger.Error("Main", err, nil)
		return
	}

	shutdownManager.Shutdown()
	appLogger.Info("Main", "application terminated", nil)
}

func newLogger(cfg config.LoggingConfig) logger.Logger {
	level := logger.ParseLevel(cfg.Level)
	if cfg.JSON {
		return logger.NewJSONLogger(level)
	}
	return logger.NewConsoleLogger(level)
}
