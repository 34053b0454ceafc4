package main

import (
	"trash-manager/internal/config"
	"trash-manager/internal/gui"
	"trash-manager/internal/logging"
)

const (
	Version = "1.0.0"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	logger.Infof("Starting trash manager version %s", Version)
	logger.Infof("Trash directory: %s", cfg.TrashDir)

	gui.Run(cfg, logger)

	logger.Info("Shutting down...")
}
