package main

import (
	"github.com/olivergarza/soccer-rpg/internal/config"
	"github.com/olivergarza/soccer-rpg/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.Init(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		"soccer-rpg",
		cfg.Environment,
		addSource,
	))
}
