// Package main is the entry point for the polyprism viewer.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/polyprism/internal/app"
	"github.com/Faultbox/polyprism/internal/config"
	"github.com/Faultbox/polyprism/internal/logger"
)

// exitFailure matches the classic "return -1" from main.
const exitFailure = -1

func main() {
	os.Exit(run())
}

func run() int {
	// The flag package has already printed the error and usage
	if err := config.ParseFlags(os.Args[1:]); err != nil {
		return exitFailure
	}

	sides, err := config.ParseVertexCount(config.Args())
	switch {
	case errors.Is(err, config.ErrBadUsage):
		config.Usage(os.Stdout)
		return exitFailure
	case errors.Is(err, config.ErrInvalidVertexCount):
		fmt.Println("Number of vertices must be at least 3")
		return exitFailure
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		return exitFailure
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Printf("Logger error: %v\n", err)
		return exitFailure
	}
	defer logger.Sync()

	logger.Info("=== polyprism ===", zap.Int("sides", sides))
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		}
	}

	a, err := app.New(cfg, sides)
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		return exitFailure
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("render loop error", zap.Error(err))
		return exitFailure
	}

	logger.Info("viewer closed normally")
	return 0
}
