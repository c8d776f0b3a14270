package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/jwaldner/expiry/internal/config"
	"github.com/jwaldner/expiry/internal/logger"
)

func main() {
	cfg := config.Load()

	// CLI output goes to stdout; logs only to stderr
	if err := logger.InitWithConfig(cfg.Logging.LogLevel, ""); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	if err := newRootCmd(cfg, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
