package main

import (
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jwaldner/expiry/internal/config"
	"github.com/jwaldner/expiry/internal/handlers"
	"github.com/jwaldner/expiry/internal/logger"
	"github.com/jwaldner/expiry/internal/services"
)

func main() {
	cfg := config.Load()

	// Initialize logging with config level and file path
	if err := logger.InitWithConfig(cfg.Logging.LogLevel, cfg.Logging.LogFile); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	loc := cfg.Location()
	if loc.String() != cfg.Calendar.Timezone {
		log.Warnf("Unknown timezone %q, using %s", cfg.Calendar.Timezone, loc)
	}

	log.WithFields(log.Fields{
		"port":     cfg.Port,
		"locale":   cfg.Calendar.Locale,
		"timezone": loc.String(),
	}).Info("Option expiry service starting")

	requestService := services.NewRequestService(loc, cfg.Calendar.Locale)
	snapshotService := services.NewSnapshotService()

	expiryHandler := handlers.NewExpiryHandler(requestService, snapshotService)
	r := handlers.NewRouter(expiryHandler)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		ReadTimeout:       time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
	}

	fmt.Printf("Server starting on http://localhost:%s\n", cfg.Port)
	log.Infof("HTTP server started on port %s", cfg.Port)

	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
