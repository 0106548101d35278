package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gravadigital/marquee-api/internal/config"
	"github.com/gravadigital/marquee-api/internal/logger"
	"github.com/gravadigital/marquee-api/internal/server"
	"github.com/gravadigital/marquee-api/internal/storage/objectstore"
	"github.com/gravadigital/marquee-api/internal/storage/postgres"
)

func main() {
	cfg := config.Load()

	logLevel := "info"
	if cfg.Server.GinMode == "debug" {
		logLevel = "debug"
	}
	logger.Initialize(logLevel)
	log := logger.Get()

	container, err := postgres.NewContainer(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage", "error", err)
	}
	defer container.Close()

	// Image uploads are optional; the directory still works without them
	var images objectstore.ImageStore
	if store, err := objectstore.NewMinioStore(cfg); err != nil {
		log.Warn("Object storage unavailable, image uploads disabled", "error", err)
	} else {
		images = store
	}

	srv := server.New(cfg, container, images)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.Error("Forced shutdown", "error", err)
	}

	log.Info("Server stopped")
}
