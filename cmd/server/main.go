package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/meur/blueprintlabs/internal/api"
	"github.com/meur/blueprintlabs/internal/app"
	"github.com/meur/blueprintlabs/internal/config"
	"github.com/meur/blueprintlabs/internal/util"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Parse flags
	port := flag.String("port", cfg.Server.Port, "Server port")
	staticDir := flag.String("static", cfg.Server.StaticDir, "Directory holding images/")
	frontendDir := flag.String("frontend", cfg.Server.FrontendDir, "Built frontend directory")
	flag.Parse()
	cfg.Server.Port = *port
	cfg.Server.StaticDir = *staticDir
	cfg.Server.FrontendDir = *frontendDir

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	container, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to build app", zap.Error(err))
	}
	defer container.Close()

	// Create router
	srv := api.New(api.Dependencies{
		Session:        container.Session,
		Resolver:       container.Resolver,
		Prober:         container.Prober,
		Store:          container.Store,
		Logger:         logger,
		AllowedOrigins: cfg.Server.CORSOrigins,
	})

	// Preview images, then the frontend for everything else
	if err := srv.MountStatic("/images", http.Dir(filepath.Join(cfg.Server.StaticDir, "images"))); err != nil {
		logger.Fatal("Failed to mount images", zap.Error(err))
	}
	if err := srv.MountStatic("/", http.Dir(cfg.Server.FrontendDir)); err != nil {
		logger.Fatal("Failed to mount frontend", zap.Error(err))
	}

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv,
	}

	go func() {
		logger.Info("Blueprint Labs API starting",
			zap.String("addr", "http://localhost:"+cfg.Server.Port),
			zap.Int("rows", len(container.Session.Rows())),
			zap.String("version", container.Session.Version()),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}
