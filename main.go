package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	db, err := openDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	var storage BlobStorage
	var localDir string
	switch cfg.StorageBackend {
	case "s3":
		s3Store, err := NewS3Storage(context.Background(), cfg)
		if err != nil {
			log.Fatalf("s3 storage: %v", err)
		}
		storage = s3Store
	default:
		localStore, err := NewLocalStorage(cfg.UploadBaseDir, "/files")
		if err != nil {
			log.Fatalf("local storage: %v", err)
		}
		storage = localStore
		localDir = localStore.BaseDir()
	}

	a, err := newApp(cfg, logger, newGormUserStore(db), newGormDocumentStore(db), storage)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}
	defer a.Close()

	if localDir != "" {
		watcher, err := watchLocalStorage(localDir, logger)
		if err != nil {
			logger.Warn("storage watcher unavailable", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := a.router()
	if localDir != "" {
		r.Static("/files", localDir)
	}

	logger.Info("listening", "addr", cfg.Addr, "storage", cfg.StorageBackend)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
