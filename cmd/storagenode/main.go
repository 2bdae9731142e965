package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/filedock/filedock/internal/adapter/handler"
	"github.com/filedock/filedock/internal/domain/repository"
	"github.com/filedock/filedock/internal/infrastructure/blob"
	infrarepo "github.com/filedock/filedock/internal/infrastructure/repository"
	"github.com/filedock/filedock/internal/usecase"
	"github.com/filedock/filedock/pkg/config"
)

func main() {
	cfg := config.Load()

	records, err := infrarepo.NewSQLiteStorageRecordRepository(cfg.StorageNode.Database)
	if err != nil {
		log.Fatal("Failed to initialize storage node database:", err)
	}
	defer records.Close()

	artifacts, err := newArtifactStore(cfg.StorageNode.Artifacts)
	if err != nil {
		log.Fatal("Failed to initialize artifact store:", err)
	}

	storage := usecase.NewStorageUseCase(records, artifacts)

	router := gin.Default()
	handler.NewStorageHandler(storage).RegisterRoutes(router)
	handler.NewHealthHandler("storagenode", records).RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.StorageNode.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Storage node listening on port %s (%s artifacts)",
			cfg.StorageNode.Port, cfg.StorageNode.Artifacts.Backend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down storage node")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}

func newArtifactStore(cfg config.ArtifactsConfig) (repository.ArtifactStore, error) {
	if cfg.Backend == "s3" {
		return blob.NewS3Store(blob.S3Config{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			Bucket:    cfg.S3.Bucket,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
		})
	}
	return blob.NewLocalStore(cfg.Path)
}
