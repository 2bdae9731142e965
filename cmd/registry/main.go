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

	"github.com/filedock/filedock/internal/adapter/client"
	"github.com/filedock/filedock/internal/adapter/handler"
	"github.com/filedock/filedock/internal/infrastructure/repository"
	"github.com/filedock/filedock/internal/usecase"
	"github.com/filedock/filedock/pkg/config"
)

func main() {
	cfg := config.Load()

	metadataRepo, err := repository.NewSQLiteMetadataRepository(cfg.Registry.Database)
	if err != nil {
		log.Fatal("Failed to initialize registry database:", err)
	}
	defer metadataRepo.Close()

	storageClient := client.NewStorageClient(cfg.Registry.StorageURL, time.Duration(cfg.Registry.CallTimeout))
	coordinator := usecase.NewCoordinator(metadataRepo, storageClient)

	router := gin.Default()
	router.Use(handler.CORSMiddleware())
	handler.NewFileHandler(coordinator).RegisterRoutes(router)
	handler.NewHealthHandler("registry", metadataRepo).RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Registry.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Metadata registry listening on port %s (storage node at %s)",
			cfg.Registry.Port, cfg.Registry.StorageURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down metadata registry")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
