// /cmd/web/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ericoliveiras/creative-store/internal/config"
	"github.com/ericoliveiras/creative-store/internal/database"
	"github.com/ericoliveiras/creative-store/internal/handler"
	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	var opts []database.Option
	if !cfg.Store.Seed {
		opts = append(opts, database.WithoutSeed())
	}
	storage := database.NewMemStorage(opts...)

	router, feed, err := handler.NewRouter(cfg, storage)
	if err != nil {
		log.Fatalf("Could not build router: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
	srv.RegisterOnShutdown(feed.Close)

	go func() {
		log.Printf("Server listening on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped.")
}
