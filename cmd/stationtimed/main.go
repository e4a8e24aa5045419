// Command stationtimed serves stationtime over HTTP.
//
// Configuration comes from the environment (and an optional .env file); see
// package config. Setting DB_HOST enables the PostgreSQL network store.
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

	"github.com/katalvlaran/stationtime/config"
	"github.com/katalvlaran/stationtime/server"
	"github.com/katalvlaran/stationtime/store"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("Starting stationtime service")

	gin.SetMode(cfg.GinMode)

	opts := server.Options{Audit: cfg.Audit, AuditMaxStations: cfg.AuditMaxStations, MaxStations: cfg.MaxStations}
	if cfg.StoreEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		st, err := store.Open(ctx, cfg.DSN(), 30, 2*time.Second)
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer st.Close()

		if err := st.Migrate(context.Background()); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		opts.Networks = st
	} else {
		log.Printf("DB_HOST not set, network store disabled")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: server.NewRouter(opts),
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
