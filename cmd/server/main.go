package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/justcopy/server/internal/config"
	"codeberg.org/justcopy/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// @title JustCopy.ai API
// @version 1.0
// @description Template-based marketing copy generation
// @description
// @description Features:
// @description - Keyword-selected copy templates filled with your prompt
// @description - Static template catalog
// @description - Per-IP rate limiting on /api routes

// @contact.name API Support
// @contact.url https://codeberg.org/justcopy/server

// @host localhost:5000

func main() {
	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	logger.Configure(cfg.Environment)
	logger.Info("starting justcopy server", "environment", cfg.Environment)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           srv.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.WriteTimeout(),
		IdleTimeout:       60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// in-flight generations get 10 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}
