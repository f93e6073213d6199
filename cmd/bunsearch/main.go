// Command bunsearch runs the multi-tenant full-text search service.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/kartikbazzad/bunsearch/internal/bunsearchlog"
	"github.com/kartikbazzad/bunsearch/internal/config"
	"github.com/kartikbazzad/bunsearch/internal/httpapi"
	"github.com/kartikbazzad/bunsearch/internal/search"
)

var rootCmd = &cobra.Command{
	Use:   "bunsearch",
	Short: "bunsearch multi-tenant search service",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, reindexCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	bunsearchlog.Init(bunsearchlog.Config{Level: levelUpper(cfg.LogLevel), Format: cfg.LogFormat})
	log := bunsearchlog.Get()

	registry := search.NewRegistry(cfg.DataDir)

	gin.SetMode(gin.ReleaseMode)
	router := httpapi.NewRouter(httpapi.Options{
		Registry:     registry,
		WebUIEnabled: cfg.WebUIEnabled,
	})

	srv := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: router,
	}

	go func() {
		log.Info("bunsearch server starting", "addr", cfg.BindAddr, "data_dir", cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown error", "error", err)
	}
	if err := registry.Close(); err != nil {
		log.Error("registry close error", "error", err)
	}

	log.Info("shutdown complete")
	return nil
}

func levelUpper(level string) string {
	switch level {
	case "debug", "DEBUG":
		return "DEBUG"
	case "warn", "WARN":
		return "WARN"
	case "error", "ERROR":
		return "ERROR"
	default:
		return "INFO"
	}
}
