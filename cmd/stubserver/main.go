package main

import (
	"context"
	"fmt"
	"log"
	logslog "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JulianoL13/identity-verify-sdk/internal/backend"
	"github.com/JulianoL13/identity-verify-sdk/internal/common/logs/slog"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string
}

func loadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Port: getEnv("STUB_PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func main() {
	cfg := loadConfig()

	logger := slog.New(logslog.LevelInfo)
	logger.Info("starting stub verification backend", "port", cfg.Port)

	handler := backend.NewHandler(logger)
	router := backend.NewRouter(handler, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	fmt.Println("server stopped")
}
