package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loan-amortization/internal/api"
	"loan-amortization/internal/config"
	"loan-amortization/internal/logging"
	"loan-amortization/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, logrus.InfoLevel, os.Stdout)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	st, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to open schedule store: %v", err)
	}
	defer closeStore()

	router := api.NewRouter(st, cfg.AllowedOrigins, logger)

	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Starting API server on %s (store=%s)", addr, cfg.StoreBackend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Errorf("Server failed: %v", err)
		return
	case <-quit:
		logger.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}
	logger.Info("Server exited")
}

func openStore(cfg *config.ServerConfig, logger *logrus.Logger) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreRedis:
		rs := store.NewRedisStore(cfg.RedisAddr, cfg.ScheduleTTL)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rs.Ping(ctx); err != nil {
			return nil, nil, fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
		}
		logger.Infof("Using Redis schedule store at %s", cfg.RedisAddr)
		return rs, func() {}, nil
	default:
		ms := store.NewMemoryStore(cfg.ScheduleTTL, 5*time.Minute)
		return ms, ms.Stop, nil
	}
}
