package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/carepath-ai/readmission/pkg/analytics"
	"github.com/carepath-ai/readmission/pkg/common/config"
	"github.com/carepath-ai/readmission/pkg/common/database"
	"github.com/carepath-ai/readmission/pkg/common/kafka"
	"github.com/carepath-ai/readmission/pkg/common/logger"
	"github.com/carepath-ai/readmission/pkg/registry"
	"github.com/carepath-ai/readmission/pkg/server"
	"github.com/gorilla/mux"
)

func main() {
	logger.Init()
	cfg := config.Load()

	redisClient := database.GetRedis()

	reg, err := registry.Load(cfg.ModelConfigPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load model registry")
	}

	service := analytics.NewService(reg, redisClient, cfg.SurvivalCurveCacheTTL, cfg.MaxCurveDays)
	handler := analytics.NewHandler(service)

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	consumer := kafka.NewConsumer(cfg.AssessmentEventTopic, cfg.KafkaGroupID)
	go func() {
		if err := consumer.Consume(consumerCtx, analytics.NewCategoryCounter(redisClient)); err != nil && err != context.Canceled {
			logger.Log.WithError(err).Error("Assessment event consumer stopped")
		}
	}()

	router := mux.NewRouter()
	router.Use(server.Recovery, server.Logging)
	router.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	if oidcAuth, err := server.NewOIDCAuthenticator(cfg.OIDCIssuer, cfg.OIDCClientID, cfg.OIDCClientSecret); err == nil {
		api.Use(server.Authenticate(oidcAuth))
	} else {
		logger.Log.Warn("OIDC not configured, API is unauthenticated")
	}
	handler.Register(api)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.AnalyticsPort),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Log.WithFields(map[string]interface{}{
			"host": cfg.ServerHost,
			"port": cfg.AnalyticsPort,
		}).Info("Analytics Service started")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down Analytics Service...")

	stopConsumer()
	if err := consumer.Close(); err != nil {
		logger.Log.WithError(err).Error("Failed to close consumer")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("Server forced to shutdown")
	}
	if err := database.CloseRedis(); err != nil {
		logger.Log.WithError(err).Error("Failed to close Redis")
	}

	logger.Log.Info("Analytics Service stopped")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
