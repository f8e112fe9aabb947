package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/carepath-ai/readmission/pkg/assessment"
	"github.com/carepath-ai/readmission/pkg/common/config"
	"github.com/carepath-ai/readmission/pkg/common/database"
	"github.com/carepath-ai/readmission/pkg/common/kafka"
	"github.com/carepath-ai/readmission/pkg/common/logger"
	"github.com/carepath-ai/readmission/pkg/observability/metrics"
	"github.com/carepath-ai/readmission/pkg/registry"
	"github.com/carepath-ai/readmission/pkg/server"
	"github.com/gorilla/mux"
)

func main() {
	logger.Init()
	cfg := config.Load()

	db, err := database.GetPostgres()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to connect to database")
	}

	repo := assessment.NewRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		logger.Log.WithError(err).Fatal("Failed to migrate assessment tables")
	}

	reg, err := registry.Load(cfg.ModelConfigPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load model registry")
	}
	logger.Log.WithFields(map[string]interface{}{
		"versions": reg.Versions(),
		"default":  reg.DefaultVersion(),
	}).Info("Model registry loaded")

	producer := kafka.NewProducer(cfg.AssessmentEventTopic)
	defer producer.Close()

	service := assessment.NewService(reg, repo, producer)
	handler := assessment.NewHandler(service)

	router := mux.NewRouter()
	router.Use(server.Recovery, server.Logging)
	router.HandleFunc("/health", healthCheck).Methods(http.MethodGet)
	router.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		metrics.WritePrometheus(w)
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	if oidcAuth, err := server.NewOIDCAuthenticator(cfg.OIDCIssuer, cfg.OIDCClientID, cfg.OIDCClientSecret); err == nil {
		api.Use(server.Authenticate(oidcAuth))
	} else {
		logger.Log.Warn("OIDC not configured, API is unauthenticated")
	}
	handler.Register(api)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.RiskServicePort),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Log.WithFields(map[string]interface{}{
			"host": cfg.ServerHost,
			"port": cfg.RiskServicePort,
		}).Info("Risk Service started")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down Risk Service...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("Server forced to shutdown")
	}
	if err := database.ClosePostgres(); err != nil {
		logger.Log.WithError(err).Error("Failed to close database")
	}

	logger.Log.Info("Risk Service stopped")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
