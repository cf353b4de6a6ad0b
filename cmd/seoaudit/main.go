package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"seoaudit/internal/api/v1/handler"
	"seoaudit/internal/api/v1/router"
	"seoaudit/internal/audit"
	"seoaudit/internal/cache"
	"seoaudit/internal/config"
	"seoaudit/internal/debug"
	"seoaudit/internal/log"
)

func init() {
	log.InitLogger()
	config.LoadEnv()
	cache.Init()
}

func main() {
	defer log.Sync()

	engine := audit.New(audit.Options{
		FetchTimeout: time.Duration(config.AppConfig.FetchTimeoutSeconds) * time.Second,
	})
	api := handler.New(engine)
	r := router.New(api)

	server := &http.Server{
		Addr:    config.AppConfig.ServerAddr,
		Handler: r,
	}

	metricsServer := &http.Server{
		Addr:              config.AppConfig.MetricsAddr,
		Handler:           router.NewMetricsRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Channel to listen for interrupt or terminate signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Audit API server
	go func() {
		log.Logger.Info("Server started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Pprof only enabled in dev env
	if config.AppConfig.IsDev == "true" {
		go func() {
			debug.StartPprof(":6060")
		}()
	}

	// Prometheus server
	go func() {
		log.Logger.Info("Metrics server started", zap.String("addr", metricsServer.Addr))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Logger.Fatal("Metrics server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt
	<-stop
	log.Logger.Info("Shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	log.Logger.Info("Server exited successfully")
}
