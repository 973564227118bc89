package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/adapters/handler"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/adapters/rest"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/adapters/storage"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/config"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/services"
)

// The dashboard binary is the runtime a UI shell binds to: it owns the
// stores, the gateway, the page controllers and the background queue
// refresh, and exposes health and metrics endpoints while running.
func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	cfg := config.Load()
	ctx := context.Background()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	logger.Info().Msg("connected to redis")

	kv := storage.NewRedisStore(redisClient, logger)
	prefs := services.NewPreferenceStore(kv)

	gateway := rest.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, logger)

	appointments := services.NewAppointmentsController(gateway, gateway, gateway, prefs, cfg.QueuePollInterval, logger)
	dashboard := services.NewDashboardController(gateway, gateway, gateway, prefs, cfg.QueuePollInterval, logger)

	healthHandler := handler.NewHealthHandler(redisClient, cfg.APIBaseURL)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/health/ready", healthHandler.Ready)
	mux.HandleFunc("/health/live", healthHandler.Live)
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("serving health and metrics")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Mount the pages that keep live state. Their pollers start the 10s
	// queue refresh; Unmount guarantees nothing fires after shutdown.
	if err := appointments.Mount(runCtx); err != nil {
		logger.Warn().Err(err).Msg("initial appointments load failed")
	}
	if err := dashboard.Mount(runCtx); err != nil {
		logger.Warn().Err(err).Msg("initial dashboard load failed")
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	logger.Info().Str("signal", sig.String()).Msg("shutting down")

	appointments.Unmount()
	dashboard.Unmount()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("error shutting down server")
	}

	logger.Info().Msg("shutdown complete")
}
