package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventRegistrar/internal/config"
	"eventRegistrar/internal/feed"
	"eventRegistrar/internal/http-server/handlers/event/addParticipant"
	"eventRegistrar/internal/http-server/handlers/event/createEvent"
	"eventRegistrar/internal/http-server/handlers/event/deleteEvent"
	"eventRegistrar/internal/http-server/handlers/event/getAllEvents"
	"eventRegistrar/internal/http-server/handlers/event/removeParticipant"
	"eventRegistrar/internal/http-server/handlers/event/watchEvents"
	"eventRegistrar/internal/http-server/middleware/mwlogger"
	"eventRegistrar/internal/lib/logger/handlers/slogpretty"
	"eventRegistrar/internal/lib/logger/sl"
	"eventRegistrar/internal/metrics"
	"eventRegistrar/internal/registration"
	"eventRegistrar/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event registrar", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	hub := feed.NewHub()
	creator := registration.NewCreator(log, storage, hub, m)
	registrar := registration.NewRegistrar(log, storage, hub, m)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/events", createEvent.New(log, creator))
	router.Get("/events", getAllEvents.New(log, registrar))
	router.Get("/events/watch", watchEvents.New(log, registrar))
	router.Post("/events/{id}/participants", addParticipant.New(log, registrar))
	router.Delete("/events/{id}/participants", removeParticipant.New(log, registrar))
	router.Delete("/events/{id}", deleteEvent.New(log, registrar))

	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:        cfg.HTTPServer.Address,
		Handler:     router,
		ReadTimeout: cfg.HTTPServer.Timeout,
		// the watch stream writes for as long as the client stays connected
		WriteTimeout: 0,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
