package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-clinic-site/internal/adapters/storage"
	"pet-clinic-site/internal/config"
	"pet-clinic-site/internal/platform/logger"
	"pet-clinic-site/internal/platform/notify"
	"pet-clinic-site/internal/router"
)

// @title        Pet Clinic API
// @version      1.0
// @description  Registro de pacientes de la clínica veterinaria: altas, filtros, cuentas y tema.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := storage.Open(ctx, storage.OptionsFrom(cfg), log)
	if err != nil {
		log.Error("store init failed", map[string]any{"backend": cfg.StoreBackend, "error": err.Error()})
		os.Exit(1)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("store close failed", map[string]any{"error": err.Error()})
		}
	}()

	r := router.NewRouter(router.Options{
		Store:     store,
		Namespace: cfg.StoreNamespace,
		Logger:    log,
		Notices: notify.Options{
			StatusTTL: cfg.StatusTTL,
			ToastFade: cfg.ToastFade,
			ToastTTL:  cfg.ToastTTL,
		},
		SearchDebounce: cfg.SearchDebounce,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Env, "backend": cfg.StoreBackend})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err.Error()})
		}
		return
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
	}
}
