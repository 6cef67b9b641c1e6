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

	"asha_sphere/internal/ai"
	"asha_sphere/internal/config"
	"asha_sphere/internal/handlers"
	"asha_sphere/internal/logger"
	"asha_sphere/internal/storage"
	"asha_sphere/internal/usecases"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.GoogleAPIKey == "" {
		log.Warn("GOOGLE_API_KEY is not set, reflection requests will fail")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := storage.NewJournalRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	aiClient := ai.NewGeminiClient(cfg.GoogleAPIKey, cfg.GeminiModel)
	defer aiClient.Close()

	reflector := usecases.NewReflector(aiClient, log)

	router := handlers.NewRouter(
		handlers.NewJournalHandler(repo, log),
		handlers.NewReflectionHandler(reflector, log),
		cfg.CORSOrigin,
		log,
	)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("Fail Listen and Serve with error: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	return nil
}
