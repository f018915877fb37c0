package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"librarycatalog/internal/config"
	"librarycatalog/internal/http/server"
	"librarycatalog/internal/logger"
	"librarycatalog/internal/repository"
	"librarycatalog/internal/services/auth"
	"librarycatalog/internal/services/catalog"
	"librarycatalog/internal/services/hasher"
	"librarycatalog/internal/services/token"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// .env читается до конфига, переменные окружения имеют приоритет
	dotenvErr := config.LoadDotEnv()

	cfg, err := config.NewConfig()
	if err != nil {
		log := logger.NewLogger("info")
		log.Error().Err(err).Msg("failed to load config")
		return err
	}

	log := logger.NewLogger(cfg.LogLevel)
	if dotenvErr != nil {
		log.Warn().Err(dotenvErr).Msg("failed to load .env")
	}
	for _, w := range cfg.Warnings {
		log.Warn().Msg(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Str("storage", cfg.Storage).Msg("failed to open storage")
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close storage")
		}
	}()
	log.Info().Str("storage", cfg.Storage).Msg("storage ready")

	tokens, err := token.NewService(cfg.JWTSecretKey, cfg.JWTAccessExpire)
	if err != nil {
		log.Error().Err(err).Msg("failed to create token service")
		return err
	}

	authService := auth.NewAuthentication(storage, hasher.NewBcryptHasher(cfg.BcryptCost), tokens)
	catalogService := catalog.NewCatalog(storage)

	srv, err := server.NewServer(log, *cfg, catalogService, authService)
	if err != nil {
		log.Error().Err(err).Msg("failed to create server")
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}

	log.Info().Msg("server stopped")
	return nil
}
