package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/voyagekit/flight-booking/internal/api"
	"github.com/voyagekit/flight-booking/internal/core/service"
	"github.com/voyagekit/flight-booking/internal/infrastructure/config"
	redisdb "github.com/voyagekit/flight-booking/internal/infrastructure/db/redis"
	"github.com/voyagekit/flight-booking/internal/storage/csvstore"
	"github.com/voyagekit/flight-booking/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Local development convenience; absent .env is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// First-run bootstrap: loading fails on a missing file by contract, so
	// empty files are created explicitly before the repositories load.
	usersPath := cfg.UsersPath()
	reservationsPath := cfg.ReservationsPath()
	for _, path := range []string{usersPath, reservationsPath} {
		if err := csvstore.EnsureFile(path); err != nil {
			log.Fatal().Err(err).Msg("data file bootstrap failed")
		}
	}

	userRepo, err := csvstore.NewUserRepository(usersPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load user store")
	}
	reservationRepo, err := csvstore.NewReservationRepository(reservationsPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load reservation store")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	sessions := redisdb.NewSessionStore(rdb)
	accounts := service.NewAccountService(userRepo, sessions, cfg.JWTSecret, cfg.TokenTTL, log)
	bookings := service.NewBookingService(userRepo, reservationRepo, log)

	e := api.NewRouter(api.Deps{
		Accounts:  accounts,
		Bookings:  bookings,
		Sessions:  sessions,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		DataFiles: []string{usersPath, reservationsPath},
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
