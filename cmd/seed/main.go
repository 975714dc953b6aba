package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"flight-booking/internal/handler/middleware"
	"flight-booking/internal/infra/db"
	"flight-booking/internal/infra/seed"
	"flight-booking/internal/infra/uow"
	"flight-booking/internal/pkg/clock"
	"flight-booking/internal/pkg/config"
	"flight-booking/internal/pkg/errs"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	flights := pflag.IntP("flights", "n", cfg.Seed.Flights, "number of flights the database should hold")
	timeout := pflag.Duration("timeout", time.Minute, "give up after this long")
	pflag.Parse()

	if *flights < 0 {
		return errs.Newf("--flights cannot be negative, got %d", *flights)
	}
	if cfg.Storage.Driver != config.StorageDriverPostgres {
		return errs.Newf("seeding needs STORAGE_DRIVER=%s, the in-memory store is seeded at server start", config.StorageDriverPostgres)
	}

	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	added, err := seed.NewSeeder(uow.NewPostgresUoW(pool), clock.NewRealClock(), logger).SeedFlights(ctx, *flights)
	if err != nil {
		return err
	}
	logger.Info("seed finished", "added", added, "target", *flights)
	return nil
}
