package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"flight-booking/internal/handler/middleware"
	"flight-booking/internal/pkg/config"
	"flight-booking/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

func run() error {
	dir := pflag.String("dir", "file://migrations", "migration directory URL")
	bin := pflag.String("atlas", "atlas", "path to the atlas binary")
	dryRun := pflag.Bool("dry-run", false, "print pending migrations without applying them")
	timeout := pflag.Duration("timeout", 2*time.Minute, "give up after this long")
	pflag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := apply(ctx, *bin, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: *dir,
		DryRun: *dryRun,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Applied {
		logger.Info("applied migration", "file", f.Name, "version", f.Version)
	}
	logger.Info("migrations up to date", "current", res.Current, "target", res.Target, "dry_run", *dryRun)
	return nil
}

func apply(ctx context.Context, bin string, params *atlasexec.MigrateApplyParams) (*atlasexec.MigrateApply, error) {
	client, err := atlasexec.NewClient(".", bin)
	if err != nil {
		return nil, errs.Wrap(err, "failed to initialize atlas client")
	}

	res, err := client.MigrateApply(ctx, params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to apply migrations")
	}
	return res, nil
}
