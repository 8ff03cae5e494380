package main

import (
	"context"
	"log/slog"
	"os"

	"notekeeper/internal/app"
	"notekeeper/internal/cli"
	"notekeeper/internal/config"
	"notekeeper/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewText(os.Stderr, slog.LevelInfo)
	ctx := context.Background()

	core, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to open store", "error", err)
		os.Exit(1)
	}

	if err := core.Bootstrap(ctx); err != nil {
		log.Error(ctx, "bootstrap failed", "error", err)
		os.Exit(1)
	}

	log.Info(ctx, "store ready",
		"backend", core.StoreKind(),
		"install_id", core.InstallID(ctx))

	cli.NewApp(core, log).Run(ctx)
}
