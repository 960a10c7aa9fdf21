package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies pending migrations from the migrations directory using the atlas CLI.
func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	bin := flag.String("atlas", "atlas", "atlas binary")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	client, err := atlasexec.NewClient(".", *bin)
	if err != nil {
		logger.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: *dir,
	})
	if err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
}
