package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/annakovaleva/blogview/internal/buildinfo"
	"github.com/annakovaleva/blogview/internal/client/cli"
	"github.com/annakovaleva/blogview/internal/client/config"
	"github.com/annakovaleva/blogview/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	log := logging.NewText(os.Stderr, slog.LevelWarn)
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "err", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
