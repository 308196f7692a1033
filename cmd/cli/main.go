package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"itemvault/internal/buildinfo"
	"itemvault/internal/client/cli"
	"itemvault/internal/client/config"
	"itemvault/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
