package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/plateful/plateful/internal/buildinfo"
	"github.com/plateful/plateful/internal/cli"
	"github.com/plateful/plateful/internal/config"
	"github.com/plateful/plateful/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
