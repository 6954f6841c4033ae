package main

import (
	"context"
	"log"
	"os"

	"github.com/hbridge/careconnect-cli/internal/buildinfo"
	"github.com/hbridge/careconnect-cli/internal/cli"
	"github.com/hbridge/careconnect-cli/internal/config"
	"github.com/hbridge/careconnect-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
