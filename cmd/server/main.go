package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/apetrenko/contentgen/internal/logging"
	"github.com/apetrenko/contentgen/internal/server"
	"github.com/apetrenko/contentgen/internal/server/config"
	"github.com/apetrenko/contentgen/internal/server/services"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
)

func main() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)

	logger := logging.NewJSON(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error(context.Background(), "loading config", "error", err)
		os.Exit(1)
	}

	if buildVersion != "N/A" {
		services.Version = buildVersion
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app := server.NewApp(cfg, logger)
	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}
