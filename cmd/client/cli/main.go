package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	capi "github.com/apetrenko/contentgen/internal/client/api"
	"github.com/apetrenko/contentgen/internal/client/cli"
	"github.com/apetrenko/contentgen/internal/client/config"
	"github.com/apetrenko/contentgen/internal/client/session"
	"github.com/apetrenko/contentgen/internal/logging"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
)

func main() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)

	logger := logging.NewText(os.Stderr, slog.LevelWarn)

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading config:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sess, err := session.Open(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "opening session store:", err)
		os.Exit(1)
	}
	defer sess.Close()

	app := cli.NewApp(cfg, capi.NewClient(cfg.BaseURL, sess), sess, os.Stdin, os.Stdout, logger)
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("bye")
}
