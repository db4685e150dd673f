package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sleeper-log/internal/cli"
	"sleeper-log/internal/config"
	"sleeper-log/internal/logging"
)

const appVersion = "1.0"

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "sleeper-log",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cfg, logger, os.Stdin, os.Stdout)
	if err := app.Command().ExecuteContext(ctx); err != nil {
		logging.Error(logger, "report generation failed", err)
		fmt.Fprintf(os.Stderr, "❌ Error generating report: %v\n", err)
		os.Exit(1)
	}
}
