package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/worklog/report-dashboard/internal/cli"
	"github.com/worklog/report-dashboard/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	level := os.Getenv("REPORTCTL_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	log := logger.Init(logger.Options{
		Level:  level,
		Pretty: true,
		Output: os.Stderr,
	})

	c := cli.New(cli.Options{Output: os.Stdout, Logger: log})
	if err := c.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
