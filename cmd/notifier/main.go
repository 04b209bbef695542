// Command notifier drains the staff notifications queue into a log file.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/gommon/log"

	"github.com/iliyamo/cafe-comptoir-api/internal/config"
	"github.com/iliyamo/cafe-comptoir-api/internal/queue"
)

func main() {
	cfg := config.LoadNotifierConfig()

	logger := log.New("notifier")
	logger.SetHeader(`{"time":"${time_rfc3339}","level":"${level}","prefix":"${prefix}"}`)
	logger.SetLevel(cfg.Level())

	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		logger.Fatalf("notifier: create %s: %v", cfg.LogDir, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &queue.Consumer{URL: cfg.RabbitURL, Dir: cfg.LogDir, Logger: logger}
	logger.Infof("notifier: consuming %s into %s", queue.NotificationsQueue, cfg.LogDir)
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatalf("notifier: %v", err)
	}
	logger.Info("notifier: stopped")
}
