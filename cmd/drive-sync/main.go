package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexjbarnes/drive-sync/internal/config"
	"github.com/alexjbarnes/drive-sync/internal/daemon"
	"github.com/alexjbarnes/drive-sync/internal/drive"
	"github.com/alexjbarnes/drive-sync/internal/gvfs"
	"github.com/alexjbarnes/drive-sync/internal/logging"
	"github.com/alexjbarnes/drive-sync/internal/session"
	"github.com/alexjbarnes/drive-sync/internal/sync"
	"github.com/alexjbarnes/drive-sync/internal/watch"
)

var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.NewLogger(cfg.Environment)
	logger.Info("drive-sync starting",
		slog.String("version", Version),
		slog.String("local_root", cfg.LocalRoot),
		slog.String("remote_root", cfg.RemoteRoot),
		slog.String("account", cfg.AccountID),
	)

	filter, err := sync.NewFilter(cfg.Exclude)
	if err != nil {
		return fmt.Errorf("compiling exclude patterns: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	platform := gvfs.New(logger)
	coordinator := drive.NewCoordinator(cfg, platform, logger)
	engine := sync.NewEngine(cfg, coordinator, platform, filter, logger)
	watcher := watch.New(cfg.LocalRoot, logger)
	notifier := session.NewNotifier(logger)

	d := daemon.New(engine, watcher, notifier, logger)
	if err := d.Run(ctx); err != nil {
		return err
	}

	logger.Info("sync service stopped")

	return nil
}
