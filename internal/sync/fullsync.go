package sync

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"

	errs "github.com/alexjbarnes/drive-sync/internal/errors"
)

// SyncAll walks the local root and feeds every regular file through
// SyncFile. The availability check runs once up front; an absent drive
// aborts the whole pass rather than failing file by file. Per-file
// failures never abort the walk, and no state is shared between files.
func (e *Engine) SyncAll(ctx context.Context) error {
	e.logger.Info("starting full tree sync", slog.String("root", e.cfg.LocalRoot))

	if !e.drive.Ensure(ctx) {
		e.logger.Warn("drive unavailable, skipping full sync")
		return errs.ErrDriveUnavailable
	}

	var synced, failures int

	err := filepath.WalkDir(e.cfg.LocalRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			e.logger.Warn("walk error",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)

			return nil
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		// WalkDir does not follow symlinks, so symlinked directories are
		// never descended into and symlink entries fail IsRegular below.
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		out := e.SyncFile(ctx, path)
		switch out.Status {
		case StatusFailed:
			failures++
			e.logger.Warn("sync failed",
				slog.String("path", path),
				slog.String("error", out.Err.Error()),
			)
		case StatusCreated, StatusReplaced, StatusSkippedNoChange:
			synced++
		}

		return nil
	})

	e.logger.Info("full tree sync complete",
		slog.Int("files", synced),
		slog.Int("failures", failures),
	)

	return err
}
