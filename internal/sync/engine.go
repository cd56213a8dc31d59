package sync

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/alexjbarnes/drive-sync/internal/config"
	errs "github.com/alexjbarnes/drive-sync/internal/errors"
)

// driveEnsurer is the subset of the drive coordinator the engine needs.
// Extracted for testability.
type driveEnsurer interface {
	// Ensure reports whether the drive is mounted, attempting at most one
	// mount if it is not.
	Ensure(ctx context.Context) bool
}

// Engine decides, for a single local file, whether a copy to the drive is
// needed and performs it. One instance serves the whole daemon; the
// orchestrator serializes calls, so the engine holds no locks.
type Engine struct {
	cfg    *config.Config
	drive  driveEnsurer
	remote RemoteFS
	filter *Filter
	logger *slog.Logger
}

func NewEngine(cfg *config.Config, drive driveEnsurer, remote RemoteFS, filter *Filter, logger *slog.Logger) *Engine {
	return &Engine{
		cfg:    cfg,
		drive:  drive,
		remote: remote,
		filter: filter,
		logger: logger,
	}
}

// SyncFile mirrors one local file onto the drive. It re-derives drive
// availability and the remote target on every call, compares content
// digests when a remote copy already exists, and copies only on mismatch.
// A digest that cannot be computed counts as a mismatch: the failure mode
// is a redundant copy, never a wrong skip.
func (e *Engine) SyncFile(ctx context.Context, localPath string) Outcome {
	if rel, err := filepath.Rel(e.cfg.LocalRoot, localPath); err == nil && e.filter.Excluded(rel) {
		e.logger.Debug("excluded from sync", slog.String("path", localPath))
		return Outcome{Status: StatusSkippedExcluded}
	}

	if !e.drive.Ensure(ctx) {
		e.logger.Warn("drive unavailable, skipping sync", slog.String("path", localPath))
		return Outcome{Status: StatusSkippedNoDrive}
	}

	uri, err := Target(e.cfg, localPath)
	if err != nil {
		return failed(err)
	}

	if err := e.remote.MkdirAll(ctx, parentURI(uri)); err != nil {
		return failed(fmt.Errorf("%w: %w", errs.ErrParentDir, err))
	}

	exists, err := e.remote.Exists(ctx, uri)
	if err != nil {
		// Existence unknown: assume absent and fall through to the copy,
		// which overwrites either way.
		e.logger.Warn("remote existence check failed",
			slog.String("uri", uri),
			slog.String("error", err.Error()),
		)

		exists = false
	}

	if exists {
		if e.unchanged(ctx, localPath, uri) {
			e.logger.Debug("no changes detected", slog.String("path", localPath))
			return Outcome{Status: StatusSkippedNoChange}
		}

		if err := e.remote.Delete(ctx, uri); err != nil {
			return failed(fmt.Errorf("%w: %w", errs.ErrDelete, err))
		}
	}

	if err := e.remote.Copy(ctx, localPath, uri); err != nil {
		return failed(fmt.Errorf("%w: %w", errs.ErrCopy, err))
	}

	e.logger.Info("synced",
		slog.String("path", localPath),
		slog.String("uri", uri),
	)

	if exists {
		return Outcome{Status: StatusReplaced}
	}

	return Outcome{Status: StatusCreated}
}

// unchanged reports whether the remote copy already matches the local
// file. True only when both digests computed successfully and are equal.
func (e *Engine) unchanged(ctx context.Context, localPath, uri string) bool {
	remoteDigest := Unknown

	rc, err := e.remote.Open(ctx, uri)
	if err == nil {
		remoteDigest = FromReader(rc)
		rc.Close()
	} else {
		e.logger.Warn("reading remote file for digest failed",
			slog.String("uri", uri),
			slog.String("error", err.Error()),
		)
	}

	if remoteDigest == Unknown {
		return false
	}

	localDigest := FromFile(localPath)
	if localDigest == Unknown {
		return false
	}

	return remoteDigest == localDigest
}
