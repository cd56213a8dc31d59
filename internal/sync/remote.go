package sync

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/alexjbarnes/drive-sync/internal/config"
)

// RemoteFS is the narrow capability surface the engine needs from the
// mounted volume. Implemented by the GVfs adapter; extracted as an
// interface for testability.
type RemoteFS interface {
	// Exists reports whether an object is present at uri.
	Exists(ctx context.Context, uri string) (bool, error)

	// Open streams the content of the object at uri.
	Open(ctx context.Context, uri string) (io.ReadCloser, error)

	// MkdirAll creates the directory at uri along with any missing parents.
	// Succeeds if the directory already exists.
	MkdirAll(ctx context.Context, uri string) error

	// Delete removes the object at uri.
	Delete(ctx context.Context, uri string) error

	// Copy uploads the local file to uri, overwriting any existing object.
	Copy(ctx context.Context, localPath, uri string) error
}

// Target maps a local path to its remote URI:
//
//	google-drive://<account>/<remoteRoot>/<path relative to local root>
//
// with leading separators stripped. It is recomputed on every call and
// never stored; no file ever syncs outside this mapping.
func Target(cfg *config.Config, localPath string) (string, error) {
	rel, err := filepath.Rel(cfg.LocalRoot, localPath)
	if err != nil {
		return "", fmt.Errorf("computing path relative to local root: %w", err)
	}

	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("path %q is outside the local root", localPath)
	}

	remote := strings.TrimLeft(path.Join(cfg.RemoteRoot, rel), "/")

	return config.Scheme + cfg.AccountID + "/" + remote, nil
}

// parentURI returns the URI of the directory containing uri.
func parentURI(uri string) string {
	trimmed := strings.TrimPrefix(uri, config.Scheme)
	return config.Scheme + path.Dir(trimmed)
}
