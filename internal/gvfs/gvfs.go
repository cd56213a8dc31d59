// Package gvfs adapts the GNOME GVfs platform services (volume
// enumeration, on-demand mounting, and URI-addressed file operations)
// through the gio command-line tool. It implements drive.Monitor and
// sync.RemoteFS; everything here is thin glue around gio invocations.
package gvfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/alexjbarnes/drive-sync/internal/drive"
)

const gioBin = "gio"

type GVfs struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *GVfs {
	return &GVfs{logger: logger}
}

// run executes a gio subcommand and returns its stdout. Stderr from a
// failed invocation is folded into the error.
func (g *GVfs) run(ctx context.Context, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, gioBin, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("gio %s: %w: %s", args[0], err, strings.TrimSpace(string(exitErr.Stderr)))
		}

		return nil, fmt.Errorf("gio %s: %w", args[0], err)
	}

	return out, nil
}

// --- drive.Monitor ---

// Mounts lists currently mounted volumes with their root URIs.
func (g *GVfs) Mounts(ctx context.Context) ([]drive.MountPoint, error) {
	out, err := g.run(ctx, "mount", "--list", "--detail")
	if err != nil {
		return nil, err
	}

	mounts, _ := parseMountList(string(out))

	return mounts, nil
}

// Volumes lists known volumes that are not currently mounted. Volumes
// without an activation root cannot be mounted by URI and are omitted.
func (g *GVfs) Volumes(ctx context.Context) ([]drive.Volume, error) {
	out, err := g.run(ctx, "mount", "--list", "--detail")
	if err != nil {
		return nil, err
	}

	_, volumes := parseMountList(string(out))

	return volumes, nil
}

// Mount issues an asynchronous mount request. The returned channel
// resolves exactly once when gio reports the mount finished or failed.
func (g *GVfs) Mount(ctx context.Context, id string) <-chan error {
	done := make(chan error, 1)

	go func() {
		g.logger.Debug("issuing mount request", slog.String("volume", id))

		_, err := g.run(ctx, "mount", id)
		done <- err
	}()

	return done
}

// parseMountList extracts mounted roots and unmounted volumes from
// `gio mount --list --detail` output. Mount lines have the form
// "Mount(N): name -> uri"; a mount line nested under a Volume block means
// that volume is already mounted and is excluded from the volume list.
// Volume blocks contribute their activation_root as both ID and URI.
func parseMountList(out string) ([]drive.MountPoint, []drive.Volume) {
	var (
		mounts  []drive.MountPoint
		volumes []drive.Volume

		inVolume      bool
		volumeRoot    string
		volumeMounted bool
	)

	flush := func() {
		if inVolume && volumeRoot != "" && !volumeMounted {
			volumes = append(volumes, drive.Volume{ID: volumeRoot, URI: volumeRoot})
		}

		inVolume = false
		volumeRoot = ""
		volumeMounted = false
	}

	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		nested := len(line) > 0 && (line[0] == ' ' || line[0] == '\t')

		switch {
		case strings.HasPrefix(trimmed, "Volume(") && !nested:
			flush()

			inVolume = true

		case strings.HasPrefix(trimmed, "Mount("):
			if _, uri, ok := strings.Cut(trimmed, " -> "); ok {
				mounts = append(mounts, drive.MountPoint{URI: strings.TrimSpace(uri)})
			}

			if nested && inVolume {
				volumeMounted = true
			} else {
				flush()
			}

		case strings.HasPrefix(trimmed, "Drive(") && !nested:
			flush()

		case inVolume && strings.HasPrefix(trimmed, "activation_root="):
			volumeRoot = strings.TrimPrefix(trimmed, "activation_root=")
		}
	}

	flush()

	return mounts, volumes
}

// --- sync.RemoteFS ---

// Exists reports whether an object is present at uri. A non-zero gio
// exit means the object is absent; only invocation failures are errors.
func (g *GVfs) Exists(ctx context.Context, uri string) (bool, error) {
	_, err := exec.CommandContext(ctx, gioBin, "info", "--attributes=standard::type", uri).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}

		return false, fmt.Errorf("gio info: %w", err)
	}

	return true, nil
}

// Open streams the content of the object at uri via `gio cat`. The
// returned reader must be closed to reap the child process; a stream that
// breaks mid-read surfaces as a short read, which digest callers already
// treat as a mismatch.
func (g *GVfs) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	cmd := exec.CommandContext(ctx, gioBin, "cat", uri)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("gio cat: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("gio cat: %w", err)
	}

	return &cmdStream{ReadCloser: stdout, cmd: cmd}, nil
}

// MkdirAll creates the directory at uri and any missing parents. An
// already-existing directory is success; gio reports it as an error, so
// that case is filtered here.
func (g *GVfs) MkdirAll(ctx context.Context, uri string) error {
	if _, err := g.run(ctx, "mkdir", "--parent", uri); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "exists") {
			return nil
		}

		return err
	}

	return nil
}

// Delete removes the object at uri.
func (g *GVfs) Delete(ctx context.Context, uri string) error {
	if _, err := g.run(ctx, "remove", uri); err != nil {
		return err
	}

	return nil
}

// Copy uploads the local file to uri, overwriting any existing object.
func (g *GVfs) Copy(ctx context.Context, localPath, uri string) error {
	if _, err := g.run(ctx, "copy", localPath, uri); err != nil {
		return err
	}

	return nil
}

// cmdStream wraps a child process's stdout so Close also reaps the
// process.
type cmdStream struct {
	io.ReadCloser
	cmd *exec.Cmd
}

func (s *cmdStream) Close() error {
	s.ReadCloser.Close()
	return s.cmd.Wait()
}
