package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Op identifies the kind of filesystem change observed.
type Op int

const (
	OpCreated Op = iota
	OpModified
	OpMoved
)

func (o Op) String() string {
	switch o {
	case OpCreated:
		return "created"
	case OpModified:
		return "modified"
	case OpMoved:
		return "moved"
	default:
		return "unknown"
	}
}

// Event is a single filesystem change under the local root. Moves carry
// the destination path; fsnotify reports a move as a remove on the old
// path plus a create on the new one, so from this watcher a move arrives
// as OpCreated on the destination. OpMoved exists for collaborators that
// track destinations natively.
type Event struct {
	Op    Op
	Path  string
	IsDir bool
}

// Watcher monitors the local root recursively and emits one Event per
// filesystem change, in delivery order. There is deliberately no
// debouncing: rapid successive writes each trigger their own sync,
// trading redundant copies for never missing one.
type Watcher struct {
	root   string
	logger *slog.Logger
	fsw    *fsnotify.Watcher
}

func New(root string, logger *slog.Logger) *Watcher {
	return &Watcher{root: root, logger: logger}
}

// Run watches until the context is cancelled, sending events to out. It
// never closes out; the channel is owned by the orchestrator, which
// merges it with other event sources.
func (w *Watcher) Run(ctx context.Context, out chan<- any) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	w.fsw = fsw
	defer fsw.Close()

	if err := w.addRecursive(w.root); err != nil {
		return fmt.Errorf("watching local root: %w", err)
	}

	w.logger.Info("file watcher started", slog.String("dir", w.root))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return fmt.Errorf("fsnotify events channel closed unexpectedly")
			}

			if w.shouldIgnore(event.Name) {
				continue
			}

			ev, ok := w.translate(event)
			if !ok {
				continue
			}

			select {
			case out <- ev:
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return fmt.Errorf("fsnotify errors channel closed unexpectedly")
			}

			w.logger.Warn("watcher error", slog.String("error", err.Error()))
		}
	}
}

// translate maps an fsnotify event to a typed Event. Removes and the
// old-path half of renames carry no sync work (the mirror never deletes
// remotely) and are dropped after their watches are cleaned up.
func (w *Watcher) translate(event fsnotify.Event) (Event, bool) {
	switch {
	case event.Has(fsnotify.Create):
		info, err := os.Lstat(event.Name)
		if err != nil {
			// Already gone; a later event will cover whatever replaced it.
			return Event{}, false
		}

		// New directories join the watch. Symlinks are not followed so a
		// link cannot pull in trees from outside the local root.
		if info.IsDir() && info.Mode()&os.ModeSymlink == 0 {
			_ = w.addRecursive(event.Name)
		}

		return Event{Op: OpCreated, Path: event.Name, IsDir: info.IsDir()}, true

	case event.Has(fsnotify.Write):
		info, err := os.Lstat(event.Name)
		if err != nil {
			return Event{}, false
		}

		return Event{Op: OpModified, Path: event.Name, IsDir: info.IsDir()}, true

	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		// Drop the watch for removed directories. Linux inotify does this
		// automatically but other platforms may leak.
		if w.fsw != nil {
			_ = w.fsw.Remove(event.Name)
		}

		return Event{}, false
	}

	return Event{}, false
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// WalkDir does not follow symlinks, so a symlinked directory is
		// not a dir here and never joins the watch. Links cannot pull in
		// trees from outside the local root.
		if !d.IsDir() {
			return nil
		}

		if w.shouldIgnore(path) {
			return filepath.SkipDir
		}

		return w.fsw.Add(path)
	})
}

// shouldIgnore filters editor droppings that are transient by nature;
// everything else is synced, dotfiles included.
func (w *Watcher) shouldIgnore(path string) bool {
	base := filepath.Base(path)

	if strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".swx") {
		return true
	}

	if strings.HasSuffix(base, ".part") || strings.HasSuffix(base, ".crdownload") {
		return true
	}

	return false
}
