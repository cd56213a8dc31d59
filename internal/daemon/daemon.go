package daemon

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/alexjbarnes/drive-sync/internal/session"
	"github.com/alexjbarnes/drive-sync/internal/sync"
	"github.com/alexjbarnes/drive-sync/internal/watch"
)

// State is the orchestrator lifecycle state.
type State int

const (
	StateStarting State = iota
	StateRunning
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// eventChanSize buffers the merged event channel. Sources stay responsive
// while a sync is in flight; ordering is preserved because a single loop
// goroutine is the only consumer.
const eventChanSize = 64

// syncer is the subset of the sync engine the daemon dispatches to.
// Extracted for testability.
type syncer interface {
	SyncFile(ctx context.Context, localPath string) sync.Outcome
	SyncAll(ctx context.Context) error
}

// eventSource feeds events into the daemon's merged channel until its
// context is cancelled. Implemented by watch.Watcher and session.Notifier.
type eventSource interface {
	Run(ctx context.Context, out chan<- any) error
}

// Daemon serializes filesystem, lock, and logout events into a single
// coherent sync schedule. Exactly one event handler runs at a time, in
// delivery order, so no locking is needed around the configuration or
// the remote tree. Dropped events are never queued or retried: a later
// event or the next full resync corrects any missed sync.
type Daemon struct {
	engine  syncer
	watcher eventSource
	session eventSource
	logger  *slog.Logger

	// state is only touched from the Run goroutine.
	state State
}

func New(engine syncer, watcher, session eventSource, logger *slog.Logger) *Daemon {
	return &Daemon{
		engine:  engine,
		watcher: watcher,
		session: session,
		logger:  logger,
		state:   StateStarting,
	}
}

// State returns the daemon's lifecycle state. Only meaningful once Run
// has returned, or from within the Run goroutine.
func (d *Daemon) State() State {
	return d.state
}

// Run drives the daemon from Starting through Running to Stopped.
// It returns nil on a clean shutdown (termination signal via ctx, or
// logout event) so the process exits with status zero.
func (d *Daemon) Run(ctx context.Context) error {
	d.logger.Info("sync service starting")

	// Mirror everything once before watching, so files that never change
	// again still reach the drive.
	if err := d.engine.SyncAll(ctx); err != nil {
		d.logger.Warn("initial sync incomplete", slog.String("error", err.Error()))
	}

	if ctx.Err() != nil {
		d.transition(StateStopped)
		return nil
	}

	srcCtx, stopSources := context.WithCancel(ctx)
	defer stopSources()

	events := make(chan any, eventChanSize)

	var g errgroup.Group

	g.Go(func() error {
		err := d.watcher.Run(srcCtx, events)
		if err != nil && !errors.Is(err, context.Canceled) {
			// A dead watcher degrades the daemon rather than killing it:
			// lock-triggered full syncs still run.
			d.logger.Error("file watcher stopped", slog.String("error", err.Error()))
		}

		return nil
	})

	g.Go(func() error {
		err := d.session.Run(srcCtx, events)
		if err != nil && !errors.Is(err, context.Canceled) {
			d.logger.Error("session notifier stopped", slog.String("error", err.Error()))
		}

		return nil
	})

	d.transition(StateRunning)

	for d.state == StateRunning {
		select {
		case <-ctx.Done():
			d.logger.Info("termination signal received")
			d.transition(StateStopping)

		case ev := <-events:
			d.dispatch(srcCtx, ev)
		}
	}

	// Stop the event sources and wait for them to wind down. No sync
	// starts after this point.
	stopSources()
	_ = g.Wait()

	d.transition(StateStopped)

	return nil
}

// dispatch handles one event to completion. Handlers run inline on the
// loop goroutine; that is what guarantees one-at-a-time ordering.
func (d *Daemon) dispatch(ctx context.Context, ev any) {
	switch ev := ev.(type) {
	case watch.Event:
		if ev.IsDir {
			return
		}

		out := d.engine.SyncFile(ctx, ev.Path)
		d.logOutcome(ev, out)

	case session.ScreenLockedChanged:
		if !ev.Locked {
			return
		}

		d.logger.Info("screen locked, performing full sync")

		if err := d.engine.SyncAll(ctx); err != nil {
			d.logger.Warn("lock-triggered sync incomplete", slog.String("error", err.Error()))
		}

	case session.SessionActiveChanged:
		if ev.Active {
			return
		}

		d.logger.Info("user logged out, stopping sync service")
		d.transition(StateStopping)

	default:
		d.logger.Warn("dropping unrecognized event")
	}
}

func (d *Daemon) logOutcome(ev watch.Event, out sync.Outcome) {
	switch out.Status {
	case sync.StatusFailed:
		d.logger.Warn("sync failed",
			slog.String("path", ev.Path),
			slog.String("op", ev.Op.String()),
			slog.String("error", out.Err.Error()),
		)
	default:
		d.logger.Debug("sync outcome",
			slog.String("path", ev.Path),
			slog.String("op", ev.Op.String()),
			slog.String("outcome", out.Status.String()),
		)
	}
}

func (d *Daemon) transition(next State) {
	if d.state == next {
		return
	}

	d.logger.Info("state transition",
		slog.String("from", d.state.String()),
		slog.String("to", next.String()),
	)

	d.state = next
}
