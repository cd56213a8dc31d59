package drive

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/alexjbarnes/drive-sync/internal/config"
	errs "github.com/alexjbarnes/drive-sync/internal/errors"
)

// Coordinator gates sync attempts on drive availability, mounting the
// volume on demand when it is absent.
type Coordinator struct {
	cfg     *config.Config
	monitor Monitor
	clock   clockwork.Clock
	logger  *slog.Logger
}

func NewCoordinator(cfg *config.Config, monitor Monitor, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		cfg:     cfg,
		monitor: monitor,
		clock:   clockwork.NewRealClock(),
		logger:  logger,
	}
}

// Ensure reports whether the drive is mounted, issuing at most one mount
// request if it is not, and re-checking availability afterward. The call
// blocks until the mount attempt resolves or times out; pending events
// wait behind it, which is acceptable because mounting is rare. Failures
// are logged, not escalated: the caller abandons that one sync attempt.
func (c *Coordinator) Ensure(ctx context.Context) bool {
	if Available(ctx, c.monitor, c.cfg.AccountID) {
		return true
	}

	c.logger.Info("drive not mounted, attempting to mount",
		slog.String("account", c.cfg.AccountID),
	)

	if err := c.mount(ctx); err != nil {
		c.logger.Warn("mount attempt failed", slog.String("error", err.Error()))
		return false
	}

	return Available(ctx, c.monitor, c.cfg.AccountID)
}

// mount requests a mount of the first unmounted volume matching the
// account and waits for the platform to resolve it, bounded by the
// configured timeout. Returns ErrNoVolume immediately when no matching
// volume exists.
func (c *Coordinator) mount(ctx context.Context) error {
	volumes, err := c.monitor.Volumes(ctx)
	if err != nil {
		return fmt.Errorf("enumerating volumes: %w", err)
	}

	for _, v := range volumes {
		if !matches(v.URI, c.cfg.AccountID) {
			continue
		}

		done := c.monitor.Mount(ctx, v.ID)

		select {
		case err := <-done:
			if err != nil {
				return fmt.Errorf("mounting volume %s: %w", v.ID, err)
			}

			c.logger.Info("drive mounted", slog.String("volume", v.ID))

			return nil
		case <-c.clock.After(c.cfg.MountTimeout):
			return errs.ErrMountTimeout
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return errs.ErrNoVolume
}
