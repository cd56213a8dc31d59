package drive

import (
	"context"
	"strings"

	"github.com/alexjbarnes/drive-sync/internal/config"
)

// MountPoint is a currently mounted volume as reported by the platform.
type MountPoint struct {
	// URI is the mount's root URI, e.g. "google-drive://u@example/".
	URI string
}

// Volume is a known-but-unmounted volume the platform can mount on request.
type Volume struct {
	// ID is the identifier used to issue a mount request for this volume.
	ID string

	// URI identifies the volume's provider and account.
	URI string
}

// Monitor is the narrow capability surface of the platform volume service.
// Implemented by the GVfs adapter; extracted as an interface for
// testability.
type Monitor interface {
	// Mounts lists currently mounted volumes.
	Mounts(ctx context.Context) ([]MountPoint, error)

	// Volumes lists known volumes that are not currently mounted.
	Volumes(ctx context.Context) ([]Volume, error)

	// Mount issues an asynchronous mount request for the volume with the
	// given ID. The returned channel resolves exactly once with the result.
	Mount(ctx context.Context, id string) <-chan error
}

// matches reports whether uri belongs to the configured account's drive:
// it must carry the provider scheme and the account identifier.
func matches(uri, accountID string) bool {
	return strings.HasPrefix(uri, config.Scheme) && strings.Contains(uri, accountID)
}

// Available reports whether the account's drive is currently mounted. The
// answer is re-derived from the platform on every call and never cached:
// the volume can appear or disappear between sync attempts. Enumeration
// failures count as unavailable.
func Available(ctx context.Context, m Monitor, accountID string) bool {
	mounts, err := m.Mounts(ctx)
	if err != nil {
		return false
	}

	for _, mp := range mounts {
		if matches(mp.URI, accountID) {
			return true
		}
	}

	return false
}
