package errors

import "errors"

// Per-file sync failures. Each is isolated to that file's outcome; none
// aborts a full-tree walk or the daemon's run loop.
var (
	ErrParentDir = errors.New("creating remote parent directory failed")
	ErrDelete    = errors.New("deleting stale remote file failed")
	ErrCopy      = errors.New("copying file to remote failed")
)

// Drive mount errors.
var (
	ErrDriveUnavailable = errors.New("drive not mounted")
	ErrNoVolume         = errors.New("no matching drive volume found")
	ErrMountTimeout     = errors.New("timed out waiting for mount to resolve")
)
