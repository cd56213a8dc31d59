package sync

// Status classifies the result of a single-file sync attempt.
type Status int

const (
	// StatusSkippedNoChange means local and remote digests matched, so no
	// copy was needed.
	StatusSkippedNoChange Status = iota

	// StatusCreated means no remote object existed and the file was copied.
	StatusCreated

	// StatusReplaced means a stale remote copy was deleted and re-copied.
	StatusReplaced

	// StatusSkippedNoDrive means the drive was absent and could not be
	// mounted; the attempt was abandoned without touching the remote.
	StatusSkippedNoDrive

	// StatusSkippedExcluded means an exclude pattern matched the path.
	StatusSkippedExcluded

	// StatusFailed means a remote operation failed; Outcome.Err carries
	// the reason.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSkippedNoChange:
		return "skipped-no-change"
	case StatusCreated:
		return "created"
	case StatusReplaced:
		return "replaced"
	case StatusSkippedNoDrive:
		return "skipped-no-drive"
	case StatusSkippedExcluded:
		return "skipped-excluded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of one SyncFile call. It is consumed for logging
// only: no retry queue exists, each event stands alone, and a later event
// or full resync corrects anything a failed attempt missed.
type Outcome struct {
	Status Status
	Err    error
}

func failed(err error) Outcome {
	return Outcome{Status: StatusFailed, Err: err}
}
