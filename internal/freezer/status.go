package freezer

import "fmt"

// LockStatus is the per-entry lifecycle state persisted in the ledger.
// The wire tokens carry a numeric prefix so that sorting the ledger by
// the status column groups entries in lifecycle order. The tokens are
// part of the on-disk format and must not change.
type LockStatus string

const (
	// StatusPending marks an entry that is declared but not yet attempted.
	StatusPending LockStatus = "00-pending"

	// StatusFreezing marks an upload in progress or interrupted mid-flight.
	// An entry found in this state on the next run is retried from scratch.
	StatusFreezing LockStatus = "10-freezing"

	// StatusFrozen marks a confirmed complete upload.
	StatusFrozen LockStatus = "20-frozen"

	// StatusDeprecated marks a target no longer present in the manifest.
	// The record is kept for audit; no further action is taken.
	StatusDeprecated LockStatus = "90-deprecated"
)

// ParseLockStatus validates a status token read from the ledger.
func ParseLockStatus(s string) (LockStatus, error) {
	switch LockStatus(s) {
	case StatusPending, StatusFreezing, StatusFrozen, StatusDeprecated:
		return LockStatus(s), nil
	default:
		return "", fmt.Errorf("unknown lock status %q", s)
	}
}

// Uploaded reports whether the entry needs no further upload work.
// DEPRECATED counts as uploaded: removal from the manifest ends the
// entry's lifecycle regardless of how far it got.
func (s LockStatus) Uploaded() bool {
	switch s {
	case StatusFrozen, StatusDeprecated:
		return true
	case StatusPending, StatusFreezing:
		return false
	default:
		return false
	}
}
