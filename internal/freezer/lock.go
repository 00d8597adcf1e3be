package freezer

// LockEntry is one persisted ledger record: a FreezerEntry plus its
// lifecycle status. Entries are never deleted from the ledger; the
// file is an append-only audit trail of everything ever declared,
// keyed uniquely by TargetPath.
type LockEntry struct {
	TargetPath   string
	SourcePath   string
	StorageClass StorageClass
	Status       LockStatus
	Force        bool
}

// NewLockEntry creates a fresh PENDING record for a desired entry
// seen for the first time.
func NewLockEntry(e FreezerEntry) LockEntry {
	return LockEntry{
		TargetPath:   e.TargetPath,
		SourcePath:   e.SourcePath,
		StorageClass: e.StorageClass,
		Status:       StatusPending,
		Force:        e.Force,
	}
}

// WithStatus returns a copy of the entry with the given status. Status
// transitions always go through value copies; the orchestrator replaces
// the ledger slot by index, so no entry is ever aliased while packaging
// or upload is still referencing it.
func (e LockEntry) WithStatus(s LockStatus) LockEntry {
	e.Status = s
	return e
}

// Deprecate returns a copy of the entry marked DEPRECATED.
func (e LockEntry) Deprecate() LockEntry {
	return e.WithStatus(StatusDeprecated)
}
