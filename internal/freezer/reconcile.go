package freezer

// Reconcile merges the desired entries with the current ledger and
// returns the next complete ledger state:
//
//  1. Desired entries come first, in manifest order. A matching ledger
//     entry is carried forward with its status preserved, refreshing
//     source path, storage class and force from the manifest. A target
//     with no match, or whose only match is DEPRECATED, gets a fresh
//     PENDING record (a re-added target must not inherit the
//     deprecated record's status).
//  2. Ledger entries whose target is no longer desired follow, in
//     prior ledger order, with status forced to DEPRECATED.
//
// Entries matched in step 1 never reappear in step 2, so the output
// holds exactly one record per target path.
func Reconcile(desired []FreezerEntry, current []LockEntry) []LockEntry {
	next := make([]LockEntry, 0, len(desired)+len(current))
	matched := make(map[string]struct{}, len(desired))

	for _, d := range desired {
		matched[d.TargetPath] = struct{}{}

		prev, ok := findByTarget(current, d.TargetPath)
		if !ok || prev.Status == StatusDeprecated {
			next = append(next, NewLockEntry(d))
			continue
		}
		prev.SourcePath = d.SourcePath
		prev.StorageClass = d.StorageClass
		prev.Force = d.Force
		next = append(next, prev)
	}

	for _, prev := range current {
		if _, ok := matched[prev.TargetPath]; ok {
			continue
		}
		next = append(next, prev.Deprecate())
	}

	return next
}

func findByTarget(entries []LockEntry, target string) (LockEntry, bool) {
	for _, e := range entries {
		if e.TargetPath == target {
			return e, true
		}
	}
	return LockEntry{}, false
}
