// Package freezer implements the reconciliation and resumable-upload
// core: desired entries from a manifest are merged with a persisted
// lock ledger, and the resulting entries are driven through a
// PENDING -> FREEZING -> FROZEN state machine, with the full ledger
// rewritten after every single transition so an interrupted run can
// resume from the last completed step.
package freezer

import (
	"errors"
	"fmt"
)

// StorageClass selects the remote cost/latency tier for an entry.
// Tokens are exactly the S3 API values, so the uploader converts by
// plain string cast.
type StorageClass string

const (
	StorageClassStandard           StorageClass = "STANDARD"
	StorageClassReducedRedundancy  StorageClass = "REDUCED_REDUNDANCY"
	StorageClassStandardIA         StorageClass = "STANDARD_IA"
	StorageClassOnezoneIA          StorageClass = "ONEZONE_IA"
	StorageClassIntelligentTiering StorageClass = "INTELLIGENT_TIERING"
	StorageClassGlacier            StorageClass = "GLACIER"
	StorageClassDeepArchive        StorageClass = "DEEP_ARCHIVE"
	StorageClassOutposts           StorageClass = "OUTPOSTS"
)

// DefaultStorageClass is used when the manifest leaves the column empty.
// Cold archival is the point of the tool, so the default is the
// cheapest, slowest tier.
const DefaultStorageClass = StorageClassDeepArchive

var storageClasses = map[StorageClass]struct{}{
	StorageClassStandard:           {},
	StorageClassReducedRedundancy:  {},
	StorageClassStandardIA:         {},
	StorageClassOnezoneIA:          {},
	StorageClassIntelligentTiering: {},
	StorageClassGlacier:            {},
	StorageClassDeepArchive:        {},
	StorageClassOutposts:           {},
}

// ParseStorageClass validates a storage class token. The empty string
// maps to DefaultStorageClass.
func ParseStorageClass(s string) (StorageClass, error) {
	if s == "" {
		return DefaultStorageClass, nil
	}
	c := StorageClass(s)
	if _, ok := storageClasses[c]; !ok {
		return "", fmt.Errorf("unknown storage class %q", s)
	}
	return c, nil
}

// ErrUnsupportedEntry marks an entry shape the pipeline cannot handle:
// a source that is neither a regular file nor a directory, or a
// directory whose target does not end in a recognized archive suffix.
var ErrUnsupportedEntry = errors.New("unsupported entry")

// FreezerEntry is one desired archival unit as declared in the
// manifest. It is rebuilt from the manifest on every run and never
// persisted; TargetPath is the unique identifier.
type FreezerEntry struct {
	SourcePath   string
	TargetPath   string
	StorageClass StorageClass
	Force        bool
}
