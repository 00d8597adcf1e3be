package freezer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

// ErrManifestFormat marks a malformed manifest: wrong field count,
// unknown storage class, or an unrecognized force marker. Manifest
// errors are fatal and abort the run before any work starts.
var ErrManifestFormat = errors.New("invalid manifest format")

// ForceMarker is the only token accepted as "true" in the force
// column. Anything else non-empty is rejected rather than silently
// treated as false.
const ForceMarker = "force"

const manifestFields = 4

// ReadManifest parses the desired-state table: comma-separated rows
// `source,target,storage_class,force_marker`, no header, one entry per
// line, order preserved. An empty storage class selects
// DefaultStorageClass.
func ReadManifest(path string) ([]FreezerEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = manifestFields

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestFormat, err)
	}

	entries := make([]FreezerEntry, 0, len(rows))
	for n, row := range rows {
		class, err := ParseStorageClass(row[2])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrManifestFormat, n+1, err)
		}
		force, err := parseForceMarker(row[3])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrManifestFormat, n+1, err)
		}
		entries = append(entries, FreezerEntry{
			SourcePath:   row[0],
			TargetPath:   row[1],
			StorageClass: class,
			Force:        force,
		})
	}
	return entries, nil
}

func parseForceMarker(s string) (bool, error) {
	switch s {
	case "":
		return false, nil
	case ForceMarker:
		return true, nil
	default:
		return false, fmt.Errorf("unknown force marker %q", s)
	}
}

func formatForceMarker(force bool) string {
	if force {
		return ForceMarker
	}
	return ""
}
