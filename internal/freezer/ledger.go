package freezer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrLedgerFormat marks a malformed ledger file. Like manifest errors
// it is fatal: a ledger that cannot be parsed must never be blindly
// overwritten.
var ErrLedgerFormat = errors.New("invalid ledger format")

// LockSuffix is appended to the manifest path to derive the ledger path.
const LockSuffix = ".lock"

const ledgerFields = 5

// LockPath derives the ledger path for a manifest path.
func LockPath(manifestPath string) string {
	return manifestPath + LockSuffix
}

// LedgerStore reads and writes the persisted lock ledger: comma-separated
// rows `target,source,storage_class,status,force_marker`. Every Save
// rewrites the whole file, so from the reconciler's point of view each
// write is atomic and the file always reflects exactly the last
// completed transition.
type LedgerStore struct {
	path string
}

func NewLedgerStore(path string) *LedgerStore {
	return &LedgerStore{path: path}
}

// Path returns the ledger file location.
func (s *LedgerStore) Path() string {
	return s.path
}

// Load reads the current ledger. A missing file is a first run and
// yields an empty slice.
func (s *LedgerStore) Load() ([]LockEntry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = ledgerFields

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLedgerFormat, err)
	}

	entries := make([]LockEntry, 0, len(rows))
	for n, row := range rows {
		class, err := ParseStorageClass(row[2])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrLedgerFormat, n+1, err)
		}
		status, err := ParseLockStatus(row[3])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrLedgerFormat, n+1, err)
		}
		force, err := parseForceMarker(row[4])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrLedgerFormat, n+1, err)
		}
		entries = append(entries, LockEntry{
			TargetPath:   row[0],
			SourcePath:   row[1],
			StorageClass: class,
			Status:       status,
			Force:        force,
		})
	}
	return entries, nil
}

// Save serializes the full entry slice, replacing the file contents.
// The write goes to a temp file in the same directory followed by a
// rename, so a crash mid-write leaves the previous ledger intact.
func (s *LedgerStore) Save(entries []LockEntry) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".freezeomatic-lock-*")
	if err != nil {
		return fmt.Errorf("create ledger temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	w := csv.NewWriter(tmp)
	for _, e := range entries {
		row := []string{
			e.TargetPath,
			e.SourcePath,
			string(e.StorageClass),
			string(e.Status),
			formatForceMarker(e.Force),
		}
		if err := w.Write(row); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("write ledger row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("flush ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close ledger temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace ledger: %w", err)
	}
	return nil
}
