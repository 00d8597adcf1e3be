package freezer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/freezeomatic/internal/logging"
)

// Archiver packages a directory source into a single staged artifact
// whose format is selected by the target path suffix. Implementations
// must reuse an existing staged artifact instead of repackaging.
type Archiver interface {
	Package(ctx context.Context, sourceDir, targetPath string) (string, error)
}

// Uploader transfers a local artifact to the object store under the
// given key and storage class.
type Uploader interface {
	Upload(ctx context.Context, localPath, key string, class StorageClass) error
}

// Freezer drives the end-to-end pipeline: reconcile the manifest
// against the ledger, then for each entry that still needs work
// persist FREEZING, package if the source is a directory, upload, and
// persist FROZEN. Entries are processed strictly sequentially so the
// ledger reads as a linear progress log.
type Freezer struct {
	manifestPath string
	ledger       *LedgerStore
	archiver     Archiver
	uploader     Uploader
	log          logging.Logger
}

func New(manifestPath string, ledger *LedgerStore, archiver Archiver, uploader Uploader, log logging.Logger) *Freezer {
	return &Freezer{
		manifestPath: manifestPath,
		ledger:       ledger,
		archiver:     archiver,
		uploader:     uploader,
		log:          log,
	}
}

// Run executes one reconciliation pass. Manifest or ledger parse
// failures and unsupported entry shapes are fatal and abort the run;
// packaging and upload failures are logged, leave the entry in
// FREEZING for the next run, and do not stop the remaining entries.
func (f *Freezer) Run(ctx context.Context) error {
	log := f.log.With("run", uuid.NewString()[:8])

	desired, err := ReadManifest(f.manifestPath)
	if err != nil {
		return err
	}
	current, err := f.ledger.Load()
	if err != nil {
		return err
	}

	entries := Reconcile(desired, current)

	// Persist before any work starts so newly PENDING and newly
	// DEPRECATED entries are on disk even if the first upload dies.
	if err := f.ledger.Save(entries); err != nil {
		return err
	}
	log.Info(ctx, "ledger reconciled",
		"desired", len(desired), "entries", len(entries), "ledger", f.ledger.Path())

	for i := range entries {
		e := entries[i]
		// Deprecation is terminal: only the reconciler can touch a
		// DEPRECATED entry, and a stale force flag on one must not
		// resurrect it.
		if e.Status == StatusDeprecated || (e.Status.Uploaded() && !e.Force) {
			continue
		}

		entries[i] = e.WithStatus(StatusFreezing)
		if err := f.ledger.Save(entries); err != nil {
			return err
		}

		artifact, err := f.resolveArtifact(ctx, entries[i])
		if err != nil {
			if errors.Is(err, ErrUnsupportedEntry) {
				return err
			}
			log.Error(ctx, "packaging failed, entry left retryable",
				"target", e.TargetPath, "error", err)
			// Re-persist the unchanged FREEZING state so the attempt
			// is visible in the ledger's audit trail.
			if err := f.ledger.Save(entries); err != nil {
				return err
			}
			continue
		}

		log.Info(ctx, "uploading",
			"target", e.TargetPath, "artifact", artifact, "storage_class", e.StorageClass)
		if err := f.uploader.Upload(ctx, artifact, e.TargetPath, e.StorageClass); err != nil {
			log.Error(ctx, "upload failed, entry left retryable",
				"target", e.TargetPath, "error", err)
			if err := f.ledger.Save(entries); err != nil {
				return err
			}
			continue
		}

		entries[i] = entries[i].WithStatus(StatusFrozen)
		if err := f.ledger.Save(entries); err != nil {
			return err
		}
		log.Info(ctx, "frozen", "target", e.TargetPath)
	}

	return nil
}

// resolveArtifact maps an entry's source onto the local file to
// upload: a regular file is uploaded as-is, a directory goes through
// the archiver. Anything else is an unsupported entry.
func (f *Freezer) resolveArtifact(ctx context.Context, e LockEntry) (string, error) {
	info, err := os.Stat(e.SourcePath)
	if err != nil {
		return "", fmt.Errorf("%w: stat %s: %v", ErrUnsupportedEntry, e.SourcePath, err)
	}
	if info.IsDir() {
		return f.archiver.Package(ctx, e.SourcePath, e.TargetPath)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is neither a regular file nor a directory", ErrUnsupportedEntry, e.SourcePath)
	}
	return e.SourcePath, nil
}
