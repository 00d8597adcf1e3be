package archive

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"

	"github.com/dmitrijs2005/freezeomatic/internal/logging"
)

// TarArchiver packages directories in-process with archive/tar,
// compressing through klauspost gzip when the target asks for .tar.gz.
type TarArchiver struct {
	stagingDir string
	log        logging.Logger
}

func NewTarArchiver(stagingDir string, log logging.Logger) *TarArchiver {
	return &TarArchiver{stagingDir: stagingDir, log: log}
}

func (a *TarArchiver) Package(ctx context.Context, sourceDir, targetPath string) (string, error) {
	format, err := FormatForTarget(targetPath)
	if err != nil {
		return "", err
	}

	artifact := ArtifactPath(a.stagingDir, sourceDir, format)
	if cachedArtifact(artifact) {
		a.log.Info(ctx, "reusing staged artifact", "artifact", artifact)
		return artifact, nil
	}

	// Build under a temp name and rename at the end, so a crash never
	// leaves a truncated artifact that a later run would reuse.
	tmpPath := artifact + "." + uuid.NewString() + ".tmp"
	if err := a.build(ctx, sourceDir, tmpPath, format); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("package %s: %w", sourceDir, err)
	}
	if err := os.Rename(tmpPath, artifact); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("package %s: %w", sourceDir, err)
	}

	a.log.Info(ctx, "packaged directory", "source", sourceDir, "artifact", artifact)
	return artifact, nil
}

func (a *TarArchiver) build(ctx context.Context, sourceDir, outPath string, format Format) error {
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	var w io.Writer = out
	var gz *gzip.Writer
	if format == FormatTarGz {
		gz = gzip.NewWriter(out)
		w = gz
	}
	tw := tar.NewWriter(w)

	// Entries are named relative to the source's parent, so unpacking
	// recreates the directory under its own base name.
	base := filepath.Base(filepath.Clean(sourceDir))
	err = filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.IsDir() && !info.Mode().IsRegular() {
			// Sockets, devices and symlink targets outside the tree
			// have no place in a cold archive.
			return nil
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(filepath.Join(base, rel))
		if info.IsDir() {
			hdr.Name += "/"
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		_, err = io.Copy(tw, f)
		_ = f.Close()
		return err
	})
	if err != nil {
		return err
	}

	if err := tw.Close(); err != nil {
		return err
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return err
		}
	}
	return out.Close()
}
