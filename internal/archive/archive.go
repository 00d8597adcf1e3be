// Package archive packages a directory source into a single staged
// artifact ready for upload. The format is selected by the target path
// suffix, and a previously built artifact in the staging directory is
// reused so an interrupted run does not repackage finished work.
//
// Two implementations are provided: TarArchiver builds the archive
// in-process, ExecArchiver shells out to the system tar tool. Both
// satisfy freezer.Archiver and are chosen by configuration.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/freezeomatic/internal/freezer"
)

// Format is the packaging mode derived from the target path suffix.
type Format string

const (
	FormatTar   Format = ".tar"
	FormatTarGz Format = ".tar.gz"
)

// FormatForTarget maps a target path onto a packaging format. A
// directory target with any other suffix is an unsupported entry.
func FormatForTarget(targetPath string) (Format, error) {
	switch {
	case strings.HasSuffix(targetPath, string(FormatTarGz)):
		return FormatTarGz, nil
	case strings.HasSuffix(targetPath, string(FormatTar)):
		return FormatTar, nil
	default:
		return "", fmt.Errorf("%w: target %q has no recognized archive suffix", freezer.ErrUnsupportedEntry, targetPath)
	}
}

// ArtifactPath returns the staged artifact location for a directory
// source: the source's base name plus the format suffix, inside the
// staging directory.
func ArtifactPath(stagingDir, sourceDir string, f Format) string {
	return filepath.Join(stagingDir, filepath.Base(filepath.Clean(sourceDir))+string(f))
}

// cachedArtifact reports whether a staged artifact already exists and
// can be reused.
func cachedArtifact(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
