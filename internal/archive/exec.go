package archive

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/freezeomatic/internal/logging"
)

// ExecArchiver packages directories by shelling out to the system tar
// tool. Useful when the host tar is preferred over in-process
// packaging, e.g. for its sparse-file or extended-attribute handling.
type ExecArchiver struct {
	stagingDir string
	log        logging.Logger
}

func NewExecArchiver(stagingDir string, log logging.Logger) *ExecArchiver {
	return &ExecArchiver{stagingDir: stagingDir, log: log}
}

func (a *ExecArchiver) Package(ctx context.Context, sourceDir, targetPath string) (string, error) {
	format, err := FormatForTarget(targetPath)
	if err != nil {
		return "", err
	}

	artifact := ArtifactPath(a.stagingDir, sourceDir, format)
	if cachedArtifact(artifact) {
		a.log.Info(ctx, "reusing staged artifact", "artifact", artifact)
		return artifact, nil
	}

	tmpPath := artifact + "." + uuid.NewString() + ".tmp"

	source := filepath.Clean(sourceDir)
	args := []string{"-C", filepath.Dir(source)}
	switch format {
	case FormatTarGz:
		args = append(args, "-czf")
	case FormatTar:
		args = append(args, "-cf")
	}
	args = append(args, tmpPath, filepath.Base(source))

	cmd := exec.CommandContext(ctx, "tar", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("tar %s: %w: %s", source, err, stderr.String())
	}
	if err := os.Rename(tmpPath, artifact); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("package %s: %w", source, err)
	}

	a.log.Info(ctx, "packaged directory with external tar", "source", source, "artifact", artifact)
	return artifact, nil
}
