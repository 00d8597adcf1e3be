package archive

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/freezeomatic/internal/freezer"
)

func requireTar(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("tar"); err != nil {
		t.Skip("tar binary not available")
	}
}

func TestExecArchiver_PackagesCompressedArchive(t *testing.T) {
	requireTar(t)
	tmp := t.TempDir()
	src := writeTree(t, tmp)
	staging := filepath.Join(tmp, "staging")
	require.NoError(t, os.MkdirAll(staging, 0o770))

	a := NewExecArchiver(staging, testLogger())
	artifact, err := a.Package(context.Background(), src, "archive/logs.tar.gz")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(staging, "logs.tar.gz"), artifact)

	contents := readTarNames(t, artifact, true)
	require.Equal(t, "line one\n", contents["logs/app.log"])
}

func TestExecArchiver_ReusesExistingArtifact(t *testing.T) {
	requireTar(t)
	tmp := t.TempDir()
	src := writeTree(t, tmp)
	staging := filepath.Join(tmp, "staging")
	require.NoError(t, os.MkdirAll(staging, 0o770))

	marker := filepath.Join(staging, "logs.tar")
	require.NoError(t, os.WriteFile(marker, []byte("marker"), 0o660))

	a := NewExecArchiver(staging, testLogger())
	artifact, err := a.Package(context.Background(), src, "archive/logs.tar")
	require.NoError(t, err)

	raw, err := os.ReadFile(artifact)
	require.NoError(t, err)
	require.Equal(t, "marker", string(raw))
}

func TestExecArchiver_UnsupportedSuffix(t *testing.T) {
	tmp := t.TempDir()

	a := NewExecArchiver(tmp, testLogger())
	_, err := a.Package(context.Background(), filepath.Join(tmp, "logs"), "archive/logs.zip")
	require.ErrorIs(t, err, freezer.ErrUnsupportedEntry)
}
