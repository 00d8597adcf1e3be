package freezer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "freezer.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o660))
	return path
}

func TestReadManifest_ParsesRowsInOrder(t *testing.T) {
	path := writeManifest(t,
		"a.txt,backup/a.txt,,\n"+
			"logs,archive/logs.tar.gz,GLACIER,force\n")

	entries, err := ReadManifest(path)
	require.NoError(t, err)
	require.Equal(t, []FreezerEntry{
		{SourcePath: "a.txt", TargetPath: "backup/a.txt", StorageClass: StorageClassDeepArchive},
		{SourcePath: "logs", TargetPath: "archive/logs.tar.gz", StorageClass: StorageClassGlacier, Force: true},
	}, entries)
}

func TestReadManifest_EmptyClassDefaultsToDeepArchive(t *testing.T) {
	path := writeManifest(t, "a.txt,backup/a.txt,,\n")

	entries, err := ReadManifest(path)
	require.NoError(t, err)
	require.Equal(t, StorageClassDeepArchive, entries[0].StorageClass)
}

func TestReadManifest_RejectsUnknownStorageClass(t *testing.T) {
	path := writeManifest(t, "a.txt,backup/a.txt,FROSTY,\n")

	_, err := ReadManifest(path)
	require.ErrorIs(t, err, ErrManifestFormat)
}

func TestReadManifest_RejectsUnknownForceMarker(t *testing.T) {
	path := writeManifest(t, "a.txt,backup/a.txt,,yes\n")

	_, err := ReadManifest(path)
	require.ErrorIs(t, err, ErrManifestFormat)
}

func TestReadManifest_RejectsWrongFieldCount(t *testing.T) {
	path := writeManifest(t, "a.txt,backup/a.txt\n")

	_, err := ReadManifest(path)
	require.ErrorIs(t, err, ErrManifestFormat)
}

func TestReadManifest_MissingFileIsAnError(t *testing.T) {
	_, err := ReadManifest(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
