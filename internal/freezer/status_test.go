package freezer

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockStatus_TokensSortInLifecycleOrder(t *testing.T) {
	tokens := []string{
		string(StatusDeprecated),
		string(StatusFrozen),
		string(StatusPending),
		string(StatusFreezing),
	}
	sort.Strings(tokens)

	require.Equal(t, []string{
		string(StatusPending),
		string(StatusFreezing),
		string(StatusFrozen),
		string(StatusDeprecated),
	}, tokens, "lexical order of status tokens must match lifecycle order")
}

func TestLockStatus_Uploaded(t *testing.T) {
	assert.False(t, StatusPending.Uploaded())
	assert.False(t, StatusFreezing.Uploaded())
	assert.True(t, StatusFrozen.Uploaded())
	assert.True(t, StatusDeprecated.Uploaded())
}

func TestParseLockStatus(t *testing.T) {
	for _, s := range []LockStatus{StatusPending, StatusFreezing, StatusFrozen, StatusDeprecated} {
		got, err := ParseLockStatus(string(s))
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	_, err := ParseLockStatus("frozen")
	require.Error(t, err, "bare token without the numeric prefix is not valid")
}

func TestParseStorageClass(t *testing.T) {
	got, err := ParseStorageClass("")
	require.NoError(t, err)
	require.Equal(t, StorageClassDeepArchive, got, "empty selects the default tier")

	got, err = ParseStorageClass("STANDARD_IA")
	require.NoError(t, err)
	require.Equal(t, StorageClassStandardIA, got)

	_, err = ParseStorageClass("standard")
	require.Error(t, err)
}

func TestLockEntry_WithStatusReturnsCopy(t *testing.T) {
	e := LockEntry{TargetPath: "backup/a", Status: StatusPending}
	e2 := e.WithStatus(StatusFreezing)

	require.Equal(t, StatusPending, e.Status)
	require.Equal(t, StatusFreezing, e2.Status)
	require.Equal(t, e.TargetPath, e2.TargetPath)
}

func TestLockEntry_Deprecate(t *testing.T) {
	e := LockEntry{TargetPath: "backup/a", Status: StatusFrozen}
	require.Equal(t, StatusDeprecated, e.Deprecate().Status)
}
