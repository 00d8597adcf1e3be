package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "staging", c.StagingDir)
	assert.Equal(t, 15, c.UploadConcurrency)
	assert.Equal(t, "us-east-1", c.S3Region)
	assert.Empty(t, c.Bucket, "bucket has no default")
	assert.Empty(t, c.ManifestPath, "manifest path has no default")
	assert.False(t, c.ExternalTar)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	old := os.Args
	defer func() { os.Args = old }()
	os.Args = []string{"cmd"}

	c := LoadConfig()
	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, "staging", c.StagingDir)
	assert.Equal(t, 15, c.UploadConcurrency)
	assert.Equal(t, "us-east-1", c.S3Region)
}
