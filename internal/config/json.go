package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/freezeomatic/internal/flagx"
)

// JsonConfig is the DTO for the optional JSON configuration file.
// Only fields present in the file override the defaults.
type JsonConfig struct {
	Bucket            string `json:"bucket"`
	ManifestPath      string `json:"manifest_path"`
	StagingDir        string `json:"staging_dir"`
	ExternalTar       *bool  `json:"external_tar"`
	UploadConcurrency int    `json:"upload_concurrency"`
	S3Region          string `json:"s3_region"`
	S3BaseEndpoint    string `json:"s3_base_endpoint"`
	S3AccessKey       string `json:"s3_access_key"`
	S3SecretKey       string `json:"s3_secret_key"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flags into the provided Config. With neither flag set,
// nothing is loaded. An unreadable or invalid file panics: a config
// file that was explicitly requested must not be half-applied.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Bucket != "" {
		config.Bucket = c.Bucket
	}
	if c.ManifestPath != "" {
		config.ManifestPath = c.ManifestPath
	}
	if c.StagingDir != "" {
		config.StagingDir = c.StagingDir
	}
	if c.ExternalTar != nil {
		config.ExternalTar = *c.ExternalTar
	}
	if c.UploadConcurrency > 0 {
		config.UploadConcurrency = c.UploadConcurrency
	}
	if c.S3Region != "" {
		config.S3Region = c.S3Region
	}
	if c.S3BaseEndpoint != "" {
		config.S3BaseEndpoint = c.S3BaseEndpoint
	}
	if c.S3AccessKey != "" {
		config.S3AccessKey = c.S3AccessKey
	}
	if c.S3SecretKey != "" {
		config.S3SecretKey = c.S3SecretKey
	}
}
