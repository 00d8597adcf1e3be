// Package config handles configuration for the freezeomatic binary:
// defaults, JSON overlay, and command-line flags, applied in that order.
package config

// Config holds runtime settings for a freeze run.
//
// Fields:
//   - Bucket: destination bucket (required).
//   - ManifestPath: path to the desired-state manifest (required); the
//     lock ledger lives next to it at ManifestPath + ".lock".
//   - StagingDir: directory for packaged directory artifacts.
//   - ExternalTar: package directories with the system tar tool
//     instead of in-process archiving.
//   - UploadConcurrency: simultaneous part-transfers per upload.
//   - S3Region / S3BaseEndpoint: object storage location; a non-empty
//     endpoint enables path-style addressing for S3-compatible backends.
//   - S3AccessKey / S3SecretKey: static credentials; leave empty to use
//     the SDK's default credential chain.
type Config struct {
	Bucket            string
	ManifestPath      string
	StagingDir        string
	ExternalTar       bool
	UploadConcurrency int
	S3Region          string
	S3BaseEndpoint    string
	S3AccessKey       string
	S3SecretKey       string
}

// LoadDefaults populates Config with development defaults. Bucket and
// ManifestPath stay empty on purpose; they must come from flags or the
// JSON file.
func (c *Config) LoadDefaults() {
	c.StagingDir = "staging"
	c.UploadConcurrency = 15
	c.S3Region = "us-east-1"
}

// LoadConfig builds a Config by applying defaults, then overlaying
// values from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
