package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/freezeomatic/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   destination bucket
//	-f string   manifest ("freezer") file path
//	-s string   staging directory for packaged artifacts
//	-x          use the external tar tool for packaging
//	-n int      simultaneous part-transfers per upload
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g. "http://127.0.0.1:9000/")
//	-u string   S3 access key
//	-p string   S3 secret key
//
// The arguments are first filtered to only the flags handled here, so
// the JSON config flags (-c/-config) pass through untouched.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-f", "-s", "-x", "-n", "-g", "-e", "-u", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Bucket, "b", config.Bucket, "destination bucket")
	fs.StringVar(&config.ManifestPath, "f", config.ManifestPath, "manifest file path")
	fs.StringVar(&config.StagingDir, "s", config.StagingDir, "staging directory")
	fs.BoolVar(&config.ExternalTar, "x", config.ExternalTar, "package with the external tar tool")
	fs.IntVar(&config.UploadConcurrency, "n", config.UploadConcurrency, "simultaneous part-transfers per upload")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
