// Package app wires the configured components into a runnable freeze
// pipeline.
package app

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/freezeomatic/internal/archive"
	"github.com/dmitrijs2005/freezeomatic/internal/config"
	"github.com/dmitrijs2005/freezeomatic/internal/filex"
	"github.com/dmitrijs2005/freezeomatic/internal/freezer"
	"github.com/dmitrijs2005/freezeomatic/internal/logging"
	"github.com/dmitrijs2005/freezeomatic/internal/s3x"
)

type App struct {
	freezer *freezer.Freezer
	log     logging.Logger
}

// New validates the configuration and builds the logger, uploader,
// archiver and orchestrator.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("bucket is required (-b)")
	}
	if cfg.ManifestPath == "" {
		return nil, errors.New("manifest path is required (-f)")
	}

	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	log := logging.NewSlogLogger(slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	uploader, err := s3x.NewClient(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	staging, err := filex.EnsureDir(cfg.StagingDir)
	if err != nil {
		return nil, err
	}

	var archiver freezer.Archiver
	if cfg.ExternalTar {
		archiver = archive.NewExecArchiver(staging, log)
	} else {
		archiver = archive.NewTarArchiver(staging, log)
	}

	ledger := freezer.NewLedgerStore(freezer.LockPath(cfg.ManifestPath))
	frz := freezer.New(cfg.ManifestPath, ledger, archiver, uploader,
		log.With("bucket", cfg.Bucket))

	return &App{freezer: frz, log: log}, nil
}

// Run executes one freeze pass. A nil return means the run completed;
// individual upload failures are recorded in the ledger, not here.
func (a *App) Run(ctx context.Context) error {
	return a.freezer.Run(ctx)
}
