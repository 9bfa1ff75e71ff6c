package config

import (
	"fmt"
	"os"

	"clock-watch/internal/archive"
)

// CreateArchive creates the SQLite ledger described by the configuration,
// creating its directory when needed. Returns nil when archiving is
// disabled.
func CreateArchive(cfg *Config) (archive.Repository, error) {
	if !cfg.Archive.Enabled {
		return nil, nil
	}

	if err := os.MkdirAll(cfg.Archive.Dir, os.FileMode(cfg.Archive.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}

	repo, err := archive.New(cfg.GetArchivePath(), archive.Options{
		QueryTimeout: cfg.Archive.QueryTimeout,
		WriteTimeout: cfg.Archive.WriteTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize archive: %w", err)
	}

	return repo, nil
}

// CreateTestArchive creates an in-memory ledger for testing
func CreateTestArchive() (archive.Repository, error) {
	repo, err := archive.New(":memory:", archive.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test archive: %w", err)
	}

	return repo, nil
}
