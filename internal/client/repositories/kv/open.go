package kv

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devprofiler/internal/client/config"
	"github.com/dmitrijs2005/devprofiler/internal/dbx"
	"github.com/dmitrijs2005/devprofiler/internal/logging"
)

// Open builds the Store selected by cfg.StorageDriver.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (Store, error) {
	log = log.With("component", "store", "driver", cfg.StorageDriver)

	switch cfg.StorageDriver {
	case config.DriverSQLite:
		db, err := dbx.OpenSQLite(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, err
		}
		if err := RunMigrations(ctx, db, log); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info(ctx, "store initialized", "path", cfg.DatabasePath)
		return NewSQLiteStore(db), nil

	case config.DriverFile:
		s, err := NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		log.Info(ctx, "store initialized", "dir", s.dir)
		return s, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
