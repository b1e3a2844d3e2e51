package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lab-access/internal/config"
	"github.com/MKhiriev/go-lab-access/internal/logger"
)

// Storages groups the repositories of the development backend together with
// the connection they share.
type Storages struct {
	RequestRepository RequestRepository

	db *DB
}

// NewStorages opens the storage selected by cfg.Driver. SQL drivers are
// migrated before the repositories are returned.
func NewStorages(ctx context.Context, cfg config.BackendStorage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverMemory, "":
		log.Info().Msg("using in-memory request storage")
		return &Storages{RequestRepository: NewMemoryRequestRepository()}, nil
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		RequestRepository: NewRequestRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
