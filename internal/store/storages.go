package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/config-seeder/internal/config"
	"github.com/MKhiriev/config-seeder/internal/logger"
)

// Storages groups the repositories a seeding run writes to together with the
// connection that backs them.
type Storages struct {
	ConfigRepository ConfigRepository

	db *DB
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Resolves the backend from cfg.DB.Driver, falling back to the DSN scheme.
//  2. Opens and pings the connection.
//  3. Wires a [ConfigRepository] on top of the connection.
//
// The schema is left untouched until [Storages.Migrate] is called.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	driver, err := ResolveDriver(cfg.DB)
	if err != nil {
		return nil, err
	}

	var db *DB
	switch driver {
	case DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	case DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", driver, err)
	}

	return &Storages{
		ConfigRepository: NewConfigRepository(db, logger),
		db:               db,
	}, nil
}

// Migrate applies pending schema migrations to the configs table.
func (s *Storages) Migrate(ctx context.Context) error {
	if err := s.db.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ResolveDriver returns the backend named by cfg.Driver. When no driver is
// configured, postgres:// and postgresql:// DSNs select PostgreSQL and
// everything else is treated as a SQLite path.
func ResolveDriver(cfg config.DB) (string, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case DriverPostgres, "postgresql", "pgx":
		return DriverPostgres, nil
	case DriverSQLite, "sqlite3":
		return DriverSQLite, nil
	case "":
		dsn := strings.ToLower(cfg.DSN)
		if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
			return DriverPostgres, nil
		}
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}
