package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/config-seeder/internal/config"
	"github.com/MKhiriev/config-seeder/internal/logger"
	"github.com/MKhiriev/config-seeder/internal/loader"
)

func TestSeed_SQLiteRerunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	settingsDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(settingsDir, "settings.yaml"),
		[]byte("custom:\n  motd: hello\n"),
		0o600,
	))

	cfg := &config.StructuredConfig{
		Seed:    config.Seed{SettingsDir: settingsDir},
		Storage: config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "seed.db")}},
	}

	first, err := seed(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	assert.Positive(t, first.Total)
	assert.Equal(t, first.Total, first.Inserted)
	assert.Zero(t, first.Failed)

	second, err := seed(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, first.Total, second.Total)
	assert.Zero(t, second.Inserted)
	assert.Equal(t, second.Total, second.Failed)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestSeed_AmbiguousSettings(t *testing.T) {
	settingsDir := t.TempDir()
	for _, name := range []string{"settings.yaml", "settings.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(settingsDir, name), []byte("{}"), 0o600))
	}

	cfg := &config.StructuredConfig{
		Seed:    config.Seed{SettingsDir: settingsDir},
		Storage: config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "seed.db")}},
	}

	report, err := seed(context.Background(), cfg, logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, loader.ErrConfigurationAmbiguity)
	assert.Zero(t, report.Inserted)

	db, err := sql.Open("sqlite3", cfg.Storage.DB.DSN)
	require.NoError(t, err)
	defer db.Close()

	var tables int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'configs'",
	).Scan(&tables))
	assert.Zero(t, tables, "schema must not change before the settings are checked")
}

func TestSeed_UnsupportedDriver(t *testing.T) {
	cfg := &config.StructuredConfig{
		Storage: config.Storage{DB: config.DB{DSN: "seed.db", Driver: "oracle"}},
	}

	_, err := seed(context.Background(), cfg, logger.Nop())
	assert.ErrorContains(t, err, "error creating storages")
}
