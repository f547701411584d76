package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "seed.db"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation because no DSN is set.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{Seed: Seed{SettingsDir: "/etc/nostr"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "seed.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/nostr", cfg.Seed.SettingsDir)
}

// TestBuild_LaterSourceWins verifies that a non-zero field of a later config
// overrides the same field of an earlier one, and zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "env.db"}}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "flag.db"}}, Seed: Seed{MergePolicy: "overrides-win"}},
		&StructuredConfig{Seed: Seed{Timeout: time.Minute}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "overrides-win", cfg.Seed.MergePolicy)
	assert.Equal(t, defaultSettingsDir, cfg.Seed.SettingsDir)
	assert.Equal(t, time.Minute, cfg.Seed.Timeout)
}

// TestBuild_ValidationErrors verifies the validation rules of the merged config.
func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "missing dsn",
			cfg:     &StructuredConfig{Seed: Seed{MergePolicy: "defaults-win"}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "unknown merge policy",
			cfg: &StructuredConfig{
				Seed:    Seed{MergePolicy: "last-wins"},
				Storage: Storage{DB: DB{DSN: "seed.db"}},
			},
			wantErr: ErrInvalidSeedConfigs,
		},
		{
			name: "negative timeout",
			cfg: &StructuredConfig{
				Seed:    Seed{Timeout: -time.Second},
				Storage: Storage{DB: DB{DSN: "seed.db"}},
			},
			wantErr: ErrInvalidSeedConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_SetsSeedDefaults verifies the built-in seed defaults.
func TestWithDefaults_SetsSeedDefaults(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withDefaults())

	require.Len(t, b.configs, 1)
	assert.Equal(t, ".nostr", b.configs[0].Seed.SettingsDir)
	assert.Equal(t, "defaults-win", b.configs[0].Seed.MergePolicy)
	assert.Empty(t, b.configs[0].Seed.DefaultsPath)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("NOSTR_CONFIG_DIR", "/srv/nostr")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/relay")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "/srv/nostr", b.configs[0].Seed.SettingsDir)
	assert.Equal(t, "postgres://localhost/relay", b.configs[0].Storage.DB.DSN)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Len(t, b.configs, 1)
}

// TestWithFlags_SetsError_OnUnknownFlag verifies that a bad flag is recorded
// and no config is appended.
func TestWithFlags_SetsError_OnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Seed.SettingsDir = "json-dir"
	payload.Storage.DB.DSN = "json.db"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-dir", b.configs[1].Seed.SettingsDir)
	assert.Equal(t, "json.db", b.configs[1].Storage.DB.DSN)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Seed.MergePolicy = "overrides-win"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "overrides-win", b.configs[2].Seed.MergePolicy)
}

// TestWithJSON_KeepsExistingError verifies that a pre-existing builder error
// survives withJSON.
func TestWithJSON_KeepsExistingError(t *testing.T) {
	path := writeTempJSONConfig(t, StructuredJSONConfig{})

	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	assert.ErrorIs(t, b.err, assert.AnError)
}

// ── full pipeline ─────────────────────────────────────────────────────────────

// TestBuilder_FullPipeline runs every source in production order.
func TestBuilder_FullPipeline(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")
	t.Setenv("SEED_MERGE_POLICY", "overrides-win")

	payload := StructuredJSONConfig{}
	payload.Seed.DefaultsPath = "/opt/seed/configs.json"
	path := writeTempJSONConfig(t, payload)

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-d", "flag.db", "-c", path}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, ".nostr", cfg.Seed.SettingsDir)
	assert.Equal(t, "overrides-win", cfg.Seed.MergePolicy)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/opt/seed/configs.json", cfg.Seed.DefaultsPath)
	assert.Equal(t, path, cfg.JSONFilePath)
}
