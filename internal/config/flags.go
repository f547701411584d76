package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-settings-dir directory holding the settings override file
//	-defaults path to a JSON defaults bundle
//	-merge-policy defaults-win or overrides-win
//	-timeout run timeout (e.g., "30s", "1m")
//	-d database DSN
//	-driver database driver (postgres or sqlite)
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var settingsDir string
	var defaultsPath string
	var mergePolicy string
	var timeout time.Duration
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string

	fs := flag.NewFlagSet("seeder", flag.ContinueOnError)
	fs.StringVar(&settingsDir, "settings-dir", "", "Directory holding the settings override file")
	fs.StringVar(&defaultsPath, "defaults", "", "JSON defaults bundle path")
	fs.StringVar(&mergePolicy, "merge-policy", "", "Merge policy: defaults-win or overrides-win")
	fs.DurationVar(&timeout, "timeout", 0, "Run timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver: postgres or sqlite")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Seed: Seed{
			SettingsDir:  settingsDir,
			DefaultsPath: defaultsPath,
			MergePolicy:  mergePolicy,
			Timeout:      timeout,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
