// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the seeder's environment: NOSTR_CONFIG_DIR and the
// SEED_* variables for the run, STORAGE_DB_* for the sink and CONFIG for the
// JSON file. Unset variables leave their fields zero so that lower layers
// keep their values after the merge.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading seeder environment (NOSTR_CONFIG_DIR, SEED_*, STORAGE_DB_*, CONFIG): %w", err)
	}

	return nil
}
