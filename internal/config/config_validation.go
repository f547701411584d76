// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/config-seeder/internal/merge"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if _, err := merge.ParsePolicy(cfg.Seed.MergePolicy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSeedConfigs, err)
	}

	if cfg.Seed.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %s", ErrInvalidSeedConfigs, cfg.Seed.Timeout)
	}

	return nil
}
