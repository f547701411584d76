package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSeedConfigs indicates invalid seeding settings
	// (for example, an unknown merge policy).
	ErrInvalidSeedConfigs = errors.New("invalid seed configuration")
)
