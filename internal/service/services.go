package service

import (
	"fmt"

	"github.com/MKhiriev/config-seeder/internal/config"
	"github.com/MKhiriev/config-seeder/internal/loader"
	"github.com/MKhiriev/config-seeder/internal/logger"
	"github.com/MKhiriev/config-seeder/internal/merge"
	"github.com/MKhiriev/config-seeder/internal/store"
)

type Services struct {
	SeedService SeedService
}

// NewServices builds the services from the runtime configuration. It fails
// only on an unknown merge policy.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	policy, err := merge.ParsePolicy(cfg.Seed.MergePolicy)
	if err != nil {
		return nil, fmt.Errorf("error creating seed service: %w", err)
	}

	return &Services{
		SeedService: NewSeedService(
			loader.NewDefaultsLoader(cfg.Seed.DefaultsPath),
			loader.NewSettingsLoader(cfg.Seed.SettingsDir),
			storages,
			storages.ConfigRepository,
			policy,
			logger,
		),
	}, nil
}
