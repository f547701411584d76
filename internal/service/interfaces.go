package service

import (
	"context"

	"github.com/MKhiriev/config-seeder/internal/value"
	"github.com/MKhiriev/config-seeder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TreeLoader produces a configuration tree. A nil tree with a nil error
// means the source has nothing to contribute.
type TreeLoader interface {
	Load(ctx context.Context) (*value.Object, error)
}

// SchemaMigrator prepares the sink schema. A seeding pass calls it once,
// after both trees are loaded and before the first insert.
type SchemaMigrator interface {
	Migrate(ctx context.Context) error
}

// SeedService runs one seeding pass: load, merge, flatten, insert.
type SeedService interface {
	Run(ctx context.Context) (models.SeedReport, error)
}
