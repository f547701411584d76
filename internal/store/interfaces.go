package store

import (
	"context"

	"github.com/MKhiriev/config-seeder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConfigRepository is the persistence sink of a seeding run.
//
// InsertConfig stores a single record. It returns [ErrConfigAlreadyExists]
// when a record with the same category and key is already stored; the
// existing row is left untouched, which is what makes repeated runs
// idempotent.
type ConfigRepository interface {
	InsertConfig(ctx context.Context, record models.ConfigRecord) error
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
