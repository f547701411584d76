// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/config-seeder/internal/logger"
	"github.com/MKhiriev/config-seeder/models"
)

// configRepository is the SQL-backed implementation of [ConfigRepository].
// It writes flattened configuration records into the "configs" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] so that
// log entries carry the fields of the current seeding run.
type configRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewConfigRepository constructs a [ConfigRepository] backed by the provided
// database connection and logger.
func NewConfigRepository(db *DB, logger *logger.Logger) ConfigRepository {
	logger.Debug().Msg("creating config repository")
	return &configRepository{
		db:     db,
		logger: logger,
	}
}

// InsertConfig stores one record.
//
// Error handling:
//   - duplicate (category, key) → [ErrConfigAlreadyExists].
//   - zero rows affected → [ErrConfigNotSaved].
//   - any other driver-level error → wrapped [ErrExecutingStatement]
//     annotated with its classification.
func (r *configRepository) InsertConfig(ctx context.Context, record models.ConfigRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertConfigQuery(record, r.db.placeholder)
	if err != nil {
		log.Err(err).Str("func", "*configRepository.InsertConfig").Msg("error building insert query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		classification := r.classify(err)
		log.Debug().Err(err).
			Str("func", "*configRepository.InsertConfig").
			Str("category", record.Category).
			Str("key", record.Key).
			Stringer("classification", classification).
			Msg("error inserting config")

		if classification == Duplicate {
			return fmt.Errorf("%w: %s.%s", ErrConfigAlreadyExists, record.Category, record.Key)
		}
		return fmt.Errorf("%w (%s): %w", ErrExecutingStatement, classification, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		// the statement itself succeeded; a driver without row counts is not a failure
		log.Debug().Err(err).
			Str("func", "*configRepository.InsertConfig").
			Str("category", record.Category).
			Str("key", record.Key).
			Msg("rows affected unavailable, treating insert as saved")
		return nil
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s.%s", ErrConfigNotSaved, record.Category, record.Key)
	}

	return nil
}

func (r *configRepository) classify(err error) ErrorClassification {
	if r.db.errorClassificator == nil {
		return NonRetryable
	}
	return r.db.errorClassificator.Classify(err)
}
