// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/config-seeder/internal/flatten"
	"github.com/MKhiriev/config-seeder/internal/logger"
	"github.com/MKhiriev/config-seeder/internal/merge"
	"github.com/MKhiriev/config-seeder/internal/store"
	"github.com/MKhiriev/config-seeder/internal/utils"
	"github.com/MKhiriev/config-seeder/internal/value"
	"github.com/MKhiriev/config-seeder/models"
)

// InsertionResult is the outcome of offering one record to the sink.
// Err is nil on success and a *[RecordInsertionError] otherwise.
type InsertionResult struct {
	Record models.ConfigRecord
	Err    error
}

// Inserted reports whether the sink accepted the record.
func (r InsertionResult) Inserted() bool {
	return r.Err == nil
}

type idGenerator interface {
	Generate() string
}

type seedService struct {
	defaults  TreeLoader
	overrides TreeLoader
	migrator  SchemaMigrator
	repo      store.ConfigRepository
	policy    merge.Policy
	ids       idGenerator
	logger    *logger.Logger
}

// NewSeedService wires a [SeedService]. overrides may be nil, in which case
// only the defaults are seeded. migrator may be nil when the schema is managed
// elsewhere.
func NewSeedService(
	defaults, overrides TreeLoader,
	migrator SchemaMigrator,
	repo store.ConfigRepository,
	policy merge.Policy,
	logger *logger.Logger,
) SeedService {
	return &seedService{
		defaults:  defaults,
		overrides: overrides,
		migrator:  migrator,
		repo:      repo,
		policy:    policy,
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// Run executes one seeding pass.
//
// Both trees are loaded before the schema is migrated and before the first
// insert; a load failure aborts the run with nothing written. Each record is then inserted on its own and
// awaited before the next. Per-record failures are logged and reported in
// the returned [models.SeedReport], never retried, and never turned into a
// run error.
func (s *seedService) Run(ctx context.Context) (models.SeedReport, error) {
	runID := s.ids.Generate()
	log := s.logger.WithStr("run_id", runID)
	ctx = log.WithContext(utils.WithRunID(ctx, runID))

	log.Info().Str("func", "*seedService.Run").Stringer("policy", s.policy).Msg("seeding started")

	defaults, err := s.defaults.Load(ctx)
	if err != nil {
		log.Err(err).Str("func", "*seedService.Run").Msg("error loading default configs")
		return models.SeedReport{RunID: runID}, fmt.Errorf("%w: %w", ErrLoadingDefaults, err)
	}

	var overrides *value.Object
	if s.overrides != nil {
		overrides, err = s.overrides.Load(ctx)
		if err != nil {
			log.Err(err).Str("func", "*seedService.Run").Msg("error loading settings override")
			return models.SeedReport{RunID: runID}, fmt.Errorf("%w: %w", ErrLoadingOverride, err)
		}
	}
	if overrides == nil {
		log.Info().Str("func", "*seedService.Run").Msg("no settings override, seeding defaults only")
	}

	records := flatten.Flatten(merge.Merge(defaults, overrides, s.policy))

	if s.migrator != nil {
		if err = s.migrator.Migrate(ctx); err != nil {
			log.Err(err).Str("func", "*seedService.Run").Msg("error migrating configs storage")
			return models.SeedReport{RunID: runID}, fmt.Errorf("%w: %w", ErrPreparingSink, err)
		}
	}

	results := make([]InsertionResult, 0, len(records))
	for _, record := range records {
		results = append(results, s.insert(ctx, record))
	}

	report := summarize(runID, results)
	log.Info().
		Str("func", "*seedService.Run").
		Int("total", report.Total).
		Int("inserted", report.Inserted).
		Int("failed", report.Failed).
		Msg("seeding finished")

	return report, nil
}

func (s *seedService) insert(ctx context.Context, record models.ConfigRecord) InsertionResult {
	err := s.repo.InsertConfig(ctx, record)
	if err == nil {
		return InsertionResult{Record: record}
	}

	insertErr := &RecordInsertionError{Record: record, Err: err}
	logger.FromContext(ctx).Warn().Err(err).
		Str("func", "*seedService.insert").
		Str("category", record.Category).
		Str("key", record.Key).
		Str("classification", classifyFailure(err)).
		Msg("error inserting config")

	return InsertionResult{Record: record, Err: insertErr}
}

func classifyFailure(err error) string {
	switch {
	case errors.Is(err, store.ErrConfigAlreadyExists):
		return "duplicate"
	case errors.Is(err, store.ErrConfigNotSaved):
		return "not-saved"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error"
	}
}

func summarize(runID string, results []InsertionResult) models.SeedReport {
	report := models.SeedReport{RunID: runID, Total: len(results)}
	for _, r := range results {
		if r.Inserted() {
			report.Inserted++
			continue
		}
		report.Failed++
		report.Failures = append(report.Failures, models.FailedRecord{
			Record: r.Record,
			Reason: r.Err.Error(),
		})
	}
	return report
}
