package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/config-seeder/models"
)

var (
	ErrLoadingDefaults = errors.New("error loading default configs")
	ErrLoadingOverride = errors.New("error loading settings override")
	ErrPreparingSink   = errors.New("error preparing configs storage")
)

// RecordInsertionError is the per-record failure reported by a seeding run.
// It never aborts the run.
type RecordInsertionError struct {
	Record models.ConfigRecord
	Err    error
}

func (e *RecordInsertionError) Error() string {
	return fmt.Sprintf("error inserting config %s.%s: %v", e.Record.Category, e.Record.Key, e.Err)
}

func (e *RecordInsertionError) Unwrap() error {
	return e.Err
}
