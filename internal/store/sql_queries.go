package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/config-seeder/models"
)

const (
	configsTable = "configs"

	columnKey      = "key"
	columnValue    = "value"
	columnCategory = "category"
)

// buildInsertConfigQuery builds the single-row INSERT used by
// [configRepository.InsertConfig] in the placeholder style of the backend.
func buildInsertConfigQuery(record models.ConfigRecord, placeholder sq.PlaceholderFormat) (string, []any, error) {
	if placeholder == nil {
		placeholder = sq.Question
	}

	query, args, err := sq.Insert(configsTable).
		Columns(columnKey, columnValue, columnCategory).
		Values(record.Key, record.Value, record.Category).
		PlaceholderFormat(placeholder).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
