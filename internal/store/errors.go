package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrConfigAlreadyExists is returned when an INSERT into the configs
	// table violates the (category, key) primary key.
	ErrConfigAlreadyExists = errors.New("config already exists")

	// ErrConfigNotSaved is returned when an INSERT completes without error
	// but reports zero affected rows.
	ErrConfigNotSaved = errors.New("config was not saved")

	// ErrUnsupportedDriver is returned by [NewStorages] when the configured
	// driver is neither PostgreSQL nor SQLite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement fails
	// for a reason other than a duplicate record.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
