package loader

import "errors"

// Fatal loading errors. Each of them aborts a seeding run before anything is
// written to the configs table. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrConfigurationAmbiguity is returned when the settings directory holds
	// more than one file whose name contains "settings". The operator has to
	// delete the extra files and restart.
	ErrConfigurationAmbiguity = errors.New("there is more than one settings file")

	// ErrMalformedDefaults is returned when the bundled defaults document is
	// missing or cannot be parsed. It indicates a packaging defect.
	ErrMalformedDefaults = errors.New("default configs are missing or malformed")

	// ErrUnparsableOverride is returned when the selected settings file
	// cannot be read or parsed in its detected format.
	ErrUnparsableOverride = errors.New("settings file cannot be parsed")

	// ErrInvalidTreeShape is wrapped by the errors above when a document is
	// valid JSON/YAML but not a category → key → value mapping.
	ErrInvalidTreeShape = errors.New("configuration must map categories to objects")
)
