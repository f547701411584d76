package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/config-seeder/internal/logger"
	"github.com/MKhiriev/config-seeder/internal/value"
	"github.com/MKhiriev/config-seeder/seeds"
)

// DefaultsLoader loads the defaults bundle: the document embedded in package
// seeds, or a JSON file at an explicit path.
type DefaultsLoader struct {
	path string
}

// NewDefaultsLoader returns a loader for the file at path, or for the
// embedded bundle when path is empty.
func NewDefaultsLoader(path string) *DefaultsLoader {
	return &DefaultsLoader{path: path}
}

// Load parses the defaults bundle. Any failure is wrapped in
// [ErrMalformedDefaults].
func (l *DefaultsLoader) Load(ctx context.Context) (*value.Object, error) {
	log := logger.FromContext(ctx)

	source := "embedded"
	data := seeds.DefaultConfigs
	if l.path != "" {
		source = l.path

		var err error
		data, err = os.ReadFile(l.path)
		if err != nil {
			log.Err(err).Str("source", source).Msg("error reading default configs")
			return nil, fmt.Errorf("%w: %w", ErrMalformedDefaults, err)
		}
	}

	v, err := value.ParseJSON(data)
	if err != nil {
		log.Err(err).Str("source", source).Msg("error parsing default configs")
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedDefaults, source, err)
	}

	tree, err := asConfigTree(v)
	if err != nil {
		log.Err(err).Str("source", source).Msg("default configs have an invalid shape")
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedDefaults, source, err)
	}

	log.Debug().Str("source", source).Int("categories", tree.Len()).Msg("loaded default configs")
	return tree, nil
}
