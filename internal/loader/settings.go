// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/config-seeder/internal/logger"
	"github.com/MKhiriev/config-seeder/internal/value"
)

// SettingsToken is the literal every settings file name must contain.
const SettingsToken = "settings"

// DefaultSettingsDir is used when no settings directory is configured. It is
// resolved against the working directory.
const DefaultSettingsDir = ".nostr"

// SettingsLoader loads the optional operator override file from a single
// directory.
type SettingsLoader struct {
	dir string
}

// NewSettingsLoader returns a loader reading from dir, or from
// [DefaultSettingsDir] when dir is empty.
func NewSettingsLoader(dir string) *SettingsLoader {
	if dir == "" {
		dir = DefaultSettingsDir
	}
	return &SettingsLoader{dir: dir}
}

// Dir returns the directory the loader reads from.
func (l *SettingsLoader) Dir() string {
	return l.dir
}

// Load returns the override tree, or nil when there is nothing to apply.
//
// Every directory entry counts as a candidate, subdirectories included.
// There is nothing to apply when the directory does not exist, holds no
// settings file, holds a single candidate whose name does not start with
// "settings" or that is a directory, or the file has an unrecognized
// extension. More than one candidate fails with [ErrConfigurationAmbiguity]. A file that cannot be
// read or parsed fails with [ErrUnparsableOverride].
func (l *SettingsLoader) Load(ctx context.Context) (*value.Object, error) {
	log := logger.FromContext(ctx)

	names, dirs, err := l.listEntries()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("dir", l.dir).Msg("settings directory does not exist, using default configs only")
			return nil, nil
		}
		log.Err(err).Str("dir", l.dir).Msg("error listing settings directory")
		return nil, fmt.Errorf("error listing settings directory %q: %w", l.dir, err)
	}

	name, err := SelectSettingsFile(names)
	if err != nil {
		log.Error().Err(err).Str("dir", l.dir).Msg("ambiguous settings files")
		return nil, fmt.Errorf("settings directory %q: %w", l.dir, err)
	}

	if name == "" {
		if candidates := SettingsCandidates(names); len(candidates) == 1 {
			log.Warn().Str("file", candidates[0]).
				Msgf("settings file name must start with %q, ignoring it", SettingsToken)
		} else {
			log.Info().Str("dir", l.dir).Msg("no settings file found, using default configs only")
		}
		return nil, nil
	}

	if dirs[name] {
		log.Warn().Str("dir", l.dir).Str("entry", name).Msg("settings candidate is a directory, ignoring it")
		return nil, nil
	}

	format, ok := DetectFormat(name)
	if !ok {
		log.Warn().Str("file", name).Msg("unrecognized settings file format, ignoring it")
		return nil, nil
	}

	path := filepath.Join(l.dir, name)
	tree, err := l.parseFile(path, format)
	if err != nil {
		log.Err(err).Str("file", path).Str("format", string(format)).Msg("error parsing settings file")
		return nil, err
	}

	if tree == nil {
		log.Info().Str("file", path).Msg("settings file is empty, using default configs only")
		return nil, nil
	}

	log.Info().Str("file", path).Str("format", string(format)).Int("categories", tree.Len()).Msg("loaded settings file")
	return tree, nil
}

// listEntries returns the names of every entry in the directory and the
// subset of them that are directories.
func (l *SettingsLoader) listEntries() ([]string, map[string]bool, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, nil, err
	}

	names := make([]string, 0, len(entries))
	dirs := make(map[string]bool)
	for _, entry := range entries {
		names = append(names, entry.Name())
		if entry.IsDir() {
			dirs[entry.Name()] = true
		}
	}

	return names, dirs, nil
}

func (l *SettingsLoader) parseFile(path string, format Format) (*value.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnparsableOverride, path, err)
	}

	v, err := Parse(format, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnparsableOverride, path, err)
	}

	// an empty YAML document carries no overrides
	if format == FormatYAML && v.IsNull() {
		return nil, nil
	}

	tree, err := asConfigTree(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnparsableOverride, path, err)
	}

	return tree, nil
}

// SettingsCandidates returns the names that contain [SettingsToken], in the
// given order.
func SettingsCandidates(names []string) []string {
	var candidates []string
	for _, name := range names {
		if strings.Contains(name, SettingsToken) {
			candidates = append(candidates, name)
		}
	}
	return candidates
}

// SelectSettingsFile applies the single-file policy to a directory listing.
//
// It fails with [ErrConfigurationAmbiguity] when more than one name contains
// "settings", and returns "" when there is no candidate or the only candidate
// does not start with "settings".
func SelectSettingsFile(names []string) (string, error) {
	candidates := SettingsCandidates(names)

	switch {
	case len(candidates) > 1:
		return "", fmt.Errorf("%w: found %s; please delete all files that contain the word %q in their name and restart",
			ErrConfigurationAmbiguity, strings.Join(candidates, ", "), SettingsToken)
	case len(candidates) == 0:
		return "", nil
	case !strings.HasPrefix(candidates[0], SettingsToken):
		return "", nil
	default:
		return candidates[0], nil
	}
}
