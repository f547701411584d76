// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/config-seeder/internal/value"
)

// Format is a supported settings file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat maps a file name to its format by extension. Extensions are
// matched case-insensitively: .json is JSON, .yaml and .yml are YAML.
// Any other extension is not recognized.
func DetectFormat(name string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// Parse decodes data in the given format.
func Parse(format Format, data []byte) (value.Value, error) {
	switch format {
	case FormatJSON:
		return value.ParseJSON(data)
	case FormatYAML:
		return value.ParseYAML(data)
	default:
		return value.Value{}, fmt.Errorf("unsupported format %q", format)
	}
}

// asConfigTree checks that v is an object whose every value is an object.
func asConfigTree(v value.Value) (*value.Object, error) {
	tree, ok := v.AsObject()
	if !ok {
		return nil, fmt.Errorf("%w: document root is %s", ErrInvalidTreeShape, v.Kind())
	}

	var err error
	tree.Range(func(category string, entries value.Value) bool {
		if !entries.IsObject() {
			err = fmt.Errorf("%w: category %q is %s", ErrInvalidTreeShape, category, entries.Kind())
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	return tree, nil
}
