// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merge deep-merges a defaults configuration tree with an optional
// override tree under an explicit precedence [Policy].
package merge

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/config-seeder/internal/value"
)

// Policy decides which side wins when the same key holds values that cannot
// be merged structurally (at least one of them is not an object).
type Policy int

const (
	// DefaultsWin keeps the defaults value on a non-object conflict and
	// discards the override. Objects present on both sides are still merged
	// key by key. This is the seeder's default behavior.
	DefaultsWin Policy = iota

	// OverridesWin keeps the override value on a non-object conflict.
	OverridesWin
)

// ErrUnknownPolicy is returned by [ParsePolicy] for an unrecognized name.
var ErrUnknownPolicy = errors.New("unknown merge policy")

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case DefaultsWin:
		return "defaults-win"
	case OverridesWin:
		return "overrides-win"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy maps a configuration name to a Policy. The empty string is
// [DefaultsWin].
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", "defaults-win":
		return DefaultsWin, nil
	case "overrides-win":
		return OverridesWin, nil
	default:
		return DefaultsWin, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// Merge returns a new tree combining defaults and overrides.
//
//   - overrides == nil: the result is a copy of defaults.
//   - a key present on one side only keeps that value.
//   - a key holding objects on both sides is merged recursively.
//   - any other collision is resolved by policy.
//
// Keys of defaults come first in their order, followed by the keys found only
// in overrides. Neither input is modified and the result shares no storage
// with them.
func Merge(defaults, overrides *value.Object, policy Policy) *value.Object {
	if overrides == nil {
		return defaults.Clone()
	}

	merged := value.NewObject()

	defaults.Range(func(key string, left value.Value) bool {
		right, ok := overrides.Get(key)
		if !ok {
			merged.Set(key, left.Clone())
			return true
		}

		merged.Set(key, resolve(left, right, policy))
		return true
	})

	overrides.Range(func(key string, right value.Value) bool {
		if !defaults.Has(key) {
			merged.Set(key, right.Clone())
		}
		return true
	})

	return merged
}

func resolve(left, right value.Value, policy Policy) value.Value {
	leftObj, leftIsObj := left.AsObject()
	rightObj, rightIsObj := right.AsObject()
	if leftIsObj && rightIsObj {
		return value.FromObject(Merge(leftObj, rightObj, policy))
	}

	if policy == OverridesWin {
		return right.Clone()
	}
	return left.Clone()
}
