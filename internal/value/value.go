// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package value

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Kind identifies which variant a [Value] holds.
type Kind uint8

const (
	// KindNull is the JSON null. It is the zero Kind, so the zero Value is null.
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is an immutable JSON-compatible value.
//
// Numbers are kept as their JSON literal so that large integers and exact
// decimals survive a decode/encode cycle unchanged.
type Value struct {
	kind Kind
	b    bool
	// s holds the string contents for KindString and the literal for KindNumber.
	s   string
	arr []Value
	obj *Object
}

// Null returns the JSON null value.
func Null() Value {
	return Value{}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Int returns an integer number value.
func Int(i int64) Value {
	return Value{kind: KindNumber, s: strconv.FormatInt(i, 10)}
}

// Float returns a number value for f. NaN and infinities have no JSON form
// and become null, the same way JSON.stringify renders them.
func Float(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	return Value{kind: KindNumber, s: formatFloat(f)}
}

// Number returns a number value for a JSON number literal. The literal is
// stored in canonical form, so "1.0", "1e0" and "1" all encode as 1.
func Number(literal string) (Value, error) {
	if !isNumberLiteral(literal) {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidNumber, literal)
	}
	canonical, err := canonicalNumber(literal)
	if err != nil {
		return Value{}, err
	}
	return Value{kind: KindNumber, s: canonical}, nil
}

// Array returns an array holding copies of items. Array() is the empty array.
func Array(items ...Value) Value {
	arr := make([]Value, len(items))
	for i, item := range items {
		arr[i] = item.Clone()
	}
	return Value{kind: KindArray, arr: arr}
}

// FromObject wraps o as a value. A nil o yields the empty object.
func FromObject(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: KindObject, obj: o}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// IsObject reports whether v is an object.
func (v Value) IsObject() bool {
	return v.kind == KindObject
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsNumber returns the number literal held by v.
func (v Value) AsNumber() (json.Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return json.Number(v.s), true
}

// AsArray returns a copy of the elements held by v.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	items := make([]Value, len(v.arr))
	for i, item := range v.arr {
		items[i] = item.Clone()
	}
	return items, true
}

// AsObject returns the object held by v. The returned object is shared with
// v; callers that modify it must Clone first.
func (v Value) AsObject() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		arr := make([]Value, len(v.arr))
		for i, item := range v.arr {
			arr[i] = item.Clone()
		}
		return Value{kind: KindArray, arr: arr}
	case KindObject:
		return Value{kind: KindObject, obj: v.obj.Clone()}
	default:
		return v
	}
}

// Equal reports whether v and other are deeply equal as JSON values.
// Object key order is ignored and numbers are compared by numeric value,
// so 1, 1.0 and 1e0 are equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.s == other.s
	case KindNumber:
		return numbersEqual(v.s, other.s)
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.obj.Equal(other.obj)
	}

	return false
}

// String renders v in its canonical encoding. See [Encode].
func (v Value) String() string {
	return Encode(v)
}

func numbersEqual(a, b string) bool {
	if a == b {
		return true
	}

	x, _, errX := big.ParseFloat(a, 10, 256, big.ToNearestEven)
	y, _, errY := big.ParseFloat(b, 10, 256, big.ToNearestEven)
	if errX != nil || errY != nil {
		return false
	}

	return x.Cmp(y) == 0
}

// canonicalNumber renders a valid JSON number literal in the form JSON.stringify
// prints the number it denotes. Integer literals keep every digit.
func canonicalNumber(literal string) (string, error) {
	if !strings.ContainsAny(literal, ".eE") {
		i, ok := new(big.Int).SetString(literal, 10)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrInvalidNumber, literal)
		}
		return i.String(), nil
	}

	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, literal)
	}
	return formatFloat(f), nil
}

func formatFloat(f float64) string {
	// covers -0
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs < 1e-6 || abs >= 1e21 {
		// JSON.stringify writes 1e-7, strconv writes 1e-07
		s := strconv.FormatFloat(f, 'e', -1, 64)
		return strings.Replace(s, "e-0", "e-", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isNumberLiteral(s string) bool {
	if s == "" {
		return false
	}
	if c := s[0]; c != '-' && (c < '0' || c > '9') {
		return false
	}
	return json.Valid([]byte(s))
}
