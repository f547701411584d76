// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Encode returns the canonical storage form of v: compact JSON with object
// keys in insertion order and without HTML escaping.
//
// Every kind goes through the same JSON rendering, so the string "1" is
// stored as `"1"` and never collides with the number 1.
func Encode(v Value) string {
	var buf bytes.Buffer
	writeValue(&buf, v)
	return buf.String()
}

// Decode parses a string produced by [Encode] (or any single JSON document)
// back into a Value.
func Decode(s string) (Value, error) {
	return decodeJSON(strings.NewReader(s))
}

// ParseJSON parses a single JSON document, keeping object key order.
func ParseJSON(data []byte) (Value, error) {
	return decodeJSON(bytes.NewReader(data))
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(Encode(v)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o *Object) MarshalJSON() ([]byte, error) {
	return []byte(Encode(FromObject(o))), nil
}

func writeValue(buf *bytes.Buffer, v Value) {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		buf.WriteString(v.s)
	case KindString:
		writeString(buf, v.s)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeValue(buf, item)
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		first := true
		v.obj.Range(func(key string, item Value) bool {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			writeString(buf, key)
			buf.WriteByte(':')
			writeValue(buf, item)
			return true
		})
		buf.WriteByte('}')
	}
}

func writeString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// encoding a string cannot fail
	_ = enc.Encode(s)
	// drop the newline written by Encode
	buf.Truncate(buf.Len() - 1)
}

func decodeJSON(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := readValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, ErrEmptyDocument
		}
		return Value{}, err
	}

	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, ErrTrailingData
	}

	return v, nil
}

func readValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t.String())
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			return readArray(dec)
		case '{':
			return readObject(dec)
		}
	}

	return Value{}, fmt.Errorf("unexpected json token %v", tok)
}

func readArray(dec *json.Decoder) (Value, error) {
	items := make([]Value, 0)
	for dec.More() {
		item, err := readValue(dec)
		if err != nil {
			return Value{}, unexpectedEOF(err)
		}
		items = append(items, item)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return Value{}, unexpectedEOF(err)
	}

	return Value{kind: KindArray, arr: items}, nil
}

func readObject(dec *json.Decoder) (Value, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, unexpectedEOF(err)
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("unexpected object key %v", tok)
		}

		item, err := readValue(dec)
		if err != nil {
			return Value{}, unexpectedEOF(err)
		}
		obj.Set(key, item)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return Value{}, unexpectedEOF(err)
	}

	return Value{kind: KindObject, obj: obj}, nil
}

// unexpectedEOF keeps a truncated document from being reported as empty.
func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
