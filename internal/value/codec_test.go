package value

import (
	"encoding/json"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func objectOf(pairs ...any) Value {
	obj := NewObject()
	for i := 0; i+1 < len(pairs); i += 2 {
		obj.Set(pairs[i].(string), pairs[i+1].(Value))
	}
	return FromObject(obj)
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{name: "null", in: Null(), want: `null`},
		{name: "true", in: Bool(true), want: `true`},
		{name: "false", in: Bool(false), want: `false`},
		{name: "integer", in: Int(42), want: `42`},
		{name: "negative integer", in: Int(-7), want: `-7`},
		{name: "float", in: Float(1.5), want: `1.5`},
		{name: "whole float", in: Float(100), want: `100`},
		{name: "huge float", in: Float(1e21), want: `1e+21`},
		{name: "tiny float", in: Float(1e-7), want: `1e-7`},
		{name: "negative zero", in: Float(math.Copysign(0, -1)), want: `0`},
		{name: "nan becomes null", in: Float(nan()), want: `null`},
		{name: "numeric string stays quoted", in: String("1"), want: `"1"`},
		{name: "html is not escaped", in: String("<a href='x'>&</a>"), want: `"<a href='x'>&</a>"`},
		{name: "escapes quotes", in: String(`say "hi"`), want: `"say \"hi\""`},
		{name: "empty array", in: Array(), want: `[]`},
		{name: "empty object", in: FromObject(nil), want: `{}`},
		{name: "mixed array", in: Array(Int(1), String("two"), Null()), want: `[1,"two",null]`},
		{
			name: "object keeps insertion order",
			in:   objectOf("z", Int(1), "a", Array(Bool(true)), "m", objectOf("k", String("v"))),
			want: `{"z":1,"a":[true],"m":{"k":"v"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.in))
		})
	}
}

func TestDecode_KeepsKeyOrder(t *testing.T) {
	v, err := Decode(`{"b": 1, "a": {"y": 2, "x": 3}}`)
	require.NoError(t, err)

	obj, ok := v.AsObject()
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, obj.Keys())

	inner, _ := obj.Get("a")
	innerObj, ok := inner.AsObject()
	require.True(t, ok)
	assert.Equal(t, []string{"y", "x"}, innerObj.Keys())
}

func TestDecode_DuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	v, err := Decode(`{"a": 1, "b": 2, "a": 3}`)
	require.NoError(t, err)

	assert.Equal(t, `{"a":3,"b":2}`, Encode(v))
}

func TestDecode_KeepsIntegerDigits(t *testing.T) {
	v, err := Decode(`12345678901234567890123`)
	require.NoError(t, err)

	n, ok := v.AsNumber()
	require.True(t, ok)
	assert.Equal(t, json.Number("12345678901234567890123"), n)
	assert.Equal(t, "12345678901234567890123", Encode(v))
}

func TestEncode_NumbersAreCanonicalAcrossFormats(t *testing.T) {
	tests := []struct {
		name string
		json string
		yaml string
		want string
	}{
		{name: "whole float", json: `1.0`, yaml: "1.0", want: `1`},
		{name: "exponent", json: `1e2`, yaml: "1e2", want: `100`},
		{name: "negative zero", json: `-0`, yaml: "-0", want: `0`},
		{name: "negative zero float", json: `-0.0`, yaml: "-0.0", want: `0`},
		{name: "trailing zeros", json: `1.50`, yaml: "1.50", want: `1.5`},
		{name: "small exponent", json: `1E-7`, yaml: "1e-7", want: `1e-7`},
		{name: "large exponent", json: `1e21`, yaml: "1e21", want: `1e+21`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fromJSON, err := Decode(tt.json)
			require.NoError(t, err)
			fromYAML, err := ParseYAML([]byte(tt.yaml))
			require.NoError(t, err)

			assert.Equal(t, tt.want, Encode(fromJSON))
			assert.Equal(t, tt.want, Encode(fromYAML))
			assert.True(t, fromJSON.Equal(fromYAML))
		})
	}
}

func TestDecode_NumberOutOfRange(t *testing.T) {
	_, err := Decode(`1e400`)
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{name: "empty", in: "", wantErr: ErrEmptyDocument},
		{name: "whitespace only", in: "  \n", wantErr: ErrEmptyDocument},
		{name: "trailing value", in: `1 2`, wantErr: ErrTrailingData},
		{name: "truncated array", in: `[1, 2`, wantErr: io.ErrUnexpectedEOF},
		{name: "truncated object", in: `{"a": 1`, wantErr: io.ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecode_SyntaxError(t *testing.T) {
	_, err := Decode(`{not json}`)
	assert.Error(t, err)
}

func TestValue_JSONInterfaces(t *testing.T) {
	var doc struct {
		Settings Value `json:"settings"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"settings": {"q": [1, "x"], "a": null}}`), &doc))
	assert.Equal(t, `{"q":[1,"x"],"a":null}`, Encode(doc.Settings))

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"settings": {"q": [1, "x"], "a": null}}`, string(out))
}

func genValue(depth int) *rapid.Generator[Value] {
	scalars := rapid.OneOf(
		rapid.Just(Null()),
		rapid.Map(rapid.Bool(), Bool),
		rapid.Map(rapid.Int64(), Int),
		rapid.Map(rapid.Float64(), Float),
		rapid.Map(rapid.String(), String),
	)
	if depth == 0 {
		return scalars
	}

	child := genValue(depth - 1)
	return rapid.OneOf(
		scalars,
		rapid.Map(rapid.SliceOfN(child, 0, 4), func(items []Value) Value {
			return Array(items...)
		}),
		rapid.Custom(func(t *rapid.T) Value {
			obj := NewObject()
			keys := rapid.SliceOfNDistinct(rapid.String(), 0, 4, rapid.ID[string]).Draw(t, "keys")
			for _, key := range keys {
				obj.Set(key, child.Draw(t, "child"))
			}
			return FromObject(obj)
		}),
	)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := genValue(3).Draw(t, "value")

		decoded, err := Decode(Encode(v))
		if err != nil {
			t.Fatalf("decode %q: %v", Encode(v), err)
		}
		if !decoded.Equal(v) {
			t.Fatalf("round trip mismatch: %s != %s", Encode(decoded), Encode(v))
		}
		if Encode(decoded) != Encode(v) {
			t.Fatalf("encoding is not canonical: %s != %s", Encode(decoded), Encode(v))
		}
	})
}

func TestEncode_StringNeverDecodesAsNumber(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`-?[0-9]{1,6}(\.[0-9]{1,3})?`).Draw(t, "numeric")

		decoded, err := Decode(Encode(String(s)))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got, ok := decoded.AsString(); !ok || got != s {
			t.Fatalf("expected string %q, got %s", s, decoded.Kind())
		}
	})
}
