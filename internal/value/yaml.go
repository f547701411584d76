package value

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	yamlNullTag  = "!!null"
	yamlBoolTag  = "!!bool"
	yamlIntTag   = "!!int"
	yamlFloatTag = "!!float"
	yamlMergeTag = "!!merge"
	yamlTimeTag  = "!!timestamp"
)

// maxYAMLValues caps how many values one document may expand to once aliases
// are resolved.
const maxYAMLValues = 100_000

// isoTimestamp is the layout of Date.prototype.toISOString.
const isoTimestamp = "2006-01-02T15:04:05.000Z"

// ParseYAML parses a single YAML document. An empty document yields null.
func ParseYAML(data []byte) (Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return Value{}, err
	}
	return FromYAML(&node)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := FromYAML(node)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// FromYAML converts a decoded YAML node tree into a Value.
//
// Aliases are resolved, "<<" merge keys are applied with explicit keys taking
// precedence, and a key repeated within one mapping is rejected. Timestamps
// become UTC ISO-8601 strings with millisecond precision; other string-like
// scalars keep their source text. A document expanding to more than
// 100 000 values fails with [ErrUnsupportedValue].
func FromYAML(node *yaml.Node) (Value, error) {
	c := &yamlConverter{budget: maxYAMLValues}
	return c.convert(node)
}

type yamlConverter struct {
	budget int
}

func (c *yamlConverter) convert(node *yaml.Node) (Value, error) {
	// yaml.Unmarshal leaves the node zeroed for an empty document
	if node == nil || node.Kind == 0 {
		return Null(), nil
	}

	c.budget--
	if c.budget < 0 {
		return Value{}, fmt.Errorf("%w: document expands to more than %d values", ErrUnsupportedValue, maxYAMLValues)
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return c.convert(node.Content[0])
	case yaml.AliasNode:
		return c.convert(node.Alias)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := c.convert(child)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Value{kind: KindArray, arr: items}, nil
	case yaml.MappingNode:
		obj := NewObject()
		if err := c.readMapping(obj, node); err != nil {
			return Value{}, err
		}
		return Value{kind: KindObject, obj: obj}, nil
	case yaml.ScalarNode:
		return readYAMLScalar(node)
	}

	return Value{}, fmt.Errorf("%w: yaml node kind %d at line %d", ErrUnsupportedValue, node.Kind, node.Line)
}

func (c *yamlConverter) readMapping(obj *Object, node *yaml.Node) error {
	explicit := make(map[string]bool, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == yamlMergeTag {
			if err := c.mergeSources(obj, explicit, valueNode); err != nil {
				return err
			}
			continue
		}

		if keyNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w: non-scalar mapping key at line %d", ErrUnsupportedValue, keyNode.Line)
		}

		if explicit[keyNode.Value] {
			return fmt.Errorf("%w: duplicate key %q at line %d", ErrUnsupportedValue, keyNode.Value, keyNode.Line)
		}

		item, err := c.convert(valueNode)
		if err != nil {
			return err
		}
		obj.Set(keyNode.Value, item)
		explicit[keyNode.Value] = true
	}

	return nil
}

// mergeSources copies keys from a "<<" source (a mapping, an alias to one,
// or a sequence of those) without overriding keys set explicitly or by an
// earlier source.
func (c *yamlConverter) mergeSources(obj *Object, explicit map[string]bool, source *yaml.Node) error {
	if source.Kind == yaml.AliasNode {
		source = source.Alias
	}

	switch source.Kind {
	case yaml.SequenceNode:
		for _, child := range source.Content {
			if err := c.mergeSources(obj, explicit, child); err != nil {
				return err
			}
		}
		return nil
	case yaml.MappingNode:
		merged, err := c.convert(source)
		if err != nil {
			return err
		}
		merged.obj.Range(func(key string, item Value) bool {
			if !explicit[key] && !obj.Has(key) {
				obj.Set(key, item)
			}
			return true
		})
		return nil
	}

	return fmt.Errorf("%w: merge key must reference a mapping (line %d)", ErrUnsupportedValue, source.Line)
}

func readYAMLScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case yamlNullTag:
		return Null(), nil
	case yamlBoolTag:
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case yamlIntTag:
		var i int64
		if err := node.Decode(&i); err == nil {
			return Int(i), nil
		}
		var u uint64
		if err := node.Decode(&u); err != nil {
			return Value{}, fmt.Errorf("%w: integer %q out of range at line %d", ErrUnsupportedValue, node.Value, node.Line)
		}
		return Value{kind: KindNumber, s: strconv.FormatUint(u, 10)}, nil
	case yamlFloatTag:
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, fmt.Errorf("%w: %q at line %d", ErrUnsupportedValue, node.Value, node.Line)
		}
		return Float(f), nil
	case yamlTimeTag:
		var ts time.Time
		if err := node.Decode(&ts); err != nil {
			// not a timestamp yaml.v3 can read, keep the text
			return String(node.Value), nil
		}
		return String(ts.UTC().Format(isoTimestamp)), nil
	default:
		return String(node.Value), nil
	}
}
