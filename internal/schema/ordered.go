package schema

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
	"strconv"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Pair is one entry of an OrderedMap.
type Pair[V any] struct {
	Key   string
	Value V
}

// OrderedMap is a string-keyed mapping that remembers insertion order. It
// encodes to and decodes from JSON and YAML objects with the order intact.
type OrderedMap[V any] []Pair[V]

// Get returns the value stored under key.
func (m OrderedMap[V]) Get(key string) (V, bool) {
	for _, p := range m {
		if p.Key == key {
			return p.Value, true
		}
	}

	var zero V

	return zero, false
}

// Has returns true if key is present.
func (m OrderedMap[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set replaces the value under key in place, or appends a new entry.
func (m *OrderedMap[V]) Set(key string, value V) {
	for i := range *m {
		if (*m)[i].Key == key {
			(*m)[i].Value = value
			return
		}
	}

	*m = append(*m, Pair[V]{Key: key, Value: value})
}

// Keys returns the keys in order.
func (m OrderedMap[V]) Keys() []string {
	keys := make([]string, len(m))
	for i, p := range m {
		keys[i] = p.Key
	}

	return keys
}

// All iterates the entries in order.
func (m OrderedMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, p := range m {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Union returns m followed by the entries of other whose keys m lacks.
// Values already in m win; m itself is not modified.
func (m OrderedMap[V]) Union(other OrderedMap[V]) OrderedMap[V] {
	out := make(OrderedMap[V], len(m), len(m)+len(other))
	copy(out, m)

	for _, p := range other {
		if !out.Has(p.Key) {
			out = append(out, p)
		}
	}

	return out
}

// Clone returns a shallow copy of the entries.
func (m OrderedMap[V]) Clone() OrderedMap[V] {
	if m == nil {
		return nil
	}

	out := make(OrderedMap[V], len(m))
	copy(out, m)

	return out
}

// MarshalJSON implements json.Marshaler. A nil map encodes as {}.
func (m OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, p := range m {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(p.Value)
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", p.Key, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. Numbers decoded into an any
// value keep their literal text as json.Number.
func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	keys, err := objectKeys(data)
	if err != nil {
		return err
	}

	if keys == nil {
		*m = nil
		return nil
	}

	values := map[string]V{}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&values); err != nil {
		return err
	}

	out := make(OrderedMap[V], 0, len(keys))
	for _, k := range keys {
		out.Set(k, values[k])
	}

	*m = out

	return nil
}

// objectKeys returns the top-level keys of a JSON object in document order.
// It returns nil keys for a JSON null.
func objectKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	if tok == nil {
		return nil, nil
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	keys := []string{}

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		if d, ok := tok.(json.Delim); ok && d == '}' {
			return keys, nil
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, got %v", tok)
		}

		keys = append(keys, key)

		if err := skipValue(dec); err != nil {
			return nil, fmt.Errorf("reading %q: %w", key, err)
		}
	}
}

// skipValue consumes one complete JSON value from the token stream.
func skipValue(dec *json.Decoder) error {
	depth := 0

	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}

		if depth == 0 {
			return nil
		}

		if depth < 0 {
			return errors.New("unbalanced JSON value")
		}
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for OrderedMap.
// Accepts a mapping node; keys keep their document order.
func (m *OrderedMap[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*m = nil
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping, got %v", node.Line, node.Kind)
	}

	out := make(OrderedMap[V], 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		var v V
		if err := valNode.Decode(&v); err != nil {
			return fmt.Errorf("line %d: decoding %q: %w", valNode.Line, keyNode.Value, err)
		}

		out.Set(keyNode.Value, v)
	}

	*m = out

	return nil
}

// MarshalYAML implements custom YAML marshaling for OrderedMap.
func (m OrderedMap[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, p := range m {
		val := &yaml.Node{}
		if err := val.Encode(p.Value); err != nil {
			return nil, fmt.Errorf("encoding %q: %w", p.Key, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key},
			val,
		)
	}

	return node, nil
}

// FormatLiteral renders a structure value the way it appears as element
// text in the wire-schema.
func FormatLiteral(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
