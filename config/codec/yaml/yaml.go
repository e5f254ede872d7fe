package yaml

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-yamlconf/config"
	"github.com/goccy/go-yaml"
)

// ErrNotMapping is returned when the document root is not a mapping.
var ErrNotMapping = errors.New("document root is not a mapping")

// Codec implements config.Codec for YAML using goccy/go-yaml.
// Mappings are decoded as yaml.MapSlice so key order survives a load and save.
type Codec struct {
	indent int
}

// NewCodec creates a new YAML codec with two-space indentation.
func NewCodec() *Codec {
	return &Codec{indent: 2}
}

// Decode parses YAML data into a standalone section. Empty documents decode to an empty section.
func (c *Codec) Decode(data []byte) (*config.Section, error) {
	var document any

	err := yaml.UnmarshalWithOptions(data, &document, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if document == nil {
		return config.NewSection(), nil
	}

	mapping, isMapping := document.(yaml.MapSlice)
	if !isMapping {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, document)
	}

	root, err := fromMapping(mapping)
	if err != nil {
		return nil, err
	}

	return root.Section(), nil
}

// Encode serializes the section tree as YAML in insertion order.
func (c *Codec) Encode(root *config.Section) ([]byte, error) {
	if root.Len() == 0 {
		return []byte{}, nil
	}

	data, err := yaml.MarshalWithOptions(toMapping(root), yaml.Indent(c.indent))
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

func fromMapping(mapping yaml.MapSlice) (config.Value, error) {
	entries := make([]config.Entry, 0, len(mapping))

	for _, item := range mapping {
		key := fmt.Sprint(item.Key)

		value, err := fromNode(item.Value)
		if err != nil {
			return config.Null(), fmt.Errorf("key %q: %w", key, err)
		}

		entries = append(entries, config.Entry{Key: key, Value: value})
	}

	return config.Map(entries...), nil
}

func fromNode(node any) (config.Value, error) {
	switch typed := node.(type) {
	case yaml.MapSlice:
		return fromMapping(typed)
	case []any:
		items := make([]config.Value, 0, len(typed))

		for i, item := range typed {
			value, err := fromNode(item)
			if err != nil {
				return config.Null(), fmt.Errorf("index %d: %w", i, err)
			}

			items = append(items, value)
		}

		return config.List(items...), nil
	default:
		return config.ValueOf(typed)
	}
}

func toMapping(section *config.Section) yaml.MapSlice {
	entries := section.Entries()
	mapping := make(yaml.MapSlice, 0, len(entries))

	for _, entry := range entries {
		mapping = append(mapping, yaml.MapItem{Key: entry.Key, Value: toNode(entry.Value)})
	}

	return mapping
}

func toNode(value config.Value) any {
	switch value.Kind() {
	case config.KindSection:
		return toMapping(value.Section())
	case config.KindList:
		items := value.List()
		nodes := make([]any, 0, len(items))

		for _, item := range items {
			nodes = append(nodes, toNode(item))
		}

		return nodes
	default:
		return scalar(value)
	}
}

func scalar(value config.Value) any {
	if number, ok := value.Integer(); ok {
		return number
	}

	if number, ok := value.Float(); ok {
		return number
	}

	if flag, ok := value.Boolean(); ok {
		return flag
	}

	if text, ok := value.Text(); ok {
		return text
	}

	return nil
}
