package yamlv3

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-yamlconf/config"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotMapping is returned when the document root is not a mapping.
	ErrNotMapping = errors.New("document root is not a mapping")

	// ErrInvalidMerge is returned when a merge key (<<) holds something other than a mapping,
	// an alias to one, or a sequence of them.
	ErrInvalidMerge = errors.New("merge value is not a mapping")
)

const (
	indent   = 2
	mergeTag = "!!merge"
)

// Codec implements config.Codec on the gopkg.in/yaml.v3 node API.
type Codec struct{}

// NewCodec creates a new yaml.v3 codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode parses YAML data into a standalone section.
func (c *Codec) Decode(data []byte) (*config.Section, error) {
	var document yaml.Node

	err := yaml.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if document.Kind == 0 || len(document.Content) == 0 {
		return config.NewSection(), nil
	}

	root := document.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d", ErrNotMapping, root.Line)
	}

	value, err := fromNode(root)
	if err != nil {
		return nil, err
	}

	return value.Section(), nil
}

// Encode serializes the section tree as a YAML document.
func (c *Codec) Encode(root *config.Section) ([]byte, error) {
	if root.Len() == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(indent)

	document := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{toNode(config.SectionValue(root))}}

	err := encoder.Encode(document)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return buf.Bytes(), nil
}

func fromNode(node *yaml.Node) (config.Value, error) {
	switch node.Kind {
	case yaml.MappingNode:
		return fromMapping(node)
	case yaml.SequenceNode:
		items := make([]config.Value, 0, len(node.Content))

		for _, child := range node.Content {
			value, err := fromNode(child)
			if err != nil {
				return config.Null(), err
			}

			items = append(items, value)
		}

		return config.List(items...), nil
	case yaml.AliasNode:
		return fromNode(node.Alias)
	case yaml.ScalarNode:
		return fromScalar(node)
	default:
		return config.Null(), fmt.Errorf("unexpected node kind %d at line %d", node.Kind, node.Line)
	}
}

// fromMapping decodes the pairs of a mapping node. Entries pulled in by merge keys come first, and
// explicit keys override them in place.
func fromMapping(node *yaml.Node) (config.Value, error) {
	var merged, explicit []config.Entry

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == mergeTag {
			entries, err := mergeEntries(valueNode)
			if err != nil {
				return config.Null(), err
			}

			merged = append(merged, entries...)

			continue
		}

		value, err := fromNode(valueNode)
		if err != nil {
			return config.Null(), fmt.Errorf("key %q: %w", keyNode.Value, err)
		}

		explicit = append(explicit, config.Entry{Key: keyNode.Value, Value: value})
	}

	return config.Map(append(merged, explicit...)...), nil
}

// mergeEntries returns the entries a merge key contributes. In a sequence of mappings the
// earlier mapping wins a shared key.
func mergeEntries(node *yaml.Node) ([]config.Entry, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return mergeEntries(node.Alias)
	case yaml.MappingNode:
		value, err := fromMapping(node)
		if err != nil {
			return nil, err
		}

		return value.Section().Entries(), nil
	case yaml.SequenceNode:
		var entries []config.Entry

		seen := make(map[string]bool)

		for _, child := range node.Content {
			childEntries, err := mergeEntries(child)
			if err != nil {
				return nil, err
			}

			for _, entry := range childEntries {
				if !seen[entry.Key] {
					seen[entry.Key] = true
					entries = append(entries, entry)
				}
			}
		}

		return entries, nil
	default:
		return nil, fmt.Errorf("%w: line %d", ErrInvalidMerge, node.Line)
	}
}

func fromScalar(node *yaml.Node) (config.Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return config.Null(), nil
	case "!!bool":
		var flag bool

		err := node.Decode(&flag)

		return config.Bool(flag), err
	case "!!int":
		var number int64
		if err := node.Decode(&number); err == nil {
			return config.Int64(number), nil
		}

		var unsigned uint64

		err := node.Decode(&unsigned)
		if err != nil {
			return config.Null(), fmt.Errorf("line %d: %w", node.Line, err)
		}

		return config.ValueOf(unsigned)
	case "!!float":
		var number float64

		err := node.Decode(&number)

		return config.Float64(number), err
	default:
		return config.String(node.Value), nil
	}
}

func toNode(value config.Value) *yaml.Node {
	switch value.Kind() {
	case config.KindSection:
		entries := value.Section().Entries()
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: make([]*yaml.Node, 0, 2*len(entries))}

		for _, entry := range entries {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Key}
			node.Content = append(node.Content, key, toNode(entry.Value))
		}

		return node
	case config.KindList:
		items := value.List()
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: make([]*yaml.Node, 0, len(items))}

		for _, item := range items {
			node.Content = append(node.Content, toNode(item))
		}

		return node
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: scalarTag(value.Kind()), Value: value.String()}
	}
}

func scalarTag(kind config.Kind) string {
	switch kind {
	case config.KindInt32, config.KindInt64:
		return "!!int"
	case config.KindFloat64:
		return "!!float"
	case config.KindBool:
		return "!!bool"
	case config.KindNull:
		return "!!null"
	default:
		return "!!str"
	}
}
