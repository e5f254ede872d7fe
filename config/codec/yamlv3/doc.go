// Package yamlv3 provides an alternative YAML codec for the config package built on the
// gopkg.in/yaml.v3 node API.
//
// Mapping nodes are walked pair by pair, so key order is kept without an ordered map type.
// Merge keys (<<) are resolved: merged entries come first and explicit keys override them.
// Scalars are typed by their resolved tag (!!int, !!float, !!bool, !!null); every other tag,
// including timestamps, is kept as a string.
package yamlv3
