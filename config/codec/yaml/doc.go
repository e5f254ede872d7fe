// Package yaml provides the YAML codec for the config package.
//
// This package uses github.com/goccy/go-yaml. Documents are decoded with the UseOrderedMap option,
// so every mapping arrives as a yaml.MapSlice and keys keep their file order in the section tree.
// Encoding walks the tree back into MapSlice values.
//
// Usage:
//
//	cfg, err := config.Load("settings.yml", yaml.NewCodec())
//
// Scalar mapping:
//   - integers -> int32, or int64 beyond the 32-bit range
//   - floats -> float64 (integral floats are written with a ".0" suffix)
//   - booleans and strings as is; null mapping values are dropped
package yaml
