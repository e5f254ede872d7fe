// Package config provides typed, path-addressed access to a hierarchical configuration tree
// mirroring a YAML document.
//
// The package is built around four pieces:
//   - Value: a closed variant holding null, a scalar, a list or a section
//   - Section: an insertion-ordered mapping with get/set/unset/createSection over dotted paths
//   - typed accessors (GetInt, GetFloat32List, GetEnum, ...) with strict conversion rules
//   - Configuration: the root section bound to one file, with Save, Reload and auto-save
//
// # Paths
//
// Paths use dot (.) as the separator and are relative to the section they are passed to:
//
//	"server.port"            -> root["server"]["port"]
//	"db.primary.host"        -> root["db"]["primary"]["host"]
//	"" or "a..b" or ".a"     -> ErrInvalidPath
//
// Reads never create anything; a missing intermediate reports the full path as missing.
// Set, CreateSection and GetOrCreateSection create missing intermediate sections.
//
// # Conversions
//
// Only int32, int64, float64, bool and string scalars are stored. Narrower kinds are checked when
// read: GetByte and GetShort accept 32-bit integers inside their range, GetFloat32 accepts 32-bit
// integers and float64 values within the float32 range, GetInt64 widens 32-bit integers and
// GetFloat64 widens every integer. GetString accepts any value. Default-bearing getters return the
// default only when the path is absent; a value of the wrong kind is still an error.
//
// # Errors
//
// Use errors.Is with ErrMissingMapping, ErrWrongType, ErrListWrongType, ErrAlreadyExists,
// ErrInvalidPath, ErrFileNotFound and ErrIO, or errors.As with the structured error types for the
// offending path and value.
//
// # Concurrency
//
// All sections of a Configuration share one sync.RWMutex. Reads hold it shared; mutations, Save
// and Reload hold it exclusively. With auto-save enabled every mutation writes the file before it
// returns, so write-heavy callers should disable auto-save and call Save in batches. Sections
// obtained before Reload are detached from the reloaded tree and must not be used.
//
// # Example
//
//	cfg, err := config.Load("settings.yml", yaml.NewCodec(), config.WithAutoSave(true))
//	if err != nil {
//	    return err
//	}
//	port, err := cfg.GetIntDefault("server.port", 8080)
package config
