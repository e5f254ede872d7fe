package config

// KeyMode selects which paths Keys and Values enumerate.
type KeyMode uint8

const (
	// KeysRoot lists the direct keys of the section only.
	KeysRoot KeyMode = iota
	// KeysLeaves lists every path whose value is not a section, at any depth.
	KeysLeaves
	// KeysAll lists every leaf path plus every path that names a section.
	KeysAll
)

// String returns the mode name.
func (m KeyMode) String() string {
	switch m {
	case KeysRoot:
		return "root"
	case KeysLeaves:
		return "leaves"
	case KeysAll:
		return "all"
	default:
		return "unknown"
	}
}

// Keys returns the paths selected by mode, relative to s. The result is a set: callers must not
// rely on its order. An empty section yields an empty slice.
func (s *Section) Keys(mode KeyMode) []string {
	defer s.rlock()()

	keys := make([]string, 0, len(s.keys))
	s.walkLocked(mode, "", func(path string, _ Value) {
		keys = append(keys, path)
	})

	return keys
}

// Values returns the values of the paths selected by mode, keyed by path relative to s.
func (s *Section) Values(mode KeyMode) map[string]Value {
	defer s.rlock()()

	values := make(map[string]Value, len(s.keys))
	s.walkLocked(mode, "", func(path string, value Value) {
		values[path] = value
	})

	return values
}

func (s *Section) walkLocked(mode KeyMode, prefix string, visit func(path string, value Value)) {
	for _, key := range s.keys {
		path := joinPath(prefix, key)
		value := s.values[key]

		if value.kind != KindSection || mode == KeysRoot {
			visit(path, value)

			continue
		}

		if mode == KeysAll {
			visit(path, value)
		}

		value.section.walkLocked(mode, path, visit)
	}
}
