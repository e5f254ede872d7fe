package config

import "strings"

// PathSeparator separates the keys of a path.
const PathSeparator = "."

// splitPath breaks a dotted path into its keys. Empty paths and empty segments are invalid.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, invalidPathError(path)
	}

	keys := strings.Split(path, PathSeparator)
	for _, key := range keys {
		if key == "" {
			return nil, invalidPathError(path)
		}
	}

	return keys, nil
}

// joinPath appends key to a section path. The root section has an empty path.
func joinPath(base, key string) string {
	if base == "" {
		return key
	}

	return base + PathSeparator + key
}

// lookupParent walks every key but the last without creating anything. It returns nil when an
// intermediate is missing or is not a section.
func (s *Section) lookupParent(keys []string) *Section {
	current := s

	for _, key := range keys[:len(keys)-1] {
		child := current.values[key].Section()
		if child == nil {
			return nil
		}

		current = child
	}

	return current
}

// resolveParent walks every key but the last, creating missing intermediate sections. An
// intermediate holding a non-section value fails with a WrongTypeError for that intermediate;
// that can only happen before anything was created, so a failed call leaves the tree untouched.
// The second return value reports whether a section was created.
func (s *Section) resolveParent(keys []string) (*Section, bool, error) {
	current := s
	created := false

	for _, key := range keys[:len(keys)-1] {
		existing, ok := current.values[key]

		switch {
		case !ok:
			current = current.createLocked(key)
			created = true
		case existing.kind == KindSection:
			current = existing.section
		default:
			return nil, false, &WrongTypeError{
				Path:      joinPath(current.path, key),
				Requested: "section",
				Actual:    existing,
			}
		}
	}

	return current, created, nil
}
