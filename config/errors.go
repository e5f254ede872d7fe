package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations. Structured errors below unwrap to one of these,
// so callers can match with errors.Is regardless of the concrete type.
var (
	// ErrMissingMapping indicates that no value exists at the requested path.
	ErrMissingMapping = errors.New("missing mapping")

	// ErrWrongType indicates a value exists but cannot be converted to the requested kind.
	ErrWrongType = errors.New("wrong type")

	// ErrListWrongType indicates a list is not a list or holds an element of the wrong kind.
	ErrListWrongType = errors.New("list element of wrong type")

	// ErrAlreadyExists indicates that CreateSection found an existing mapping.
	ErrAlreadyExists = errors.New("mapping already exists")

	// ErrInvalidPath indicates a malformed dotted path.
	ErrInvalidPath = errors.New("invalid path")

	// ErrUnsupportedValue indicates a raw Go value that has no Value representation.
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrFileNotFound indicates the configuration file does not exist and no default resource is configured.
	ErrFileNotFound = errors.New("configuration file not found")

	// ErrPathIsDirectory is returned when the configuration path points to a directory instead of a file.
	ErrPathIsDirectory = errors.New("path is a directory, not a file")

	// ErrDecode indicates the codec rejected the file contents.
	ErrDecode = errors.New("decoding configuration")

	// ErrIO indicates a read or write failure on the configuration file or default resource.
	ErrIO = errors.New("configuration i/o failure")
)

// MissingMappingError reports an absent path.
type MissingMappingError struct {
	Path string
}

func (e *MissingMappingError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingMapping, e.Path)
}

func (e *MissingMappingError) Unwrap() error {
	return ErrMissingMapping
}

// WrongTypeError reports a value that is present but not convertible to the requested kind.
type WrongTypeError struct {
	// Path is the full path of the offending value.
	Path string
	// Requested names the kind the caller asked for, e.g. "int16" or "section".
	Requested string
	// Actual is the value found at Path. Actual.Kind() is its stored kind.
	Actual Value
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("%s: %q is %s (%s), requested %s",
		ErrWrongType, e.Path, e.Actual.Kind(), e.Actual.String(), e.Requested)
}

func (e *WrongTypeError) Unwrap() error {
	return ErrWrongType
}

// ListWrongTypeError reports a list that cannot be read as a list of the requested element kind.
// When the stored value is not a list at all, List is nil, Element holds the stored value and Index is -1.
type ListWrongTypeError struct {
	Path      string
	Requested string
	List      []Value
	Element   Value
	Index     int
}

func (e *ListWrongTypeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %q is %s (%s), requested []%s",
			ErrListWrongType, e.Path, e.Element.Kind(), e.Element.String(), e.Requested)
	}

	return fmt.Sprintf("%s: %q element %d is %s, requested []%s",
		ErrListWrongType, e.Path, e.Index, describe(e.Element), e.Requested)
}

func (e *ListWrongTypeError) Unwrap() error {
	return ErrListWrongType
}

// AlreadyExistsError reports a CreateSection call on a path that already holds a mapping.
type AlreadyExistsError struct {
	Path     string
	Existing Value
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s: %q (%s)", ErrAlreadyExists, e.Path, e.Existing.Kind())
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

func invalidPathError(path string) error {
	return fmt.Errorf("%w: %q", ErrInvalidPath, path)
}

func describe(v Value) string {
	if v.IsNull() {
		return "null"
	}

	return fmt.Sprintf("%s (%s)", v.Kind(), v.String())
}
