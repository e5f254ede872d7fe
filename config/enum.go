package config

import "fmt"

// Enum is the set of named constants of E that GetEnum accepts. Names are matched case-sensitively.
type Enum[E comparable] struct {
	byName map[string]E
	names  map[E]string
}

// NewEnum builds an Enum from constant names to constants.
func NewEnum[E comparable](constants map[string]E) Enum[E] {
	enum := Enum[E]{
		byName: make(map[string]E, len(constants)),
		names:  make(map[E]string, len(constants)),
	}

	for name, constant := range constants {
		enum.byName[name] = constant
		enum.names[constant] = name
	}

	return enum
}

// EnumOf builds an Enum named by each constant's String method.
func EnumOf[E interface {
	comparable
	fmt.Stringer
}](constants ...E) Enum[E] {
	byName := make(map[string]E, len(constants))
	for _, constant := range constants {
		byName[constant.String()] = constant
	}

	return NewEnum(byName)
}

// Parse returns the constant called name.
func (e Enum[E]) Parse(name string) (E, bool) {
	constant, ok := e.byName[name]

	return constant, ok
}

// Name returns the name of constant.
func (e Enum[E]) Name(constant E) (string, bool) {
	name, ok := e.names[constant]

	return name, ok
}

// Value returns the string value storing constant, or Null when constant is not declared.
func (e Enum[E]) Value(constant E) Value {
	name, ok := e.names[constant]
	if !ok {
		return Null()
	}

	return String(name)
}

func (e Enum[E]) requested() string {
	var zero E

	return fmt.Sprintf("enum %T", zero)
}

func (e Enum[E]) convert(v Value) (E, bool) {
	if v.kind != KindString {
		var zero E

		return zero, false
	}

	return e.Parse(v.str)
}

// GetEnum returns the constant named by the string at path.
func GetEnum[E comparable](s *Section, path string, enum Enum[E]) (E, error) {
	return getTyped(s, path, enum.requested(), enum.convert)
}

// GetEnumDefault is GetEnum returning def when path is absent.
func GetEnumDefault[E comparable](s *Section, path string, enum Enum[E], def E) (E, error) {
	return getTypedDefault(s, path, def, enum.requested(), enum.convert)
}

// GetEnumList returns the constants named by the string list at path.
func GetEnumList[E comparable](s *Section, path string, enum Enum[E]) ([]E, error) {
	return getTypedList(s, path, enum.requested(), enum.convert)
}
