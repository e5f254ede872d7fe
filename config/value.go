package config

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the stored representation of a Value.
// Byte, short and float32 values have no kind of their own: they are stored as KindInt32 or
// KindFloat64 and narrowed when read.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt32
	KindInt64
	KindFloat64
	KindBool
	KindString
	KindList
	KindSection
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindSection:
		return "section"
	default:
		return "unknown"
	}
}

// Value is a single node of the configuration tree: null, a scalar, a list or a section.
// The zero Value is null.
type Value struct {
	kind    Kind
	num     int64
	float   float64
	boolean bool
	str     string
	list    []Value
	section *Section
}

// Entry is a key and its value inside one section. Keys are literal, never split on the path separator.
type Entry struct {
	Key   string
	Value Value
}

// Null returns the null value. Setting it on a path removes the mapping.
func Null() Value {
	return Value{}
}

// Byte returns an 8-bit integer value.
func Byte(v int8) Value {
	return Int(int32(v))
}

// Short returns a 16-bit integer value.
func Short(v int16) Value {
	return Int(int32(v))
}

// Int returns a 32-bit integer value.
func Int(v int32) Value {
	return Value{kind: KindInt32, num: int64(v)}
}

// Int64 returns a 64-bit integer value. Values that fit in 32 bits are stored as KindInt32,
// which is also what a codec produces for them after a save and reload.
func Int64(v int64) Value {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return Int(int32(v))
	}

	return Value{kind: KindInt64, num: v}
}

// Float32 returns a floating point value stored with 64-bit precision.
func Float32(v float32) Value {
	return Float64(float64(v))
}

// Float64 returns a 64-bit floating point value.
func Float64(v float64) Value {
	return Value{kind: KindFloat64, float: v}
}

// Bool returns a boolean value.
func Bool(v bool) Value {
	return Value{kind: KindBool, boolean: v}
}

// String returns a string value.
func String(v string) Value {
	return Value{kind: KindString, str: v}
}

// List returns a list value holding a copy of values.
func List(values ...Value) Value {
	return Value{kind: KindList, list: slices.Clone(values)}
}

// Map returns a section value built from entries, in order. Later duplicates replace earlier ones
// in place and null entries are skipped.
func Map(entries ...Entry) Value {
	sec := NewSection()
	for _, entry := range entries {
		sec.putLocked(entry.Key, entry.Value.snapshot())
	}

	return Value{kind: KindSection, section: sec}
}

// SectionValue wraps a section. The section is deep-copied when the value is stored with Set.
func SectionValue(s *Section) Value {
	if s == nil {
		return Null()
	}

	return Value{kind: KindSection, section: s}
}

// ValueOf converts raw Go data into a Value. Maps become sections; since Go maps are unordered,
// their keys are imported in sorted order.
func ValueOf(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case *Section:
		return SectionValue(v), nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case int:
		return Int64(int64(v)), nil
	case int8:
		return Byte(v), nil
	case int16:
		return Short(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int64(v), nil
	case uint8:
		return Int(int32(v)), nil
	case uint16:
		return Int(int32(v)), nil
	case uint32:
		return Int64(int64(v)), nil
	case uint:
		return unsigned(uint64(v)), nil
	case uint64:
		return unsigned(v), nil
	case float32:
		return Float32(v), nil
	case float64:
		return Float64(v), nil
	case []Value:
		return List(v...), nil
	case []any:
		return listOf(v)
	case []string:
		return listOf(v)
	case []int:
		return listOf(v)
	case []int32:
		return listOf(v)
	case []int64:
		return listOf(v)
	case []float64:
		return listOf(v)
	case []bool:
		return listOf(v)
	case map[string]any:
		return mapOf(v, func(key string) string { return key })
	case map[any]any:
		return mapOf(v, func(key any) string { return fmt.Sprint(key) })
	case fmt.Stringer:
		return String(v.String()), nil
	default:
		return Null(), fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
	}
}

func unsigned(v uint64) Value {
	if v > math.MaxInt64 {
		return Float64(float64(v))
	}

	return Int64(int64(v))
}

func listOf[T any](items []T) (Value, error) {
	values := make([]Value, 0, len(items))

	for _, item := range items {
		value, err := ValueOf(item)
		if err != nil {
			return Null(), err
		}

		values = append(values, value)
	}

	return Value{kind: KindList, list: values}, nil
}

func mapOf[K comparable](raw map[K]any, keyString func(K) string) (Value, error) {
	byName := make(map[string]K, len(raw))
	for key := range raw {
		byName[keyString(key)] = key
	}

	entries := make([]Entry, 0, len(raw))

	for _, name := range slices.Sorted(maps.Keys(byName)) {
		value, err := ValueOf(raw[byName[name]])
		if err != nil {
			return Null(), fmt.Errorf("key %q: %w", name, err)
		}

		entries = append(entries, Entry{Key: name, Value: value})
	}

	return Map(entries...), nil
}

// Kind returns the stored kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Integer returns the stored integer of a KindInt32 or KindInt64 value.
func (v Value) Integer() (int64, bool) {
	if v.kind != KindInt32 && v.kind != KindInt64 {
		return 0, false
	}

	return v.num, true
}

// Float returns the stored number of a KindFloat64 value.
func (v Value) Float() (float64, bool) {
	if v.kind != KindFloat64 {
		return 0, false
	}

	return v.float, true
}

// Boolean returns the stored flag of a KindBool value.
func (v Value) Boolean() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}

	return v.boolean, true
}

// Text returns the stored string of a KindString value. Use String for the representation of any kind.
func (v Value) Text() (string, bool) {
	if v.kind != KindString {
		return "", false
	}

	return v.str, true
}

// List returns a deep copy of the list elements, or nil if v is not a list. Section elements are
// copied into standalone sections, so changing them does not reach the tree v came from.
func (v Value) List() []Value {
	if v.kind != KindList {
		return nil
	}

	return v.snapshot().list
}

// copyList is List for callers already holding the lock of the tree v belongs to.
func (v Value) copyList() []Value {
	if v.kind != KindList {
		return nil
	}

	return v.detach(&tree{}, "").list
}

// Section returns the wrapped section, or nil if v is not a section.
func (v Value) Section() *Section {
	if v.kind != KindSection {
		return nil
	}

	return v.section
}

// String returns the textual representation of v. Every value has one.
func (v Value) String() string {
	if v.kind == KindSection {
		defer v.section.rlock()()
	}

	return v.text()
}

// text renders v without taking any lock.
func (v Value) text() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindInt32, KindInt64:
		return strconv.FormatInt(v.num, 10)
	case KindFloat64:
		return formatFloat(v.float)
	case KindBool:
		return strconv.FormatBool(v.boolean)
	case KindString:
		return v.str
	case KindList:
		parts := make([]string, 0, len(v.list))
		for _, item := range v.list {
			parts = append(parts, item.text())
		}

		return "[" + strings.Join(parts, ", ") + "]"
	case KindSection:
		parts := make([]string, 0, len(v.section.keys))
		for _, key := range v.section.keys {
			parts = append(parts, key+": "+v.section.values[key].text())
		}

		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}

// formatFloat keeps a fractional marker on integral floats so "2.0" does not read back as an integer.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}

	text := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(text, ".e") {
		text += ".0"
	}

	return text
}

// Equal reports whether v and other hold the same kind and contents. Sections compare their
// entries in order. Equal does not lock sections.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindInt32, KindInt64:
		return v.num == other.num
	case KindFloat64:
		return v.float == other.float || (math.IsNaN(v.float) && math.IsNaN(other.float))
	case KindBool:
		return v.boolean == other.boolean
	case KindString:
		return v.str == other.str
	case KindList:
		return slices.EqualFunc(v.list, other.list, Value.Equal)
	case KindSection:
		return v.section.equal(other.section)
	default:
		return false
	}
}

// snapshot copies the lists and sections of v, reading each section under its own lock. The
// result can be stored in any tree without aliasing the source.
func (v Value) snapshot() Value {
	switch v.kind {
	case KindList:
		items := make([]Value, len(v.list))
		for i, item := range v.list {
			items[i] = item.snapshot()
		}

		return Value{kind: KindList, list: items}
	case KindSection:
		return Value{kind: KindSection, section: v.section.Clone()}
	default:
		return v
	}
}

// rebind moves every section reachable from v to t.
func (v Value) rebind(t *tree) {
	switch v.kind {
	case KindList:
		for _, item := range v.list {
			item.rebind(t)
		}
	case KindSection:
		v.section.tree = t
		for _, key := range v.section.keys {
			v.section.values[key].rebind(t)
		}
	}
}

// detach returns a copy of v whose lists and sections share nothing with v. Sections are rebound
// to t under path.
func (v Value) detach(t *tree, path string) Value {
	switch v.kind {
	case KindList:
		items := make([]Value, len(v.list))
		for i, item := range v.list {
			items[i] = item.detach(t, path)
		}

		return Value{kind: KindList, list: items}
	case KindSection:
		return Value{kind: KindSection, section: v.section.copyInto(t, path)}
	default:
		return v
	}
}
