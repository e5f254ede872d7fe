package config

import "math"

// Requested kind names used in WrongTypeError and ListWrongTypeError.
const (
	nameByte    = "int8"
	nameShort   = "int16"
	nameInt     = "int32"
	nameInt64   = "int64"
	nameFloat32 = "float32"
	nameFloat64 = "float64"
	nameBool    = "bool"
	nameString  = "string"
)

func toByte(v Value) (int8, bool) {
	if v.kind != KindInt32 || v.num < math.MinInt8 || v.num > math.MaxInt8 {
		return 0, false
	}

	return int8(v.num), true
}

func toShort(v Value) (int16, bool) {
	if v.kind != KindInt32 || v.num < math.MinInt16 || v.num > math.MaxInt16 {
		return 0, false
	}

	return int16(v.num), true
}

func toInt(v Value) (int32, bool) {
	if v.kind != KindInt32 {
		return 0, false
	}

	return int32(v.num), true
}

func toInt64(v Value) (int64, bool) {
	switch v.kind {
	case KindInt32, KindInt64:
		return v.num, true
	default:
		return 0, false
	}
}

func toFloat32(v Value) (float32, bool) {
	switch v.kind {
	case KindInt32:
		return float32(v.num), true
	case KindFloat64:
		if math.Abs(v.float) > math.MaxFloat32 && !math.IsInf(v.float, 0) {
			return 0, false
		}

		return float32(v.float), true
	default:
		return 0, false
	}
}

func toFloat64(v Value) (float64, bool) {
	switch v.kind {
	case KindInt32, KindInt64:
		return float64(v.num), true
	case KindFloat64:
		return v.float, true
	default:
		return 0, false
	}
}

func toBool(v Value) (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}

	return v.boolean, true
}

func toString(v Value) (string, bool) {
	return v.text(), true
}

func getTyped[T any](s *Section, path, requested string, convert func(Value) (T, bool)) (T, error) {
	defer s.rlock()()

	var zero T

	value, err := s.requireLocked(path)
	if err != nil {
		return zero, err
	}

	return convertValue(s, path, requested, value, convert)
}

func getTypedDefault[T any](s *Section, path string, def T, requested string, convert func(Value) (T, bool)) (T, error) {
	defer s.rlock()()

	var zero T

	value, ok, err := s.getLocked(path)
	if err != nil {
		return zero, err
	}

	if !ok {
		return def, nil
	}

	return convertValue(s, path, requested, value, convert)
}

// convertValue narrows value with convert and reports a WrongTypeError when it has no T representation.
func convertValue[T any](s *Section, path, requested string, value Value, convert func(Value) (T, bool)) (T, error) {
	converted, ok := convert(value)
	if !ok {
		var zero T

		return zero, &WrongTypeError{Path: s.fullPath(path), Requested: requested, Actual: value}
	}

	return converted, nil
}

func getTypedList[T any](s *Section, path, requested string, convert func(Value) (T, bool)) ([]T, error) {
	defer s.rlock()()

	value, err := s.requireLocked(path)
	if err != nil {
		return nil, err
	}

	if value.kind != KindList {
		return nil, &ListWrongTypeError{
			Path:      s.fullPath(path),
			Requested: requested,
			List:      nil,
			Element:   value,
			Index:     -1,
		}
	}

	result := make([]T, 0, len(value.list))

	for i, item := range value.list {
		converted, ok := convert(item)
		if item.IsNull() || !ok {
			return nil, &ListWrongTypeError{
				Path:      s.fullPath(path),
				Requested: requested,
				List:      value.copyList(),
				Element:   item,
				Index:     i,
			}
		}

		result = append(result, converted)
	}

	return result, nil
}

// GetList returns a deep copy of the list at path. Elements are not checked; section elements are
// standalone copies.
func (s *Section) GetList(path string) ([]Value, error) {
	defer s.rlock()()

	value, err := s.requireLocked(path)
	if err != nil {
		return nil, err
	}

	if value.kind != KindList {
		return nil, &ListWrongTypeError{Path: s.fullPath(path), Requested: "value", List: nil, Element: value, Index: -1}
	}

	return value.copyList(), nil
}

// GetByte returns the int8 at path. Only 32-bit integers in [-128, 127] convert.
func (s *Section) GetByte(path string) (int8, error) {
	return getTyped(s, path, nameByte, toByte)
}

// GetByteDefault is GetByte returning def when path is absent.
func (s *Section) GetByteDefault(path string, def int8) (int8, error) {
	return getTypedDefault(s, path, def, nameByte, toByte)
}

// GetByteList returns a copy of the int8 list at path.
func (s *Section) GetByteList(path string) ([]int8, error) {
	return getTypedList(s, path, nameByte, toByte)
}

// GetShort returns the int16 at path. Only 32-bit integers in [-32768, 32767] convert.
func (s *Section) GetShort(path string) (int16, error) {
	return getTyped(s, path, nameShort, toShort)
}

// GetShortDefault is GetShort returning def when path is absent.
func (s *Section) GetShortDefault(path string, def int16) (int16, error) {
	return getTypedDefault(s, path, def, nameShort, toShort)
}

// GetShortList returns a copy of the int16 list at path.
func (s *Section) GetShortList(path string) ([]int16, error) {
	return getTypedList(s, path, nameShort, toShort)
}

// GetInt returns the 32-bit integer at path.
func (s *Section) GetInt(path string) (int32, error) {
	return getTyped(s, path, nameInt, toInt)
}

// GetIntDefault is GetInt returning def when path is absent.
func (s *Section) GetIntDefault(path string, def int32) (int32, error) {
	return getTypedDefault(s, path, def, nameInt, toInt)
}

// GetIntList returns a copy of the 32-bit integer list at path.
func (s *Section) GetIntList(path string) ([]int32, error) {
	return getTypedList(s, path, nameInt, toInt)
}

// GetInt64 returns the 64-bit integer at path. 32-bit integers widen.
func (s *Section) GetInt64(path string) (int64, error) {
	return getTyped(s, path, nameInt64, toInt64)
}

// GetInt64Default is GetInt64 returning def when path is absent.
func (s *Section) GetInt64Default(path string, def int64) (int64, error) {
	return getTypedDefault(s, path, def, nameInt64, toInt64)
}

// GetInt64List returns a copy of the 64-bit integer list at path.
func (s *Section) GetInt64List(path string) ([]int64, error) {
	return getTypedList(s, path, nameInt64, toInt64)
}

// GetFloat32 returns the float32 at path. 32-bit integers widen; 64-bit floats narrow unless
// their magnitude exceeds math.MaxFloat32.
func (s *Section) GetFloat32(path string) (float32, error) {
	return getTyped(s, path, nameFloat32, toFloat32)
}

// GetFloat32Default is GetFloat32 returning def when path is absent.
func (s *Section) GetFloat32Default(path string, def float32) (float32, error) {
	return getTypedDefault(s, path, def, nameFloat32, toFloat32)
}

// GetFloat32List returns a copy of the float32 list at path.
func (s *Section) GetFloat32List(path string) ([]float32, error) {
	return getTypedList(s, path, nameFloat32, toFloat32)
}

// GetFloat64 returns the float64 at path. Integers of both widths convert.
func (s *Section) GetFloat64(path string) (float64, error) {
	return getTyped(s, path, nameFloat64, toFloat64)
}

// GetFloat64Default is GetFloat64 returning def when path is absent.
func (s *Section) GetFloat64Default(path string, def float64) (float64, error) {
	return getTypedDefault(s, path, def, nameFloat64, toFloat64)
}

// GetFloat64List returns a copy of the float64 list at path.
func (s *Section) GetFloat64List(path string) ([]float64, error) {
	return getTypedList(s, path, nameFloat64, toFloat64)
}

// GetBool returns the boolean at path.
func (s *Section) GetBool(path string) (bool, error) {
	return getTyped(s, path, nameBool, toBool)
}

// GetBoolDefault is GetBool returning def when path is absent.
func (s *Section) GetBoolDefault(path string, def bool) (bool, error) {
	return getTypedDefault(s, path, def, nameBool, toBool)
}

// GetBoolList returns a copy of the boolean list at path.
func (s *Section) GetBoolList(path string) ([]bool, error) {
	return getTypedList(s, path, nameBool, toBool)
}

// GetString returns the textual representation of the value at path. It never fails with
// ErrWrongType.
func (s *Section) GetString(path string) (string, error) {
	return getTyped(s, path, nameString, toString)
}

// GetStringDefault is GetString returning def when path is absent.
func (s *Section) GetStringDefault(path string, def string) (string, error) {
	return getTypedDefault(s, path, def, nameString, toString)
}

// GetStringList returns the textual representation of each element of the list at path.
// Null elements fail with a ListWrongTypeError.
func (s *Section) GetStringList(path string) ([]string, error) {
	return getTypedList(s, path, nameString, toString)
}
