package config_test

import (
	"math"
	"testing"

	"github.com/0xalexb/hjarta-yamlconf/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessor_NumericBoundaries(t *testing.T) {
	t.Parallel()

	t.Run("byte", func(t *testing.T) {
		t.Parallel()

		for _, v := range []int8{math.MinInt8, math.MaxInt8} {
			sec := config.NewSection()
			require.NoError(t, sec.Set("v", config.Byte(v)))

			got, err := sec.GetByte("v")
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})

	t.Run("short", func(t *testing.T) {
		t.Parallel()

		for _, v := range []int16{math.MinInt16, math.MaxInt16} {
			sec := config.NewSection()
			require.NoError(t, sec.Set("v", config.Short(v)))

			got, err := sec.GetShort("v")
			require.NoError(t, err)
			assert.Equal(t, v, got)

			_, err = sec.GetByte("v")
			require.ErrorIs(t, err, config.ErrWrongType)
		}
	})

	t.Run("int", func(t *testing.T) {
		t.Parallel()

		for _, v := range []int32{math.MinInt32, math.MaxInt32} {
			sec := config.NewSection()
			require.NoError(t, sec.Set("v", config.Int(v)))

			got, err := sec.GetInt("v")
			require.NoError(t, err)
			assert.Equal(t, v, got)

			_, err = sec.GetShort("v")
			require.ErrorIs(t, err, config.ErrWrongType)
		}
	})

	t.Run("int64", func(t *testing.T) {
		t.Parallel()

		for _, v := range []int64{math.MinInt64, math.MaxInt64} {
			sec := config.NewSection()
			require.NoError(t, sec.Set("v", config.Int64(v)))

			got, err := sec.GetInt64("v")
			require.NoError(t, err)
			assert.Equal(t, v, got)

			_, err = sec.GetInt("v")
			require.ErrorIs(t, err, config.ErrWrongType)
		}
	})

	t.Run("float32", func(t *testing.T) {
		t.Parallel()

		for _, v := range []float32{-math.MaxFloat32, math.MaxFloat32, math.SmallestNonzeroFloat32} {
			sec := config.NewSection()
			require.NoError(t, sec.Set("v", config.Float32(v)))

			got, err := sec.GetFloat32("v")
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})

	t.Run("float64", func(t *testing.T) {
		t.Parallel()

		for _, v := range []float64{-math.MaxFloat64, math.MaxFloat64, math.SmallestNonzeroFloat64} {
			sec := config.NewSection()
			require.NoError(t, sec.Set("v", config.Float64(v)))

			got, err := sec.GetFloat64("v")
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}

		sec := config.NewSection()
		require.NoError(t, sec.Set("v", config.Float64(math.MaxFloat64)))

		_, err := sec.GetFloat32("v")
		require.ErrorIs(t, err, config.ErrWrongType)
	})
}

func TestAccessor_ConversionMatrix(t *testing.T) {
	t.Parallel()

	section := config.NewSection()
	require.NoError(t, section.Set("i", config.Int(100)))
	require.NoError(t, section.Set("big", config.Int(1000)))
	require.NoError(t, section.Set("l", config.Int64(1<<40)))
	require.NoError(t, section.Set("d", config.Float64(1.5)))
	require.NoError(t, section.Set("b", config.Bool(true)))
	require.NoError(t, section.Set("s", config.String("12")))

	tests := []struct {
		name string
		read func() (any, error)
		want any
	}{
		{name: "byte from int", read: func() (any, error) { return section.GetByte("i") }, want: int8(100)},
		{name: "byte out of range", read: func() (any, error) { return section.GetByte("big") }},
		{name: "byte from float", read: func() (any, error) { return section.GetByte("d") }},
		{name: "short from int", read: func() (any, error) { return section.GetShort("big") }, want: int16(1000)},
		{name: "short from int64", read: func() (any, error) { return section.GetShort("l") }},
		{name: "int from string", read: func() (any, error) { return section.GetInt("s") }},
		{name: "int from float", read: func() (any, error) { return section.GetInt("d") }},
		{name: "int64 from int", read: func() (any, error) { return section.GetInt64("i") }, want: int64(100)},
		{name: "int64 from float", read: func() (any, error) { return section.GetInt64("d") }},
		{name: "float32 from int", read: func() (any, error) { return section.GetFloat32("i") }, want: float32(100)},
		{name: "float32 from float", read: func() (any, error) { return section.GetFloat32("d") }, want: float32(1.5)},
		{name: "float32 from int64", read: func() (any, error) { return section.GetFloat32("l") }},
		{name: "float64 from int", read: func() (any, error) { return section.GetFloat64("i") }, want: float64(100)},
		{name: "float64 from int64", read: func() (any, error) { return section.GetFloat64("l") }, want: float64(1 << 40)},
		{name: "float64 from bool", read: func() (any, error) { return section.GetFloat64("b") }},
		{name: "bool from bool", read: func() (any, error) { return section.GetBool("b") }, want: true},
		{name: "bool from string", read: func() (any, error) { return section.GetBool("s") }},
		{name: "string from int64", read: func() (any, error) { return section.GetString("l") }, want: "1099511627776"},
		{name: "string from float", read: func() (any, error) { return section.GetString("d") }, want: "1.5"},
		{name: "string from bool", read: func() (any, error) { return section.GetString("b") }, want: "true"},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			got, err := testInfo.read()
			if testInfo.want == nil {
				require.ErrorIs(t, err, config.ErrWrongType)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testInfo.want, got)
		})
	}
}

func TestAccessor_Float32Infinity(t *testing.T) {
	t.Parallel()

	section := config.NewSection()
	require.NoError(t, section.Set("inf", config.Float64(math.Inf(1))))

	got, err := section.GetFloat32("inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(got), 1))
}

func TestAccessor_StringIsTotal(t *testing.T) {
	t.Parallel()

	section := config.NewSection()
	require.NoError(t, section.Set("a.b", config.Int(1)))
	require.NoError(t, section.Set("list", config.List(config.Int(1), config.String("x"))))

	text, err := section.GetString("a")
	require.NoError(t, err)
	assert.Equal(t, "{b: 1}", text)

	text, err = section.GetString("list")
	require.NoError(t, err)
	assert.Equal(t, "[1, x]", text)

	_, err = section.GetString("missing")
	require.ErrorIs(t, err, config.ErrMissingMapping)
}

func TestAccessor_Defaults(t *testing.T) {
	t.Parallel()

	section := config.NewSection()
	require.NoError(t, section.Set("name", config.String("x")))

	port, err := section.GetIntDefault("server.port", 8080)
	require.NoError(t, err)
	assert.Equal(t, int32(8080), port)
	assert.False(t, section.Contains("server.port"), "defaults are never stored")

	_, err = section.GetIntDefault("name", 1)
	require.ErrorIs(t, err, config.ErrWrongType, "a default does not hide a type mismatch")

	_, err = section.GetBoolDefault("name", true)
	require.ErrorIs(t, err, config.ErrWrongType)

	b, err := section.GetByteDefault("missing", -1)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), b)

	sh, err := section.GetShortDefault("missing", 2)
	require.NoError(t, err)
	assert.Equal(t, int16(2), sh)

	l, err := section.GetInt64Default("missing", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), l)

	f, err := section.GetFloat32Default("missing", 0.5)
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), f)

	d, err := section.GetFloat64Default("missing", 0.25)
	require.NoError(t, err)
	assert.Equal(t, 0.25, d)

	s, err := section.GetStringDefault("missing", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", s)

	s, err = section.GetStringDefault("name", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	_, err = section.GetIntDefault("bad..path", 1)
	require.ErrorIs(t, err, config.ErrInvalidPath)
}

func TestAccessor_ListsAreCopies(t *testing.T) {
	t.Parallel()

	section := config.NewSection()
	require.NoError(t, section.Set("ports", config.List(config.Int(80), config.Int(443))))

	first, err := section.GetIntList("ports")
	require.NoError(t, err)

	first[0] = 8080

	second, err := section.GetIntList("ports")
	require.NoError(t, err)
	assert.Equal(t, []int32{80, 443}, second)

	raw, err := section.GetList("ports")
	require.NoError(t, err)

	raw[0] = config.String("changed")

	again, err := section.GetList("ports")
	require.NoError(t, err)
	assert.True(t, config.Int(80).Equal(again[0]))
}

func TestAccessor_ListSectionsAreCopies(t *testing.T) {
	t.Parallel()

	section := config.NewSection()
	require.NoError(t, section.Set("servers", config.List(
		config.Map(config.Entry{Key: "host", Value: config.String("a")}),
		config.List(config.Map(config.Entry{Key: "host", Value: config.String("b")})),
	)))

	raw, err := section.GetList("servers")
	require.NoError(t, err)
	require.NoError(t, raw[0].Section().Set("host", config.String("changed")))
	require.NoError(t, raw[1].List()[0].Section().Set("host", config.String("changed")))

	stored, err := section.Get("servers")
	require.NoError(t, err)

	items := stored.List()
	require.NoError(t, items[0].Section().Set("extra", config.Int(1)))

	again, err := section.GetList("servers")
	require.NoError(t, err)
	assert.Equal(t, "{host: a}", again[0].String())
	assert.Equal(t, "[{host: b}]", again[1].String())
}

func TestAccessor_TypedLists(t *testing.T) {
	t.Parallel()

	section := config.NewSection()
	require.NoError(t, section.Set("ints", config.List(config.Int(-1), config.Int(127))))
	require.NoError(t, section.Set("mixed", config.List(config.Int(1), config.Int64(1<<40), config.Float64(0.5))))
	require.NoError(t, section.Set("flags", config.List(config.Bool(true), config.Bool(false))))

	bytes, err := section.GetByteList("ints")
	require.NoError(t, err)
	assert.Equal(t, []int8{-1, 127}, bytes)

	shorts, err := section.GetShortList("ints")
	require.NoError(t, err)
	assert.Equal(t, []int16{-1, 127}, shorts)

	longs, err := section.GetInt64List("ints")
	require.NoError(t, err)
	assert.Equal(t, []int64{-1, 127}, longs)

	floats, err := section.GetFloat64List("mixed")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1 << 40, 0.5}, floats)

	float32s, err := section.GetFloat32List("ints")
	require.NoError(t, err)
	assert.Equal(t, []float32{-1, 127}, float32s)

	flags, err := section.GetBoolList("flags")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, flags)

	strings, err := section.GetStringList("mixed")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1099511627776", "0.5"}, strings)

	_, err = section.GetInt64List("mixed")

	var listErr *config.ListWrongTypeError
	require.ErrorAs(t, err, &listErr)
	assert.Equal(t, 2, listErr.Index)
	assert.Equal(t, config.KindFloat64, listErr.Element.Kind())
	assert.Len(t, listErr.List, 3)
	assert.Equal(t, "int64", listErr.Requested)
}

func TestAccessor_ListErrors(t *testing.T) {
	t.Parallel()

	section := config.NewSection()
	require.NoError(t, section.Set("nulls", config.List(config.String("a"), config.Null())))
	require.NoError(t, section.Set("scalar", config.Int(1)))

	_, err := section.GetStringList("nulls")

	var listErr *config.ListWrongTypeError
	require.ErrorAs(t, err, &listErr)
	assert.Equal(t, 1, listErr.Index)
	assert.True(t, listErr.Element.IsNull())

	_, err = section.GetIntList("scalar")
	require.ErrorAs(t, err, &listErr)
	assert.Equal(t, -1, listErr.Index)
	assert.Nil(t, listErr.List)
	assert.Equal(t, config.KindInt32, listErr.Element.Kind())

	_, err = section.GetList("scalar")
	require.ErrorIs(t, err, config.ErrListWrongType)

	_, err = section.GetIntList("missing")
	require.ErrorIs(t, err, config.ErrMissingMapping)
	require.NotErrorIs(t, err, config.ErrListWrongType)

	raw, err := section.GetList("nulls")
	require.NoError(t, err, "raw lists are not checked")
	assert.Len(t, raw, 2)
}
