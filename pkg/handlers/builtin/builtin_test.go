package builtin

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/propconv/pkg/types"
)

func TestByteHandlerScenario(t *testing.T) {
	h := UintHandler[uint8]{}

	assert.Equal(t, uint8(7), h.Convert("7"))
	assert.Equal(t, uint8(0), h.Convert("abc"))
	assert.Equal(t, uint8(0), h.Convert(""))
	assert.Equal(t, uint8(0), h.Convert("256"), "overflow yields zero")
	assert.Equal(t, uint8(0), h.Convert("-1"))
}

func TestInvalidInputYieldsZero(t *testing.T) {
	inputs := []any{"abc", "", "  ", "1.2.3", "0x1G", nil, map[string]any{}, []int{1}}

	for _, factory := range Factories() {
		h := factory()
		zero := reflect.Zero(h.TypeSupported()).Interface()

		for _, in := range inputs {
			if h.TypeSupported().Kind() == reflect.String {
				continue
			}
			t.Run(fmt.Sprintf("%s/%v", h.TypeSupported(), in), func(t *testing.T) {
				var got any
				require.NotPanics(t, func() { got = h.Convert(in) })
				assert.Equal(t, zero, got)
			})
		}
	}
}

func TestValidLiteralsRoundTrip(t *testing.T) {
	tests := []struct {
		handler types.TypeHandler
		values  []any
		format  func(any) string
	}{
		{IntHandler[int]{}, []any{0, 1, -1, math.MaxInt, math.MinInt}, sprint},
		{IntHandler[int8]{}, []any{int8(0), int8(math.MaxInt8), int8(math.MinInt8)}, sprint},
		{IntHandler[int16]{}, []any{int16(-300), int16(math.MaxInt16)}, sprint},
		{IntHandler[int32]{}, []any{int32(123456), int32(math.MinInt32)}, sprint},
		{IntHandler[int64]{}, []any{int64(math.MaxInt64), int64(math.MinInt64)}, sprint},
		{UintHandler[uint]{}, []any{uint(0), uint(math.MaxUint)}, sprint},
		{UintHandler[uint8]{}, []any{uint8(7), uint8(255)}, sprint},
		{UintHandler[uint16]{}, []any{uint16(65535)}, sprint},
		{UintHandler[uint32]{}, []any{uint32(math.MaxUint32)}, sprint},
		{UintHandler[uint64]{}, []any{uint64(math.MaxUint64)}, sprint},
		{FloatHandler[float32]{}, []any{float32(1.5), float32(-0.1), float32(math.MaxFloat32)}, func(v any) string {
			return strconv.FormatFloat(float64(v.(float32)), 'g', -1, 32)
		}},
		{FloatHandler[float64]{}, []any{0.1, -2.5e-10, math.MaxFloat64}, func(v any) string {
			return strconv.FormatFloat(v.(float64), 'g', -1, 64)
		}},
		{BoolHandler{}, []any{true, false}, sprint},
		{StringHandler{}, []any{"", "hello", " padded "}, sprint},
		{DurationHandler{}, []any{time.Duration(0), 90 * time.Minute, 1500 * time.Microsecond}, sprint},
		{UUIDHandler{}, []any{uuid.MustParse("9b2f6c1e-3d4a-4f5b-8c6d-7e8f9a0b1c2d"), uuid.Nil}, sprint},
	}

	for _, tt := range tests {
		for _, v := range tt.values {
			t.Run(fmt.Sprintf("%s/%v", tt.handler.TypeSupported(), v), func(t *testing.T) {
				assert.Equal(t, v, tt.handler.Convert(tt.format(v)))
			})
		}
	}
}

func TestTimeHandler(t *testing.T) {
	h := NewTimeHandler()

	t.Run("round trip RFC3339Nano", func(t *testing.T) {
		v := time.Date(2024, 3, 9, 17, 45, 12, 123456789, time.UTC)
		got, ok := h.Convert(v.Format(time.RFC3339Nano)).(time.Time)
		require.True(t, ok)
		assert.True(t, v.Equal(got))
	})

	t.Run("date only", func(t *testing.T) {
		got := h.Convert("2024-03-09").(time.Time)
		assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("sql style", func(t *testing.T) {
		got := h.Convert("2024-03-09 08:00:00").(time.Time)
		assert.Equal(t, 8, got.Hour())
	})

	t.Run("invalid yields zero", func(t *testing.T) {
		assert.True(t, h.Convert("not a date").(time.Time).IsZero())
		assert.True(t, h.Convert("").(time.Time).IsZero())
	})

	t.Run("custom layout first", func(t *testing.T) {
		custom := NewTimeHandler("02/01/2006")
		got := custom.Convert("09/03/2024").(time.Time)
		assert.Equal(t, time.March, got.Month())
		assert.Equal(t, 9, got.Day())
	})

	t.Run("zero value handler uses defaults", func(t *testing.T) {
		var zero TimeHandler
		assert.Equal(t, 2024, zero.Convert("2024-03-09").(time.Time).Year())
	})
}

func TestBoolHandlerWords(t *testing.T) {
	h := BoolHandler{}

	for _, in := range []string{"1", "true", "TRUE", "yes", "On"} {
		assert.Equal(t, true, h.Convert(in), in)
	}
	for _, in := range []string{"0", "false", "no", "OFF", "maybe"} {
		assert.Equal(t, false, h.Convert(in), in)
	}
}

func TestDurationMilliseconds(t *testing.T) {
	h := DurationHandler{}
	assert.Equal(t, 250*time.Millisecond, h.Convert("250"))
	assert.Equal(t, 2*time.Second, h.Convert(2000))
	assert.Equal(t, -250*time.Millisecond, h.Convert("-250"))

	maxMillis := strconv.FormatInt(math.MaxInt64/int64(time.Millisecond), 10)
	minMillis := strconv.FormatInt(math.MinInt64/int64(time.Millisecond), 10)
	assert.Equal(t, time.Duration(math.MaxInt64/int64(time.Millisecond))*time.Millisecond, h.Convert(maxMillis))
	assert.Equal(t, time.Duration(math.MinInt64/int64(time.Millisecond))*time.Millisecond, h.Convert(minMillis))

	for _, overflow := range []string{
		"10000000000000",
		"9223372036854775807",
		"-10000000000000",
		"-9223372036854775808",
	} {
		assert.Equal(t, time.Duration(0), h.Convert(overflow), overflow)
	}
}

func TestNonStringInputs(t *testing.T) {
	assert.Equal(t, 12, IntHandler[int]{}.Convert(12))
	assert.Equal(t, int64(12), IntHandler[int64]{}.Convert(12))
	assert.Equal(t, 0, IntHandler[int]{}.Convert(12.5))
	assert.Equal(t, 1000000, IntHandler[int]{}.Convert(1e6))
	assert.Equal(t, int8(-128), IntHandler[int8]{}.Convert(float64(-128)))
	assert.Equal(t, int8(0), IntHandler[int8]{}.Convert(float64(128)))
	assert.Equal(t, int32(7), IntHandler[int32]{}.Convert(float32(7)))
	assert.Equal(t, uint8(255), UintHandler[uint8]{}.Convert(float64(255)))
	assert.Equal(t, uint8(0), UintHandler[uint8]{}.Convert(float64(256)))
	assert.Equal(t, uint(0), UintHandler[uint]{}.Convert(float64(-1)))
	assert.Equal(t, uint64(1)<<40, UintHandler[uint64]{}.Convert(float64(1<<40)))
	assert.Equal(t, int64(0), IntHandler[int64]{}.Convert(math.Inf(1)))
	assert.Equal(t, int64(0), IntHandler[int64]{}.Convert(math.NaN()))
	assert.Equal(t, 3.0, FloatHandler[float64]{}.Convert(3))
	assert.Equal(t, "42", StringHandler{}.Convert(42))
	assert.Equal(t, "", StringHandler{}.Convert(nil))
	assert.Equal(t, "1s", StringHandler{}.Convert(time.Second))
	assert.Equal(t, uint8(9), UintHandler[uint8]{}.Convert([]byte(" 9 ")))
}

type colour string

func TestEnumHandler(t *testing.T) {
	h := NewEnumHandler[colour]("red", "green")

	assert.True(t, types.IsManual(h))
	assert.Equal(t, reflect.TypeOf(colour("")), h.TypeSupported())
	assert.Equal(t, colour("green"), h.Convert("GREEN"))
	assert.Equal(t, colour(""), h.Convert("blue"))
	assert.Equal(t, colour(""), h.Convert(nil))
}

func TestFactoriesCoverPrimitives(t *testing.T) {
	seen := map[reflect.Type]bool{}
	for _, f := range Factories() {
		h := f()
		require.NotNil(t, h)
		assert.False(t, types.IsManual(h), "%T must be discoverable", h)
		assert.False(t, seen[h.TypeSupported()], "duplicate built-in for %s", h.TypeSupported())
		seen[h.TypeSupported()] = true
	}

	for _, want := range []reflect.Type{
		types.TypeOf[bool](), types.TypeOf[string](), types.TypeOf[byte](),
		types.TypeOf[int](), types.TypeOf[float64](), types.TypeOf[time.Time](),
		types.TypeOf[time.Duration](), types.TypeOf[uuid.UUID](),
	} {
		assert.True(t, seen[want], "missing built-in for %s", want)
	}
}

func TestFactoriesWithTimeLayouts(t *testing.T) {
	var th types.TypeHandler
	for _, f := range Factories(WithTimeLayouts("02.01.2006")) {
		if h := f(); h.TypeSupported() == types.TypeOf[time.Time]() {
			th = h
		}
	}
	require.NotNil(t, th)

	got := th.Convert("31.12.2023").(time.Time)
	assert.Equal(t, 2023, got.Year())
	assert.Equal(t, time.December, got.Month())
}

func sprint(v any) string { return fmt.Sprint(v) }
