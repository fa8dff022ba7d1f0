package builtin

import (
	"math"
	"reflect"
	"strconv"

	"github.com/arthur-debert/propconv/pkg/types"
)

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

// IntHandler parses base-10 signed integers. Whole-number floats, as
// decoded from JSON, are accepted when they fit. Out of range input
// yields 0.
type IntHandler[T signed] struct{}

func (IntHandler[T]) TypeSupported() reflect.Type { return types.TypeOf[T]() }

func (IntHandler[T]) Convert(raw any) any {
	if v, ok := raw.(T); ok {
		return v
	}
	var zero T
	if f, ok := wholeFloat(raw); ok {
		limit := math.Ldexp(1, bitSize[T]()-1)
		if f < -limit || f >= limit {
			return zero
		}
		return T(f)
	}
	s, ok := types.Text(raw)
	if !ok {
		return zero
	}
	n, err := strconv.ParseInt(s, 10, bitSize[T]())
	if err != nil {
		return zero
	}
	return T(n)
}

// UintHandler parses base-10 unsigned integers. The byte handler is
// UintHandler[uint8].
type UintHandler[T unsigned] struct{}

func (UintHandler[T]) TypeSupported() reflect.Type { return types.TypeOf[T]() }

func (UintHandler[T]) Convert(raw any) any {
	if v, ok := raw.(T); ok {
		return v
	}
	var zero T
	if f, ok := wholeFloat(raw); ok {
		if f < 0 || f >= math.Ldexp(1, bitSize[T]()) {
			return zero
		}
		return T(f)
	}
	s, ok := types.Text(raw)
	if !ok {
		return zero
	}
	n, err := strconv.ParseUint(s, 10, bitSize[T]())
	if err != nil {
		return zero
	}
	return T(n)
}

// FloatHandler parses floating point literals, including exponents.
type FloatHandler[T float] struct{}

func (FloatHandler[T]) TypeSupported() reflect.Type { return types.TypeOf[T]() }

func (FloatHandler[T]) Convert(raw any) any {
	if v, ok := raw.(T); ok {
		return v
	}
	var zero T
	s, ok := types.Text(raw)
	if !ok {
		return zero
	}
	f, err := strconv.ParseFloat(s, bitSize[T]())
	if err != nil {
		return zero
	}
	return T(f)
}

// wholeFloat reports raw as a float64 when it is a finite float with no
// fractional part.
func wholeFloat(raw any) (float64, bool) {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return f, true
}

func bitSize[T any]() int {
	return types.TypeOf[T]().Bits()
}
