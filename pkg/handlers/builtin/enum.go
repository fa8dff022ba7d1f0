package builtin

import (
	"reflect"
	"strings"

	"github.com/arthur-debert/propconv/pkg/types"
)

// EnumHandler maps raw text onto one of a fixed set of string-backed
// values, case-insensitively. Unknown input yields the zero value.
//
// It needs its value set at construction, so it is never discovered and
// must be added with RegisterTypeHandler.
type EnumHandler[T ~string] struct {
	types.Manual
	values []T
}

// NewEnumHandler returns a handler accepting values.
func NewEnumHandler[T ~string](values ...T) *EnumHandler[T] {
	return &EnumHandler[T]{values: values}
}

func (h *EnumHandler[T]) TypeSupported() reflect.Type { return types.TypeOf[T]() }

func (h *EnumHandler[T]) Convert(raw any) any {
	var zero T
	s, ok := types.Text(raw)
	if !ok {
		return zero
	}
	for _, v := range h.values {
		if strings.EqualFold(string(v), s) {
			return v
		}
	}
	return zero
}
