package types

import (
	"fmt"
	"reflect"
)

// TypeHandler converts an untyped raw value into exactly one target type.
//
// Convert must never panic for malformed input. Handlers for numeric and
// boolean types return the zero value when the input cannot be parsed;
// other handlers document their own failure value.
type TypeHandler interface {
	// TypeSupported returns the target type. It must be non-nil and stable
	// for the lifetime of the handler.
	TypeSupported() reflect.Type

	// Convert turns raw into a value of TypeSupported.
	Convert(raw any) any
}

// Factory creates a handler with no arguments. A factory returning nil
// is treated as "not a handler".
type Factory func() TypeHandler

// ManualRegistration marks a handler that must not be picked up by
// discovery, typically because it needs constructor arguments. Such
// handlers are added with HandlerRegistry.RegisterTypeHandler.
type ManualRegistration interface {
	ManualRegistration()
}

// Manual can be embedded to implement ManualRegistration.
type Manual struct{}

// ManualRegistration implements ManualRegistration.
func (Manual) ManualRegistration() {}

// IsManual reports whether h opted out of discovery.
func IsManual(h TypeHandler) bool {
	_, ok := h.(ManualRegistration)
	return ok
}

// FactoryOf returns a Factory that allocates a zero H and returns it as a
// handler. It is the usual way to list a stateless handler in a Source.
func FactoryOf[H any, P interface {
	*H
	TypeHandler
}]() Factory {
	return func() TypeHandler {
		return P(new(H))
	}
}

// FactoryFor wraps an already built handler.
func FactoryFor(h TypeHandler) Factory {
	return func() TypeHandler { return h }
}

// TypeOf returns the reflect.Type of T, including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// HandlerName identifies a handler in diagnostics.
func HandlerName(h TypeHandler) string {
	if h == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", h)
}
