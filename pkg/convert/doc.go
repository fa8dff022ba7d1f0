// Package convert provides HandlerRegistry, the lookup table from a
// target type to the TypeHandler that converts raw stored values into it.
//
// # Discovery
//
// A registry is built with New and populated lazily: the first lookup
// runs a single discovery pass, even under concurrent first access.
// Discovery merges the built-in handlers first and then every external
// source, keyed by TypeSupported. The first handler for a type wins;
// later claimants are rejected and logged at warn level. Sources that
// fail to enumerate or instantiate are logged at error level and
// contribute nothing.
//
// # Lookup
//
// GetHandlerForType tries an exact match on the requested type. If that
// misses and the type is an instantiated generic type, it falls back to
// the generic family: the bare type name without its type arguments and
// without its package path. A handler registered for Box[any] therefore
// serves Box[int] and Box[string].
//
// The family match trades precision for reuse. Two generic types with the
// same bare name in different packages share a family, and the first one
// registered serves both.
package convert
