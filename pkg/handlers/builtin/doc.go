// Package builtin holds the primitive handlers that every registry
// discovers before any external source.
//
// All handlers parse best-effort and never panic. Input that cannot be
// parsed yields the zero value of the target type: 0 for numbers, false
// for bool, the zero time.Time, 0 for time.Duration and uuid.Nil.
package builtin
