// Package types defines the contracts shared by the handler registry and
// the components that contribute handlers to it: TypeHandler, Factory,
// the ManualRegistration marker and Source.
package types
