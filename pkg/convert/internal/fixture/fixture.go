// Package fixture declares types that share bare names with types in
// other packages, for exercising generic family lookup.
package fixture

// Box has the same bare name as convert's test Box.
type Box[T any] struct {
	Value T
}
