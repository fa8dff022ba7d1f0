// Package registry provides a generic, thread-safe keyed store.
// Registration is first-wins: a second Register for the same key is
// rejected with ErrAlreadyExists and leaves the first item in place.
// Keys are listed in registration order.
package registry
