package convert

import (
	"reflect"
	"strings"
)

// familyKey returns the generic family of t, or "" for types that are not
// instantiated generics. The family ignores package path and type
// arguments: both pkg.Box[int] and other.Box[string] map to "Box".
func familyKey(t reflect.Type) string {
	if t == nil {
		return ""
	}
	name := t.Name()
	i := strings.IndexByte(name, '[')
	if i <= 0 {
		return ""
	}
	return name[:i]
}
