package types

import (
	"fmt"
	"reflect"
	"strings"
)

// Text renders a raw stored value as trimmed text for parsing. It reports
// false for nil, and for values that have no sensible text form
// (maps, slices other than []byte, structs without a String method).
func Text(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		return strings.TrimSpace(v), true
	case []byte:
		return strings.TrimSpace(string(v)), true
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}
		return strings.TrimSpace(v.String()), true
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}
