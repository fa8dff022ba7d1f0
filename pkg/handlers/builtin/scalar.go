package builtin

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/arthur-debert/propconv/pkg/types"
)

// BoolHandler accepts strconv.ParseBool literals plus yes/no and on/off.
type BoolHandler struct{}

func (BoolHandler) TypeSupported() reflect.Type { return types.TypeOf[bool]() }

func (BoolHandler) Convert(raw any) any {
	if v, ok := raw.(bool); ok {
		return v
	}
	s, ok := types.Text(raw)
	if !ok {
		return false
	}
	switch strings.ToLower(s) {
	case "yes", "on":
		return true
	case "no", "off":
		return false
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}

// StringHandler passes strings through untouched and renders anything
// else with fmt, so Stringers use their String method. A nil input
// yields "".
type StringHandler struct{}

func (StringHandler) TypeSupported() reflect.Type { return types.TypeOf[string]() }

func (StringHandler) Convert(raw any) any {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
