// Package structured contributes handlers for values stored as YAML or
// JSON text. Importing the package registers the "structured" source.
//
// Failure values: nil map for map[string]any, nil slice for []any and
// []string.
package structured

import (
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/propconv/pkg/sources"
	"github.com/arthur-debert/propconv/pkg/types"
)

// SourceName is the catalogue name of this source.
const SourceName = "structured"

func init() {
	sources.MustRegister(Source())
}

// Source returns the handler source without registering it.
func Source() types.Source {
	return types.StaticSource(SourceName,
		types.FactoryOf[MapHandler](),
		types.FactoryOf[ListHandler](),
		types.FactoryOf[StringsHandler](),
	)
}

// MapHandler decodes a YAML or JSON object.
type MapHandler struct{}

func (MapHandler) TypeSupported() reflect.Type { return types.TypeOf[map[string]any]() }

func (MapHandler) Convert(raw any) any {
	if v, ok := raw.(map[string]any); ok {
		return v
	}
	var out map[string]any
	if !decode(raw, &out) {
		return map[string]any(nil)
	}
	return out
}

// ListHandler decodes a YAML or JSON sequence.
type ListHandler struct{}

func (ListHandler) TypeSupported() reflect.Type { return types.TypeOf[[]any]() }

func (ListHandler) Convert(raw any) any {
	if v, ok := raw.([]any); ok {
		return v
	}
	var out []any
	if !decode(raw, &out) {
		return []any(nil)
	}
	return out
}

// StringsHandler reads a sequence of strings. Bracketed input is decoded
// as a YAML/JSON sequence; anything else is split on commas, trimming
// blanks. Picker fields commonly store "a,b,c".
type StringsHandler struct{}

func (StringsHandler) TypeSupported() reflect.Type { return types.TypeOf[[]string]() }

func (StringsHandler) Convert(raw any) any {
	if v, ok := raw.([]string); ok {
		return v
	}
	s, ok := types.Text(raw)
	if !ok || s == "" {
		return []string(nil)
	}
	if strings.HasPrefix(s, "[") {
		var out []string
		if err := yaml.Unmarshal([]byte(s), &out); err != nil {
			return []string(nil)
		}
		return out
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func decode(raw any, out any) bool {
	s, ok := types.Text(raw)
	if !ok || s == "" {
		return false
	}
	return yaml.Unmarshal([]byte(s), out) == nil
}
