// Package mapping fills typed structs from raw property bags, the way a
// content layer maps stored CMS properties onto view models.
//
// Each exported field is looked up in the bag by its `prop` tag, or by
// its lower-camel-cased name when untagged; `prop:"-"` skips the field.
// The registry's handler for the field type converts the raw value. When
// no handler exists the mapper falls back to weakly typed decoding with
// mapstructure, and leaves the field zero if that fails too.
package mapping

import (
	"reflect"
	"slices"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/propconv/pkg/convert"
	"github.com/arthur-debert/propconv/pkg/errors"
	"github.com/arthur-debert/propconv/pkg/logging"
)

// TagName is the struct tag read by the mapper.
const TagName = "prop"

// Mapper maps property bags onto structs through a HandlerRegistry.
type Mapper struct {
	registry *convert.HandlerRegistry
	logger   zerolog.Logger
}

// New returns a mapper backed by reg. A nil reg uses convert.Default().
func New(reg *convert.HandlerRegistry) *Mapper {
	if reg == nil {
		reg = convert.Default()
	}
	return &Mapper{
		registry: reg,
		logger:   logging.GetLogger("mapping"),
	}
}

// Map assigns props to the fields of the struct pointed to by dst.
// Missing properties leave fields untouched.
func (m *Mapper) Map(props map[string]any, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return errors.New(errors.ErrInvalidInput, "mapping destination must be a non-nil struct pointer").
			WithType(reflect.TypeOf(dst))
	}

	target := rv.Elem()
	st := target.Type()
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if !field.IsExported() {
			continue
		}
		alias := propertyAlias(field)
		if alias == "" {
			continue
		}
		key, ok := m.lookup(props, alias)
		if !ok {
			continue
		}
		m.assign(target.Field(i), field, alias, props[key])
	}
	return nil
}

func (m *Mapper) assign(dst reflect.Value, field reflect.StructField, alias string, raw any) {
	if v, ok := m.registry.Convert(field.Type, raw); ok {
		if setValue(dst, v) {
			return
		}
		m.logger.Debug().
			Str("property", alias).
			Str("type", field.Type.String()).
			Msgf("Handler returned %T, falling back", v)
	}

	if raw == nil {
		return
	}
	out := reflect.New(field.Type)
	if err := mapstructure.WeakDecode(raw, out.Interface()); err != nil {
		m.logger.Debug().
			Err(err).
			Str("property", alias).
			Str("type", field.Type.String()).
			Msg("No conversion for property, leaving zero value")
		return
	}
	dst.Set(out.Elem())
}

// setValue stores v into dst when the types line up. A nil v stores the
// zero value.
func setValue(dst reflect.Value, v any) bool {
	if v == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return true
	}
	val := reflect.ValueOf(v)
	switch {
	case val.Type().AssignableTo(dst.Type()):
		dst.Set(val)
	case val.Type().ConvertibleTo(dst.Type()):
		dst.Set(val.Convert(dst.Type()))
	default:
		return false
	}
	return true
}

func propertyAlias(field reflect.StructField) string {
	tag := field.Tag.Get(TagName)
	if tag == "-" {
		return ""
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return lowerCamel(field.Name)
}

// lookup returns the property key for alias. An exact match wins;
// otherwise the case-insensitive matches are sorted and the first is used,
// so {"Title", "TITLE"} always resolves to "TITLE".
func (m *Mapper) lookup(props map[string]any, alias string) (string, bool) {
	if _, ok := props[alias]; ok {
		return alias, true
	}
	var matches []string
	for k := range props {
		if strings.EqualFold(k, alias) {
			matches = append(matches, k)
		}
	}
	if len(matches) == 0 {
		return "", false
	}
	if len(matches) > 1 {
		slices.Sort(matches)
		m.logger.Debug().
			Str("property", alias).
			Strs("candidates", matches).
			Msgf("Ambiguous property, using %q", matches[0])
	}
	return matches[0], true
}

func lowerCamel(name string) string {
	runes := []rune(name)
	for i := 0; i < len(runes); i++ {
		if !unicode.IsUpper(runes[i]) {
			break
		}
		// Keep the last capital of an acronym followed by a lower case
		// letter: "URLPath" -> "urlPath".
		if i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			break
		}
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
