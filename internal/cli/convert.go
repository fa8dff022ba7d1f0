package cli

import (
	"reflect"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/propconv/internal/commands"
	"github.com/arthur-debert/propconv/pkg/convert"
	"github.com/arthur-debert/propconv/pkg/errors"
	"github.com/arthur-debert/propconv/pkg/ui"
)

// typeAliases maps short names to the reflect type strings of registered
// handlers.
var typeAliases = map[string]string{
	"byte":     "uint8",
	"rune":     "int32",
	"map":      "map[string]interface {}",
	"list":     "[]interface {}",
	"strings":  "[]string",
	"time":     "time.Time",
	"duration": "time.Duration",
	"uuid":     "uuid.UUID",
	"xml":      "*etree.Document",
}

func newConvertCmd(a *app) *cobra.Command {
	var (
		typeName string
		output   string
	)

	cmd := &cobra.Command{
		Use:     "convert --type <type> <raw>",
		Short:   commands.MsgConvertShort,
		Long:    commands.MsgConvertLong,
		Example: commands.MsgConvertExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(output)
			if err != nil {
				return err
			}
			if strings.TrimSpace(typeName) == "" {
				return errors.New(errors.ErrInvalidInput, commands.MsgErrNoType)
			}

			reg := a.rt.Registry
			t, err := resolveType(reg, typeName)
			if err != nil {
				return err
			}

			raw := args[0]
			v, ok := reg.Convert(t, raw)
			if !ok {
				return errors.Newf(errors.ErrNoHandler, commands.MsgErrUnknownType, t.String()).WithType(t)
			}
			log.Debug().Str("type", t.String()).Str("raw", raw).Msg("Converted value")

			return ui.NewRenderer(cmd.OutOrStdout(), format).Conversion(ui.ConversionReport{
				Type:  t.String(),
				Input: raw,
				Value: displayValue(v),
			})
		},
	}
	cmd.Flags().StringVarP(&typeName, "type", "t", "", commands.MsgFlagType)
	cmd.Flags().StringVarP(&output, "output", "o", "auto", commands.MsgFlagOutput)
	return cmd
}

// resolveType finds the registered type called name, matching the type's
// String() form case-insensitively after alias expansion.
func resolveType(reg *convert.HandlerRegistry, name string) (reflect.Type, error) {
	want := strings.TrimSpace(name)
	if alias, ok := typeAliases[strings.ToLower(want)]; ok {
		want = alias
	}
	for _, info := range reg.Handlers() {
		if strings.EqualFold(info.Type.String(), want) {
			return info.Type, nil
		}
	}
	return nil, errors.Newf(errors.ErrUnknownType, commands.MsgErrUnknownType, name).
		WithTypeName(name)
}

// displayValue normalises converted values for rendering: nil-able values
// holding nil become nil and opaque types become strings.
func displayValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case *etree.Document:
		if x == nil {
			return nil
		}
		x.Indent(2)
		s, err := x.WriteToString()
		if err != nil {
			return nil
		}
		return strings.TrimSpace(s)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case time.Duration:
		return x.String()
	case uuid.UUID:
		return x.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
	}
	return v
}
