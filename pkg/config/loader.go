package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/propconv/pkg/errors"
	"github.com/arthur-debert/propconv/pkg/logging"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PROPCONV_"

// UserConfigFiles are searched for, in order, under the XDG config
// directories.
var UserConfigFiles = []string{
	"propconv/config.toml",
	"propconv/config.yaml",
	"propconv/config.yml",
}

// LoadOptions tunes Load.
type LoadOptions struct {
	// Path is an explicit config file. It must exist when set.
	Path string
	// Overrides are applied last, keyed by dotted path ("logging.verbosity").
	Overrides map[string]any
}

// Load builds the layered configuration.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}

	// 2. User file
	path, err := userConfigPath(opts.Path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail(errors.DetailPath, path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	}

	// 3. Env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				trimSliceHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode config")
	}

	if cfg.Logging.Verbosity < 0 {
		return nil, errors.Newf(errors.ErrConfigParse, "logging.verbosity must not be negative, got %d", cfg.Logging.Verbosity)
	}
	return &cfg, nil
}

// userConfigPath resolves the user file. An empty result means there is
// none to load.
func userConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", explicit).
				WithDetail(errors.DetailPath, explicit)
		}
		return explicit, nil
	}
	for _, name := range UserConfigFiles {
		if path, err := xdg.SearchConfigFile(name); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// parserFor picks the parser from the file extension. TOML is the default.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return kyaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps PROPCONV_REGISTRY__DISABLED_SOURCES to
// registry.disabled_sources.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// trimSliceHookFunc trims entries of string slices so "a, b" decodes to
// [a b], and drops the empty entries left by trailing commas.
func trimSliceHookFunc() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		in, ok := data.([]string)
		if !ok || to.Kind() != reflect.Slice {
			return data, nil
		}
		out := make([]string, 0, len(in))
		for _, s := range in {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, nil
	}
}
