package core

import (
	"github.com/arthur-debert/propconv/pkg/config"
	"github.com/arthur-debert/propconv/pkg/convert"
	"github.com/arthur-debert/propconv/pkg/handlers/builtin"
	"github.com/arthur-debert/propconv/pkg/logging"
	"github.com/arthur-debert/propconv/pkg/mapping"
	"github.com/arthur-debert/propconv/pkg/sources"

	// Import handler sources so their init() registers them
	_ "github.com/arthur-debert/propconv/pkg/handlers/markup"
	_ "github.com/arthur-debert/propconv/pkg/handlers/structured"
)

// Options configures Initialize.
type Options struct {
	ConfigPath string
	// Overrides are dotted config keys applied over every other layer.
	Overrides map[string]any
	// Registry options appended after the ones derived from config.
	RegistryOptions []convert.Option
}

// Runtime is the initialised application state.
type Runtime struct {
	Config   *config.Config
	Registry *convert.HandlerRegistry
	Mapper   *mapping.Mapper
}

// Initialize loads configuration and builds the handler registry. Handler
// discovery itself stays lazy and runs on the first lookup.
func Initialize(opts Options) (*Runtime, error) {
	logger := logging.GetLogger("core.init")

	cfg, err := config.Load(config.LoadOptions{
		Path:      opts.ConfigPath,
		Overrides: opts.Overrides,
	})
	if err != nil {
		return nil, err
	}

	for _, name := range unknownSources(cfg.Registry.DisabledSources) {
		logger.Warn().Str("source", name).Msg("Disabled handler source is not registered")
	}

	reg := convert.New(append(RegistryOptions(cfg), opts.RegistryOptions...)...)

	logger.Debug().
		Bool("external", cfg.Registry.External).
		Strs("disabledSources", cfg.Registry.DisabledSources).
		Int("timeLayouts", len(cfg.Time.Layouts)).
		Msg("Core initialization completed")

	return &Runtime{
		Config:   cfg,
		Registry: reg,
		Mapper:   mapping.New(reg),
	}, nil
}

// MustInitialize calls Initialize and panics on error.
func MustInitialize(opts Options) *Runtime {
	rt, err := Initialize(opts)
	if err != nil {
		panic("core initialization failed: " + err.Error())
	}
	return rt
}

// RegistryOptions translates cfg into registry options.
func RegistryOptions(cfg *config.Config) []convert.Option {
	opts := []convert.Option{
		convert.WithBuiltins(builtin.Factories(builtin.WithTimeLayouts(cfg.Time.Layouts...))...),
	}
	if len(cfg.Registry.DisabledSources) > 0 {
		opts = append(opts, convert.WithDisabledSources(cfg.Registry.DisabledSources...))
	}
	if !cfg.Registry.External {
		opts = append(opts, convert.WithoutExternal())
	}
	return opts
}

// unknownSources returns the names not present in the source catalogue.
func unknownSources(names []string) []string {
	var unknown []string
	for _, name := range names {
		if _, err := sources.Get(name); err != nil {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
