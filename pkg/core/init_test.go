package core

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/propconv/pkg/config"
	"github.com/arthur-debert/propconv/pkg/convert"
	"github.com/arthur-debert/propconv/pkg/errors"
	"github.com/arthur-debert/propconv/pkg/handlers/markup"
	"github.com/arthur-debert/propconv/pkg/handlers/structured"
	"github.com/arthur-debert/propconv/pkg/testutil"
	"github.com/arthur-debert/propconv/pkg/types"
)

func quiet() Options {
	return Options{RegistryOptions: []convert.Option{convert.WithLogger(zerolog.Nop())}}
}

func TestInitializeDiscoversExternalSources(t *testing.T) {
	testutil.NewTestEnvironment(t)

	rt, err := Initialize(quiet())
	require.NoError(t, err)
	require.NotNil(t, rt.Mapper)

	sources := map[string]bool{}
	for _, info := range rt.Registry.Handlers() {
		sources[info.Source] = true
	}
	assert.True(t, sources[structured.SourceName])
	assert.True(t, sources[markup.SourceName])

	_, ok := convert.HandlerFor[*etree.Document](rt.Registry)
	assert.True(t, ok)
}

func TestInitializeHonoursRegistryConfig(t *testing.T) {
	testutil.NewTestEnvironment(t)

	opts := quiet()
	opts.Overrides = map[string]any{"registry.disabled_sources": []string{markup.SourceName}}
	rt, err := Initialize(opts)
	require.NoError(t, err)

	_, ok := convert.HandlerFor[*etree.Document](rt.Registry)
	assert.False(t, ok)
	_, ok = convert.HandlerFor[map[string]any](rt.Registry)
	assert.True(t, ok)

	opts.Overrides = map[string]any{"registry.external": false}
	rt, err = Initialize(opts)
	require.NoError(t, err)
	_, ok = convert.HandlerFor[map[string]any](rt.Registry)
	assert.False(t, ok)
	_, ok = convert.HandlerFor[int](rt.Registry)
	assert.True(t, ok, "built-ins are always present")
}

func TestInitializeAppliesTimeLayouts(t *testing.T) {
	testutil.NewTestEnvironment(t)

	opts := quiet()
	opts.Overrides = map[string]any{"time.layouts": []string{"02/01/2006"}}
	rt, err := Initialize(opts)
	require.NoError(t, err)

	got, ok := convert.ConvertTo[time.Time](rt.Registry, "09/03/2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), got)
}

func TestInitializeWarnsOnUnknownDisabledSource(t *testing.T) {
	testutil.NewTestEnvironment(t)

	capture, logger := testutil.NewLogCapture()
	previous := log.Logger
	log.Logger = logger
	t.Cleanup(func() { log.Logger = previous })

	opts := quiet()
	opts.Overrides = map[string]any{
		"registry.disabled_sources": []string{markup.SourceName, "no-such-source"},
	}
	rt, err := Initialize(opts)
	require.NoError(t, err)
	require.NotNil(t, rt)

	warnings := capture.AtLevel("warn")
	require.Len(t, warnings, 1)
	assert.Equal(t, "no-such-source", warnings[0].Str("source"))
	assert.Equal(t, "core.init", warnings[0].Str("component"))
}

func TestUnknownSources(t *testing.T) {
	assert.Empty(t, unknownSources(nil))
	assert.Empty(t, unknownSources([]string{structured.SourceName, markup.SourceName}))
	assert.Equal(t, []string{"missing"}, unknownSources([]string{"missing", structured.SourceName}))
}

func TestInitializeConfigError(t *testing.T) {
	testutil.NewTestEnvironment(t)

	opts := quiet()
	opts.ConfigPath = filepath.Join(t.TempDir(), "missing.toml")
	_, err := Initialize(opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	assert.Panics(t, func() { MustInitialize(opts) })
}

func TestRegistryOptionsDefaultsKeepBuiltinTime(t *testing.T) {
	reg := convert.New(append(RegistryOptions(&config.Config{}), convert.WithLogger(zerolog.Nop()))...)

	h, ok := convert.HandlerFor[time.Time](reg)
	require.True(t, ok)
	assert.Equal(t, "builtin", sourceOf(reg, h))
}

func sourceOf(reg *convert.HandlerRegistry, h types.TypeHandler) string {
	for _, info := range reg.Handlers() {
		if info.Handler == h {
			return info.Source
		}
	}
	return ""
}
