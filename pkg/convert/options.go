package convert

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/propconv/pkg/types"
)

// Option configures a HandlerRegistry.
type Option func(*HandlerRegistry)

// WithLogger sets the logger used for discovery diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *HandlerRegistry) {
		r.logger = logger
	}
}

// WithBuiltins replaces the built-in factory set.
func WithBuiltins(factories ...types.Factory) Option {
	return func(r *HandlerRegistry) {
		r.builtins = factories
	}
}

// WithSources makes discovery use exactly srcs, in order, instead of the
// process catalogue.
func WithSources(srcs ...types.Source) Option {
	return func(r *HandlerRegistry) {
		r.sources = func() []types.Source { return srcs }
	}
}

// WithoutExternal limits discovery to the built-in handlers.
func WithoutExternal() Option {
	return func(r *HandlerRegistry) {
		r.sources = func() []types.Source { return nil }
	}
}

// WithDisabledSources skips the named sources during discovery.
func WithDisabledSources(names ...string) Option {
	return func(r *HandlerRegistry) {
		for _, name := range names {
			r.disabled[name] = true
		}
	}
}
