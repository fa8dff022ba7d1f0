package convert

import (
	"github.com/arthur-debert/propconv/pkg/errors"
	"github.com/arthur-debert/propconv/pkg/handlers/builtin"
	"github.com/arthur-debert/propconv/pkg/logging"
	"github.com/arthur-debert/propconv/pkg/types"
)

// discover runs the single discovery pass. It never fails: broken
// handlers and sources are skipped.
func (r *HandlerRegistry) discover() {
	r.discoveries.Add(1)
	done := logging.LogOperationStart(r.logger, "discovery")
	defer done()

	for _, factory := range r.builtins {
		h := instantiate(factory)
		if !eligible(h) {
			continue
		}
		r.add(h, builtin.SourceName, true)
	}

	for _, src := range r.sources() {
		if r.disabled[src.Name] {
			r.logger.Debug().Str("source", src.Name).Msg("Handler source disabled, skipping")
			continue
		}

		handlers, err := collect(src)
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("source", src.Name).
				Msg("Failed to discover handlers in source, skipping")
			continue
		}

		for _, h := range handlers {
			r.add(h, src.Name, true)
		}
		r.logger.Debug().
			Str("source", src.Name).
			Int("handlers", len(handlers)).
			Msg("Handler source discovered")
	}

	r.logger.Info().
		Int("handlers", r.handlers.Count()).
		Int("rejected", len(r.rejections)).
		Msg("Handler discovery completed")
}

// collect enumerates and instantiates every eligible handler of src. Any
// error or panic drops the whole source.
func collect(src types.Source) (handlers []types.TypeHandler, err error) {
	defer func() {
		if p := recover(); p != nil {
			handlers = nil
			err = errors.Newf(errors.ErrSourceEnumerate, "handler source panicked: %v", p).WithSource(src.Name)
		}
	}()

	if src.Enumerate == nil {
		return nil, errors.New(errors.ErrSourceInvalid, "handler source has no Enumerate function").WithSource(src.Name)
	}
	factories, err := src.Enumerate()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSourceEnumerate, "failed to enumerate handler source").WithSource(src.Name)
	}

	for _, factory := range factories {
		if factory == nil {
			continue
		}
		h := factory()
		if !eligible(h) {
			continue
		}
		handlers = append(handlers, h)
	}
	return handlers, nil
}

// instantiate calls factory, treating a nil factory or a panic as "not a
// handler".
func instantiate(factory types.Factory) (h types.TypeHandler) {
	if factory == nil {
		return nil
	}
	defer func() {
		if recover() != nil {
			h = nil
		}
	}()
	h = factory()
	if h == nil || h.TypeSupported() == nil {
		return nil
	}
	return h
}

func eligible(h types.TypeHandler) bool {
	return h != nil && h.TypeSupported() != nil && !types.IsManual(h)
}
