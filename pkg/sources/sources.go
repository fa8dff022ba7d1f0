// Package sources is the process-wide catalogue of external handler
// sources. Components opt in by registering a types.Source from an init
// function; a program pulls a component in by importing it.
//
//	func init() {
//		sources.MustRegister(types.StaticSource("markup",
//			types.FactoryOf[DocumentHandler](),
//		))
//	}
//
// Registries read the catalogue when their discovery pass runs, so
// sources registered after that point are not seen by that registry.
package sources

import (
	"github.com/arthur-debert/propconv/pkg/errors"
	"github.com/arthur-debert/propconv/pkg/registry"
	"github.com/arthur-debert/propconv/pkg/types"
)

var catalogue = registry.New[string, types.Source]()

// Register adds a source to the catalogue. Names must be unique.
func Register(src types.Source) error {
	if err := src.Validate(); err != nil {
		return err
	}
	if catalogue.Has(src.Name) {
		return errors.New(errors.ErrAlreadyExists, "handler source is already registered").WithSource(src.Name)
	}
	if err := catalogue.Register(src.Name, src); err != nil {
		return errors.Wrap(err, errors.GetErrorCode(err), "failed to register handler source").WithSource(src.Name)
	}
	return nil
}

// MustRegister registers src and panics on failure. Use it from init().
func MustRegister(src types.Source) {
	if err := Register(src); err != nil {
		panic(err)
	}
}

// Get returns a catalogued source by name.
func Get(name string) (types.Source, error) {
	src, err := catalogue.Get(name)
	if err != nil {
		return src, errors.Wrap(err, errors.ErrNotFound, "handler source not found").WithSource(name)
	}
	return src, nil
}

// Unregister removes a source from the catalogue.
func Unregister(name string) error {
	return catalogue.Remove(name)
}

// All returns the catalogued sources in registration order.
func All() []types.Source {
	names := catalogue.List()
	out := make([]types.Source, 0, len(names))
	for _, name := range names {
		if src, ok := catalogue.Lookup(name); ok {
			out = append(out, src)
		}
	}
	return out
}

// Names returns the catalogued source names in registration order.
func Names() []string {
	return catalogue.List()
}
