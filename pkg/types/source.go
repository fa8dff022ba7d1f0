package types

import (
	"github.com/arthur-debert/propconv/pkg/errors"
)

// Source is a component that contributes handlers to discovery.
// Registering a Source is how a component flags itself as containing
// handlers; components that never register are not scanned.
type Source struct {
	// Name identifies the source in logs and configuration.
	Name string

	// Enumerate lists the handler factories of the source. An error drops
	// the whole source from discovery.
	Enumerate func() ([]Factory, error)
}

// StaticSource builds a Source from a fixed factory list.
func StaticSource(name string, factories ...Factory) Source {
	return Source{
		Name: name,
		Enumerate: func() ([]Factory, error) {
			return factories, nil
		},
	}
}

// Validate checks that the source can be catalogued.
func (s Source) Validate() error {
	if s.Name == "" {
		return errors.New(errors.ErrSourceInvalid, "handler source name cannot be empty")
	}
	if s.Enumerate == nil {
		return errors.New(errors.ErrSourceInvalid, "handler source has no Enumerate function").WithSource(s.Name)
	}
	return nil
}
