// Package markup contributes a handler for values stored as XML, such as
// legacy multi-node picker values. Importing the package registers the
// "markup" source.
package markup

import (
	"reflect"

	"github.com/beevik/etree"

	"github.com/arthur-debert/propconv/pkg/sources"
	"github.com/arthur-debert/propconv/pkg/types"
)

// SourceName is the catalogue name of this source.
const SourceName = "markup"

func init() {
	sources.MustRegister(Source())
}

// Source returns the handler source without registering it.
func Source() types.Source {
	return types.StaticSource(SourceName, types.FactoryOf[DocumentHandler]())
}

// DocumentHandler parses XML into an *etree.Document. Empty input,
// malformed XML and documents without a root element yield a nil
// document.
type DocumentHandler struct{}

func (DocumentHandler) TypeSupported() reflect.Type { return types.TypeOf[*etree.Document]() }

func (DocumentHandler) Convert(raw any) any {
	if v, ok := raw.(*etree.Document); ok {
		return v
	}
	s, ok := types.Text(raw)
	if !ok || s == "" {
		return (*etree.Document)(nil)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil || doc.Root() == nil {
		return (*etree.Document)(nil)
	}
	return doc
}
