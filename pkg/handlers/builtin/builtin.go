package builtin

import (
	"github.com/arthur-debert/propconv/pkg/types"
)

// SourceName is reported as the source of every built-in handler.
const SourceName = "builtin"

// Option customises the built-in set.
type Option func(*options)

type options struct {
	timeLayouts []string
}

// WithTimeLayouts makes the time handler try layouts before the defaults.
func WithTimeLayouts(layouts ...string) Option {
	return func(o *options) {
		o.timeLayouts = append(o.timeLayouts, layouts...)
	}
}

// Factories returns the built-in handler factories in registration order.
func Factories(opts ...Option) []types.Factory {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	timeLayouts := o.timeLayouts
	return []types.Factory{
		types.FactoryOf[BoolHandler](),
		types.FactoryOf[StringHandler](),
		types.FactoryOf[IntHandler[int]](),
		types.FactoryOf[IntHandler[int8]](),
		types.FactoryOf[IntHandler[int16]](),
		types.FactoryOf[IntHandler[int32]](),
		types.FactoryOf[IntHandler[int64]](),
		types.FactoryOf[UintHandler[uint]](),
		types.FactoryOf[UintHandler[uint8]](),
		types.FactoryOf[UintHandler[uint16]](),
		types.FactoryOf[UintHandler[uint32]](),
		types.FactoryOf[UintHandler[uint64]](),
		types.FactoryOf[FloatHandler[float32]](),
		types.FactoryOf[FloatHandler[float64]](),
		func() types.TypeHandler { return NewTimeHandler(timeLayouts...) },
		types.FactoryOf[DurationHandler](),
		types.FactoryOf[UUIDHandler](),
	}
}
