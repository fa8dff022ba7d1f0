package convert

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/propconv/pkg/handlers/builtin"
	"github.com/arthur-debert/propconv/pkg/logging"
	"github.com/arthur-debert/propconv/pkg/registry"
	"github.com/arthur-debert/propconv/pkg/sources"
	"github.com/arthur-debert/propconv/pkg/types"
)

// ExplicitSource is reported as the source of handlers added through
// RegisterTypeHandler.
const ExplicitSource = "explicit"

// HandlerInfo describes one registered handler.
type HandlerInfo struct {
	Type    reflect.Type
	Handler types.TypeHandler
	Source  string
}

// Rejection records a handler dropped by discovery because its type was
// already registered.
type Rejection struct {
	Type             reflect.Type
	Rejected         string
	RejectedSource   string
	Registered       string
	RegisteredSource string
}

// String implements fmt.Stringer for log output.
func (rej Rejection) String() string {
	return fmt.Sprintf("%s from %s rejected for %s (registered: %s from %s)",
		rej.Rejected, rej.RejectedSource, rej.Type, rej.Registered, rej.RegisteredSource)
}

// HandlerRegistry maps target types to conversion handlers.
type HandlerRegistry struct {
	once        sync.Once
	discoveries atomic.Int32

	logger   zerolog.Logger
	builtins []types.Factory
	sources  func() []types.Source
	disabled map[string]bool

	// mu serialises all mutation; reads go through the stores' own locks.
	mu         sync.Mutex
	handlers   registry.Registry[reflect.Type, types.TypeHandler]
	families   registry.Registry[string, reflect.Type]
	origins    map[reflect.Type]string
	rejections []Rejection
}

// New creates a registry. Discovery runs on first use.
func New(opts ...Option) *HandlerRegistry {
	r := &HandlerRegistry{
		logger:   logging.GetLogger("convert"),
		builtins: builtin.Factories(),
		sources:  sources.All,
		disabled: make(map[string]bool),
		handlers: registry.New[reflect.Type, types.TypeHandler](),
		families: registry.New[string, reflect.Type](),
		origins:  make(map[reflect.Type]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultRegistry *HandlerRegistry
	defaultOnce     sync.Once
)

// Default returns a lazily created registry that uses the process
// catalogue. Programs that construct their own registry should pass it
// around instead.
func Default() *HandlerRegistry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// GetHandlerForType returns the handler for t. It reports false when no
// handler matches, including for a nil type.
func (r *HandlerRegistry) GetHandlerForType(t reflect.Type) (types.TypeHandler, bool) {
	if t == nil {
		return nil, false
	}
	r.ensureDiscovered()

	if h, ok := r.handlers.Lookup(t); ok {
		return h, true
	}

	family := familyKey(t)
	if family == "" {
		return nil, false
	}
	registered, ok := r.families.Lookup(family)
	if !ok {
		return nil, false
	}
	return r.handlers.Lookup(registered)
}

// HandlerFor returns the handler for T.
func HandlerFor[T any](r *HandlerRegistry) (types.TypeHandler, bool) {
	return r.GetHandlerForType(types.TypeOf[T]())
}

// Convert converts raw to t. It reports false when no handler exists, in
// which case the caller applies its own fallback.
func (r *HandlerRegistry) Convert(t reflect.Type, raw any) (any, bool) {
	h, ok := r.GetHandlerForType(t)
	if !ok {
		return nil, false
	}
	return h.Convert(raw), true
}

// ConvertTo converts raw to T. It reports false when there is no handler
// or when the handler's result is not a T, which happens when a generic
// family handler serves a different instantiation.
func ConvertTo[T any](r *HandlerRegistry, raw any) (T, bool) {
	var zero T
	v, ok := r.Convert(types.TypeOf[T](), raw)
	if !ok {
		return zero, false
	}
	out, ok := v.(T)
	if !ok {
		return zero, false
	}
	return out, true
}

// RegisterTypeHandler adds the handler built by factory unless its type
// is already registered, in which case the call is silently ignored.
// Handlers marked ManualRegistration are accepted. It reports whether the
// handler was added.
func (r *HandlerRegistry) RegisterTypeHandler(factory types.Factory) bool {
	r.ensureDiscovered()

	h := instantiate(factory)
	if h == nil {
		return false
	}
	return r.add(h, ExplicitSource, false)
}

// Handlers returns the registered handlers in registration order.
func (r *HandlerRegistry) Handlers() []HandlerInfo {
	r.ensureDiscovered()

	r.mu.Lock()
	defer r.mu.Unlock()

	keys := r.handlers.List()
	out := make([]HandlerInfo, 0, len(keys))
	for _, t := range keys {
		h, _ := r.handlers.Lookup(t)
		out = append(out, HandlerInfo{Type: t, Handler: h, Source: r.origins[t]})
	}
	return out
}

// Rejections returns the duplicates dropped during discovery.
func (r *HandlerRegistry) Rejections() []Rejection {
	r.ensureDiscovered()

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Rejection, len(r.rejections))
	copy(out, r.rejections)
	return out
}

// Len returns the number of registered handlers.
func (r *HandlerRegistry) Len() int {
	r.ensureDiscovered()
	return r.handlers.Count()
}

// Discoveries returns how many discovery passes have run: 0 before first
// use, 1 afterwards.
func (r *HandlerRegistry) Discoveries() int {
	return int(r.discoveries.Load())
}

func (r *HandlerRegistry) ensureDiscovered() {
	r.once.Do(r.discover)
}

// add registers h under its supported type. On conflict the existing
// handler is kept; discovery conflicts are recorded and logged.
func (r *HandlerRegistry) add(h types.TypeHandler, source string, discovery bool) bool {
	t := h.TypeSupported()

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.handlers.Lookup(t); ok {
		if discovery {
			rej := Rejection{
				Type:             t,
				Rejected:         types.HandlerName(h),
				RejectedSource:   source,
				Registered:       types.HandlerName(existing),
				RegisteredSource: r.origins[t],
			}
			r.rejections = append(r.rejections, rej)
			r.logger.Warn().
				Str("source", source).
				Str("type", t.String()).
				Str("rejected", rej.Rejected).
				Str("registered", rej.Registered).
				Str("registeredSource", rej.RegisteredSource).
				Msg("Handler already registered for type, rejecting")
		}
		return false
	}

	if err := r.handlers.Register(t, h); err != nil {
		return false
	}
	r.origins[t] = source

	if family := familyKey(t); family != "" {
		if err := r.families.Register(family, t); err != nil {
			r.logger.Debug().
				Str("family", family).
				Str("type", t.String()).
				Msg("Generic family already served by another type")
		}
	}
	return true
}
