package renderer

import (
	"sync"

	"github.com/bear-block/chatx/internal/logger"
	"github.com/bear-block/chatx/internal/message"
)

// Registry maps message kinds to renderers. Hosts register renderers for
// custom kinds, or re-register built-in kinds to replace their rendering.
// Registration is last-write-wins and all operations are safe for concurrent
// use. Kinds preserves first-registration order.
type Registry struct {
	mu        sync.RWMutex
	renderers map[message.Kind]RenderFunc
	order     []message.Kind
	log       *logger.Logger
}

// NewRegistry returns an empty renderer registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[message.Kind]RenderFunc)}
}

// WithLogger attaches a logger used to trace registrations. A nil logger
// disables tracing.
func (r *Registry) WithLogger(log *logger.Logger) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = log.WithComponent("registry")
	return r
}

// Register binds a renderer to a kind, replacing any previous binding. The
// kind keeps its original position in Kinds when re-registered. Nil
// renderers are ignored.
func (r *Registry) Register(kind message.Kind, fn RenderFunc) {
	if kind == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[kind]; !exists {
		r.order = append(r.order, kind)
	} else {
		r.log.WithFields(map[string]any{"kind": kind.String()}).Debug("renderer replaced")
	}
	r.renderers[kind] = fn
}

// Unregister removes the binding for a kind. Unknown kinds are a no-op.
func (r *Registry) Unregister(kind message.Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[kind]; !exists {
		return
	}
	delete(r.renderers, kind)
	for i, k := range r.order {
		if k == kind {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns the renderer bound to a kind.
func (r *Registry) Get(kind message.Kind) (RenderFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.renderers[kind]
	return fn, ok
}

// Has reports whether a renderer is bound to the kind.
func (r *Registry) Has(kind message.Kind) bool {
	_, ok := r.Get(kind)
	return ok
}

// Kinds returns all registered kinds in first-registration order.
func (r *Registry) Kinds() []message.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]message.Kind, len(r.order))
	copy(kinds, r.order)
	return kinds
}

// Len returns the number of registered renderers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.renderers)
}

// RegisterTyped binds a renderer that works on a decoded payload instead of
// the raw message. Messages whose payload fails to decode render nothing.
func RegisterTyped[T any](r *Registry, kind message.Kind, decode func(message.Message) (T, bool), render func(msg message.Message, payload T, ctx Context) string) {
	r.Register(kind, func(msg message.Message, ctx Context) string {
		payload, ok := decode(msg)
		if !ok {
			return ""
		}
		return render(msg, payload, ctx)
	})
}

// CustomPayload decodes a typed value out of the message's custom data under
// the given key, for use with RegisterTyped.
func CustomPayload[T any](key string) func(message.Message) (T, bool) {
	return func(msg message.Message) (T, bool) {
		var zero T
		if msg.Custom == nil {
			return zero, false
		}
		raw, ok := msg.Custom[key]
		if !ok {
			return zero, false
		}
		payload, ok := raw.(T)
		if !ok {
			return zero, false
		}
		return payload, true
	}
}
