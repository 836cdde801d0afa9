package renderer

import (
	stderrors "errors"

	"github.com/bear-block/chatx/internal/bubble"
	"github.com/bear-block/chatx/internal/decorator"
	"github.com/bear-block/chatx/internal/logger"
	"github.com/bear-block/chatx/internal/message"
	"github.com/bear-block/chatx/pkg/errors"
)

// Factory resolves the renderer for each message and produces its terminal
// representation. Resolution order:
//
//  1. a registry binding for the message's kind
//  2. the factory-wide override, when configured
//  3. the built-in renderer for text, image, video, audio, file and system
//  4. the GIF sniff for unrecognized kinds that carry GIF content
//  5. the plain text renderer
//
// The registry outranks the built-ins so hosts can replace built-in
// rendering per kind. The chain always produces output; no message is
// dropped for having an unknown kind.
type Factory struct {
	registry *Registry
	override RenderFunc
	log      *logger.Logger
}

// Option configures a Factory.
type Option func(*Factory)

// WithOverride installs a renderer consulted for every message whose kind
// has no registry binding, before the built-ins.
func WithOverride(fn RenderFunc) Option {
	return func(f *Factory) { f.override = fn }
}

// WithLogger attaches a logger used to trace dispatch decisions.
func WithLogger(log *logger.Logger) Option {
	return func(f *Factory) { f.log = log.WithComponent("factory") }
}

// NewFactory builds a message render factory on top of the given registry.
// The registry is required even when empty.
func NewFactory(registry *Registry, opts ...Option) (*Factory, error) {
	if registry == nil {
		return nil, errors.NewRegistryError("", stderrors.New("renderer registry is required"))
	}

	f := &Factory{registry: registry}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Render produces the terminal representation of a message using the
// resolution order documented on Factory.
func (f *Factory) Render(msg message.Message, ctx Context) string {
	if fn, ok := f.registry.Get(msg.Kind); ok {
		return fn(msg, ctx)
	}
	if f.override != nil {
		return f.override(msg, ctx)
	}

	switch msg.Kind {
	case message.KindText:
		return Text(msg, ctx)
	case message.KindImage:
		return Image(msg, ctx)
	case message.KindVideo:
		return Video(msg, ctx)
	case message.KindAudio:
		return Audio(msg, ctx)
	case message.KindFile:
		return File(msg, ctx)
	case message.KindSystem:
		return System(msg, ctx)
	}

	if msg.Kind == message.KindGif || msg.LooksLikeGif() {
		return Gif(msg, ctx)
	}

	f.log.WithFields(map[string]any{
		"kind":       msg.Kind.String(),
		"message_id": msg.ID,
	}).Debug("unknown message kind, rendering as text")
	return Text(msg, ctx)
}

// Parts exposes the intermediate render inputs the factory would hand to the
// bubble compositor, so hosts can assemble fully custom message rows while
// reusing the stock sender detection, variant selection and decorators.
type Parts struct {
	IsCurrentUser bool
	Variant       bubble.Variant
	Decorators    []decorator.Decorator
}

// RenderParts computes the bubble inputs for a message without rendering it.
func (f *Factory) RenderParts(msg message.Message, ctx Context) Parts {
	return Parts{
		IsCurrentUser: ctx.IsCurrentUser(msg),
		Variant:       bubble.VariantFor(msg),
		Decorators:    decorator.Build(msg, ctx.CurrentUserID, ctx.Actions, ctx.Context),
	}
}
