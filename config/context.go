package config

import (
	"github.com/npillmayer/rendertree/css"
	"github.com/npillmayer/schuko/tracing"
)

// Context is shared by all steps of a render tree construction.
type Context struct {
	opts   Options
	cache  *ImageCache
	window css.Bounds
	trace  tracing.Trace
}

// Option configures a Context.
type Option func(*Context)

// WithOptions sets the rendering options. The window bounds are taken
// from the options' window, unless set explicitly with WithWindowBounds.
func WithOptions(opts Options) Option {
	return func(ctx *Context) {
		ctx.opts = opts
		ctx.window = opts.Window.Bounds()
	}
}

// WithWindowBounds sets the window's scroll offset and size.
func WithWindowBounds(b css.Bounds) Option {
	return func(ctx *Context) {
		ctx.window = b
	}
}

// WithTracer sets the trace sink.
func WithTracer(t tracing.Trace) Option {
	return func(ctx *Context) {
		ctx.trace = t
	}
}

// NewContext creates a context, starting from the default options.
func NewContext(opts ...Option) *Context {
	ctx := &Context{}
	WithOptions(Defaults())(ctx)
	for _, opt := range opts {
		opt(ctx)
	}
	ctx.cache = newImageCache(&ctx.opts)
	if ctx.trace == nil {
		if ctx.opts.Logging {
			ctx.trace = tracing.Select("rendertree")
		} else {
			ctx.trace = tracing.NoOpTrace()
		}
	}
	return ctx
}

// Options returns the rendering options.
func (ctx *Context) Options() Options {
	return ctx.opts
}

// Cache returns the image cache.
func (ctx *Context) Cache() *ImageCache {
	return ctx.cache
}

// WindowBounds returns the window's scroll offset and size.
func (ctx *Context) WindowBounds() css.Bounds {
	return ctx.window
}

// Trace returns the trace sink.
func (ctx *Context) Trace() tracing.Trace {
	return ctx.trace
}
