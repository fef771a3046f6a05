package rendertree

import (
	"fmt"

	"github.com/npillmayer/rendertree/config"
	"github.com/npillmayer/rendertree/css"
	"github.com/npillmayer/rendertree/dom/style"
	"github.com/npillmayer/rendertree/dom/w3cdom"
)

// Classifier derives the stacking-context and list-owner flags of a node
// from its tag and completed declaration.
type Classifier interface {
	Classify(tag string, styles *style.Declaration) Flags
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(tag string, styles *style.Declaration) Flags

// Classify calls f.
func (f ClassifierFunc) Classify(tag string, styles *style.Declaration) Flags {
	return f(tag, styles)
}

// DefaultClassifier flags
//
//   - real stacking contexts for elements positioned with a z-index,
//     translucent or transformed
//   - stacking contexts for other positioned or floating elements
//   - list owners for `ol`, `ul` and `menu`
var DefaultClassifier = ClassifierFunc(func(tag string, d *style.Declaration) Flags {
	var f Flags
	switch {
	case d.IsPositionedWithZIndex() || d.IsTranslucent() || d.IsTransformed():
		f = f.Set(CreatesRealStackingContext)
	case d.IsPositioned() || d.IsFloating():
		f = f.Set(CreatesStackingContext)
	}
	switch tag {
	case "ol", "ul", "menu":
		f = f.Set(IsListOwner)
	}
	return f
})

// Builder creates render nodes for elements of a host document.
type Builder struct {
	ctx        *config.Context
	host       w3cdom.Host
	oracle     w3cdom.DebugOracle
	classifier Classifier
}

// Option configures a Builder.
type Option func(*Builder)

// WithDebugOracle sets the oracle deciding which elements are debugged.
func WithDebugOracle(oracle w3cdom.DebugOracle) Option {
	return func(b *Builder) {
		if oracle != nil {
			b.oracle = oracle
		}
	}
}

// WithClassifier replaces DefaultClassifier. A nil classifier sets no
// stacking-context or list-owner flags.
func WithClassifier(c Classifier) Option {
	return func(b *Builder) {
		b.classifier = c
	}
}

// NewBuilder creates a builder for render nodes of host. A nil ctx is
// replaced by a context with default options.
func NewBuilder(ctx *config.Context, host w3cdom.Host, opts ...Option) *Builder {
	if ctx == nil {
		ctx = config.NewContext()
	}
	b := &Builder{
		ctx:        ctx,
		host:       host,
		oracle:     w3cdom.NoDebugging{},
		classifier: DefaultClassifier,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Context returns the builder's context.
func (b *Builder) Context() *config.Context {
	return b.ctx
}

// NewNode creates a render node for elem, without children. It
//
//  1. decodes the computed style of elem into a declaration, including the
//     background-clip text correction
//  2. for HTML elements, stops animations and removes transforms in the host,
//     so the host reports untransformed geometry
//  3. reads the element's bounds and translates them into document space
//  4. computes the node's flags
//
// Style overrides are not undone. Errors of the host are returned, wrapped;
// malformed style values are not errors (see style.Declaration.Warnings).
func (b *Builder) NewNode(elem w3cdom.Element) (*Node, error) {
	if b.oracle.IsDebugging(elem, w3cdom.DebugParse) {
		b.ctx.Trace().Debugf("debugging construction of <%s>", elem.TagName())
		b.oracle.Signal(elem, w3cdom.DebugParse)
	}
	src, err := b.host.ComputedStyle(elem)
	if err != nil {
		return nil, fmt.Errorf("computed style of <%s>: %w", elem.TagName(), err)
	}
	decl, err := style.NewDeclaration(b.ctx, src, w3cdom.Ancestors(b.host, elem))
	if err != nil {
		return nil, fmt.Errorf("styles of <%s>: %w", elem.TagName(), err)
	}
	if w := decl.Warnings(); w != nil {
		b.ctx.Trace().Debugf("<%s>: %v", elem.TagName(), w)
	}
	if elem.IsHTMLElement() {
		if decl.IsAnimated() {
			if err := b.host.SetStyleProperty(elem, "animation-duration", "0s"); err != nil {
				return nil, fmt.Errorf("stopping animations of <%s>: %w", elem.TagName(), err)
			}
		}
		if decl.IsTransformed() { // client rects include transforms
			if err := b.host.SetStyleProperty(elem, "transform", "none"); err != nil {
				return nil, fmt.Errorf("resetting transform of <%s>: %w", elem.TagName(), err)
			}
		}
	}
	rect, err := b.host.BoundingClientRect(elem)
	if err != nil {
		return nil, fmt.Errorf("bounds of <%s>: %w", elem.TagName(), err)
	}
	n := newNode(elem.TagName())
	n.Styles = decl
	n.Bounds = css.FromClientRect(rect, b.ctx.WindowBounds())
	if b.classifier != nil {
		n.Flags = n.Flags.Set(b.classifier.Classify(n.Tag, decl))
	}
	if b.oracle.IsDebugging(elem, w3cdom.DebugRender) {
		n.Flags = n.Flags.Set(DebugRender)
	}
	tracer().Debugf("render node %s", n)
	return n, nil
}
