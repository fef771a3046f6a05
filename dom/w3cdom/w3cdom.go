/*
Package w3cdom defines the interfaces a host document has to implement to
have render trees built from it.

A host is anything able to deliver W3C-style computed styles and client
rects for its elements: a browser bridge, a headless engine, or the static
reference host in package htmlhost. Render tree construction never keeps
references to host elements.

See also https://www.w3schools.com/XML/dom_intro.asp

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"errors"
	"iter"

	"github.com/npillmayer/rendertree/css"
	"github.com/npillmayer/rendertree/dom/style"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'rendertree.dom'.
func tracer() tracing.Trace {
	return tracing.Select("rendertree.dom")
}

// ErrDetached is returned by hosts for elements no longer attached to a
// document.
var ErrDetached = errors.New("element is detached from document")

// Node represents W3C-type Node
type Node interface {
	NodeType() html.NodeType // type of the underlying HTML node (ElementNode, TextNode, etc.)
	NodeValue() string       // text content for text nodes, "" otherwise
	ChildNodes() []Node      // get a list of all children-nodes
}

// Element represents W3C-type Element.
type Element interface {
	Node
	TagName() string            // lowercase tag name
	ParentElement() Element     // nil for the root element
	IsHTMLElement() bool        // false for SVG and other foreign elements
	GetAttribute(string) string // "" for absent attributes
}

// Host delivers computed style and geometry for elements, and lets clients
// override single style properties.
type Host interface {
	ComputedStyle(Element) (style.Source, error)
	// BoundingClientRect returns an element's rect in viewport coordinates.
	BoundingClientRect(Element) (css.Bounds, error)
	// SetStyleProperty sets an inline style property, overriding the cascade.
	SetStyleProperty(elem Element, name, value string) error
}

// Ancestors iterates over the computed styles of the ancestors of elem,
// nearest first, up to the document root. A host error ends the iteration
// after it has been yielded.
func Ancestors(host Host, elem Element) iter.Seq2[style.Source, error] {
	return func(yield func(style.Source, error) bool) {
		if elem == nil {
			return
		}
		for anc := elem.ParentElement(); anc != nil; anc = anc.ParentElement() {
			src, err := host.ComputedStyle(anc)
			if !yield(src, err) || err != nil {
				return
			}
		}
	}
}

// --- Debugging -------------------------------------------------------------

// DebugCategory selects what a client wants to debug.
type DebugCategory uint8

// Debug categories.
const (
	DebugParse  DebugCategory = iota // construction of a node
	DebugRender                      // painting of a node
)

func (c DebugCategory) String() string {
	switch c {
	case DebugParse:
		return "parse"
	case DebugRender:
		return "render"
	}
	return "unknown"
}

// DebugOracle decides which elements are being debugged. The render tree
// only asks; breakpoints or other policies are up to the oracle.
type DebugOracle interface {
	IsDebugging(elem Element, category DebugCategory) bool
	Signal(elem Element, category DebugCategory)
}

// NoDebugging is a DebugOracle which never debugs.
type NoDebugging struct{}

// IsDebugging returns false.
func (NoDebugging) IsDebugging(Element, DebugCategory) bool { return false }

// Signal does nothing.
func (NoDebugging) Signal(Element, DebugCategory) {}

// AttributeOracle debugs elements carrying an attribute
// `data-html2canvas-debug`, with a value of `all`, `parse` or `render`.
// Signals are traced and counted.
type AttributeOracle struct {
	Signals int
}

// DebugAttribute is the attribute AttributeOracle looks for.
const DebugAttribute = "data-html2canvas-debug"

// IsDebugging checks the debug attribute of elem.
func (o *AttributeOracle) IsDebugging(elem Element, category DebugCategory) bool {
	if elem == nil {
		return false
	}
	switch elem.GetAttribute(DebugAttribute) {
	case "all":
		return true
	case category.String():
		return true
	}
	return false
}

// Signal traces and counts a debugging event.
func (o *AttributeOracle) Signal(elem Element, category DebugCategory) {
	o.Signals++
	tracer().Infof("debugging <%s> (%s)", elem.TagName(), category)
}
