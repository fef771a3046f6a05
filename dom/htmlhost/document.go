package htmlhost

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/rendertree/css"
	"github.com/npillmayer/rendertree/dom/style"
	"github.com/npillmayer/rendertree/dom/style/cssom"
	"github.com/npillmayer/rendertree/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/rendertree/dom/w3cdom"
	"golang.org/x/net/html"
)

// BoundsAttribute is the attribute the default bounds function reads
// client rects from, as four numbers: left, top, width, height.
const BoundsAttribute = "data-bounds"

// BoundsFunc delivers the client rect of an HTML element node.
type BoundsFunc func(*html.Node) (css.Bounds, error)

// Document is a static host document: a parsed HTML tree together with
// its stylesheets. It implements w3cdom.Host.
//
// Documents do not lay out content. Client rects are delivered by a
// BoundsFunc, which defaults to reading attribute BoundsAttribute.
type Document struct {
	root      *html.Node
	sheets    []cssom.StyleSheet
	rules     []matchedRule
	elements  map[*html.Node]*Element
	computed  map[*html.Node]*style.PropertyMap
	overrides map[*html.Node][]style.KeyValue
	bounds    BoundsFunc
	uaStyles  *style.PropertyMap
}

// Option configures a Document.
type Option func(*Document) error

// WithStyleSheet adds a stylesheet in textual form. It is applied after the
// stylesheets embedded in the document.
func WithStyleSheet(text string) Option {
	return func(doc *Document) error {
		sheet, err := douceuradapter.Parse(text)
		if err != nil {
			return err
		}
		doc.sheets = append(doc.sheets, sheet)
		return nil
	}
}

// WithBounds replaces the default bounds function.
func WithBounds(f BoundsFunc) Option {
	return func(doc *Document) error {
		if f != nil {
			doc.bounds = f
		}
		return nil
	}
}

// Parse reads an HTML document and creates a host document for it.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return NewDocument(root, opts...)
}

// NewDocument creates a host document for an HTML parse tree. Stylesheets
// embedded in <style> elements are collected.
func NewDocument(root *html.Node, opts ...Option) (*Document, error) {
	doc := &Document{
		root:      root,
		elements:  make(map[*html.Node]*Element),
		computed:  make(map[*html.Node]*style.PropertyMap),
		overrides: make(map[*html.Node][]style.KeyValue),
		bounds:    boundsFromAttribute,
		uaStyles:  style.InitializeDefaultPropertyValues(nil),
	}
	for _, sheet := range douceuradapter.ExtractStyleElements(root) {
		doc.sheets = append(doc.sheets, sheet)
	}
	for _, opt := range opts {
		if err := opt(doc); err != nil {
			return nil, err
		}
	}
	doc.rules = compileRules(doc.sheets)
	tracer().Debugf("document has %d stylesheet(s) with %d selector(s)", len(doc.sheets), len(doc.rules))
	return doc, nil
}

// DocumentElement returns the root element (<html>).
func (doc *Document) DocumentElement() *Element {
	for n := doc.root; n != nil; n = n.FirstChild {
		if n.Type == html.ElementNode {
			return doc.element(n)
		}
		if n.Type == html.DocumentNode {
			for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
				if ch.Type == html.ElementNode {
					return doc.element(ch)
				}
			}
			return nil
		}
	}
	return nil
}

// QuerySelector returns the first element matching a CSS selector, or nil.
func (doc *Document) QuerySelector(selector string) (*Element, error) {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", selector, err)
	}
	n := cascadia.Query(doc.root, sel)
	if n == nil {
		return nil, nil
	}
	return doc.element(n), nil
}

func (doc *Document) element(n *html.Node) *Element {
	if e, ok := doc.elements[n]; ok {
		return e
	}
	e := &Element{n: n, doc: doc}
	doc.elements[n] = e
	return e
}

// --- w3cdom.Host -----------------------------------------------------------

// ComputedStyle returns the computed style of an element.
func (doc *Document) ComputedStyle(elem w3cdom.Element) (style.Source, error) {
	n, err := doc.attached(elem)
	if err != nil {
		return nil, err
	}
	return &computedStyle{pmap: doc.computeStyles(n), node: n}, nil
}

// BoundingClientRect returns the client rect of an element.
func (doc *Document) BoundingClientRect(elem w3cdom.Element) (css.Bounds, error) {
	n, err := doc.attached(elem)
	if err != nil {
		return css.Bounds{}, err
	}
	return doc.bounds(n)
}

// SetStyleProperty overrides a style property of an element, as if set with
// element.style in a browser.
func (doc *Document) SetStyleProperty(elem w3cdom.Element, name, value string) error {
	n, err := doc.attached(elem)
	if err != nil {
		return err
	}
	doc.overrides[n] = append(doc.overrides[n], style.KeyValue{Key: name, Value: style.Property(value)})
	clear(doc.computed) // descendants may inherit
	return nil
}

// attached checks that elem belongs to doc and is part of its tree.
func (doc *Document) attached(elem w3cdom.Element) (*html.Node, error) {
	e, ok := elem.(*Element)
	if !ok || e.doc != doc {
		return nil, fmt.Errorf("foreign element <%s>: %w", elem.TagName(), w3cdom.ErrDetached)
	}
	n := e.n
	for n.Parent != nil {
		n = n.Parent
	}
	if n != doc.root {
		return nil, fmt.Errorf("element <%s>: %w", e.TagName(), w3cdom.ErrDetached)
	}
	return e.n, nil
}

func boundsFromAttribute(n *html.Node) (css.Bounds, error) {
	v := attr(n, BoundsAttribute)
	if v == "" {
		return css.Bounds{}, nil
	}
	fields := strings.Fields(strings.ReplaceAll(v, ",", " "))
	if len(fields) != 4 {
		return css.Bounds{}, fmt.Errorf("attribute %s=%q: expected 4 numbers", BoundsAttribute, v)
	}
	var xs [4]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSuffix(f, "px"), 64)
		if err != nil {
			return css.Bounds{}, fmt.Errorf("attribute %s=%q: %w", BoundsAttribute, v, err)
		}
		xs[i] = x
	}
	return css.Bounds{Left: xs[0], Top: xs[1], Width: xs[2], Height: xs[3]}, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// --- Nodes -----------------------------------------------------------------

// Element is an element of a host document. It implements w3cdom.Element.
type Element struct {
	n   *html.Node
	doc *Document
}

var _ w3cdom.Element = &Element{}

// HTMLNode returns the underlying HTML node.
func (e *Element) HTMLNode() *html.Node {
	return e.n
}

// NodeType is html.ElementNode.
func (e *Element) NodeType() html.NodeType {
	return e.n.Type
}

// NodeValue is empty for elements.
func (e *Element) NodeValue() string {
	return ""
}

// ChildNodes returns the element and text children of e.
func (e *Element) ChildNodes() []w3cdom.Node {
	var children []w3cdom.Node
	for ch := e.n.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.ElementNode:
			children = append(children, e.doc.element(ch))
		case html.TextNode:
			children = append(children, textNode{ch})
		}
	}
	return children
}

// TagName returns the lowercase tag name.
func (e *Element) TagName() string {
	return e.n.Data
}

// ParentElement returns the parent element or nil for the root element.
func (e *Element) ParentElement() w3cdom.Element {
	if p := e.n.Parent; p != nil && p.Type == html.ElementNode {
		return e.doc.element(p)
	}
	return nil
}

// IsHTMLElement is false for elements of foreign namespaces (SVG, MathML).
func (e *Element) IsHTMLElement() bool {
	return e.n.Namespace == ""
}

// GetAttribute returns the value of an attribute or "".
func (e *Element) GetAttribute(key string) string {
	return attr(e.n, key)
}

func (e *Element) String() string {
	return "<" + e.n.Data + ">"
}

type textNode struct {
	n *html.Node
}

func (t textNode) NodeType() html.NodeType { return html.TextNode }
func (t textNode) NodeValue() string { return t.n.Data }
func (t textNode) ChildNodes() []w3cdom.Node { return nil }
