package htmlhost

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/rendertree/css"
	"github.com/npillmayer/rendertree/dom/w3cdom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var myhtml = `<html><head>
<style>
body { color: #333333; font-family: Georgia, serif; }
p { color: red; margin: 4px; }
.note { color: green !important; }
#main p { color: blue; }
section { background-image: url(bg.png); }
h1 { -webkit-background-clip: text; color: transparent; }
@media print { p { color: black; } }
</style>
</head><body>
<section id="main" data-bounds="10 20 300 200">
  <h1 data-bounds="10, 20, 300, 40">Hello</h1>
  <p id="p1">one</p>
  <p id="p2" class="note">two</p>
  <p id="p3" style="color: yellow; margin-left: 2px">three</p>
  <p id="p4" class="note" style="color: yellow">four</p>
  <ul><li>item <b><span>bold</span></b></li></ul>
</section>
</body></html>
`

func parse(t *testing.T, opts ...Option) *Document {
	doc, err := Parse(strings.NewReader(myhtml), opts...)
	require.NoError(t, err)
	return doc
}

func query(t *testing.T, doc *Document, sel string) *Element {
	e, err := doc.QuerySelector(sel)
	require.NoError(t, err)
	require.NotNil(t, e, "no element for %q", sel)
	return e
}

func property(t *testing.T, doc *Document, sel, key string) string {
	s, err := doc.ComputedStyle(query(t, doc, sel))
	require.NoError(t, err)
	return s.GetPropertyValue(key)
}

func TestDocumentElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	doc := parse(t)
	root := doc.DocumentElement()
	require.NotNil(t, root)
	assert.Equal(t, "html", root.TagName())
	assert.Nil(t, root.ParentElement())
	assert.True(t, root.IsHTMLElement())
	body := query(t, doc, "body")
	assert.Same(t, root, body.ParentElement())
	assert.Same(t, body, query(t, doc, "body"), "elements are cached")
}

func TestCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	doc := parse(t)
	assert.Equal(t, "blue", property(t, doc, "#p1", "color"), "id selector beats type selector")
	assert.Equal(t, "green", property(t, doc, "#p2", "color"), "important beats specificity")
	assert.Equal(t, "yellow", property(t, doc, "#p3", "color"), "inline beats selectors")
	assert.Equal(t, "green", property(t, doc, "#p4", "color"), "important beats inline")
	assert.Equal(t, "2px", property(t, doc, "#p3", "margin-left"))
	assert.Equal(t, "4px", property(t, doc, "#p3", "margin-top"), "shorthands are split")
}

func TestInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	doc := parse(t)
	assert.Equal(t, "#333333", property(t, doc, "li", "color"))
	assert.Equal(t, "Georgia, serif", property(t, doc, "span", "font-family"))
	assert.Equal(t, "bold", property(t, doc, "span", "font-weight"), "inherited from <b>")
	assert.Equal(t, "16px", property(t, doc, "span", "font-size"), "document default")
	assert.Equal(t, "black", property(t, doc, "html", "color"))
	assert.Equal(t, "", property(t, doc, "li", "background-image"), "not inherited")
	assert.Equal(t, "url(bg.png)", property(t, doc, "section", "background-image"))
}

func TestUserAgentDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	doc := parse(t)
	assert.Equal(t, "block", property(t, doc, "section", "display"))
	assert.Equal(t, "list-item", property(t, doc, "li", "display"))
	assert.Equal(t, "inline", property(t, doc, "span", "display"))
	assert.Equal(t, "none", property(t, doc, "head", "display"))
	assert.Equal(t, "disc", property(t, doc, "li", "list-style-type"))
	assert.Equal(t, "40px", property(t, doc, "ul", "padding-left"))
	assert.Equal(t, "none", property(t, doc, "p", "border-top-style"))
	assert.Equal(t, "transparent", property(t, doc, "p", "background-color"))
}

func TestAdditionalStyleSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	doc := parse(t, WithStyleSheet("p#p1 { color: purple; }"))
	assert.Equal(t, "purple", property(t, doc, "#p1", "color"), "later sheets win ties")
}

func TestSetStyleProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	doc := parse(t)
	section := query(t, doc, "section")
	assert.Equal(t, "#333333", property(t, doc, "li", "color"))
	require.NoError(t, doc.SetStyleProperty(section, "color", "orange"))
	require.NoError(t, doc.SetStyleProperty(section, "transform", "none"))
	assert.Equal(t, "orange", property(t, doc, "section", "color"))
	assert.Equal(t, "orange", property(t, doc, "li", "color"), "overrides are inherited")
	assert.Equal(t, "none", property(t, doc, "section", "transform"))
}

func TestBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	doc := parse(t)
	r, err := doc.BoundingClientRect(query(t, doc, "h1"))
	require.NoError(t, err)
	assert.Equal(t, css.Bounds{Left: 10, Top: 20, Width: 300, Height: 40}, r)
	r, err = doc.BoundingClientRect(query(t, doc, "p"))
	require.NoError(t, err)
	assert.Equal(t, css.Bounds{}, r)
	//
	doc = parse(t, WithBounds(func(n *html.Node) (css.Bounds, error) {
		return css.Bounds{Width: 1, Height: 1}, nil
	}))
	r, err = doc.BoundingClientRect(query(t, doc, "h1"))
	require.NoError(t, err)
	assert.Equal(t, css.Bounds{Width: 1, Height: 1}, r)
}

func TestMalformedBoundsAttribute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	doc, err := Parse(strings.NewReader(`<div data-bounds="1 2 x 4"></div>`))
	require.NoError(t, err)
	_, err = doc.BoundingClientRect(query(t, doc, "div"))
	assert.Error(t, err)
}

func TestDetachedElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	doc := parse(t)
	p := query(t, doc, "#p1")
	n := p.HTMLNode()
	n.Parent.RemoveChild(n)
	_, err := doc.ComputedStyle(p)
	assert.True(t, errors.Is(err, w3cdom.ErrDetached))
	_, err = doc.BoundingClientRect(p)
	assert.True(t, errors.Is(err, w3cdom.ErrDetached))
	err = doc.SetStyleProperty(p, "color", "red")
	assert.True(t, errors.Is(err, w3cdom.ErrDetached))
	//
	other := parse(t)
	_, err = doc.ComputedStyle(query(t, other, "h1"))
	assert.True(t, errors.Is(err, w3cdom.ErrDetached), "foreign element")
}

func TestChildNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	doc := parse(t)
	li := query(t, doc, "li")
	children := li.ChildNodes()
	require.Len(t, children, 2)
	assert.Equal(t, html.TextNode, children[0].NodeType())
	assert.Equal(t, "item ", children[0].NodeValue())
	assert.Equal(t, html.ElementNode, children[1].NodeType())
	assert.Equal(t, "b", children[1].(w3cdom.Element).TagName())
}

func TestForeignNamespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	doc, err := Parse(strings.NewReader(`<body><svg><circle r="1"/></svg></body>`))
	require.NoError(t, err)
	assert.True(t, query(t, doc, "body").IsHTMLElement())
	assert.False(t, query(t, doc, "svg").IsHTMLElement())
}

func TestInlineStyleWithoutTrailingSemicolon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	doc, err := Parse(strings.NewReader(`<body><section style="background-image: url(bg.png)">` +
		`<h1 style="-webkit-background-clip: text; color: transparent">Hi</h1></section></body>`))
	require.NoError(t, err)
	assert.Equal(t, "url(bg.png)", property(t, doc, "section", "background-image"))
	assert.Equal(t, "transparent", property(t, doc, "h1", "color"))
	assert.Equal(t, "text", property(t, doc, "h1", "-webkit-background-clip"))
}
