package rendertree

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/rendertree/config"
	"github.com/npillmayer/rendertree/css"
	"github.com/npillmayer/rendertree/dom/style"
	"github.com/npillmayer/rendertree/dom/w3cdom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

type fakeElem struct {
	tag     string
	parent  *fakeElem
	foreign bool
	styles  map[string]string
	attrs   map[string]string
	rect    css.Bounds
}

func (e *fakeElem) NodeType() html.NodeType { return html.ElementNode }
func (e *fakeElem) NodeValue() string { return "" }
func (e *fakeElem) ChildNodes() []w3cdom.Node { return nil }
func (e *fakeElem) TagName() string { return e.tag }
func (e *fakeElem) IsHTMLElement() bool { return !e.foreign }
func (e *fakeElem) GetAttribute(a string) string { return e.attrs[a] }
func (e *fakeElem) ParentElement() w3cdom.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// fakeHost records the calls it receives.
type fakeHost struct {
	calls      []string
	boundsErr  error
	styleErr   error
	overridden map[string]string
}

func (h *fakeHost) ComputedStyle(e w3cdom.Element) (style.Source, error) {
	h.calls = append(h.calls, "style "+e.TagName())
	if h.styleErr != nil {
		return nil, h.styleErr
	}
	m := e.(*fakeElem).styles
	return style.SourceFunc(func(name string) string { return m[name] }), nil
}

func (h *fakeHost) BoundingClientRect(e w3cdom.Element) (css.Bounds, error) {
	h.calls = append(h.calls, "bounds "+e.TagName())
	return e.(*fakeElem).rect, h.boundsErr
}

func (h *fakeHost) SetStyleProperty(e w3cdom.Element, name, value string) error {
	h.calls = append(h.calls, "set "+name+"="+value)
	if h.overridden == nil {
		h.overridden = map[string]string{}
	}
	h.overridden[name] = value
	return nil
}

func TestNewNodePlain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	host := &fakeHost{}
	div := &fakeElem{tag: "div",
		styles: map[string]string{"display": "block", "color": "black"},
		rect:   css.Bounds{Left: 10, Top: 20, Width: 100, Height: 50},
	}
	ctx := config.NewContext(config.WithWindowBounds(css.Bounds{Left: 0, Top: 300}))
	n, err := NewBuilder(ctx, host).NewNode(div)
	require.NoError(t, err)
	assert.Equal(t, css.Bounds{Left: 10, Top: 320, Width: 100, Height: 50}, n.Bounds)
	assert.Equal(t, css.BlockMode, n.Styles.Display)
	assert.Equal(t, Flags(0), n.Flags)
	assert.Equal(t, []string{"style div", "bounds div"}, host.calls)
	assert.Equal(t, 0, n.ChildCount())
	assert.Empty(t, n.TextRuns)
}

func TestNewNodeOverridesBeforeBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	host := &fakeHost{}
	spinner := &fakeElem{tag: "div", styles: map[string]string{
		"animation-duration": "2s",
		"transform":          "rotate(45deg)",
	}}
	n, err := NewBuilder(nil, host).NewNode(spinner)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"style div",
		"set animation-duration=0s",
		"set transform=none",
		"bounds div",
	}, host.calls)
	assert.True(t, n.Styles.IsAnimated(), "snapshot keeps the decoded animation")
	assert.NotNil(t, n.Styles.Transform, "snapshot keeps the decoded transform")
	assert.True(t, n.Flags.Has(CreatesRealStackingContext))
}

func TestNewNodeForeignElementNotOverridden(t *testing.T) {
	host := &fakeHost{}
	svg := &fakeElem{tag: "svg", foreign: true, styles: map[string]string{
		"transform": "scale(2)",
	}}
	_, err := NewBuilder(nil, host).NewNode(svg)
	require.NoError(t, err)
	assert.Empty(t, host.overridden)
}

func TestNewNodeHostErrors(t *testing.T) {
	div := &fakeElem{tag: "div"}
	_, err := NewBuilder(nil, &fakeHost{boundsErr: w3cdom.ErrDetached}).NewNode(div)
	assert.ErrorIs(t, err, w3cdom.ErrDetached)
	_, err = NewBuilder(nil, &fakeHost{styleErr: w3cdom.ErrDetached}).NewNode(div)
	assert.ErrorIs(t, err, w3cdom.ErrDetached)
}

func TestNewNodeClippedBackground(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	section := &fakeElem{tag: "section", styles: map[string]string{"background-image": `url("bg.png")`}}
	div := &fakeElem{tag: "div", parent: section, styles: map[string]string{}}
	h1 := &fakeElem{tag: "h1", parent: div, styles: map[string]string{
		"-webkit-background-clip": "text",
		"-webkit-text-fill-color": "transparent",
		"background-color":        "rgba(0, 0, 0, 0)",
		"background-image":        "none",
	}}
	host := &fakeHost{}
	n, err := NewBuilder(nil, host).NewNode(h1)
	require.NoError(t, err)
	require.Len(t, n.Styles.BackgroundImage, 1)
	assert.Equal(t, "bg.png", n.Styles.BackgroundImage[0].URL)
	assert.Equal(t, []string{"style h1", "style div", "style section", "bounds h1"}, host.calls)
}

func TestFlags(t *testing.T) {
	host := &fakeHost{}
	build := func(tag string, styles map[string]string) Flags {
		n, err := NewBuilder(nil, host).NewNode(&fakeElem{tag: tag, styles: styles})
		require.NoError(t, err)
		return n.Flags
	}
	assert.Equal(t, IsListOwner, build("ul", nil))
	assert.Equal(t, CreatesStackingContext, build("div", map[string]string{"position": "relative"}))
	assert.Equal(t, CreatesStackingContext, build("div", map[string]string{"float": "left"}))
	assert.Equal(t, CreatesRealStackingContext,
		build("div", map[string]string{"position": "absolute", "z-index": "2"}))
	assert.Equal(t, CreatesRealStackingContext|IsListOwner,
		build("ol", map[string]string{"opacity": "0.5"}))

	f := CreatesStackingContext | DebugRender
	assert.True(t, f.Has(DebugRender))
	assert.False(t, f.Has(IsListOwner))
	assert.Equal(t, Flags(2|16), f)
	assert.Equal(t, "stacking-context|debug-render", f.String())
}

func TestDebugOracle(t *testing.T) {
	oracle := &w3cdom.AttributeOracle{}
	host := &fakeHost{}
	b := NewBuilder(nil, host, WithDebugOracle(oracle), WithClassifier(nil))
	p := &fakeElem{tag: "p", attrs: map[string]string{w3cdom.DebugAttribute: "render"}}
	n, err := b.NewNode(p)
	require.NoError(t, err)
	assert.Equal(t, DebugRender, n.Flags)
	assert.Equal(t, 0, oracle.Signals)

	p.attrs[w3cdom.DebugAttribute] = "parse"
	n, err = b.NewNode(p)
	require.NoError(t, err)
	assert.Equal(t, Flags(0), n.Flags)
	assert.Equal(t, 1, oracle.Signals)
}

func TestNodeImmutableAfterOverrides(t *testing.T) {
	styles := map[string]string{"transform": "translateX(5px)"}
	div := &fakeElem{tag: "div", styles: styles}
	n, err := NewBuilder(nil, &fakeHost{}).NewNode(div)
	require.NoError(t, err)
	styles["transform"] = "none" // host changes after construction
	styles["display"] = "none"
	assert.NotNil(t, n.Styles.Transform)
	assert.Equal(t, css.InlineMode, n.Styles.Display)
}

func TestNodeDump(t *testing.T) {
	host := &fakeHost{}
	b := NewBuilder(nil, host)
	ul, err := b.NewNode(&fakeElem{tag: "ul"})
	require.NoError(t, err)
	li, err := b.NewNode(&fakeElem{tag: "li"})
	require.NoError(t, err)
	li.AddText("first")
	ul.AddChild(li)
	assert.Same(t, ul, li.Parent())
	require.Len(t, ul.Children(), 1)
	assert.Same(t, li, ul.Children()[0])
	dump := ul.Dump()
	t.Log("\n" + dump)
	assert.True(t, strings.Contains(dump, "<ul>"))
	assert.True(t, strings.Contains(dump, `"first"`))
}

func TestErrorsAreWrapped(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewBuilder(nil, &fakeHost{boundsErr: boom}).NewNode(&fakeElem{tag: "span"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "<span>")
}
