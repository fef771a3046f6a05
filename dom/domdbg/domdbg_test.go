package domdbg

import (
	"bytes"
	"os/exec"
	"strings"
	"testing"

	"github.com/npillmayer/rendertree/dom"
	"github.com/npillmayer/rendertree/dom/htmlhost"
	"github.com/npillmayer/rendertree/dom/rendertree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var myhtml = `<html><body data-bounds="0 0 800 600">
<div style="position: absolute; z-index: 1; background-image: url(bg.png)" data-bounds="5 5 50 50">
  This is a longer text
</div>
</body></html>
`

func renderTree(t *testing.T) *rendertree.Node {
	doc, err := htmlhost.Parse(strings.NewReader(myhtml))
	require.NoError(t, err)
	root, err := dom.BuildTree(rendertree.NewBuilder(nil, doc), doc.DocumentElement())
	require.NoError(t, err)
	return root
}

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	var b bytes.Buffer
	require.NoError(t, ToGraphViz(renderTree(t), &b, nil))
	dot := b.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, ">div<")
	assert.Contains(t, dot, "real-stacking-context")
	assert.Contains(t, dot, "url(bg.png)")
	assert.Contains(t, dot, `This␣is...`)
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, `fillcolor="lightblue3"`)
	assert.NotContains(t, dot, `fillcolor="lightgoldenrod1"`, "no inline-level elements")
}

func TestToGraphVizInlineLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	doc, err := htmlhost.Parse(strings.NewReader(`<body><p>a <span>b</span></p></body>`))
	require.NoError(t, err)
	root, err := dom.BuildTree(rendertree.NewBuilder(nil, doc), doc.DocumentElement())
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, ToGraphViz(root, &b, nil))
	assert.Contains(t, b.String(), `fillcolor="lightgoldenrod1"`)
}

func TestToGraphVizStyleSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	var b bytes.Buffer
	require.NoError(t, ToGraphViz(renderTree(t), &b, []string{"opacity", "no-such-property"}))
	dot := b.String()
	assert.Contains(t, dot, "opacity:")
	assert.NotContains(t, dot, "no-such-property")
	assert.NotContains(t, dot, "background-image:")
}

func TestDotty(t *testing.T) {
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("GraphViz not installed")
	}
	teardown := gotestingadapter.QuickConfig(t, "rendertree.dom")
	defer teardown()
	//
	Dotty(renderTree(t), t)
}
