package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/rendertree/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var myhtml = `<html><head>
<style>
p { color: red; }
</style>
</head><body>
<style>
@media screen { h1, h2 { color: blue; } }
@font-face { font-family: Foo; }
</style>
<p>Hello</p>
</body></html>
`

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.style")
	defer teardown()
	//
	h, err := html.Parse(strings.NewReader(myhtml))
	require.NoError(t, err)
	sheets := ExtractStyleElements(h)
	require.Len(t, sheets, 2)
	assert.False(t, sheets[0].Empty())
	rules := sheets[1].Rules()
	require.Len(t, rules, 1, "@media is flattened, @font-face skipped")
	assert.Contains(t, rules[0].Selector(), "h2")
}

func TestRuleDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.style")
	defer teardown()
	//
	sheet, err := Parse(`div { Color: red; margin: 0 !important; color: green; }`)
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 1)
	r := rules[0]
	assert.Equal(t, []string{"color", "margin", "color"}, r.Properties())
	assert.Equal(t, "green", r.Value("color").String(), "last declaration wins")
	assert.True(t, r.IsImportant("margin"))
	assert.False(t, r.IsImportant("color"))
	normal, important := cssom.Declarations(r)
	assert.Len(t, normal, 2)
	require.Len(t, important, 1)
	assert.Equal(t, "0", important[0].Value.String())
}

func TestAppendRules(t *testing.T) {
	a, err := Parse(`p { color: red; }`)
	require.NoError(t, err)
	b, err := Parse(`h1 { color: blue; }`)
	require.NoError(t, err)
	a.AppendRules(b)
	require.Len(t, a.Rules(), 2)
	assert.Equal(t, "h1", a.Rules()[1].Selector())
	//
	empty, err := Parse(``)
	require.NoError(t, err)
	assert.True(t, empty.Empty())
}

func TestParseInlineStyle(t *testing.T) {
	r, err := ParseInlineStyle(`color: yellow; margin-left: 2px`)
	require.NoError(t, err)
	assert.Equal(t, "", r.Selector())
	assert.Equal(t, "yellow", r.Value("color").String())
	assert.Equal(t, "2px", r.Value("margin-left").String())
}

func TestParseInlineStyleUnterminated(t *testing.T) {
	r, err := ParseInlineStyle(` background-image: url(bg.png) `)
	require.NoError(t, err)
	assert.Equal(t, []string{"background-image"}, r.Properties())
	assert.Equal(t, "url(bg.png)", r.Value("background-image").String())
	//
	r, err = ParseInlineStyle(`color: red;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"color"}, r.Properties())
	//
	r, err = ParseInlineStyle(`   `)
	require.NoError(t, err)
	assert.Empty(t, r.Properties())
}
