package syntax

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURLRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.css")
	defer teardown()
	//
	values := ParseValue(`url("a.png")`)
	require.Len(t, values, 1)
	url, ok := URL(values[0])
	require.True(t, ok, "expected url value, have %v", values[0])
	assert.Equal(t, "a.png", url)
	assert.Equal(t, `url("a.png")`, Serialize(values))
	reparsed := ParseValue(Serialize(values))
	url2, _ := URL(reparsed[0])
	assert.Equal(t, url, url2)
}

func TestParseFunctionArgs(t *testing.T) {
	values := ParseValue("rgba(10, 20 , 30,0.5)")
	require.Len(t, values, 1)
	fn := values[0]
	assert.True(t, fn.IsFunction("RGBA"))
	assert.Equal(t, "rgba", fn.Name())
	args := fn.Args()
	require.Len(t, args, 4)
	for i, want := range []float64{10, 20, 30, 0.5} {
		require.Len(t, args[i], 1)
		assert.Equal(t, want, args[i][0].Token.Number)
	}
	assert.Equal(t, "rgba(10, 20 , 30,0.5)", fn.String())
}

func TestParseNestedFunctions(t *testing.T) {
	values := ParseValue("linear-gradient(to right, rgb(255, 0, 0) 10%, blue)")
	require.Len(t, values, 1)
	args := values[0].Args()
	require.Len(t, args, 3)
	assert.True(t, args[0][0].IsIdent("to"))
	assert.True(t, args[0][1].IsIdent("right"))
	require.Len(t, args[1], 2)
	assert.True(t, args[1][0].IsFunction("rgb"))
	assert.Len(t, args[1][0].Args(), 3)
	assert.True(t, args[1][1].Is(PercentageToken))
}

func TestParseBlocks(t *testing.T) {
	values := ParseValue("calc(1px + (2px * [3]))")
	require.Len(t, values, 1)
	body := NonWhitespace(values[0].Body)
	require.Len(t, body, 3)
	block := body[2]
	assert.Equal(t, BlockValue, block.Kind)
	inner := NonWhitespace(block.Body)
	require.Len(t, inner, 3)
	assert.Equal(t, BlockValue, inner[2].Kind)
	assert.Equal(t, "[3]", inner[2].String())
}

func TestParseUnbalancedIsPermissive(t *testing.T) {
	values := ParseValue("rgb(1, 2")
	require.Len(t, values, 1)
	assert.Len(t, values[0].Args(), 2)
	assert.Equal(t, "rgb(1, 2", values[0].String())
	values = ParseValue("a ) b")
	assert.Len(t, NonWhitespace(values), 3)
}

func TestParseComponentValue(t *testing.T) {
	p := NewParser(Tokenize("  none "))
	v, err := p.ParseComponentValue()
	require.NoError(t, err)
	assert.True(t, v.IsIdent("none"))
	_, err = NewParser(Tokenize("   ")).ParseComponentValue()
	assert.ErrorIs(t, err, ErrEmptyValue)
	_, err = NewParser(Tokenize("a b")).ParseComponentValue()
	assert.ErrorIs(t, err, ErrTrailingInput)
}

func TestSplitCommas(t *testing.T) {
	groups := SplitCommas(ParseValue("a b, , c"))
	require.Len(t, groups, 2)
	assert.Len(t, groups[0], 2)
	assert.Len(t, groups[1], 1)
	assert.True(t, IsIdentWithValue(ParseValue(" none "), "NONE"))
}
