package syntax

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(input string) []Token {
	return slices.Collect(Tokenize(input))
}

func types(tokens []Token) []TokenType {
	tt := make([]TokenType, len(tokens))
	for i, t := range tokens {
		tt[i] = t.Type
	}
	return tt
}

func TestTokenizeEmpty(t *testing.T) {
	tokens := collect("")
	if len(tokens) != 1 || tokens[0].Type != EOFToken {
		t.Errorf("expected single EOF token for empty input, have %v", tokens)
	}
}

func TestTokenizeBorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.css")
	defer teardown()
	//
	tokens := collect("10px   solid #FFF")
	assert.Equal(t, []TokenType{DimensionToken, WhitespaceToken, IdentToken,
		WhitespaceToken, HashToken, EOFToken}, types(tokens))
	assert.Equal(t, 10.0, tokens[0].Number)
	assert.Equal(t, "px", tokens[0].Unit)
	assert.True(t, tokens[0].Integer)
	assert.Equal(t, " ", tokens[1].Raw, "whitespace runs should collapse")
	assert.Equal(t, "FFF", tokens[4].Value)
}

func TestTokenizeNumbers(t *testing.T) {
	tokens := collect("-1.5em 50% 3 2PX")
	nums := make([]Token, 0, 4)
	for _, tok := range tokens {
		if tok.IsNumeric() {
			nums = append(nums, tok)
		}
	}
	require.Len(t, nums, 4)
	assert.Equal(t, -1.5, nums[0].Number)
	assert.Equal(t, "em", nums[0].Unit)
	assert.False(t, nums[0].Integer)
	assert.Equal(t, PercentageToken, nums[1].Type)
	assert.Equal(t, 50.0, nums[1].Number)
	assert.Equal(t, NumberToken, nums[2].Type)
	assert.Equal(t, 2.0, nums[3].Number)
	assert.Equal(t, "px", nums[3].Unit)
}

func TestTokenizeStrings(t *testing.T) {
	tokens := collect(`"Times New Roman", 'a\"b'`)
	require.Equal(t, StringToken, tokens[0].Type)
	assert.Equal(t, "Times New Roman", tokens[0].Value)
	assert.Equal(t, CommaToken, tokens[1].Type)
	last := tokens[len(tokens)-2]
	assert.Equal(t, StringToken, last.Type)
	assert.Equal(t, `a"b`, last.Value)
}

func TestTokenizeUnknownCharacters(t *testing.T) {
	tokens := collect("a ? b")
	assert.Equal(t, []TokenType{IdentToken, WhitespaceToken, DelimToken,
		WhitespaceToken, IdentToken, EOFToken}, types(tokens))
	assert.Equal(t, "?", tokens[2].Value)
}

func TestTokenizeDropsComments(t *testing.T) {
	tokens := collect("red/* comment */blue")
	assert.Equal(t, []TokenType{IdentToken, IdentToken, EOFToken}, types(tokens))
}

func TestTokenizeIsRestartable(t *testing.T) {
	seq := Tokenize("rgb(1, 2, 3)")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, "abc", unescape(`\61 bc`))
	assert.Equal(t, "a;b", unescape(`a\;b`))
	assert.Equal(t, "plain", unescape("plain"))
}

func TestURLContent(t *testing.T) {
	assert.Equal(t, "a.png", urlContent(`url( "a.png" )`))
	assert.Equal(t, "b c.png", urlContent(`url('b c.png')`))
	assert.Equal(t, "x.png", urlContent(`url(x.png)`))
}
