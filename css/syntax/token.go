package syntax

import (
	"strconv"
	"strings"
)

// TokenType is the lexical category of a CSS token.
type TokenType uint8

// Token types, as defined by CSS Syntax Level 3. Comments are never reported.
// Attribute-selector match tokens (|=, ~= etc.) and column tokens are reported
// as DelimToken.
const (
	EOFToken TokenType = iota // end of input, always the last token
	IdentToken
	FunctionToken
	AtKeywordToken
	HashToken
	StringToken
	BadStringToken
	URLToken
	BadURLToken
	DelimToken
	NumberToken
	PercentageToken
	DimensionToken
	UnicodeRangeToken
	WhitespaceToken
	ColonToken
	SemicolonToken
	CommaToken
	LeftBracketToken
	RightBracketToken
	LeftParenToken
	RightParenToken
	LeftBraceToken
	RightBraceToken
	CDOToken
	CDCToken
)

var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	IdentToken:        "Ident",
	FunctionToken:     "Function",
	AtKeywordToken:    "AtKeyword",
	HashToken:         "Hash",
	StringToken:       "String",
	BadStringToken:    "BadString",
	URLToken:          "URL",
	BadURLToken:       "BadURL",
	DelimToken:        "Delim",
	NumberToken:       "Number",
	PercentageToken:   "Percentage",
	DimensionToken:    "Dimension",
	UnicodeRangeToken: "UnicodeRange",
	WhitespaceToken:   "Whitespace",
	ColonToken:        "Colon",
	SemicolonToken:    "Semicolon",
	CommaToken:        "Comma",
	LeftBracketToken:  "LeftBracket",
	RightBracketToken: "RightBracket",
	LeftParenToken:    "LeftParen",
	RightParenToken:   "RightParen",
	LeftBraceToken:    "LeftBrace",
	RightBraceToken:   "RightBrace",
	CDOToken:          "CDO",
	CDCToken:          "CDC",
}

func (tt TokenType) String() string {
	if int(tt) < len(tokenTypeNames) {
		return tokenTypeNames[tt]
	}
	return "TokenType(" + strconv.Itoa(int(tt)) + ")"
}

// Token is a lexical unit of a CSS value.
//
// Value holds the token's semantic payload: the (unescaped) name of idents,
// functions, at-keywords and hashes, the unquoted content of strings and URLs,
// the character of a delimiter, or the numeric part of a number-like token.
// Raw holds the source text the token was produced from.
type Token struct {
	Type    TokenType
	Value   string
	Raw     string
	Number  float64 // numeric value for number, percentage and dimension tokens
	Unit    string  // unit for dimension tokens, "%" for percentages
	Integer bool    // number has integer type flag
}

// String re-serializes a token.
func (t Token) String() string {
	if t.Raw != "" {
		return t.Raw
	}
	switch t.Type {
	case EOFToken:
		return ""
	case IdentToken:
		return t.Value
	case FunctionToken:
		return t.Value + "("
	case AtKeywordToken:
		return "@" + t.Value
	case HashToken:
		return "#" + t.Value
	case StringToken, BadStringToken:
		return strconv.Quote(t.Value)
	case URLToken, BadURLToken:
		return "url(" + strconv.Quote(t.Value) + ")"
	case NumberToken:
		return formatNumber(t.Number)
	case PercentageToken:
		return formatNumber(t.Number) + "%"
	case DimensionToken:
		return formatNumber(t.Number) + t.Unit
	case WhitespaceToken:
		return " "
	case ColonToken:
		return ":"
	case SemicolonToken:
		return ";"
	case CommaToken:
		return ","
	case LeftBracketToken:
		return "["
	case RightBracketToken:
		return "]"
	case LeftParenToken:
		return "("
	case RightParenToken:
		return ")"
	case LeftBraceToken:
		return "{"
	case RightBraceToken:
		return "}"
	case CDOToken:
		return "<!--"
	case CDCToken:
		return "-->"
	}
	return t.Value
}

// IsIdent is true if t is an identifier matching name (ASCII case-insensitive).
func (t Token) IsIdent(name string) bool {
	return t.Type == IdentToken && strings.EqualFold(t.Value, name)
}

// IsNumeric is true for number, percentage and dimension tokens.
func (t Token) IsNumeric() bool {
	return t.Type == NumberToken || t.Type == PercentageToken || t.Type == DimensionToken
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
