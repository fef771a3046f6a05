package syntax

import (
	"errors"
	"iter"
	"slices"
	"strings"
)

// ErrEmptyValue is returned by ParseComponentValue for input without any
// non-whitespace token.
var ErrEmptyValue = errors.New("css value is empty")

// ErrTrailingInput is returned by ParseComponentValue if input contains more
// than one component value.
var ErrTrailingInput = errors.New("css value has trailing input")

// Kind discriminates component values.
type Kind uint8

// Kinds of component values.
const (
	TokenValue    Kind = iota // a preserved token
	FunctionValue             // a function with arguments
	BlockValue                // a (…), […] or {…} block
)

// ComponentValue is a node of a parsed CSS value.
//
// For TokenValue, Token is the token itself. For FunctionValue, Token is the
// function token and Body holds everything between the parentheses. For
// BlockValue, Token is the opening bracket and Body the block's content.
type ComponentValue struct {
	Kind   Kind
	Token  Token
	Body   []ComponentValue
	closed bool // closing bracket was present
}

// Name returns the name of a function, or "" for other kinds of values.
func (cv ComponentValue) Name() string {
	if cv.Kind != FunctionValue {
		return ""
	}
	return cv.Token.Value
}

// Args returns the arguments of a function, split at top-level commas.
// Whitespace is dropped from the arguments, as are empty arguments.
func (cv ComponentValue) Args() [][]ComponentValue {
	if cv.Kind != FunctionValue {
		return nil
	}
	return SplitCommas(cv.Body)
}

// Is checks if cv is a plain token of type tt.
func (cv ComponentValue) Is(tt TokenType) bool {
	return cv.Kind == TokenValue && cv.Token.Type == tt
}

// IsIdent checks if cv is an identifier matching name (ASCII case-insensitive).
func (cv ComponentValue) IsIdent(name string) bool {
	return cv.Kind == TokenValue && cv.Token.IsIdent(name)
}

// IsFunction checks if cv is a function with one of the given names. If no
// names are given, any function matches.
func (cv ComponentValue) IsFunction(names ...string) bool {
	if cv.Kind != FunctionValue {
		return false
	}
	if len(names) == 0 {
		return true
	}
	for _, n := range names {
		if strings.EqualFold(cv.Token.Value, n) {
			return true
		}
	}
	return false
}

// String re-serializes a component value.
func (cv ComponentValue) String() string {
	var b strings.Builder
	cv.write(&b)
	return b.String()
}

func (cv ComponentValue) write(b *strings.Builder) {
	b.WriteString(cv.Token.String())
	if cv.Kind == TokenValue {
		return
	}
	for _, v := range cv.Body {
		v.write(b)
	}
	if cv.closed {
		b.WriteString(Token{Type: closingBracket(cv.Token.Type)}.String())
	}
}

// Serialize re-serializes a sequence of component values.
func Serialize(values []ComponentValue) string {
	var b strings.Builder
	for _, v := range values {
		v.write(&b)
	}
	return b.String()
}

// ---------------------------------------------------------------------------

// Parser groups CSS tokens into component values.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a parser for a sequence of tokens, usually produced by
// Tokenize.
func NewParser(tokens iter.Seq[Token]) *Parser {
	return &Parser{tokens: slices.Collect(tokens)}
}

// ParseValue tokenizes and parses a raw CSS value string.
func ParseValue(input string) []ComponentValue {
	return NewParser(Tokenize(input)).ParseComponentValues()
}

// ParseComponentValues consumes all remaining tokens and returns them as
// component values. Whitespace is preserved.
func (p *Parser) ParseComponentValues() []ComponentValue {
	var values []ComponentValue
	for {
		t := p.consume()
		if t.Type == EOFToken {
			return values
		}
		values = append(values, p.consumeComponentValue(t))
	}
}

// ParseComponentValue parses exactly one component value, surrounded by
// optional whitespace.
func (p *Parser) ParseComponentValue() (ComponentValue, error) {
	p.skipWhitespace()
	t := p.consume()
	if t.Type == EOFToken {
		return ComponentValue{}, ErrEmptyValue
	}
	v := p.consumeComponentValue(t)
	p.skipWhitespace()
	if p.peek().Type != EOFToken {
		return v, ErrTrailingInput
	}
	return v, nil
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOFToken}
	}
	return p.tokens[p.pos]
}

func (p *Parser) consume() Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) skipWhitespace() {
	for p.peek().Type == WhitespaceToken {
		p.pos++
	}
}

func (p *Parser) consumeComponentValue(t Token) ComponentValue {
	switch t.Type {
	case LeftParenToken, LeftBracketToken, LeftBraceToken:
		return p.consumeNested(BlockValue, t)
	case FunctionToken:
		return p.consumeNested(FunctionValue, t)
	}
	return ComponentValue{Kind: TokenValue, Token: t}
}

// consumeNested consumes the content of a block or function up to its
// matching closing bracket. Running out of input closes everything still open.
func (p *Parser) consumeNested(kind Kind, open Token) ComponentValue {
	cv := ComponentValue{Kind: kind, Token: open}
	end := closingBracket(open.Type)
	for {
		t := p.consume()
		switch t.Type {
		case EOFToken:
			tracer().Debugf("css parser: unbalanced %s", open)
			return cv
		case end:
			cv.closed = true
			return cv
		}
		cv.Body = append(cv.Body, p.consumeComponentValue(t))
	}
}

func closingBracket(open TokenType) TokenType {
	switch open {
	case LeftBracketToken:
		return RightBracketToken
	case LeftBraceToken:
		return RightBraceToken
	}
	return RightParenToken
}

// --- Helpers ---------------------------------------------------------------

// NonWhitespace returns values without whitespace tokens.
func NonWhitespace(values []ComponentValue) []ComponentValue {
	r := make([]ComponentValue, 0, len(values))
	for _, v := range values {
		if !v.Is(WhitespaceToken) {
			r = append(r, v)
		}
	}
	return r
}

// SplitCommas splits values at commas. Whitespace is dropped, as are empty
// groups.
func SplitCommas(values []ComponentValue) [][]ComponentValue {
	var groups [][]ComponentValue
	var group []ComponentValue
	for _, v := range values {
		switch {
		case v.Is(CommaToken):
			if len(group) > 0 {
				groups = append(groups, group)
			}
			group = nil
		case v.Is(WhitespaceToken):
		default:
			group = append(group, v)
		}
	}
	if len(group) > 0 {
		groups = append(groups, group)
	}
	return groups
}

// IsIdentWithValue checks if values consist of a single identifier name,
// ignoring whitespace.
func IsIdentWithValue(values []ComponentValue, name string) bool {
	vs := NonWhitespace(values)
	return len(vs) == 1 && vs[0].IsIdent(name)
}

// URL returns the URL of a url(…) value. Both the url-token form and the
// url() function form with a string argument are accepted.
func URL(cv ComponentValue) (string, bool) {
	if cv.Is(URLToken) {
		return cv.Token.Value, true
	}
	if cv.IsFunction("url", "src") {
		args := cv.Args()
		if len(args) > 0 && len(args[0]) == 1 && args[0][0].Is(StringToken) {
			return args[0][0].Token.Value, true
		}
	}
	return "", false
}
