package syntax

import (
	"errors"
	"io"
	"iter"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Tokenize returns the tokens of a raw CSS value string. The sequence is
// produced lazily; every iteration re-tokenizes input from the start.
// The last token of a complete iteration is always an EOFToken.
//
// Tokenizing never fails. Characters which do not start a valid token are
// passed on as DelimToken.
func Tokenize(input string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		lexer := css.NewLexer(parse.NewInput(strings.NewReader(input)))
		for {
			tt, data := lexer.Next()
			if tt == css.ErrorToken {
				if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
					tracer().Debugf("css tokenizer stopped early: %v", err)
				}
				yield(Token{Type: EOFToken})
				return
			}
			tok, ok := makeToken(tt, string(data))
			if !ok {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// makeToken converts a lexer token. Comments and empty tokens are dropped.
func makeToken(tt css.TokenType, data string) (Token, bool) {
	tok := Token{Raw: data}
	switch tt {
	case css.CommentToken, css.EmptyToken:
		return tok, false
	case css.IdentToken, css.CustomPropertyNameToken:
		tok.Type = IdentToken
		tok.Value = unescape(data)
	case css.FunctionToken:
		tok.Type = FunctionToken
		tok.Value = unescape(strings.TrimSuffix(data, "("))
	case css.AtKeywordToken:
		tok.Type = AtKeywordToken
		tok.Value = unescape(strings.TrimPrefix(data, "@"))
	case css.HashToken:
		tok.Type = HashToken
		tok.Value = unescape(strings.TrimPrefix(data, "#"))
	case css.StringToken:
		tok.Type = StringToken
		tok.Value = unquote(data)
	case css.BadStringToken:
		tok.Type = BadStringToken
		tok.Value = unquote(data)
	case css.URLToken:
		tok.Type = URLToken
		tok.Value = urlContent(data)
	case css.BadURLToken:
		tok.Type = BadURLToken
		tok.Value = urlContent(data)
	case css.NumberToken:
		tok.Type = NumberToken
		tok.Value, _ = splitNumber(data)
		tok.Number, tok.Integer = parseNumber(tok.Value)
	case css.PercentageToken:
		tok.Type = PercentageToken
		tok.Value = strings.TrimSuffix(data, "%")
		tok.Number, tok.Integer = parseNumber(tok.Value)
		tok.Unit = "%"
	case css.DimensionToken:
		tok.Type = DimensionToken
		tok.Value, tok.Unit = splitNumber(data)
		tok.Number, tok.Integer = parseNumber(tok.Value)
		tok.Unit = strings.ToLower(unescape(tok.Unit))
	case css.UnicodeRangeToken:
		tok.Type = UnicodeRangeToken
		tok.Value = data
	case css.WhitespaceToken:
		tok.Type = WhitespaceToken
		tok.Value = " "
		tok.Raw = " " // runs are collapsed
	case css.ColonToken:
		tok.Type = ColonToken
	case css.SemicolonToken:
		tok.Type = SemicolonToken
	case css.CommaToken:
		tok.Type = CommaToken
	case css.LeftBracketToken:
		tok.Type = LeftBracketToken
	case css.RightBracketToken:
		tok.Type = RightBracketToken
	case css.LeftParenthesisToken:
		tok.Type = LeftParenToken
	case css.RightParenthesisToken:
		tok.Type = RightParenToken
	case css.LeftBraceToken:
		tok.Type = LeftBraceToken
	case css.RightBraceToken:
		tok.Type = RightBraceToken
	case css.CDOToken:
		tok.Type = CDOToken
	case css.CDCToken:
		tok.Type = CDCToken
	default:
		tok.Type = DelimToken
		tok.Value = data
	}
	return tok, true
}

// splitNumber splits a number-like token into its numeric prefix and the rest.
func splitNumber(s string) (string, string) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return s[:i], s[i:]
}

func parseNumber(s string) (float64, bool) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return x, !strings.ContainsAny(s, ".eE")
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// unquote strips the quotes of a CSS string token and resolves escapes.
// A missing closing quote is tolerated.
func unquote(s string) string {
	if s == "" {
		return s
	}
	q := s[0]
	if q != '"' && q != '\'' {
		return unescape(s)
	}
	s = s[1:]
	if len(s) > 0 && s[len(s)-1] == q && !strings.HasSuffix(s, `\`+string(q)) {
		s = s[:len(s)-1]
	}
	return unescape(s)
}

// urlContent extracts the URL of a url(…) token.
func urlContent(s string) string {
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(s, ")")
	s = strings.TrimSpace(s)
	if s != "" && (s[0] == '"' || s[0] == '\'') {
		return unquote(s)
	}
	return unescape(s)
}

// unescape resolves CSS escape sequences: hex escapes, escaped characters
// and escaped newlines (which are removed).
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			b.WriteRune('\ufffd')
			break
		}
		if s[i] == '\n' {
			continue
		}
		if !isHex(s[i]) {
			b.WriteByte(s[i])
			continue
		}
		j := i
		for j < len(s) && j-i < 6 && isHex(s[j]) {
			j++
		}
		cp, _ := strconv.ParseUint(s[i:j], 16, 32)
		if cp == 0 || cp > 0x10ffff || (cp >= 0xd800 && cp <= 0xdfff) {
			cp = 0xfffd
		}
		b.WriteRune(rune(cp))
		if j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n') {
			j++
		}
		i = j - 1
	}
	return b.String()
}
