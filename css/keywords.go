package css

import (
	"strings"

	"github.com/npillmayer/rendertree/css/syntax"
)

// keywords maps CSS keywords to enum values. The enum value is the index
// of its keyword; aliases map additional keywords.
type keywords[T ~uint8] struct {
	property string
	names    []string
	aliases  map[string]T
}

func (kw keywords[T]) lookup(name string) (T, bool) {
	name = strings.ToLower(name)
	for i, n := range kw.names {
		if n == name {
			return T(i), true
		}
	}
	v, ok := kw.aliases[name]
	return v, ok
}

func (kw keywords[T]) name(v T) string {
	if int(v) < len(kw.names) {
		return kw.names[v]
	}
	return "?"
}

// decode decodes a single keyword.
func (kw keywords[T]) decode(cv syntax.ComponentValue) (T, error) {
	if cv.Is(syntax.IdentToken) {
		if v, ok := kw.lookup(cv.Token.Value); ok {
			return v, nil
		}
	}
	return 0, invalid(kw.property, cv)
}

// parse decodes a value consisting of a single keyword.
func (kw keywords[T]) parse(values []syntax.ComponentValue) (T, error) {
	cv, err := single(values)
	if err != nil {
		return 0, err
	}
	return kw.decode(cv)
}

// parseList decodes a comma-separated list of keywords.
func (kw keywords[T]) parseList(values []syntax.ComponentValue) ([]T, error) {
	groups := syntax.SplitCommas(values)
	if len(groups) == 0 {
		return nil, invalid(kw.property, syntax.Serialize(values))
	}
	list := make([]T, 0, len(groups))
	for _, g := range groups {
		v, err := kw.parse(g)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

// --- Direction -------------------------------------------------------------

// Direction is CSS property `direction`.
type Direction uint8

// Values of property `direction`.
const (
	LTR Direction = iota
	RTL
)

var directionKeywords = keywords[Direction]{property: "direction", names: []string{"ltr", "rtl"}}

func (d Direction) String() string { return directionKeywords.name(d) }

// ParseDirection decodes property `direction`.
func ParseDirection(values []syntax.ComponentValue) (Direction, error) {
	return directionKeywords.parse(values)
}

// --- Float -----------------------------------------------------------------

// Float is CSS property `float`.
type Float uint8

// Values of property `float`.
const (
	FloatNone Float = iota
	FloatLeft
	FloatRight
	FloatInlineStart
	FloatInlineEnd
)

var floatKeywords = keywords[Float]{property: "float",
	names: []string{"none", "left", "right", "inline-start", "inline-end"}}

func (f Float) String() string { return floatKeywords.name(f) }

// ParseFloat decodes property `float`.
func ParseFloat(values []syntax.ComponentValue) (Float, error) {
	return floatKeywords.parse(values)
}

// --- Fonts -----------------------------------------------------------------

// FontStyle is CSS property `font-style`.
type FontStyle uint8

// Values of property `font-style`.
const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

var fontStyleKeywords = keywords[FontStyle]{property: "font-style",
	names: []string{"normal", "italic", "oblique"}}

func (s FontStyle) String() string { return fontStyleKeywords.name(s) }

// ParseFontStyle decodes property `font-style`. An oblique angle is ignored.
func ParseFontStyle(values []syntax.ComponentValue) (FontStyle, error) {
	vs := syntax.NonWhitespace(values)
	if len(vs) == 2 && vs[0].IsIdent("oblique") && isAngle(vs[1]) {
		return FontStyleOblique, nil
	}
	return fontStyleKeywords.parse(values)
}

// --- Borders ---------------------------------------------------------------

// BorderStyle is CSS property `border-*-style`.
type BorderStyle uint8

// Values of property `border-*-style`.
const (
	BorderNone BorderStyle = iota
	BorderHidden
	BorderDotted
	BorderDashed
	BorderSolid
	BorderDouble
	BorderGroove
	BorderRidge
	BorderInset
	BorderOutset
)

var borderStyleKeywords = keywords[BorderStyle]{property: "border-style",
	names: []string{"none", "hidden", "dotted", "dashed", "solid", "double",
		"groove", "ridge", "inset", "outset"}}

func (s BorderStyle) String() string { return borderStyleKeywords.name(s) }

// IsVisible is false for border styles `none` and `hidden`.
func (s BorderStyle) IsVisible() bool {
	return s != BorderNone && s != BorderHidden
}

// ParseBorderStyle decodes property `border-*-style`.
func ParseBorderStyle(values []syntax.ComponentValue) (BorderStyle, error) {
	return borderStyleKeywords.parse(values)
}

// --- Boxes -----------------------------------------------------------------

// Box is a CSS box keyword as used by `background-clip` and `background-origin`.
type Box uint8

// Box keywords.
const (
	BorderBox Box = iota
	PaddingBox
	ContentBox
	TextBox
)

var boxKeywords = keywords[Box]{property: "box",
	names: []string{"border-box", "padding-box", "content-box", "text"}}

func (b Box) String() string { return boxKeywords.name(b) }

// ParseBoxList decodes a comma-separated list of boxes, as used for
// `background-clip` and `background-origin`.
func ParseBoxList(values []syntax.ComponentValue) ([]Box, error) {
	return boxKeywords.parseList(values)
}

// --- Backgrounds -----------------------------------------------------------

// BackgroundRepeat is a layer of CSS property `background-repeat`.
type BackgroundRepeat uint8

// Values of property `background-repeat`.
const (
	Repeat BackgroundRepeat = iota
	NoRepeat
	RepeatX
	RepeatY
)

var repeatKeywords = keywords[BackgroundRepeat]{property: "background-repeat",
	names:   []string{"repeat", "no-repeat", "repeat-x", "repeat-y"},
	aliases: map[string]BackgroundRepeat{"round": Repeat, "space": Repeat},
}

func (r BackgroundRepeat) String() string { return repeatKeywords.name(r) }

// ParseBackgroundRepeat decodes a comma-separated list of repeat values.
// Two-value forms are folded into the single-value keywords.
func ParseBackgroundRepeat(values []syntax.ComponentValue) ([]BackgroundRepeat, error) {
	groups := syntax.SplitCommas(values)
	if len(groups) == 0 {
		return nil, invalid("background-repeat", syntax.Serialize(values))
	}
	list := make([]BackgroundRepeat, 0, len(groups))
	for _, g := range groups {
		switch len(g) {
		case 1:
			r, err := repeatKeywords.decode(g[0])
			if err != nil {
				return nil, err
			}
			list = append(list, r)
		case 2:
			x, err := repeatKeywords.decode(g[0])
			if err != nil {
				return nil, err
			}
			y, err := repeatKeywords.decode(g[1])
			if err != nil {
				return nil, err
			}
			switch {
			case x == y:
				list = append(list, x)
			case x == Repeat && y == NoRepeat:
				list = append(list, RepeatX)
			case x == NoRepeat && y == Repeat:
				list = append(list, RepeatY)
			default:
				return nil, invalid("background-repeat", syntax.Serialize(g))
			}
		default:
			return nil, invalid("background-repeat", syntax.Serialize(g))
		}
	}
	return list, nil
}

// --- Lists -----------------------------------------------------------------

// ListStylePosition is CSS property `list-style-position`.
type ListStylePosition uint8

// Values of property `list-style-position`.
const (
	ListOutside ListStylePosition = iota
	ListInside
)

var listPositionKeywords = keywords[ListStylePosition]{property: "list-style-position",
	names: []string{"outside", "inside"}}

func (p ListStylePosition) String() string { return listPositionKeywords.name(p) }

// ParseListStylePosition decodes property `list-style-position`.
func ParseListStylePosition(values []syntax.ComponentValue) (ListStylePosition, error) {
	return listPositionKeywords.parse(values)
}

// ListStyleType is CSS property `list-style-type`.
type ListStyleType uint8

// Values of property `list-style-type`.
const (
	ListNone ListStyleType = iota
	ListDisc
	ListCircle
	ListSquare
	ListDecimal
	ListCJKDecimal
	ListDecimalLeadingZero
	ListLowerRoman
	ListUpperRoman
	ListLowerGreek
	ListLowerAlpha
	ListUpperAlpha
	ListArabicIndic
	ListArmenian
	ListBengali
	ListCambodian
	ListCJKEarthlyBranch
	ListCJKHeavenlyStem
	ListCJKIdeographic
	ListDevanagari
	ListEthiopicNumeric
	ListGeorgian
	ListGujarati
	ListGurmukhi
	ListHebrew
	ListHiragana
	ListHiraganaIroha
	ListJapaneseFormal
	ListJapaneseInformal
	ListKannada
	ListKatakana
	ListKatakanaIroha
	ListKhmer
	ListKoreanHangulFormal
	ListKoreanHanjaFormal
	ListKoreanHanjaInformal
	ListLao
	ListLowerArmenian
	ListMalayalam
	ListMongolian
	ListMyanmar
	ListOriya
	ListPersian
	ListSimpChineseFormal
	ListSimpChineseInformal
	ListTamil
	ListTelugu
	ListThai
	ListTibetan
	ListTradChineseFormal
	ListTradChineseInformal
	ListUpperArmenian
	ListDisclosureOpen
	ListDisclosureClosed
)

var listTypeKeywords = keywords[ListStyleType]{property: "list-style-type",
	names: []string{"none", "disc", "circle", "square", "decimal", "cjk-decimal",
		"decimal-leading-zero", "lower-roman", "upper-roman", "lower-greek",
		"lower-alpha", "upper-alpha", "arabic-indic", "armenian", "bengali",
		"cambodian", "cjk-earthly-branch", "cjk-heavenly-stem", "cjk-ideographic",
		"devanagari", "ethiopic-numeric", "georgian", "gujarati", "gurmukhi",
		"hebrew", "hiragana", "hiragana-iroha", "japanese-formal",
		"japanese-informal", "kannada", "katakana", "katakana-iroha", "khmer",
		"korean-hangul-formal", "korean-hanja-formal", "korean-hanja-informal",
		"lao", "lower-armenian", "malayalam", "mongolian", "myanmar", "oriya",
		"persian", "simp-chinese-formal", "simp-chinese-informal", "tamil",
		"telugu", "thai", "tibetan", "trad-chinese-formal", "trad-chinese-informal",
		"upper-armenian", "disclosure-open", "disclosure-closed"},
	aliases: map[string]ListStyleType{
		"lower-latin": ListLowerAlpha,
		"upper-latin": ListUpperAlpha,
	},
}

func (t ListStyleType) String() string { return listTypeKeywords.name(t) }

// ParseListStyleType decodes property `list-style-type`.
func ParseListStyleType(values []syntax.ComponentValue) (ListStyleType, error) {
	return listTypeKeywords.parse(values)
}

// --- Overflow and text -----------------------------------------------------

// Overflow is CSS property `overflow-x` or `overflow-y`.
type Overflow uint8

// Values of property `overflow`.
const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
	OverflowClip
	OverflowAuto
)

var overflowKeywords = keywords[Overflow]{property: "overflow",
	names: []string{"visible", "hidden", "scroll", "clip", "auto"}}

func (o Overflow) String() string { return overflowKeywords.name(o) }

// ParseOverflow decodes property `overflow-x` or `overflow-y`.
func ParseOverflow(values []syntax.ComponentValue) (Overflow, error) {
	return overflowKeywords.parse(values)
}

// OverflowWrap is CSS property `overflow-wrap`.
type OverflowWrap uint8

// Values of property `overflow-wrap`.
const (
	WrapNormal OverflowWrap = iota
	WrapBreakWord
	WrapAnywhere
)

var overflowWrapKeywords = keywords[OverflowWrap]{property: "overflow-wrap",
	names: []string{"normal", "break-word", "anywhere"}}

func (w OverflowWrap) String() string { return overflowWrapKeywords.name(w) }

// ParseOverflowWrap decodes property `overflow-wrap`.
func ParseOverflowWrap(values []syntax.ComponentValue) (OverflowWrap, error) {
	return overflowWrapKeywords.parse(values)
}

// TextAlign is CSS property `text-align`.
type TextAlign uint8

// Values of property `text-align`.
const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
	TextAlignJustify
	TextAlignStart
	TextAlignEnd
)

var textAlignKeywords = keywords[TextAlign]{property: "text-align",
	names: []string{"left", "center", "right", "justify", "start", "end"},
	aliases: map[string]TextAlign{
		"-webkit-left":   TextAlignLeft,
		"-webkit-center": TextAlignCenter,
		"-webkit-right":  TextAlignRight,
		"match-parent":   TextAlignStart,
	},
}

func (a TextAlign) String() string { return textAlignKeywords.name(a) }

// ParseTextAlign decodes property `text-align`.
func ParseTextAlign(values []syntax.ComponentValue) (TextAlign, error) {
	return textAlignKeywords.parse(values)
}

// TextTransform is CSS property `text-transform`.
type TextTransform uint8

// Values of property `text-transform`.
const (
	TextTransformNone TextTransform = iota
	Uppercase
	Lowercase
	Capitalize
)

var textTransformKeywords = keywords[TextTransform]{property: "text-transform",
	names: []string{"none", "uppercase", "lowercase", "capitalize"}}

func (t TextTransform) String() string { return textTransformKeywords.name(t) }

// ParseTextTransform decodes property `text-transform`.
func ParseTextTransform(values []syntax.ComponentValue) (TextTransform, error) {
	return textTransformKeywords.parse(values)
}

// Visibility is CSS property `visibility`.
type Visibility uint8

// Values of property `visibility`.
const (
	Visible Visibility = iota
	Hidden
	Collapse
)

var visibilityKeywords = keywords[Visibility]{property: "visibility",
	names: []string{"visible", "hidden", "collapse"}}

func (v Visibility) String() string { return visibilityKeywords.name(v) }

// ParseVisibility decodes property `visibility`.
func ParseVisibility(values []syntax.ComponentValue) (Visibility, error) {
	return visibilityKeywords.parse(values)
}

// WordBreak is CSS property `word-break`.
type WordBreak uint8

// Values of property `word-break`.
const (
	WordBreakNormal WordBreak = iota
	WordBreakAll
	WordBreakKeepAll
	WordBreakBreakWord
)

var wordBreakKeywords = keywords[WordBreak]{property: "word-break",
	names: []string{"normal", "break-all", "keep-all", "break-word"}}

func (w WordBreak) String() string { return wordBreakKeywords.name(w) }

// ParseWordBreak decodes property `word-break`.
func ParseWordBreak(values []syntax.ComponentValue) (WordBreak, error) {
	return wordBreakKeywords.parse(values)
}

// LineBreak is CSS property `line-break`.
type LineBreak uint8

// Values of property `line-break`.
const (
	LineBreakAuto LineBreak = iota
	LineBreakLoose
	LineBreakNormal
	LineBreakStrict
	LineBreakAnywhere
)

var lineBreakKeywords = keywords[LineBreak]{property: "line-break",
	names: []string{"auto", "loose", "normal", "strict", "anywhere"}}

func (b LineBreak) String() string { return lineBreakKeywords.name(b) }

// ParseLineBreak decodes property `line-break`.
func ParseLineBreak(values []syntax.ComponentValue) (LineBreak, error) {
	return lineBreakKeywords.parse(values)
}

// TextDecorationLine is a set of lines of CSS property `text-decoration-line`.
type TextDecorationLine uint8

// Lines of property `text-decoration-line`.
const (
	Underline TextDecorationLine = 1 << iota
	Overline
	LineThrough
	Blink
)

var decorationNames = []struct {
	line TextDecorationLine
	name string
}{
	{Underline, "underline"}, {Overline, "overline"},
	{LineThrough, "line-through"}, {Blink, "blink"},
}

func (l TextDecorationLine) String() string {
	var names []string
	for _, d := range decorationNames {
		if l&d.line != 0 {
			names = append(names, d.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, " ")
}

// ParseTextDecorationLine decodes property `text-decoration-line`.
func ParseTextDecorationLine(values []syntax.ComponentValue) (TextDecorationLine, error) {
	vs := syntax.NonWhitespace(values)
	if len(vs) == 0 {
		return 0, invalid("text-decoration-line", "empty")
	}
	var lines TextDecorationLine
	for _, cv := range vs {
		if cv.IsIdent("none") {
			continue
		}
		found := false
		for _, d := range decorationNames {
			if cv.IsIdent(d.name) {
				lines |= d.line
				found = true
			}
		}
		if !found {
			return 0, invalid("text-decoration-line", cv)
		}
	}
	return lines, nil
}
