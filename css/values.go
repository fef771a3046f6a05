package css

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/rendertree/css/syntax"
)

// --- Background size and position ------------------------------------------

// SizeKeyword discriminates `background-size` layers.
type SizeKeyword uint8

// Background size keywords.
const (
	SizeExplicit SizeKeyword = iota
	SizeCover
	SizeContain
)

// BackgroundSize is a layer of CSS property `background-size`. For
// SizeExplicit, Width and Height are lengths, percentages or auto.
type BackgroundSize struct {
	Keyword       SizeKeyword
	Width, Height DimenT
}

func (s BackgroundSize) String() string {
	switch s.Keyword {
	case SizeCover:
		return "cover"
	case SizeContain:
		return "contain"
	}
	return s.Width.String() + " " + s.Height.String()
}

// ParseBackgroundSize decodes a comma-separated list of background sizes.
func ParseBackgroundSize(values []syntax.ComponentValue) ([]BackgroundSize, error) {
	groups := syntax.SplitCommas(values)
	if len(groups) == 0 {
		return nil, invalid("background-size", syntax.Serialize(values))
	}
	sizes := make([]BackgroundSize, 0, len(groups))
	for _, g := range groups {
		switch {
		case len(g) == 1 && g[0].IsIdent("cover"):
			sizes = append(sizes, BackgroundSize{Keyword: SizeCover})
		case len(g) == 1 && g[0].IsIdent("contain"):
			sizes = append(sizes, BackgroundSize{Keyword: SizeContain})
		case len(g) == 1 || len(g) == 2:
			w, err := ParseDimen(g[0])
			if err != nil {
				return nil, err
			}
			h := Auto()
			if len(g) == 2 {
				if h, err = ParseDimen(g[1]); err != nil {
					return nil, err
				}
			}
			sizes = append(sizes, BackgroundSize{Width: w, Height: h})
		default:
			return nil, invalid("background-size", syntax.Serialize(g))
		}
	}
	return sizes, nil
}

// ParseOffset2DList decodes a comma-separated list of positions, as used for
// `background-position`.
func ParseOffset2DList(values []syntax.ComponentValue) ([]Offset2D, error) {
	groups := syntax.SplitCommas(values)
	if len(groups) == 0 {
		return nil, invalid("position list", syntax.Serialize(values))
	}
	list := make([]Offset2D, 0, len(groups))
	for _, g := range groups {
		o, err := ParseOffset2D(g)
		if err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, nil
}

// ParseTransformOrigin decodes property `transform-origin`. A z-offset is
// ignored.
func ParseTransformOrigin(values []syntax.ComponentValue) (Offset2D, error) {
	vs := syntax.NonWhitespace(values)
	if len(vs) == 3 {
		vs = vs[:2]
	}
	return ParseOffset2D(vs)
}

// --- Borders ---------------------------------------------------------------

// BorderRadius is a corner radius, with a horizontal and a vertical extent.
type BorderRadius struct {
	H, V DimenT
}

func (r BorderRadius) String() string {
	return r.H.String() + " " + r.V.String()
}

// ParseBorderRadius decodes property `border-*-radius`.
func ParseBorderRadius(values []syntax.ComponentValue) (BorderRadius, error) {
	vs := syntax.NonWhitespace(values)
	if len(vs) == 0 || len(vs) > 2 {
		return BorderRadius{}, invalid("border-radius", syntax.Serialize(values))
	}
	h, err := ParseDimen(vs[0])
	if err != nil || h.IsAuto() {
		return BorderRadius{}, invalid("border-radius", vs[0])
	}
	v := h
	if len(vs) == 2 {
		if v, err = ParseDimen(vs[1]); err != nil || v.IsAuto() {
			return BorderRadius{}, invalid("border-radius", vs[1])
		}
	}
	return BorderRadius{H: h, V: v}, nil
}

var borderWidthKeywords = map[string]float64{
	"thin":   1,
	"medium": 3,
	"thick":  5,
}

// ParseBorderWidth decodes a line width in pixels, as used for
// `border-*-width` and `-webkit-text-stroke-width`.
func ParseBorderWidth(values []syntax.ComponentValue) (float64, error) {
	cv, err := single(values)
	if err != nil {
		return 0, err
	}
	if cv.Is(syntax.IdentToken) {
		if w, ok := borderWidthKeywords[strings.ToLower(cv.Token.Value)]; ok {
			return w, nil
		}
	}
	return ParsePixels(values)
}

// --- Fonts and text --------------------------------------------------------

// ParseFontFamily decodes property `font-family` into a list of family names.
func ParseFontFamily(values []syntax.ComponentValue) ([]string, error) {
	groups := syntax.SplitCommas(values)
	if len(groups) == 0 {
		return nil, invalid("font-family", syntax.Serialize(values))
	}
	families := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g) == 1 && g[0].Is(syntax.StringToken) {
			families = append(families, g[0].Token.Value)
			continue
		}
		words := make([]string, 0, len(g))
		for _, cv := range g {
			if !cv.Is(syntax.IdentToken) {
				return nil, invalid("font-family", syntax.Serialize(g))
			}
			words = append(words, cv.Token.Value)
		}
		families = append(families, strings.Join(words, " "))
	}
	return families, nil
}

// ParseFontVariant decodes property `font-variant` into its keywords.
// `normal` and `none` yield an empty list.
func ParseFontVariant(values []syntax.ComponentValue) ([]string, error) {
	vs := syntax.NonWhitespace(values)
	if len(vs) == 0 {
		return nil, invalid("font-variant", "empty")
	}
	if len(vs) == 1 && (vs[0].IsIdent("normal") || vs[0].IsIdent("none")) {
		return nil, nil
	}
	variants := make([]string, 0, len(vs))
	for _, cv := range vs {
		if !cv.Is(syntax.IdentToken) {
			return nil, invalid("font-variant", cv)
		}
		variants = append(variants, strings.ToLower(cv.Token.Value))
	}
	return variants, nil
}

// FontWeight is CSS property `font-weight`, as a number in [1…1000].
type FontWeight int

// ParseFontWeight decodes property `font-weight`. The relative keywords
// `bolder` and `lighter` are resolved against a normal parent weight.
func ParseFontWeight(values []syntax.ComponentValue) (FontWeight, error) {
	cv, err := single(values)
	if err != nil {
		return 0, err
	}
	switch {
	case cv.IsIdent("normal"), cv.IsIdent("lighter"):
		return 400, nil
	case cv.IsIdent("bold"), cv.IsIdent("bolder"):
		return 700, nil
	case cv.Is(syntax.NumberToken):
		w := cv.Token.Number
		if w >= 1 && w <= 1000 {
			return FontWeight(math.Round(w)), nil
		}
	}
	return 0, invalid("font-weight", cv)
}

// LineHeight is CSS property `line-height`: `normal`, a factor of the font
// size, or a length.
type LineHeight struct {
	Normal bool
	Factor float64
	Length DimenT
}

// NormalLineHeight is `line-height: normal`.
var NormalLineHeight = LineHeight{Normal: true}

// Compute returns the line height in pixels, given a font size.
func (lh LineHeight) Compute(fontSize float64) float64 {
	switch {
	case lh.Normal:
		return 1.2 * fontSize
	case !lh.Length.IsNone():
		return lh.Length.Resolve(fontSize)
	}
	return lh.Factor * fontSize
}

func (lh LineHeight) String() string {
	switch {
	case lh.Normal:
		return "normal"
	case !lh.Length.IsNone():
		return lh.Length.String()
	}
	return fmt.Sprintf("%g", lh.Factor)
}

// ParseLineHeight decodes property `line-height`.
func ParseLineHeight(values []syntax.ComponentValue) (LineHeight, error) {
	cv, err := single(values)
	if err != nil {
		return LineHeight{}, err
	}
	switch {
	case cv.IsIdent("normal"):
		return NormalLineHeight, nil
	case cv.Is(syntax.NumberToken):
		return LineHeight{Factor: cv.Token.Number}, nil
	}
	d, err := ParseDimen(cv)
	if err != nil || d.IsAuto() {
		return LineHeight{}, invalid("line-height", cv)
	}
	return LineHeight{Length: d}, nil
}

// ParseLetterSpacing decodes property `letter-spacing` in pixels.
func ParseLetterSpacing(values []syntax.ComponentValue) (float64, error) {
	if syntax.IsIdentWithValue(values, "normal") {
		return 0, nil
	}
	return ParsePixels(values)
}

// --- Stacking --------------------------------------------------------------

// ZIndex is CSS property `z-index`.
type ZIndex struct {
	Auto  bool
	Order int
}

func (z ZIndex) String() string {
	if z.Auto {
		return "auto"
	}
	return fmt.Sprintf("%d", z.Order)
}

// ParseZIndex decodes property `z-index`.
func ParseZIndex(values []syntax.ComponentValue) (ZIndex, error) {
	cv, err := single(values)
	if err != nil {
		return ZIndex{}, err
	}
	switch {
	case cv.IsIdent("auto"):
		return ZIndex{Auto: true}, nil
	case cv.Is(syntax.NumberToken) && cv.Token.Integer:
		return ZIndex{Order: int(cv.Token.Number)}, nil
	}
	return ZIndex{}, invalid("z-index", cv)
}

// ParseOpacity decodes property `opacity`, clamped to [0…1].
func ParseOpacity(values []syntax.ComponentValue) (float64, error) {
	cv, err := single(values)
	if err != nil {
		return 0, err
	}
	switch {
	case cv.Is(syntax.NumberToken):
		return clamp(cv.Token.Number, 0, 1), nil
	case cv.Is(syntax.PercentageToken):
		return clamp(cv.Token.Number/100, 0, 1), nil
	}
	return 0, invalid("opacity", cv)
}
