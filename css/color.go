package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/rendertree/css/syntax"
	"golang.org/x/image/colornames"
)

// Color is a non-premultiplied RGBA color, packed as 0xRRGGBBAA.
// The zero value is fully transparent black.
type Color uint32

// Transparent is CSS color `transparent`.
const Transparent Color = 0

// Black is CSS color `black`.
const Black Color = 0x000000ff

// ErrCurrentColor is returned when decoding `currentcolor`. Callers know the
// value of property `color` and substitute it.
var ErrCurrentColor = errors.New("color is currentcolor")

// NewColor packs color channels; alpha is in [0…1].
func NewColor(r, g, b uint8, alpha float64) Color {
	a := uint32(math.Round(clamp(alpha, 0, 1) * 255))
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | a)
}

// Channels returns the color's channels, unpremultiplied.
func (c Color) Channels() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Alpha returns the alpha channel in [0…1].
func (c Color) Alpha() float64 {
	return float64(uint8(c)) / 255
}

// IsTransparent is true if the alpha channel of c is zero.
func (c Color) IsTransparent() bool {
	return uint8(c) == 0
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	cr, cg, cb, ca := c.Channels()
	a = uint32(ca) * 0x101
	r = uint32(cr) * 0x101 * a / 0xffff
	g = uint32(cg) * 0x101 * a / 0xffff
	b = uint32(cb) * 0x101 * a / 0xffff
	return
}

func (c Color) String() string {
	r, g, b, _ := c.Channels()
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b,
		strconv.FormatFloat(math.Round(c.Alpha()*1000)/1000, 'f', -1, 64))
}

// --- Decoding --------------------------------------------------------------

// ParseColor decodes a CSS color: hex notation, rgb(a)(), hsl(a)(), named
// colors and `transparent`. `currentcolor` yields ErrCurrentColor.
func ParseColor(cv syntax.ComponentValue) (Color, error) {
	switch {
	case cv.Is(syntax.HashToken):
		return parseHexColor(cv.Token.Value)
	case cv.Is(syntax.IdentToken):
		name := strings.ToLower(cv.Token.Value)
		switch name {
		case "transparent":
			return Transparent, nil
		case "currentcolor":
			return Transparent, ErrCurrentColor
		}
		if rgba, ok := colornames.Map[name]; ok {
			return NewColor(rgba.R, rgba.G, rgba.B, 1), nil
		}
	case cv.IsFunction("rgb", "rgba"):
		return parseRGB(cv)
	case cv.IsFunction("hsl", "hsla"):
		return parseHSL(cv)
	}
	return Transparent, invalid("color", cv)
}

// ParseColorValue decodes a color from a list of component values.
func ParseColorValue(values []syntax.ComponentValue) (Color, error) {
	cv, err := single(values)
	if err != nil {
		return Transparent, err
	}
	return ParseColor(cv)
}

// ParseColorString decodes a raw color string.
func ParseColorString(s string) (Color, error) {
	return ParseColorValue(syntax.ParseValue(s))
}

// IsColor checks if cv can be decoded as a color.
func IsColor(cv syntax.ComponentValue) bool {
	_, err := ParseColor(cv)
	return err == nil || errors.Is(err, ErrCurrentColor)
}

func parseHexColor(hex string) (Color, error) {
	var r, g, b, a uint64
	var err error
	switch len(hex) {
	case 3, 4:
		digits := make([]uint64, len(hex))
		for i := range hex {
			if digits[i], err = strconv.ParseUint(hex[i:i+1], 16, 8); err != nil {
				return Transparent, invalid("hex color", hex)
			}
			digits[i] *= 0x11
		}
		r, g, b, a = digits[0], digits[1], digits[2], 0xff
		if len(hex) == 4 {
			a = digits[3]
		}
	case 6, 8:
		if len(hex) == 6 {
			hex += "ff"
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Transparent, invalid("hex color", hex)
		}
		return Color(v), nil
	default:
		return Transparent, invalid("hex color", hex)
	}
	return Color(r<<24 | g<<16 | b<<8 | a), nil
}

// colorArgs collects the arguments of a color function, accepting both
// comma-separated and space-separated syntax (with `/` before alpha).
func colorArgs(cv syntax.ComponentValue) []syntax.Token {
	var args []syntax.Token
	for _, v := range syntax.NonWhitespace(cv.Body) {
		if v.Kind != syntax.TokenValue {
			continue
		}
		switch v.Token.Type {
		case syntax.CommaToken:
		case syntax.DelimToken:
			if v.Token.Value != "/" {
				args = append(args, v.Token)
			}
		default:
			args = append(args, v.Token)
		}
	}
	return args
}

func parseAlpha(args []syntax.Token, i int) (float64, error) {
	if len(args) <= i {
		return 1, nil
	}
	switch args[i].Type {
	case syntax.NumberToken:
		return clamp(args[i].Number, 0, 1), nil
	case syntax.PercentageToken:
		return clamp(args[i].Number/100, 0, 1), nil
	}
	return 0, invalid("alpha", args[i])
}

func parseRGB(cv syntax.ComponentValue) (Color, error) {
	args := colorArgs(cv)
	if len(args) != 3 && len(args) != 4 {
		return Transparent, invalid("rgb()", cv)
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		switch args[i].Type {
		case syntax.NumberToken:
			ch[i] = uint8(math.Round(clamp(args[i].Number, 0, 255)))
		case syntax.PercentageToken:
			ch[i] = uint8(math.Round(clamp(args[i].Number, 0, 100) * 255 / 100))
		default:
			return Transparent, invalid("rgb()", cv)
		}
	}
	alpha, err := parseAlpha(args, 3)
	if err != nil {
		return Transparent, err
	}
	return NewColor(ch[0], ch[1], ch[2], alpha), nil
}

func parseHSL(cv syntax.ComponentValue) (Color, error) {
	args := colorArgs(cv)
	if len(args) != 3 && len(args) != 4 {
		return Transparent, invalid("hsl()", cv)
	}
	var hue float64
	switch args[0].Type {
	case syntax.NumberToken:
		hue = args[0].Number / 360
	case syntax.DimensionToken:
		rad, err := angle(args[0])
		if err != nil {
			return Transparent, err
		}
		hue = rad / (2 * math.Pi)
	default:
		return Transparent, invalid("hsl() hue", args[0])
	}
	if args[1].Type != syntax.PercentageToken || args[2].Type != syntax.PercentageToken {
		return Transparent, invalid("hsl()", cv)
	}
	s := clamp(args[1].Number/100, 0, 1)
	l := clamp(args[2].Number/100, 0, 1)
	alpha, err := parseAlpha(args, 3)
	if err != nil {
		return Transparent, err
	}
	hue -= math.Floor(hue)
	var t2 float64
	if l <= 0.5 {
		t2 = l * (s + 1)
	} else {
		t2 = l + s - l*s
	}
	t1 := l*2 - t2
	r := hueToRGB(t1, t2, hue+1.0/3)
	g := hueToRGB(t1, t2, hue)
	b := hueToRGB(t1, t2, hue-1.0/3)
	return NewColor(uint8(math.Round(r*255)), uint8(math.Round(g*255)), uint8(math.Round(b*255)), alpha), nil
}

func hueToRGB(t1, t2, h float64) float64 {
	if h < 0 {
		h++
	}
	if h > 1 {
		h--
	}
	switch {
	case h < 1.0/6:
		return (t2-t1)*h*6 + t1
	case h < 0.5:
		return t2
	case h < 2.0/3:
		return (t2-t1)*6*(2.0/3-h) + t1
	}
	return t1
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
