package style

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/rendertree/css"
)

// Color decodes p as a CSS color. `currentcolor` is reported as
// css.ErrCurrentColor, as a single property cannot resolve it.
func (p Property) Color() (css.Color, error) {
	return css.ParseColorString(p.String())
}

// ColorString formats c as a hex color for debugging output. Colors with an
// alpha channel get an eight-digit form; nil yields "none".
func ColorString(c color.Color) string {
	if c == nil {
		return "none"
	}
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	if nrgba.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", nrgba.R, nrgba.G, nrgba.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", nrgba.R, nrgba.G, nrgba.B, nrgba.A)
}
