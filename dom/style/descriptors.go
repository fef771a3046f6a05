package style

import (
	"errors"
	"strings"

	"github.com/npillmayer/rendertree/css"
	"github.com/npillmayer/rendertree/css/syntax"
)

// descriptor describes how to decode a single CSS property into its field
// of a Declaration.
type descriptor struct {
	name     string
	initial  string
	decode   func(*decoder, []syntax.ComponentValue) error
	fallback func(Source) string // raw value if the property itself is absent
}

// property creates a descriptor for a property decoding into a field of type T.
func property[T any](name, initial string,
	parse func(*decoder, []syntax.ComponentValue) (T, error),
	field func(*Declaration) *T) descriptor {
	//
	return descriptor{
		name:    name,
		initial: initial,
		decode: func(st *decoder, values []syntax.ComponentValue) error {
			v, err := parse(st, values)
			if err != nil {
				return err
			}
			*field(st.decl) = v
			return nil
		},
	}
}

// pure adapts a context-free decoder from package css.
func pure[T any](parse func([]syntax.ComponentValue) (T, error)) func(*decoder, []syntax.ComponentValue) (T, error) {
	return func(_ *decoder, values []syntax.ComponentValue) (T, error) {
		return parse(values)
	}
}

func colorValue(st *decoder, values []syntax.ComponentValue) (css.Color, error) {
	c, err := css.ParseColorValue(values)
	if errors.Is(err, css.ErrCurrentColor) {
		return st.currentColor(), nil
	}
	return c, err
}

// textColor decodes property `color` itself, where `currentcolor` cannot
// refer to an already decoded value.
func textColor(_ *decoder, values []syntax.ComponentValue) (css.Color, error) {
	return css.ParseColorValue(values)
}

func images(st *decoder, values []syntax.ComponentValue) ([]css.Image, error) {
	imgs, err := css.ParseImageList(values, st.currentColor())
	if err == nil {
		st.registerImages(imgs...)
	}
	return imgs, err
}

func listImage(st *decoder, values []syntax.ComponentValue) (css.Image, error) {
	imgs, err := images(st, values)
	if err != nil || len(imgs) == 0 {
		return css.Image{}, err
	}
	if len(imgs) > 1 {
		return css.Image{}, css.ErrInvalidValue
	}
	return imgs[0], nil
}

func boxShadows(st *decoder, values []syntax.ComponentValue) ([]css.Shadow, error) {
	return css.ParseShadows(values, st.currentColor(), true)
}

func textShadows(st *decoder, values []syntax.ComponentValue) ([]css.Shadow, error) {
	return css.ParseShadows(values, st.currentColor(), false)
}

// overflowFallback derives `overflow-x` and `overflow-y` from the `overflow`
// shorthand.
func overflowFallback(axis int) func(Source) string {
	return func(src Source) string {
		fields := strings.Fields(src.GetPropertyValue("overflow"))
		if len(fields) == 0 {
			return ""
		}
		if axis < len(fields) {
			return fields[axis]
		}
		return fields[0]
	}
}

// descriptors lists all recognized properties. `color` comes first, as
// other colors may refer to it as `currentcolor`.
var descriptors = []descriptor{
	property("color", "transparent", textColor, func(d *Declaration) *css.Color { return &d.Color }),
	property("animation-duration", "0s", pure(css.ParseTimeList), func(d *Declaration) *[]float64 { return &d.AnimationDuration }),
	property("background-clip", "border-box", pure(css.ParseBoxList), func(d *Declaration) *[]css.Box { return &d.BackgroundClip }),
	property("background-color", "transparent", colorValue, func(d *Declaration) *css.Color { return &d.BackgroundColor }),
	backgroundImageDescriptor,
	property("background-origin", "border-box", pure(css.ParseBoxList), func(d *Declaration) *[]css.Box { return &d.BackgroundOrigin }),
	property("background-position", "0% 0%", pure(css.ParseOffset2DList), func(d *Declaration) *[]css.Offset2D { return &d.BackgroundPosition }),
	property("background-repeat", "repeat", pure(css.ParseBackgroundRepeat), func(d *Declaration) *[]css.BackgroundRepeat { return &d.BackgroundRepeat }),
	property("background-size", "auto", pure(css.ParseBackgroundSize), func(d *Declaration) *[]css.BackgroundSize { return &d.BackgroundSize }),
	property("border-top-color", "transparent", colorValue, func(d *Declaration) *css.Color { return &d.BorderTopColor }),
	property("border-right-color", "transparent", colorValue, func(d *Declaration) *css.Color { return &d.BorderRightColor }),
	property("border-bottom-color", "transparent", colorValue, func(d *Declaration) *css.Color { return &d.BorderBottomColor }),
	property("border-left-color", "transparent", colorValue, func(d *Declaration) *css.Color { return &d.BorderLeftColor }),
	property("border-top-left-radius", "0 0", pure(css.ParseBorderRadius), func(d *Declaration) *css.BorderRadius { return &d.BorderTopLeftRadius }),
	property("border-top-right-radius", "0 0", pure(css.ParseBorderRadius), func(d *Declaration) *css.BorderRadius { return &d.BorderTopRightRadius }),
	property("border-bottom-right-radius", "0 0", pure(css.ParseBorderRadius), func(d *Declaration) *css.BorderRadius { return &d.BorderBottomRightRadius }),
	property("border-bottom-left-radius", "0 0", pure(css.ParseBorderRadius), func(d *Declaration) *css.BorderRadius { return &d.BorderBottomLeftRadius }),
	property("border-top-style", "solid", pure(css.ParseBorderStyle), func(d *Declaration) *css.BorderStyle { return &d.BorderTopStyle }),
	property("border-right-style", "solid", pure(css.ParseBorderStyle), func(d *Declaration) *css.BorderStyle { return &d.BorderRightStyle }),
	property("border-bottom-style", "solid", pure(css.ParseBorderStyle), func(d *Declaration) *css.BorderStyle { return &d.BorderBottomStyle }),
	property("border-left-style", "solid", pure(css.ParseBorderStyle), func(d *Declaration) *css.BorderStyle { return &d.BorderLeftStyle }),
	property("border-top-width", "0", pure(css.ParseBorderWidth), func(d *Declaration) *float64 { return &d.BorderTopWidth }),
	property("border-right-width", "0", pure(css.ParseBorderWidth), func(d *Declaration) *float64 { return &d.BorderRightWidth }),
	property("border-bottom-width", "0", pure(css.ParseBorderWidth), func(d *Declaration) *float64 { return &d.BorderBottomWidth }),
	property("border-left-width", "0", pure(css.ParseBorderWidth), func(d *Declaration) *float64 { return &d.BorderLeftWidth }),
	property("box-shadow", "none", boxShadows, func(d *Declaration) *[]css.Shadow { return &d.BoxShadow }),
	property("direction", "ltr", pure(css.ParseDirection), func(d *Declaration) *css.Direction { return &d.Direction }),
	property("display", "inline", pure(css.ParseDisplay), func(d *Declaration) *css.DisplayMode { return &d.Display }),
	property("float", "none", pure(css.ParseFloat), func(d *Declaration) *css.Float { return &d.Float }),
	property("font-family", "", pure(css.ParseFontFamily), func(d *Declaration) *[]string { return &d.FontFamily }),
	property("font-size", "0", pure(css.ParseDimenValue), func(d *Declaration) *css.DimenT { return &d.FontSize }),
	property("font-style", "normal", pure(css.ParseFontStyle), func(d *Declaration) *css.FontStyle { return &d.FontStyle }),
	property("font-variant", "none", pure(css.ParseFontVariant), func(d *Declaration) *[]string { return &d.FontVariant }),
	property("font-weight", "normal", pure(css.ParseFontWeight), func(d *Declaration) *css.FontWeight { return &d.FontWeight }),
	property("letter-spacing", "0", pure(css.ParseLetterSpacing), func(d *Declaration) *float64 { return &d.LetterSpacing }),
	property("line-break", "normal", pure(css.ParseLineBreak), func(d *Declaration) *css.LineBreak { return &d.LineBreak }),
	property("line-height", "normal", pure(css.ParseLineHeight), func(d *Declaration) *css.LineHeight { return &d.LineHeight }),
	property("list-style-image", "none", listImage, func(d *Declaration) *css.Image { return &d.ListStyleImage }),
	property("list-style-position", "outside", pure(css.ParseListStylePosition), func(d *Declaration) *css.ListStylePosition { return &d.ListStylePosition }),
	property("list-style-type", "none", pure(css.ParseListStyleType), func(d *Declaration) *css.ListStyleType { return &d.ListStyleType }),
	property("margin-top", "0", pure(css.ParseDimenValue), func(d *Declaration) *css.DimenT { return &d.MarginTop }),
	property("margin-right", "0", pure(css.ParseDimenValue), func(d *Declaration) *css.DimenT { return &d.MarginRight }),
	property("margin-bottom", "0", pure(css.ParseDimenValue), func(d *Declaration) *css.DimenT { return &d.MarginBottom }),
	property("margin-left", "0", pure(css.ParseDimenValue), func(d *Declaration) *css.DimenT { return &d.MarginLeft }),
	property("opacity", "1", pure(css.ParseOpacity), func(d *Declaration) *float64 { return &d.Opacity }),
	withFallback(property("overflow-x", "visible", pure(css.ParseOverflow), func(d *Declaration) *css.Overflow { return &d.OverflowX }), overflowFallback(0)),
	withFallback(property("overflow-y", "visible", pure(css.ParseOverflow), func(d *Declaration) *css.Overflow { return &d.OverflowY }), overflowFallback(1)),
	property("overflow-wrap", "normal", pure(css.ParseOverflowWrap), func(d *Declaration) *css.OverflowWrap { return &d.OverflowWrap }),
	property("padding-top", "0", pure(css.ParseDimenValue), func(d *Declaration) *css.DimenT { return &d.PaddingTop }),
	property("padding-right", "0", pure(css.ParseDimenValue), func(d *Declaration) *css.DimenT { return &d.PaddingRight }),
	property("padding-bottom", "0", pure(css.ParseDimenValue), func(d *Declaration) *css.DimenT { return &d.PaddingBottom }),
	property("padding-left", "0", pure(css.ParseDimenValue), func(d *Declaration) *css.DimenT { return &d.PaddingLeft }),
	property("position", "static", pure(css.ParsePosition), func(d *Declaration) *css.PositionT { return &d.Position }),
	property("text-align", "left", pure(css.ParseTextAlign), func(d *Declaration) *css.TextAlign { return &d.TextAlign }),
	property("text-decoration-color", "currentcolor", colorValue, func(d *Declaration) *css.Color { return &d.TextDecorationColor }),
	property("text-decoration-line", "none", pure(css.ParseTextDecorationLine), func(d *Declaration) *css.TextDecorationLine { return &d.TextDecorationLine }),
	property("text-shadow", "none", textShadows, func(d *Declaration) *[]css.Shadow { return &d.TextShadow }),
	property("text-transform", "none", pure(css.ParseTextTransform), func(d *Declaration) *css.TextTransform { return &d.TextTransform }),
	property("transform", "none", pure(css.ParseTransform), func(d *Declaration) **css.Transform { return &d.Transform }),
	property("transform-origin", "50% 50%", pure(css.ParseTransformOrigin), func(d *Declaration) *css.Offset2D { return &d.TransformOrigin }),
	property("visibility", "visible", pure(css.ParseVisibility), func(d *Declaration) *css.Visibility { return &d.Visibility }),
	property("-webkit-text-stroke-color", "currentcolor", colorValue, func(d *Declaration) *css.Color { return &d.WebkitTextStrokeColor }),
	property("-webkit-text-stroke-width", "0", pure(css.ParseBorderWidth), func(d *Declaration) *float64 { return &d.WebkitTextStrokeWidth }),
	property("word-break", "normal", pure(css.ParseWordBreak), func(d *Declaration) *css.WordBreak { return &d.WordBreak }),
	property("z-index", "auto", pure(css.ParseZIndex), func(d *Declaration) *css.ZIndex { return &d.ZIndex }),
}

var backgroundImageDescriptor = property("background-image", "none", images,
	func(d *Declaration) *[]css.Image { return &d.BackgroundImage })

func withFallback(desc descriptor, fallback func(Source) string) descriptor {
	desc.fallback = fallback
	return desc
}

// PropertyNames returns the names of all recognized properties.
func PropertyNames() []string {
	names := make([]string, len(descriptors))
	for i, desc := range descriptors {
		names[i] = desc.name
	}
	return names
}

// InitialValue returns the initial value of a recognized property.
func InitialValue(name string) (Property, bool) {
	for _, desc := range descriptors {
		if desc.name == name {
			return Property(desc.initial), true
		}
	}
	return NullStyle, false
}
