package style

import (
	"fmt"
	"iter"

	"github.com/npillmayer/rendertree/config"
	"github.com/npillmayer/rendertree/css"
	"go.uber.org/multierr"
)

// Declaration is the normalized style snapshot of an element: one typed
// field per recognized CSS property. Every field holds a value; properties
// absent from the source or failing to decode hold their initial value.
//
// A Declaration is built once by NewDeclaration and must be treated as
// read-only afterwards.
type Declaration struct {
	AnimationDuration       []float64 // seconds
	BackgroundClip          []css.Box
	BackgroundColor         css.Color
	BackgroundImage         []css.Image
	BackgroundOrigin        []css.Box
	BackgroundPosition      []css.Offset2D
	BackgroundRepeat        []css.BackgroundRepeat
	BackgroundSize          []css.BackgroundSize
	BorderTopColor          css.Color
	BorderRightColor        css.Color
	BorderBottomColor       css.Color
	BorderLeftColor         css.Color
	BorderTopLeftRadius     css.BorderRadius
	BorderTopRightRadius    css.BorderRadius
	BorderBottomRightRadius css.BorderRadius
	BorderBottomLeftRadius  css.BorderRadius
	BorderTopStyle          css.BorderStyle
	BorderRightStyle        css.BorderStyle
	BorderBottomStyle       css.BorderStyle
	BorderLeftStyle         css.BorderStyle
	BorderTopWidth          float64
	BorderRightWidth        float64
	BorderBottomWidth       float64
	BorderLeftWidth         float64
	BoxShadow               []css.Shadow
	Color                   css.Color
	Direction               css.Direction
	Display                 css.DisplayMode
	Float                   css.Float
	FontFamily              []string
	FontSize                css.DimenT
	FontStyle               css.FontStyle
	FontVariant             []string
	FontWeight              css.FontWeight
	LetterSpacing           float64
	LineBreak               css.LineBreak
	LineHeight              css.LineHeight
	ListStyleImage          css.Image
	ListStylePosition       css.ListStylePosition
	ListStyleType           css.ListStyleType
	MarginTop               css.DimenT
	MarginRight             css.DimenT
	MarginBottom            css.DimenT
	MarginLeft              css.DimenT
	Opacity                 float64
	OverflowX               css.Overflow
	OverflowY               css.Overflow
	OverflowWrap            css.OverflowWrap
	PaddingTop              css.DimenT
	PaddingRight            css.DimenT
	PaddingBottom           css.DimenT
	PaddingLeft             css.DimenT
	Position                css.PositionT
	TextAlign               css.TextAlign
	TextDecorationColor     css.Color
	TextDecorationLine      css.TextDecorationLine
	TextShadow              []css.Shadow
	TextTransform           css.TextTransform
	Transform               *css.Transform // nil for `none`
	TransformOrigin         css.Offset2D
	Visibility              css.Visibility
	WebkitTextStrokeColor   css.Color
	WebkitTextStrokeWidth   float64
	WordBreak               css.WordBreak
	ZIndex                  css.ZIndex

	warnings error
}

// NewDeclaration decodes every recognized property of src into a new
// declaration. It then applies the background-clip text correction: if
// ResolveClippedBackground finds a background image on one of the
// ancestors, and it differs from the element's own value, it replaces
// BackgroundImage.
//
// ancestors yields the computed styles of the element's ancestors, nearest
// first. It is consulted only if the element clips its background to text.
//
// Malformed property values never make NewDeclaration fail; they fall back to
// the property's initial value and are reported by Warnings. Errors are
// returned for host faults only.
func NewDeclaration(ctx *config.Context, src Source, ancestors iter.Seq2[Source, error]) (*Declaration, error) {
	if ctx == nil {
		ctx = config.NewContext()
	}
	d := &Declaration{}
	st := &decoder{ctx: ctx, decl: d}
	for _, desc := range descriptors {
		st.decode(desc, rawValue(desc, src))
	}
	replacement, err := ResolveClippedBackground(ctx, src, ancestors)
	if err != nil {
		return nil, fmt.Errorf("resolving clipped background: %w", err)
	}
	if bg, ok := replacement.Get(); ok {
		own := Property(src.GetPropertyValue("background-image"))
		if bg != own.String() && !Property(bg).IsNone() {
			tracer().Debugf("background-image replaced by ancestor's %q", bg)
			st.decode(backgroundImageDescriptor, bg)
		}
	}
	d.warnings = st.warnings
	return d, nil
}

// Warnings returns the decoding problems encountered while building d,
// combined with go.uber.org/multierr, or nil.
func (d *Declaration) Warnings() error {
	return d.warnings
}

// --- Predicates ------------------------------------------------------------

// IsVisible is false for `display: none`, `opacity: 0` and hidden or
// collapsed visibility.
func (d *Declaration) IsVisible() bool {
	return !d.Display.Contains(css.DisplayNone) && d.Opacity > 0 && d.Visibility == css.Visible
}

// IsTransparent is true if the element is fully transparent.
func (d *Declaration) IsTransparent() bool {
	return d.Opacity <= 0
}

// IsTranslucent is true for an opacity below 1.
func (d *Declaration) IsTranslucent() bool {
	return d.Opacity < 1
}

// IsTransformed is true if a transform other than `none` is set.
func (d *Declaration) IsTransformed() bool {
	return d.Transform != nil
}

// IsPositioned is true for any position other than `static`.
func (d *Declaration) IsPositioned() bool {
	return d.Position.IsPositioned()
}

// IsPositionedWithZIndex is true for positioned elements with a z-index
// other than `auto`.
func (d *Declaration) IsPositionedWithZIndex() bool {
	return d.IsPositioned() && !d.ZIndex.Auto
}

// IsFloating is true for `float` other than `none`.
func (d *Declaration) IsFloating() bool {
	return d.Float != css.FloatNone
}

// IsInlineLevel is true for inline-level display modes.
func (d *Declaration) IsInlineLevel() bool {
	return d.Display.Contains(css.InlineMode) || d.Display.Contains(css.RunInMode)
}

// IsAnimated is true if any animation has a positive duration.
func (d *Declaration) IsAnimated() bool {
	for _, secs := range d.AnimationDuration {
		if secs > 0 {
			return true
		}
	}
	return false
}

// --- Decoding state --------------------------------------------------------

type decoder struct {
	ctx      *config.Context
	decl     *Declaration
	warnings error
}

// currentColor is the value of `currentcolor`.
func (st *decoder) currentColor() css.Color {
	return st.decl.Color
}

// registerImages adds all url() images to the context's image cache.
func (st *decoder) registerImages(images ...css.Image) {
	for _, img := range images {
		if img.Type == css.URLImage {
			st.ctx.Cache().AddImage(img.URL)
		}
	}
}

// decode decodes raw with desc. An empty raw value decodes the initial value.
// A malformed raw value is recorded as a warning and the initial value is
// decoded instead.
func (st *decoder) decode(desc descriptor, raw string) {
	if Property(raw).IsEmpty() || Property(raw).IsInitial() {
		raw = desc.initial
	}
	if Property(raw).IsEmpty() {
		return
	}
	err := desc.decode(st, Property(raw).Values())
	if err == nil {
		return
	}
	err = fmt.Errorf("property %s: %w", desc.name, err)
	st.ctx.Trace().Debugf("%v; using initial value %q", err, desc.initial)
	st.warnings = multierr.Append(st.warnings, err)
	if desc.initial == "" {
		return
	}
	if err := desc.decode(st, Property(desc.initial).Values()); err != nil {
		panic(fmt.Sprintf("initial value %q of property %s does not decode: %v",
			desc.initial, desc.name, err))
	}
}

func rawValue(desc descriptor, src Source) string {
	raw := src.GetPropertyValue(desc.name)
	if Property(raw).IsEmpty() && desc.fallback != nil {
		raw = desc.fallback(src)
	}
	return raw
}
