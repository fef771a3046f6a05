package style

import (
	"iter"
	"strings"

	"github.com/npillmayer/rendertree/config"
	"github.com/npillmayer/rendertree/css"
	"github.com/npillmayer/rendertree/maybe"
)

// ResolveClippedBackground detects the `background-clip: text` idiom. Text
// with a transparent fill, clipped to a background image, shows the
// background of the first ancestor carrying one. Computed style does not
// tell, so we have to look it up.
//
// The idiom is present if all of these hold for own, absent values taking
// the property's initial value:
//
//   - `-webkit-background-clip` (or `background-clip`) is `text`
//   - `-webkit-text-fill-color` (or `color`) is transparent
//   - `background-image` is empty or `none`
//   - `background-color` is transparent
//
// If so, ancestors (nearest first) are searched for the first
// `background-image` which is neither empty nor `none`, and its raw value
// is returned. In every other case the result is Nothing. Errors yielded by
// ancestors are returned unchanged.
func ResolveClippedBackground(ctx *config.Context, own Source, ancestors iter.Seq2[Source, error]) (maybe.Maybe[string], error) {
	if !clipsBackgroundToText(own) {
		return maybe.Nothing[string](), nil
	}
	if ctx == nil {
		ctx = config.NewContext()
	}
	if ancestors == nil {
		return maybe.Nothing[string](), nil
	}
	depth := 0
	for anc, err := range ancestors {
		if err != nil {
			return maybe.Nothing[string](), err
		}
		depth++
		bg := Property(anc.GetPropertyValue("background-image"))
		if !bg.IsEmpty() && !bg.IsNone() {
			ctx.Trace().Debugf("text-clipped background found %d level(s) up: %s", depth, bg)
			return maybe.Just(strings.TrimSpace(bg.String())), nil
		}
	}
	ctx.Trace().Debugf("text-clipped background, but no ancestor has a background-image")
	return maybe.Nothing[string](), nil
}

func clipsBackgroundToText(src Source) bool {
	clip := orInitial(firstOf(src, "-webkit-background-clip", "background-clip"), "background-clip")
	if !strings.EqualFold(strings.TrimSpace(clip.String()), "text") {
		return false
	}
	fill := firstOf(src, "-webkit-text-fill-color", "color")
	if fill.IsEmpty() || strings.EqualFold(strings.TrimSpace(fill.String()), "currentcolor") {
		fill = orInitial(Property(src.GetPropertyValue("color")), "color")
	}
	if !isTransparent(fill) {
		return false
	}
	if bg := Property(src.GetPropertyValue("background-image")); !bg.IsEmpty() && !bg.IsNone() {
		return false
	}
	bgcolor := orInitial(Property(src.GetPropertyValue("background-color")), "background-color")
	return isTransparent(bgcolor)
}

// firstOf returns the value of the first non-empty property of names.
func firstOf(src Source, names ...string) Property {
	for _, name := range names {
		if p := Property(src.GetPropertyValue(name)); !p.IsEmpty() {
			return p
		}
	}
	return NullStyle
}

// orInitial replaces an absent value with the initial value of property name.
func orInitial(p Property, name string) Property {
	if !p.IsEmpty() && !p.IsInitial() {
		return p
	}
	initial, _ := InitialValue(name)
	return initial
}

func isTransparent(p Property) bool {
	c, err := css.ParseColorString(p.String())
	return err == nil && c.IsTransparent()
}
