/*
Package css provides typed values for CSS properties.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
CSS properties resulting from their textual nature: every value type
(colors, dimensions, durations, images, transforms, shadows and a range of
keyword enums) comes with a decoder working on component values as
produced by package css/syntax.

Decoders are pure functions. They never fall back to default values
themselves; this is left to the property descriptors in package dom/style,
which know about a property's initial value.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom

import (
	"errors"
	"fmt"

	"github.com/npillmayer/rendertree/css/syntax"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rendertree.css'.
func tracer() tracing.Trace {
	return tracing.Select("rendertree.css")
}

// ErrInvalidValue is wrapped by all decoding errors of this package.
var ErrInvalidValue = errors.New("invalid css value")

func invalid(what string, v interface{}) error {
	return fmt.Errorf("%w: %s %v", ErrInvalidValue, what, v)
}

// single returns the only non-whitespace component value of values.
func single(values []syntax.ComponentValue) (syntax.ComponentValue, error) {
	vs := syntax.NonWhitespace(values)
	if len(vs) != 1 {
		return syntax.ComponentValue{}, invalid("expected single value, have", syntax.Serialize(values))
	}
	return vs[0], nil
}
