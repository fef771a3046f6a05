/*
Package htmlhost implements a static host document on top of an HTML parse
tree.

Browser engines deliver computed styles and client rects for elements. For
documents without a browser engine, package htmlhost computes styles from
the stylesheets of the document: <style> elements, additional stylesheets,
inline `style` attributes and user agent defaults. Selectors are matched
with package cascadia, stylesheets are parsed with douceur.

The cascade orders declarations by importance, selector specificity and
source order. Inheritable properties which are not set for an element are
looked up at its ancestors.

Layout is not performed; client rects are read from an attribute or
delivered by the client (see WithBounds).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmlhost

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rendertree.dom'.
func tracer() tracing.Trace {
	return tracing.Select("rendertree.dom")
}
