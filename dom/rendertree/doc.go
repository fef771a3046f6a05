/*
Package rendertree implements the render tree: a self-contained snapshot of
a styled document, ready to be painted without further access to the
document.

Render nodes are created by a Builder from the elements of a w3cdom.Host.
Each node carries the decoded style declaration of its element, its bounds
in document coordinates and a set of flags. Nodes do not reference host
elements, so a render tree outlives the document it has been built from.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rendertree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rendertree.dom'.
func tracer() tracing.Trace {
	return tracing.Select("rendertree.dom")
}
