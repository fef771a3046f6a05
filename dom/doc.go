/*
Package dom builds render trees from host documents.

Overview

A host document is anything implementing w3cdom.Host, delivering computed
styles and client rects for its elements. BuildTree walks the elements of
a host document, creates a render node for every visible element and
collects text content into text runs.

Tree Implementation

Styling and rendering of HTML/CSS involves operations on different trees.
We implement them on top of a general purpose tree type (package tree).
In a fully object oriented programming language we would subclass this
tree type for every type of tree in use, but in Go we resort to
composition, thus including a generic tree node in every node (sub-)type.
The downside of this approach is that we will have to provide an adapter
for every node sub-type to return the sub-type from the generic type:
for render nodes this is the tree node's Payload.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'rendertree.dom'
func tracer() tracing.Trace {
	return tracing.Select("rendertree.dom")
}
