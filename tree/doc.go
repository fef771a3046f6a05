/*
Package tree implements the ordered child containers of a render tree.

A tree is built of Node[T], each carrying a payload of type T and owning
an ordered list of children. Trees are built single-threaded. Searching is
done with predicates along the ancestor axis (AncestorWith) or the
descendent axis (DescendentsWith).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import "errors"

// ErrInvalidFilter is returned if a search is started with a nil predicate.
var ErrInvalidFilter = errors.New("filter predicate is invalid")
