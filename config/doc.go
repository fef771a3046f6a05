/*
Package config holds the shared context of a render tree construction.

A Context bundles the rendering options, the image cache where decoded
`url()` images are registered, the window's scroll offset used to translate
client rectangles into document space, and the trace sink. Options may be
loaded from YAML.

A Context is not safe for concurrent use; a render tree is built on a single
goroutine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rendertree.config'.
func tracer() tracing.Trace {
	return tracing.Select("rendertree.config")
}
