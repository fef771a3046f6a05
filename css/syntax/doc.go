/*
Package syntax implements tokenizing and parsing of CSS property values.

Overview

Computed styles are handed to us as plain strings, e.g.

    linear-gradient(to right, rgb(255, 0, 0) 10%, blue)

Property decoders need structure, not text. Tokenize converts a raw value
string into a flat sequence of CSS tokens (following CSS Syntax Level 3,
https://www.w3.org/TR/css-syntax-3/#tokenization), and a Parser groups tokens
into component values: single tokens, simple blocks and functions with nested
arguments.

Both steps are total: malformed input never produces an error, but rather a
best-effort token stream or parse tree. Unbalanced brackets consume the rest
of the input. Only ParseComponentValue, which asks for exactly one value,
reports a (recoverable) error.

Tokenizing is delegated to the lexer of github.com/tdewolff/parse/v2/css.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rendertree.css'.
func tracer() tracing.Trace {
	return tracing.Select("rendertree.css")
}
