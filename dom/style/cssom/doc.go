/*
Package cssom provides functionality for CSS styling.

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
This package de-couples CSS handling from concrete CSS parsers by
introducing interfaces StyleSheet and Rule. A concrete implementation on
top of github.com/aymerick/douceur may be found in sub-package
douceuradapter. Selector matching is left to clients, which usually employ
https://godoc.org/github.com/andybalholm/cascadia.

A good explanation of styling may be found in

   https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
