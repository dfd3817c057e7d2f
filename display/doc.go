/*
Package display creates display lists from laid out box trees.

A display list is an ordered queue of primitive paint commands, to be
executed in order by a rasterizer. Boxes are painted in pre-order, i.e.
parents before their children, and children in document order. Every box
with a background color contributes a filled rectangle for its padding box,
followed by rectangles for its four border sides.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxpaint.display'.
func tracer() tracing.Trace {
	return tracing.Select("boxpaint.display")
}
