/*
Package cssom reads the textual forms of stylesheet model items.

CSSOM is the "CSS Object Model", similar to the DOM for HTML. The model
itself lives in package style; this package converts text into model items:
declaration values, simple selectors and declarations. It accepts the
canonical forms printed by package style, therefore

	print(parse(print(x))) == print(x)

holds for selectors and declarations. Additionally the usual CSS notations
for colors (#rgb, #rrggbb, #rrggbbaa, rgb(…), rgba(…) and color keywords)
are understood.

Selector text is validated with https://godoc.org/github.com/andybalholm/cascadia.
Only simple compound selectors (tag, id, classes) are supported; combinators,
attribute selectors and pseudo-classes are rejected with an error.

Reading complete stylesheets is done by sub-package douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'boxpaint.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("boxpaint.cssom")
}
