/*
Package style holds the stylesheet model: declaration values, selectors,
declarations, rules and stylesheets.

The model is pure data. The only computation is specificity ordering of
selectors, which rules apply when they are created. Matching selectors to
DOM nodes and resolving the cascade is done by package css.

Every type of the model has a canonical textual form, produced by its
String method:

	selector      tag#id.class1.class2   (the universal selector prints as *)
	declaration   name: value;
	length        12px
	color         rgba(r, g, b, a)

The canonical form is stable and may be used for diffing. Package cssom reads
it back.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'boxpaint.style'
func tracer() tracing.Trace {
	return tracing.Select("boxpaint.style")
}
