/*
Package css provides functionality for CSS styling.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
CSS properties resulting of (1) the textual nature of CSS properties
and (2) the complicated semantics of computing style attributes for a
given node.

Resolve is the style resolver: it matches the rules of a stylesheet against
every node of a DOM tree and builds the styled tree. Typed getters like
Display or EdgeSizes then interpret the winning values for layout.

Cascade

For every element, the candidate rules are the rules with at least one
matching selector. A candidate's priority is the specificity of its most
specific matching selector. Candidates are ordered by decreasing
specificity; candidates of equal specificity keep source order. Declarations
are applied in that order and the first value set for a property name wins.
No inheritance between styled nodes takes place.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxpaint.style'.
func tracer() tracing.Trace {
	return tracing.Select("boxpaint.style")
}
