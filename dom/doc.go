/*
Package dom provides the document trees styling operates on.

Overview

Documents are represented as trees of golang.org/x/net/html nodes. In
contrast to html.Parse, which applies the HTML5 tree-construction algorithm
(inserting <head> and <body>, re-parenting misplaced elements), Parse in
this package builds a literal tree: every element, text and comment appears
exactly where it has been written. Documents without a root <html> element
are wrapped into an implicit one, so every document has exactly one root
element.

Tree Implementation

Styling and layout involve a lot of operations on different trees.
The styled tree is built on top of a general purpose tree type
(package tree); the DOM itself stays an html.Node tree, which allows clients
to use any HTML tooling available for package html.

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

// tracer will return a tracer. We are tracing to 'boxpaint.dom'
func tracer() tracing.Trace {
	return tracing.Select("boxpaint.dom")
}
