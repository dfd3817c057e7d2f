/*
Package tree implements a general purpose ordered tree.

Styling and layout involve operations on different trees. Trees in this module
are built on top of the generic Node type, which carries a payload and an
ordered slice of children. Walking is synchronous and in pre-order.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'boxpaint.tree'.
func tracer() tracing.Trace {
	return tracing.Select("boxpaint.tree")
}
