/*
Package layout turns a styled tree into a tree of geometric boxes.

Box Model

Every box has dimensions: a rectangle assigned to it by its formatting
context (Dimensions.Content) plus padding, border and margin edge sizes.
Following the engine's box model, margins lie outside of the rectangle,
while the box's own border and padding lie inside of it. The containing
block handed to the children of a box is the rectangle shrunk by border and
padding (Dimensions.InnerBox).

	┌──────────────── margin box ────────────────┐
	│  ┌──────────── Content ─────────────────┐  │
	│  │ border                               │  │
	│  │  ┌──────── padding box ───────────┐  │  │
	│  │  │ padding                        │  │  │
	│  │  │  ┌──── inner box ───────────┐  │  │  │
	│  │  │  │ children                 │  │  │  │

Layout is done in one recursive pass: widths top-down, heights bottom-up.
Block boxes take the full width of their containing block (less their
horizontal margins) and are stacked vertically in document order, without
margin collapsing. A box's height is the sum of its children's margin box
heights plus its own vertical padding and border.

Inline boxes have no intrinsic content size, as there is no text layout. They
are placed side by side on a single line, as wide as their edges and their
inline children, and as high as their edges plus their tallest child.
Runs of inline boxes appearing alongside block boxes are wrapped into
anonymous boxes, which take the full width of their container and are as
high as the tallest box of their run.
The geometry of block-only trees is fully defined; the geometry of inline
content is a simplification, as there is no line breaking.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxpaint.layout'.
func tracer() tracing.Trace {
	return tracing.Select("boxpaint.layout")
}
