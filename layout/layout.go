package layout

import (
	"github.com/npillmayer/boxpaint/dom/styledtree"
)

// Layout builds the box tree for a styled tree and lays it out within a
// containing block. The root box is placed at the origin of the containing
// block's content rectangle and takes its width; the containing block's
// height does not restrict the layout.
//
// If the root does not generate a box (e.g., because of display: none),
// an empty anonymous box is returned.
//
// Layout is total: it terminates for every finite styled tree and never
// fails. Dimensions given in units other than px resolve to 0.
func Layout(root *styledtree.Node, containingBlock Dimensions, opts Options) *Box {
	box := BuildBoxTree(root, opts)
	if box == nil {
		tracer().Debugf("layout: root generates no box")
		box = NewAnonymousBox()
	}
	LayoutBox(box, containingBlock)
	tracer().Debugf("layout: %d boxes laid out", box.Count())
	return box
}

// LayoutBox lays out an already constructed box tree within a containing
// block, filling in the dimensions of every box.
func LayoutBox(box *Box, containingBlock Dimensions) {
	cb := containingBlock.Content
	if box.IsBlockFormatted() {
		box.layoutBlock(cb.X, cb.Y, cb.Width)
	} else {
		box.layoutInline(cb.X, cb.Y, cb.Width)
	}
}

// layoutBlock places a block-formatted box with its margin box starting at
// (x, y) and spanning a width of w. It returns the height of the margin box.
func (b *Box) layoutBlock(x, y, w float64) float64 {
	d := &b.Dimensions
	d.Content.X = x + d.Margin.Left
	d.Content.Y = y + d.Margin.Top
	d.Content.Width = w - d.Margin.Horizontal()
	edges := d.Border.Plus(d.Padding)
	inner := d.InnerBox()
	var h float64
	if b.hasBlockChildren() {
		h = b.stackChildren(inner.X, inner.Y, inner.Width)
	} else {
		_, h = b.lineUpChildren(inner.X, inner.Y, inner.Width)
	}
	d.Content.Height = h + edges.Vertical()
	return d.Content.Height + d.Margin.Vertical()
}

// layoutInline places an inline box with its margin box starting at (x, y),
// with at most a width of avail available. Inline boxes are as wide as
// their content, except if they contain blocks, which span the available
// width. It returns the width and height of the margin box.
func (b *Box) layoutInline(x, y, avail float64) (float64, float64) {
	d := &b.Dimensions
	d.Content.X = x + d.Margin.Left
	d.Content.Y = y + d.Margin.Top
	edges := d.Border.Plus(d.Padding)
	ix, iy := d.Content.X+edges.Left, d.Content.Y+edges.Top
	iw := avail - d.Margin.Horizontal() - edges.Horizontal()
	if iw < 0 {
		iw = 0
	}
	var w, h float64
	if b.hasBlockChildren() {
		w, h = iw, b.stackChildren(ix, iy, iw)
	} else {
		w, h = b.lineUpChildren(ix, iy, iw)
	}
	d.Content.Width = w + edges.Horizontal()
	d.Content.Height = h + edges.Vertical()
	return d.Content.Width + d.Margin.Horizontal(), d.Content.Height + d.Margin.Vertical()
}

func (b *Box) hasBlockChildren() bool {
	return len(b.Children) > 0 && b.Children[0].IsBlockFormatted()
}

// stackChildren places block-formatted children one below the other and
// returns the sum of their margin box heights.
func (b *Box) stackChildren(x, y, w float64) float64 {
	cursor := y
	for _, ch := range b.Children {
		cursor += ch.layoutBlock(x, cursor, w)
	}
	return cursor - y
}

// lineUpChildren places inline children side by side and returns the total
// width and the maximum height of their margin boxes.
func (b *Box) lineUpChildren(x, y, avail float64) (float64, float64) {
	cursor, height := x, 0.0
	for _, ch := range b.Children {
		w, h := ch.layoutInline(cursor, y, avail-(cursor-x))
		cursor += w
		if h > height {
			height = h
		}
	}
	return cursor - x, height
}
