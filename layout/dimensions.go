package layout

import "fmt"

// Rect is a rectangle in device-independent pixels.
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %g×%g)", r.X, r.Y, r.Width, r.Height)
}

// ExpandedBy returns r grown by edge sizes on every side.
func (r Rect) ExpandedBy(e EdgeSizes) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  r.Width + e.Left + e.Right,
		Height: r.Height + e.Top + e.Bottom,
	}
}

// ShrunkBy returns r with edge sizes removed on every side.
func (r Rect) ShrunkBy(e EdgeSizes) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  r.Width - e.Left - e.Right,
		Height: r.Height - e.Top - e.Bottom,
	}
}

// Contains is true if other lies completely within r.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.Width <= r.X+r.Width &&
		other.Y+other.Height <= r.Y+r.Height
}

// IsEmpty is true for rectangles without area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// EdgeSizes are the sizes of the four sides of a box edge (padding, border
// or margin).
type EdgeSizes struct {
	Top, Right, Bottom, Left float64
}

// EdgesFrom creates edge sizes from four values in CSS order
// (top, right, bottom, left).
func EdgesFrom(sides [4]float64) EdgeSizes {
	return EdgeSizes{Top: sides[0], Right: sides[1], Bottom: sides[2], Left: sides[3]}
}

// Horizontal is the sum of left and right.
func (e EdgeSizes) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical is the sum of top and bottom.
func (e EdgeSizes) Vertical() float64 {
	return e.Top + e.Bottom
}

// Plus adds edge sizes side by side.
func (e EdgeSizes) Plus(other EdgeSizes) EdgeSizes {
	return EdgeSizes{
		Top:    e.Top + other.Top,
		Right:  e.Right + other.Right,
		Bottom: e.Bottom + other.Bottom,
		Left:   e.Left + other.Left,
	}
}

// Dimensions are the geometry of a box. See the package documentation for
// the box model.
type Dimensions struct {
	Content Rect // rectangle assigned by the formatting context
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// Viewport returns dimensions suitable as the initial containing block.
func Viewport(width, height float64) Dimensions {
	return Dimensions{Content: Rect{Width: width, Height: height}}
}

// PaddingBox is the area inside of the border.
func (d Dimensions) PaddingBox() Rect {
	return d.Content.ShrunkBy(d.Border)
}

// InnerBox is the area inside of border and padding, i.e. the containing
// block for the children of a box.
func (d Dimensions) InnerBox() Rect {
	return d.Content.ShrunkBy(d.Border.Plus(d.Padding))
}

// MarginBox is the area including the margins.
func (d Dimensions) MarginBox() Rect {
	return d.Content.ExpandedBy(d.Margin)
}
