package display

import (
	"github.com/npillmayer/boxpaint/dom/style"
	"github.com/npillmayer/boxpaint/dom/style/css"
	"github.com/npillmayer/boxpaint/layout"
)

// Build creates the display list for a laid out box tree. A nil tree results
// in an empty list.
func Build(root *layout.Box) *List {
	list := &List{}
	root.Walk(func(box *layout.Box, depth int) {
		color, ok := css.BackgroundColor(box.StyledNode())
		if !ok {
			return
		}
		tracer().Debugf("display: %d paint %v", depth, box)
		paintBox(list, box.Dimensions, color)
	})
	tracer().Debugf("display: list has %d commands", list.Len())
	return list
}

// CreateQueue is an alias for Build.
func CreateQueue(root *layout.Box) *List {
	return Build(root)
}

// paintBox pushes the padding box, followed by the top, right, bottom and left
// border sides.
func paintBox(list *List, d layout.Dimensions, color style.Color) {
	list.Push(RectangleCmd{Rect: d.PaddingBox(), Color: color})
	c, b := d.Content, d.Border
	borders := [4]layout.Rect{
		{X: c.X, Y: c.Y, Width: c.Width, Height: b.Top},
		{X: c.X + c.Width - b.Right, Y: c.Y, Width: b.Right, Height: c.Height},
		{X: c.X, Y: c.Y + c.Height - b.Bottom, Width: c.Width, Height: b.Bottom},
		{X: c.X, Y: c.Y, Width: b.Left, Height: c.Height},
	}
	for _, r := range borders {
		list.Push(RectangleCmd{Rect: r, Color: color})
	}
}
