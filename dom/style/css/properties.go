package css

import (
	"github.com/npillmayer/boxpaint/dom/style"
	"github.com/npillmayer/boxpaint/dom/style/cssom"
	"github.com/npillmayer/boxpaint/dom/styledtree"
)

// Display returns the display mode declared for a styled node. If no usable
// display value is declared, NoMode and false are returned.
func Display(sn *styledtree.Node) (DisplayMode, bool) {
	v, ok := sn.Value(style.PropDisplay)
	if !ok {
		return NoMode, false
	}
	var s string
	switch m := v.Match(); m {
	case m.Text(&s):
		mode, err := ParseDisplay(s)
		if err != nil {
			tracer().Infof("styling: %v", err)
		}
		return mode, mode != NoMode
	}
	tracer().Infof("styling: ignoring non-text display value %s", v)
	return NoMode, false
}

// Px interprets a value as a pixel dimension. Only px is resolved; every
// other unit, as well as non-dimension values, resolve to 0.
func Px(v style.Value) float64 {
	var l style.Length
	switch m := v.Match(); m {
	case m.Unit(&l):
		if px, ok := l.Px(); ok {
			return px
		}
		tracer().Infof("styling: cannot resolve unit %s, using 0", l.Unit)
	}
	return 0
}

// EdgeSizes returns the four sides (top, right, bottom, left) of a box edge
// in pixels, for an edge shorthand property like "padding", "margin" or
// "border-width". A longhand (e.g., padding-left) takes precedence over the
// shorthand. Shorthands with 1–4 components are distributed to the sides the
// CSS way. Absent sides are 0.
func EdgeSizes(sn *styledtree.Node, shorthand string) [4]float64 {
	var sides [4]float64
	if sn == nil {
		return sides
	}
	if v, ok := sn.Value(shorthand); ok {
		values := []style.Value{v}
		var s string
		switch m := v.Match(); m {
		case m.Text(&s):
			values = cssom.ParseValues(s)
		}
		if decls, err := style.SplitCompound(shorthand, values); err == nil {
			for i, d := range decls {
				sides[i] = Px(d.Value)
			}
		} else {
			tracer().Infof("styling: %v", err)
		}
	}
	for i, name := range style.LonghandNames(shorthand) {
		if v, ok := sn.Value(name); ok {
			sides[i] = Px(v)
		}
	}
	return sides
}

// BackgroundColor returns the background color of a styled node.
// background-color takes precedence over background. Only color values
// count as a background color.
func BackgroundColor(sn *styledtree.Node) (style.Color, bool) {
	if sn == nil {
		return style.Color{}, false
	}
	for _, name := range []string{style.PropBackgroundColor, style.PropBackground} {
		if v, ok := sn.Value(name); ok {
			var c style.Color
			switch m := v.Match(); m {
			case m.Color(&c):
				return c, true
			}
		}
	}
	return style.Color{}, false
}
