package style

import (
	"fmt"
	"strings"
)

// Property names the engine interprets.
const (
	PropDisplay         = "display"
	PropBackground      = "background"
	PropBackgroundColor = "background-color"
	PropPadding         = "padding"
	PropMargin          = "margin"
	PropBorderWidth     = "border-width"
)

// For padding, margins, etc. 4-way values always start at the top and travel
// clockwise.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// Directions lists the four sides in CSS order.
var Directions = [4]string{"top", "right", "bottom", "left"}

// LonghandNames returns the four longhand property names of an edge
// shorthand, in CSS order. Example:
//
//	LonghandNames("padding")      => padding-top, padding-right, …
//	LonghandNames("border-width") => border-top-width, border-right-width, …
func LonghandNames(shorthand string) [4]string {
	var names [4]string
	pre, suf := shorthand, ""
	if i := strings.IndexByte(shorthand, '-'); i > 0 {
		pre, suf = shorthand[:i], shorthand[i+1:]
	}
	for i, dir := range Directions {
		names[i] = p(pre, suf, dir)
	}
	return names
}

// SplitCompound distributes the 1–4 components of an edge shorthand to the
// four sides, the way CSS does it:
//
//	1 value:  all sides
//	2 values: top/bottom, right/left
//	3 values: top, right/left, bottom
//	4 values: top, right, bottom, left
//
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompound(shorthand string, values []Value) ([4]Declaration, error) {
	var r [4]Declaration
	l := len(values)
	if l == 0 || l > 4 {
		return r, fmt.Errorf("expecting 1-4 values for %s, have %d", shorthand, l)
	}
	names := LonghandNames(shorthand)
	pick := [4]int{0, 0, 0, 0}
	switch l {
	case 2:
		pick = [4]int{0, 1, 0, 1}
	case 3:
		pick = [4]int{0, 1, 2, 1}
	case 4:
		pick = [4]int{0, 1, 2, 3}
	}
	for i := range r {
		r[i] = Declaration{Name: names[i], Value: values[pick[i]]}
	}
	return r, nil
}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
