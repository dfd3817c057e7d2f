package style

import (
	"fmt"
	"image/color"
	"strconv"
)

// Unit is the unit of a dimension value.
type Unit uint8

// Units supported by the stylesheet model.
const (
	PX Unit = iota
	EM
	REM
	VW
	VH
)

var unitNames = [...]string{"px", "em", "rem", "vw", "vh"}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("unit(%d)", uint8(u))
}

// ParseUnit returns the unit for a unit name, e.g. "rem".
func ParseUnit(s string) (Unit, bool) {
	for i, name := range unitNames {
		if name == s {
			return Unit(i), true
		}
	}
	return PX, false
}

// Length is a magnitude together with a unit.
type Length struct {
	Magnitude float64
	Unit      Unit
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Magnitude, 'f', -1, 64) + l.Unit.String()
}

// Px returns the magnitude of l if it is given in pixels.
// Other units cannot be resolved without a font or viewport context and
// yield 0 and false.
func (l Length) Px() (float64, bool) {
	if l.Unit == PX {
		return l.Magnitude, true
	}
	return 0, false
}

// Color is a non-premultiplied RGBA color with 8 bits per channel.
// Color implements color.Color.
type Color struct {
	R, G, B, A uint8
}

// RGBA is part of interface color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

var _ color.Color = Color{}

// --- Values ----------------------------------------------------------------

// ValueKind denotes the variant of a Value.
type ValueKind uint8

// Value variants. The zero Value is of kind NoValue.
const (
	NoValue ValueKind = iota
	TextKind
	UnitKind
	ColorKind
)

func (k ValueKind) String() string {
	switch k {
	case TextKind:
		return "text"
	case UnitKind:
		return "unit"
	case ColorKind:
		return "color"
	}
	return "none"
}

// Value is a declaration value, one of
//
//	Text(string) | Unit(magnitude, unit) | Color(r, g, b, a)
//
// Values are immutable; copying a Value yields an independent clone.
type Value struct {
	kind   ValueKind
	text   string
	length Length
	color  Color
}

// TextValue creates a text value, e.g. "block".
func TextValue(s string) Value {
	return Value{kind: TextKind, text: s}
}

// UnitValue creates a dimension value, e.g. 12px.
func UnitValue(magnitude float64, unit Unit) Value {
	return Value{kind: UnitKind, length: Length{Magnitude: magnitude, Unit: unit}}
}

// ColorValue creates a color value.
func ColorValue(r, g, b, a uint8) Value {
	return Value{kind: ColorKind, color: Color{R: r, G: g, B: b, A: a}}
}

// Kind returns the variant of v.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsEmpty is true for the zero Value.
func (v Value) IsEmpty() bool {
	return v.kind == NoValue
}

// Clone returns a copy of v. Values do not share any state, so this is a
// plain copy.
func (v Value) Clone() Value {
	return v
}

// Equal compares two values variant-wise.
func (v Value) Equal(other Value) bool {
	return v == other
}

// String returns the canonical textual form of v.
func (v Value) String() string {
	switch v.kind {
	case TextKind:
		return v.text
	case UnitKind:
		return v.length.String()
	case ColorKind:
		return v.color.String()
	}
	return ""
}

// Match returns a matcher for v, to be used in a switch statement:
//
//	var l style.Length
//	switch m := v.Match(); m {
//	case m.Unit(&l):
//		…
//	}
func (v Value) Match() ValueMatcher {
	return valueMatcher{v: v}
}

// ValueMatcher is used to switch over the variants of a Value.
type ValueMatcher interface {
	Text(*string) ValueMatcher
	Unit(*Length) ValueMatcher
	Color(*Color) ValueMatcher
	None() ValueMatcher
}

type valueMatcher struct {
	v Value
}

func (vm valueMatcher) Text(s *string) ValueMatcher {
	if vm.v.kind != TextKind {
		return nil
	}
	if s != nil {
		*s = vm.v.text
	}
	return vm
}

func (vm valueMatcher) Unit(l *Length) ValueMatcher {
	if vm.v.kind != UnitKind {
		return nil
	}
	if l != nil {
		*l = vm.v.length
	}
	return vm
}

func (vm valueMatcher) Color(c *Color) ValueMatcher {
	if vm.v.kind != ColorKind {
		return nil
	}
	if c != nil {
		*c = vm.v.color
	}
	return vm
}

func (vm valueMatcher) None() ValueMatcher {
	if vm.v.kind != NoValue {
		return nil
	}
	return vm
}
