package cssom

import (
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/boxpaint/dom/style"
)

// ParseValue converts the text of a declaration value into a style.Value.
// Colors and dimensions with a known unit are recognized; everything else
// becomes a text value. A unitless zero is read as 0px.
func ParseValue(s string) style.Value {
	s = strings.TrimSpace(s)
	if c, ok := parseColor(s); ok {
		return style.ColorValue(c.R, c.G, c.B, c.A)
	}
	if l, ok := parseLength(s); ok {
		return style.UnitValue(l.Magnitude, l.Unit)
	}
	return style.TextValue(s)
}

// ParseValues splits a multi-component value (e.g., of a shorthand like
// "padding: 1px 2px") at white space and converts every component.
func ParseValues(s string) []style.Value {
	fields := strings.Fields(s)
	values := make([]style.Value, len(fields))
	for i, f := range fields {
		values[i] = ParseValue(f)
	}
	return values
}

func parseLength(s string) (style.Length, bool) {
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.' || s[i] == '-' || s[i] == '+') {
		i++
	}
	if i == 0 {
		return style.Length{}, false
	}
	x, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return style.Length{}, false
	}
	if i == len(s) {
		return style.Length{Magnitude: 0, Unit: style.PX}, x == 0
	}
	unit, ok := style.ParseUnit(strings.ToLower(s[i:]))
	if !ok {
		tracer().Debugf("cssom: unknown unit in %q, keeping it as text", s)
		return style.Length{}, false
	}
	return style.Length{Magnitude: x, Unit: unit}, true
}

func parseColor(s string) (style.Color, bool) {
	lower := strings.ToLower(s)
	if c, ok := style.NamedColor(lower); ok {
		return c, true
	}
	if strings.HasPrefix(lower, "#") {
		return parseHexColor(lower)
	}
	if strings.HasPrefix(lower, "rgb") {
		return parseRGBFunc(lower)
	}
	return style.Color{}, false
}

// parseHexColor reads #rgb, #rrggbb, #rgba and #rrggbbaa.
func parseHexColor(s string) (style.Color, bool) {
	alpha := uint8(0xff)
	switch len(s) {
	case 5, 9:
		w := (len(s) - 1) / 4
		a, err := strconv.ParseUint(strings.Repeat(s[len(s)-w:], 3-w), 16, 8)
		if err != nil {
			return style.Color{}, false
		}
		alpha = uint8(a)
		s = s[:len(s)-w]
	case 4, 7:
	default:
		return style.Color{}, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return style.Color{}, false
	}
	r, g, b := c.RGB255()
	return style.Color{R: r, G: g, B: b, A: alpha}, true
}

// parseRGBFunc reads rgb(r, g, b) and rgba(r, g, b, a). Alpha is either an
// integer 0…255 (the canonical form) or a fraction 0…1 if it contains a
// decimal point.
func parseRGBFunc(s string) (style.Color, bool) {
	open, rparen := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || rparen < open {
		return style.Color{}, false
	}
	fn, args := s[:open], strings.Split(s[open+1:rparen], ",")
	if !(fn == "rgb" && len(args) == 3) && !(fn == "rgba" && len(args) == 4) {
		return style.Color{}, false
	}
	var ch [4]uint8
	ch[3] = 0xff
	for i, arg := range args {
		arg = strings.TrimSpace(arg)
		if i == 3 && strings.Contains(arg, ".") {
			f, err := strconv.ParseFloat(arg, 64)
			if err != nil || f < 0 || f > 1 {
				return style.Color{}, false
			}
			ch[3] = uint8(f*255 + 0.5)
			continue
		}
		n, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			return style.Color{}, false
		}
		ch[i] = uint8(n)
	}
	return style.Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, true
}
