package style

// A small palette of CSS named colors.
var namedColors = map[string]Color{
	"black":       {0, 0, 0, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0, 0, 0xff},
	"green":       {0, 0x80, 0, 0xff},
	"lime":        {0, 0xff, 0, 0xff},
	"blue":        {0, 0, 0xff, 0xff},
	"yellow":      {0xff, 0xff, 0, 0xff},
	"gray":        {0x80, 0x80, 0x80, 0xff},
	"grey":        {0x80, 0x80, 0x80, 0xff},
	"silver":      {0xc0, 0xc0, 0xc0, 0xff},
	"navy":        {0, 0, 0x80, 0xff},
	"orange":      {0xff, 0xa5, 0, 0xff},
	"powderblue":  {0xb0, 0xe0, 0xe6, 0xff},
	"transparent": {0, 0, 0, 0},
}

// NamedColor returns the color for a CSS color keyword.
func NamedColor(name string) (Color, bool) {
	c, ok := namedColors[name]
	return c, ok
}
