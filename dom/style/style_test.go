package style

import (
	"testing"

	"github.com/npillmayer/boxpaint/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecificityOrdering(t *testing.T) {
	a := NewSelector("div", "")   // (0,0,1)
	b := NewSelector("", "intro") // (1,0,0)
	for _, sels := range [][]Selector{{a, b}, {b, a}} {
		r := NewRule(sels, nil)
		require.Len(t, r.Selectors, 2)
		assert.True(t, r.Selectors[0].Equal(b), "expected id selector first, have %v", r.Selectors)
		assert.True(t, r.Selectors[1].Equal(a))
	}
}

func TestSpecificityStableForTies(t *testing.T) {
	x := NewSelector("", "", "x")
	y := NewSelector("", "", "y")
	z := NewSelector("p", "", "z")
	r := NewRule([]Selector{x, y, z}, nil)
	assert.Equal(t, "p.z", r.Selectors[0].String())
	assert.Equal(t, ".x", r.Selectors[1].String())
	assert.Equal(t, ".y", r.Selectors[2].String())
}

func TestSpecificityCompare(t *testing.T) {
	assert.Equal(t, Specificity{1, 0, 0}, NewSelector("", "a").Specificity())
	assert.Equal(t, Specificity{1, 2, 1}, NewSelector("p", "a", "b", "c", "b").Specificity())
	assert.Equal(t, 1, Specificity{0, 2, 0}.Compare(Specificity{0, 1, 5}))
	assert.Equal(t, -1, Specificity{0, 0, 1}.Compare(Specificity{1, 0, 0}))
	assert.Equal(t, 0, Universal().Specificity().Compare(Specificity{}))
	assert.Equal(t, "(1,2,1)", Specificity{1, 2, 1}.String())
}

func TestSelectorPrint(t *testing.T) {
	assert.Equal(t, "tag#id.class1.class2", NewSelector("tag", "id", "class1", "class2").String())
	assert.Equal(t, "*", Universal().String())
	assert.Equal(t, "*", NewSelector("*", "").String())
	assert.Equal(t, "#x", NewSelector("", "x").String())
	assert.Equal(t, ".a.b", NewSelector("", "", "a", "b", "a").String())
}

func TestSelectorMatches(t *testing.T) {
	div := dom.NewElement("div", "id", "main", "class", "wide dark")
	cases := []struct {
		sel   Selector
		match bool
	}{
		{Universal(), true},
		{NewSelector("div", ""), true},
		{NewSelector("p", ""), false},
		{NewSelector("", "main"), true},
		{NewSelector("div", "other"), false},
		{NewSelector("", "", "dark"), true},
		{NewSelector("", "", "dark", "wide"), true},
		{NewSelector("", "", "dark", "narrow"), false},
		{NewSelector("div", "main", "wide"), true},
	}
	for _, c := range cases {
		assert.Equal(t, c.match, c.sel.Matches(div), "selector %s", c.sel)
	}
	assert.False(t, Universal().Matches(dom.NewText("div")), "text nodes never match")
	assert.False(t, Universal().Matches(nil))
}

func TestValuePrintAndMatch(t *testing.T) {
	assert.Equal(t, "rgba(0, 0, 0, 255)", ColorValue(0, 0, 0, 255).String())
	assert.Equal(t, "12px", UnitValue(12, PX).String())
	assert.Equal(t, "1.5em", UnitValue(1.5, EM).String())
	assert.Equal(t, "block", TextValue("block").String())
	assert.Equal(t, "", Value{}.String())
	assert.Equal(t, "padding: 12px;", Declare("padding", UnitValue(12, PX)).String())

	v := UnitValue(3, VW)
	var l Length
	var s string
	switch m := v.Match(); m {
	case m.Text(&s):
		t.Errorf("expected unit value not to match text")
	case m.Unit(&l):
	default:
		t.Errorf("expected unit value to match unit")
	}
	assert.Equal(t, VW, l.Unit)
	_, ok := l.Px()
	assert.False(t, ok, "vw must not resolve to px")

	w := v.Clone()
	assert.True(t, w.Equal(v))
	assert.True(t, Value{}.IsEmpty())
	switch m := (Value{}).Match(); m {
	case m.None():
	default:
		t.Errorf("expected zero value to match None")
	}
}

func TestColorImplementsColor(t *testing.T) {
	r, g, b, a := Color{R: 0xff, A: 0xff}.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g+b)
	assert.Equal(t, uint32(0xffff), a)
	c, ok := NamedColor("white")
	assert.True(t, ok)
	assert.Equal(t, "rgba(255, 255, 255, 255)", c.String())
}

func TestUnitNames(t *testing.T) {
	for _, name := range []string{"px", "em", "rem", "vw", "vh"} {
		u, ok := ParseUnit(name)
		require.True(t, ok, name)
		assert.Equal(t, name, u.String())
	}
	_, ok := ParseUnit("pt")
	assert.False(t, ok)
}

func TestSplitCompound(t *testing.T) {
	one, two, three, four := UnitValue(1, PX), UnitValue(2, PX), UnitValue(3, PX), UnitValue(4, PX)
	d, err := SplitCompound("padding", []Value{one})
	require.NoError(t, err)
	for i, name := range []string{"padding-top", "padding-right", "padding-bottom", "padding-left"} {
		assert.Equal(t, name, d[i].Name)
		assert.Equal(t, one, d[i].Value)
	}
	d, _ = SplitCompound("margin", []Value{one, two})
	assert.Equal(t, []Value{one, two, one, two}, []Value{d[0].Value, d[1].Value, d[2].Value, d[3].Value})
	d, _ = SplitCompound("margin", []Value{one, two, three})
	assert.Equal(t, []Value{one, two, three, two}, []Value{d[0].Value, d[1].Value, d[2].Value, d[3].Value})
	d, _ = SplitCompound("border-width", []Value{one, two, three, four})
	assert.Equal(t, "border-left-width", d[Left].Name)
	assert.Equal(t, four, d[Left].Value)
	_, err = SplitCompound("padding", nil)
	assert.Error(t, err)
}

func TestStyleSheetAppend(t *testing.T) {
	var empty *StyleSheet
	assert.True(t, empty.Empty())
	s1 := NewStyleSheet(NewRule([]Selector{Universal()}, []Declaration{Declare("display", TextValue("block"))}))
	s2 := NewStyleSheet(NewRule([]Selector{NewSelector("p", "")}, nil))
	s1.AppendRules(s2)
	assert.False(t, s1.Empty())
	assert.Equal(t, "* { display: block; }\np { }", s1.String())
}

func TestUserAgentDisplay(t *testing.T) {
	assert.Equal(t, "none", DisplayPropertyForHTMLNode(dom.NewElement("head")))
	assert.Equal(t, "inline", DisplayPropertyForHTMLNode(dom.NewElement("span")))
	assert.Equal(t, "block", DisplayPropertyForHTMLNode(dom.NewElement("div")))
	assert.Equal(t, "block", DisplayPropertyForHTMLNode(dom.NewElement("x-custom")))
	assert.Equal(t, "inline", DisplayPropertyForHTMLNode(dom.NewText("t")))
	assert.Equal(t, "none", DisplayPropertyForHTMLNode(dom.NewComment("c")))
}
