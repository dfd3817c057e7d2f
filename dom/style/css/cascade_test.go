package css_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/boxpaint/dom"
	"github.com/npillmayer/boxpaint/dom/style"
	"github.com/npillmayer/boxpaint/dom/style/css"
	"github.com/npillmayer/boxpaint/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/boxpaint/dom/styledtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func styled(t *testing.T, doc string, sheet string) *styledtree.Node {
	root, err := dom.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	s, err := douceuradapter.Parse(sheet)
	if err != nil {
		t.Fatal(err)
	}
	sn := css.Resolve(root, s)
	t.Logf("styled tree:\n%s", styledtree.Dump(sn))
	return sn
}

func value(sn *styledtree.Node, name string) string {
	v, ok := sn.Value(name)
	if !ok {
		return "<unset>"
	}
	return v.String()
}

func TestCascadeFirstWriteWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxpaint.style")
	defer teardown()
	//
	sn := styled(t, "<html><p></p></html>", `
p { color: red; }
p { color: blue; }
`)
	p := sn.Children()[0]
	if c := value(p, "color"); c != "rgba(255, 0, 0, 255)" {
		t.Errorf("expected earlier rule of equal specificity to win, color = %s", c)
	}
}

func TestCascadeSpecificityWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxpaint.style")
	defer teardown()
	//
	sn := styled(t, `<html><p id="x" class="a b"></p><p class="a"></p></html>`, `
p { color: red; padding: 1px; }
.a.b { color: green; }
#x { color: blue; }
* { margin: 3px; color: black; }
`)
	p1, p2 := sn.Children()[0], sn.Children()[1]
	if c := value(p1, "color"); c != "rgba(0, 0, 255, 255)" {
		t.Errorf("expected id rule to win for p#x, color = %s", c)
	}
	if v := value(p1, "padding"); v != "1px" {
		t.Errorf("expected lower priority rule to contribute padding, is %s", v)
	}
	if c := value(p2, "color"); c != "rgba(255, 0, 0, 255)" {
		t.Errorf("expected .a.b not to match p.a, color = %s", c)
	}
	if v := value(p2, "margin"); v != "3px" {
		t.Errorf("expected universal rule to apply, margin = %s", v)
	}
	if p2.Len() != 3 {
		t.Errorf("expected 3 properties for p.a, have %v", p2.Names())
	}
}

func TestCascadeSelectorGroupUsesBestMatch(t *testing.T) {
	// rule 1 matches by its tag selector only (0,0,1), rule 2 by a class (0,1,0)
	sn := styled(t, `<html><div class="c"></div></html>`, `
#nope, div { color: red; }
.c { color: green; }
`)
	div := sn.Children()[0]
	if c := value(div, "color"); c != "rgba(0, 128, 0, 255)" {
		t.Errorf("expected class rule to win over tag match, color = %s", c)
	}
	rules := css.MatchingRules(div.HTMLNode(), douceurRules(t, "#nope, div { color: red; }"))
	if len(rules) != 1 || rules[0].Specificity != (style.Specificity{0, 0, 1}) {
		t.Errorf("expected specificity of matching selector only, have %+v", rules)
	}
}

func TestMatchingRulesUnorderedSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxpaint.style")
	defer teardown()
	//
	div := dom.NewElement("div", "id", "x")
	// built as a literal, selectors are not sorted by specificity
	rules := []style.Rule{
		{
			Selectors:    []style.Selector{style.NewSelector("div", ""), style.NewSelector("", "x")},
			Declarations: []style.Declaration{style.Declare("color", style.TextValue("red"))},
		},
		{
			Selectors:    []style.Selector{style.NewSelector("", "", "nope"), style.NewSelector("div", "", "")},
			Declarations: []style.Declaration{style.Declare("color", style.TextValue("green"))},
		},
	}
	matched := css.MatchingRules(div, rules)
	if len(matched) != 2 {
		t.Fatalf("expected 2 matching rules, have %d", len(matched))
	}
	if matched[0].Index != 0 || matched[0].Specificity != (style.Specificity{1, 0, 0}) {
		t.Errorf("expected id selector to determine priority of rule 0, have %+v", matched[0])
	}
	if matched[1].Specificity != (style.Specificity{0, 0, 1}) {
		t.Errorf("expected tag specificity for rule 1, have %+v", matched[1])
	}
	decls := css.Cascade(div, []style.Rule{rules[1], rules[0]})
	if c := decls["color"].String(); c != "red" {
		t.Errorf("expected id-matched rule to win, color = %s", c)
	}
}

func douceurRules(t *testing.T, source string) []style.Rule {
	s, err := douceuradapter.Parse(source)
	if err != nil {
		t.Fatal(err)
	}
	return s.Rules
}

func TestCascadeDuplicateNamesWithinRule(t *testing.T) {
	sn := styled(t, "<html></html>", "html { display: block; display: inline; }")
	if d := value(sn, "display"); d != "block" {
		t.Errorf("expected first declaration to win, display = %s", d)
	}
}

func TestTextAndCommentLeaves(t *testing.T) {
	sn := styled(t, "<html>Hello<!-- c --><div>x</div></html>", "* { color: red; }")
	children := sn.Children()
	if len(children) != 3 {
		t.Fatalf("expected 3 styled children, have %d", len(children))
	}
	for _, ch := range children[:2] {
		if ch.Len() != 0 || ch.IsElement() {
			t.Errorf("expected %s to be a styled leaf without declarations", ch)
		}
	}
	if children[2].Len() != 1 || children[2].Children()[0].Len() != 0 {
		t.Errorf("expected div to be styled and its text not")
	}
}

func TestNoMatchingRule(t *testing.T) {
	sn := styled(t, "<html><span></span></html>", "div { color: red; }")
	if sn.Len() != 0 || sn.Children()[0].Len() != 0 {
		t.Errorf("expected empty declaration maps")
	}
}

func TestResolveEmptyDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxpaint.style")
	defer teardown()
	//
	sn := css.Resolve(nil, nil)
	if sn == nil || sn.HTMLNode().Data != "html" {
		t.Fatalf("expected implicit html root, have %v", sn)
	}
	if sn.Len() != 0 || sn.ChildCount() != 0 {
		t.Errorf("expected implicit root without declarations and children")
	}
	doc, _ := html.Parse(strings.NewReader(""))
	sn = css.Resolve(doc, style.NewStyleSheet())
	if sn.HTMLNode().Data != "html" {
		t.Errorf("expected document element to be resolved, have %s", sn)
	}
}

func TestResolveDoesNotInherit(t *testing.T) {
	sn := styled(t, "<html><div></div></html>", "html { color: red; }")
	if _, ok := sn.Children()[0].Value("color"); ok {
		t.Errorf("expected no inheritance of color")
	}
}
