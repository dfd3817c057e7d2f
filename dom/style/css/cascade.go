package css

import (
	"sort"

	"github.com/npillmayer/boxpaint/dom"
	"github.com/npillmayer/boxpaint/dom/style"
	"github.com/npillmayer/boxpaint/dom/styledtree"
	"golang.org/x/net/html"
)

// Resolve builds the styled tree for a DOM (sub-)tree.
//
// A nil node is treated as an empty document and resolves to an implicit
// <html> root. For a document node, its document element is resolved.
// Text and comment nodes become styled leaves without declarations.
// A nil stylesheet is an empty stylesheet.
func Resolve(node *html.Node, sheet *style.StyleSheet) *styledtree.Node {
	if node == nil || node.Type == html.DocumentNode {
		root := dom.DocumentElement(node)
		if root == nil {
			tracer().Debugf("resolve: empty document, using implicit root")
			root = dom.ImplicitRoot()
		}
		node = root
	}
	var rules []style.Rule
	if sheet != nil {
		rules = sheet.Rules
	}
	return resolve(node, rules)
}

func resolve(node *html.Node, rules []style.Rule) *styledtree.Node {
	var decls map[string]style.Value
	if node.Type == html.ElementNode {
		decls = Cascade(node, rules)
	}
	sn := styledtree.NewNodeForHTMLNode(node, decls)
	for ch := node.FirstChild; ch != nil; ch = ch.NextSibling {
		sn.AddChild(resolve(ch, rules))
	}
	return sn
}

// MatchedRule is a rule which matches a node, together with the specificity
// of its most specific matching selector and its position in the stylesheet.
type MatchedRule struct {
	Rule        *style.Rule
	Specificity style.Specificity
	Index       int
}

// MatchingRules returns all rules with at least one selector matching the
// element, ordered by decreasing specificity. A rule's specificity is the one
// of its most specific matching selector, whatever the order of its selectors. Rules of equal specificity are
// kept in source order.
func MatchingRules(node *html.Node, rules []style.Rule) []MatchedRule {
	var matched []MatchedRule
	for i := range rules {
		var best style.Specificity
		found := false
		for _, sel := range rules[i].Selectors {
			if !sel.Matches(node) {
				continue
			}
			if spec := sel.Specificity(); !found || best.Less(spec) {
				best, found = spec, true
			}
		}
		if found {
			matched = append(matched, MatchedRule{
				Rule:        &rules[i],
				Specificity: best,
				Index:       i,
			})
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[j].Specificity.Less(matched[i].Specificity)
	})
	return matched
}

// Cascade computes the winning value for every property set for an element.
// Declarations are applied in priority order and the first write for a
// property name wins.
func Cascade(node *html.Node, rules []style.Rule) map[string]style.Value {
	matched := MatchingRules(node, rules)
	decls := make(map[string]style.Value)
	for _, m := range matched {
		for _, d := range m.Rule.Declarations {
			if _, exists := decls[d.Name]; !exists {
				decls[d.Name] = d.Value
			}
		}
	}
	tracer().Debugf("cascade: <%s> matched %d rules, %d properties", node.Data, len(matched), len(decls))
	return decls
}
