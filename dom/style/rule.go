package style

import (
	"sort"
	"strings"
)

// Declaration is a CSS declaration of the form `name: value;`.
// Names are not required to be unique within a rule; conflicts are settled
// by the cascade.
type Declaration struct {
	Name  string
	Value Value
}

// Declare is a shortcut to create a declaration.
func Declare(name string, value Value) Declaration {
	return Declaration{Name: name, Value: value}
}

// String prints a declaration in the form `name: value;`.
func (d Declaration) String() string {
	return d.Name + ": " + d.Value.String() + ";"
}

// Rule is a set of selectors together with declarations. The declarations
// apply to every node matched by any of the selectors.
//
// Selectors are ordered by decreasing specificity. Selectors of equal
// specificity keep their source order.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// NewRule creates a rule, ordering the selectors by decreasing specificity.
// The slices handed in are not modified.
func NewRule(selectors []Selector, declarations []Declaration) Rule {
	sels := make([]Selector, len(selectors))
	copy(sels, selectors)
	sort.SliceStable(sels, func(i, j int) bool {
		return sels[j].Specificity().Less(sels[i].Specificity())
	})
	decls := make([]Declaration, len(declarations))
	copy(decls, declarations)
	return Rule{Selectors: sels, Declarations: decls}
}

func (r Rule) String() string {
	var b strings.Builder
	for i, sel := range r.Selectors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sel.String())
	}
	b.WriteString(" {")
	for _, d := range r.Declarations {
		b.WriteString(" ")
		b.WriteString(d.String())
	}
	b.WriteString(" }")
	return b.String()
}

// StyleSheet is a sequence of rules in source order. Source order is the
// tie-breaker of the cascade.
type StyleSheet struct {
	Rules []Rule
}

// NewStyleSheet creates a stylesheet from rules.
func NewStyleSheet(rules ...Rule) *StyleSheet {
	return &StyleSheet{Rules: rules}
}

// Empty checks if this stylesheet contains any rules. A nil stylesheet is
// empty.
func (sheet *StyleSheet) Empty() bool {
	return sheet == nil || len(sheet.Rules) == 0
}

// AppendRules appends the rules of another stylesheet. Rules of other will
// follow the rules of sheet in source order.
func (sheet *StyleSheet) AppendRules(other *StyleSheet) {
	if other == nil {
		return
	}
	tracer().Debugf("style: appending %d rules to stylesheet", len(other.Rules))
	sheet.Rules = append(sheet.Rules, other.Rules...)
}

func (sheet *StyleSheet) String() string {
	if sheet == nil {
		return ""
	}
	lines := make([]string, len(sheet.Rules))
	for i, r := range sheet.Rules {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}
