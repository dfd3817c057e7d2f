package style

import (
	"fmt"
	"strings"

	"github.com/npillmayer/boxpaint/dom"
	"github.com/npillmayer/boxpaint/maybe"
	"golang.org/x/net/html"
)

// Specificity is the priority of a selector, counted as
// [ids, classes, tags]. Specificities compare lexicographically;
// higher specificities win.
type Specificity [3]int

// Compare returns -1, 0 or +1, depending on s being less than, equal to or
// greater than other.
func (s Specificity) Compare(other Specificity) int {
	for i := range s {
		if s[i] < other[i] {
			return -1
		}
		if s[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Less is true if s is strictly less specific than other.
func (s Specificity) Less(other Specificity) bool {
	return s.Compare(other) < 0
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s[0], s[1], s[2])
}

// Selector is a simple compound selector, consisting of an optional tag, an
// optional id and a set of classes, e.g. div#main.wide.dark.
// A selector without tag, id and classes is the universal selector *.
type Selector struct {
	Tag     maybe.Maybe[string]
	ID      maybe.Maybe[string]
	Classes []string // distinct, in order of appearance
}

// NewSelector creates a selector. Empty strings (and a tag of "*") denote an
// absent tag or id. Duplicate classes are dropped.
func NewSelector(tag, id string, classes ...string) Selector {
	sel := Selector{
		Tag: maybe.Of(tag, tag != "" && tag != "*"),
		ID:  maybe.Of(id, id != ""),
	}
	for _, c := range classes {
		if c != "" && !sel.HasClass(c) {
			sel.Classes = append(sel.Classes, c)
		}
	}
	return sel
}

// Universal returns the universal selector *.
func Universal() Selector {
	return Selector{}
}

// HasClass is true if c is one of the selector's classes.
func (sel Selector) HasClass(c string) bool {
	for _, k := range sel.Classes {
		if k == c {
			return true
		}
	}
	return false
}

// Specificity returns [1 if id present, number of classes, 1 if tag present].
func (sel Selector) Specificity() Specificity {
	var s Specificity
	if !sel.ID.IsNothing() {
		s[0] = 1
	}
	s[1] = len(sel.Classes)
	if !sel.Tag.IsNothing() {
		s[2] = 1
	}
	return s
}

// Matches is a predicate for a selector matching an element node:
// tag and id have to be absent or equal, and every class of the selector has
// to be present on the element. Non-element nodes never match.
func (sel Selector) Matches(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	var tag, id string
	switch m := sel.Tag.Match(); m {
	case m.Just(&tag):
		if tag != n.Data {
			return false
		}
	}
	switch m := sel.ID.Match(); m {
	case m.Just(&id):
		if nid, ok := dom.ID(n); !ok || nid != id {
			return false
		}
	}
	if len(sel.Classes) > 0 {
		have := dom.Classes(n)
		for _, c := range sel.Classes {
			if !contains(have, c) {
				return false
			}
		}
	}
	return true
}

// Equal compares selectors, including the order of classes.
func (sel Selector) Equal(other Selector) bool {
	if !sel.Tag.Equal(other.Tag) || !sel.ID.Equal(other.ID) || len(sel.Classes) != len(other.Classes) {
		return false
	}
	for i := range sel.Classes {
		if sel.Classes[i] != other.Classes[i] {
			return false
		}
	}
	return true
}

// String prints a selector in the form tag#id.class1.class2.
func (sel Selector) String() string {
	var b strings.Builder
	b.WriteString(sel.Tag.WithDefault(""))
	if id := sel.ID.WithDefault(""); id != "" {
		b.WriteString("#")
		b.WriteString(id)
	}
	for _, c := range sel.Classes {
		b.WriteString(".")
		b.WriteString(c)
	}
	if b.Len() == 0 {
		return "*"
	}
	return b.String()
}

func contains(set []string, s string) bool {
	for _, x := range set {
		if x == s {
			return true
		}
	}
	return false
}
