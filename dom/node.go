package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RootTag is the tag of the implicit document root.
const RootTag = "html"

// NewElement creates a detached element node. attrs are given as
// key/value pairs, e.g.
//
//     NewElement("div", "id", "main", "class", "wide dark")
//
// A trailing key without a value is ignored.
func NewElement(tag string, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

// NewText creates a detached text node.
func NewText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// NewComment creates a detached comment node.
func NewComment(text string) *html.Node {
	return &html.Node{Type: html.CommentNode, Data: text}
}

// ImplicitRoot creates the root element used for documents without one.
func ImplicitRoot() *html.Node {
	return NewElement(RootTag)
}

// Append appends children to n and returns n, to allow for chaining.
func Append(n *html.Node, children ...*html.Node) *html.Node {
	for _, ch := range children {
		n.AppendChild(ch)
	}
	return n
}

// Attr returns the value of an attribute of an element node.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// ID returns the id attribute of an element, if present.
func ID(n *html.Node) (string, bool) {
	id, ok := Attr(n, "id")
	return id, ok && id != ""
}

// Classes returns the set of classes of an element, in attribute order and
// without duplicates.
func Classes(n *html.Node) []string {
	v, ok := Attr(n, "class")
	if !ok {
		return nil
	}
	fields := strings.Fields(v)
	classes := fields[:0]
	for _, f := range fields {
		if !contains(classes, f) {
			classes = append(classes, f)
		}
	}
	return classes
}

// HasClass is a predicate for an element carrying a class.
func HasClass(n *html.Node, class string) bool {
	return contains(Classes(n), class)
}

// DocumentElement returns the root element of a document. If n is not a
// document node, n is returned if it is an element. Otherwise nil is returned.
func DocumentElement(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode {
		return n
	}
	if n.Type == html.DocumentNode {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.ElementNode {
				return ch
			}
		}
	}
	return nil
}

// NodeName returns a W3C-style node name: the tag for elements, "#text" for
// text nodes, "#comment" for comments and "#document" for documents.
func NodeName(n *html.Node) string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case html.ElementNode:
		return n.Data
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	case html.DocumentNode:
		return "#document"
	}
	return "#unknown"
}

func contains(set []string, s string) bool {
	for _, x := range set {
		if x == s {
			return true
		}
	}
	return false
}
