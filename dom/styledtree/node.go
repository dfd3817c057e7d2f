package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/boxpaint/dom"
	"github.com/npillmayer/boxpaint/dom/style"
	"github.com/npillmayer/boxpaint/tree"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Node is a style node, the building block of the styled tree.
type Node struct {
	tree.Node[*Node] // we build on top of general purpose tree
	htmlNode         *html.Node
	declarations     map[string]style.Value
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
// The node owns declarations; clients must not alter the map afterwards.
func NewNodeForHTMLNode(h *html.Node, declarations map[string]style.Value) *Node {
	sn := &Node{htmlNode: h, declarations: declarations}
	sn.Payload = sn // Payload will always reference the node itself
	return sn
}

// FromTreeNode gets the styled node from a generic tree node.
func FromTreeNode(n *tree.Node[*Node]) *Node {
	if n == nil {
		return nil
	}
	return n.Payload
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *Node) HTMLNode() *html.Node {
	return sn.htmlNode
}

// IsElement is true if the styled node mirrors an element node.
func (sn *Node) IsElement() bool {
	return sn.htmlNode != nil && sn.htmlNode.Type == html.ElementNode
}

// AddChild appends a styled child node.
func (sn *Node) AddChild(ch *Node) *Node {
	sn.Node.AddChild(&ch.Node)
	return sn
}

// Children returns the styled children in DOM order.
func (sn *Node) Children() []*Node {
	chs := sn.Node.Children()
	children := make([]*Node, len(chs))
	for i, ch := range chs {
		children[i] = ch.Payload
	}
	return children
}

// Value returns the winning value for a property name, if any.
func (sn *Node) Value(name string) (style.Value, bool) {
	v, ok := sn.declarations[name]
	return v, ok
}

// Len returns the number of properties set for this node.
func (sn *Node) Len() int {
	return len(sn.declarations)
}

// Names returns the property names set for this node, sorted.
func (sn *Node) Names() []string {
	names := make([]string, 0, len(sn.declarations))
	for name := range sn.declarations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Declarations returns the winning declarations, sorted by name.
func (sn *Node) Declarations() []style.Declaration {
	decls := make([]style.Declaration, 0, len(sn.declarations))
	for _, name := range sn.Names() {
		decls = append(decls, style.Declare(name, sn.declarations[name]))
	}
	return decls
}

func (sn *Node) String() string {
	label := dom.NodeName(sn.htmlNode)
	if sn.htmlNode != nil && sn.htmlNode.Type == html.TextNode {
		label = fmt.Sprintf("%q", sn.htmlNode.Data)
	}
	if len(sn.declarations) == 0 {
		return label
	}
	decls := sn.Declarations()
	s := make([]string, len(decls))
	for i, d := range decls {
		s[i] = d.String()
	}
	return label + " { " + strings.Join(s, " ") + " }"
}

// Dump prints a styled tree, one node per line.
func Dump(root *Node) string {
	if root == nil {
		return "<empty>"
	}
	p := tp.New()
	dump(p, root)
	return p.String()
}

func dump(p tp.Tree, sn *Node) {
	if sn.ChildCount() == 0 {
		p.AddNode(sn.String())
		return
	}
	branch := p.AddBranch(sn.String())
	for _, ch := range sn.Children() {
		dump(branch, ch)
	}
}

// Walk visits a styled tree in pre-order. Returning tree.SkipChildren from
// visit prunes the walk below the current node; any other error stops it.
func (sn *Node) Walk(visit func(node *Node, depth int) error) error {
	if sn == nil {
		return tree.ErrEmptyTree
	}
	return tree.TopDown(&sn.Node, func(n *tree.Node[*Node], depth int) error {
		return visit(n.Payload, depth)
	})
}

// Elements returns the styled nodes of all elements of a tree, in pre-order.
func Elements(root *Node) []*Node {
	if root == nil {
		return nil
	}
	nodes := tree.Collect(&root.Node, func(n *tree.Node[*Node]) bool {
		return n.Payload.IsElement()
	})
	elements := make([]*Node, len(nodes))
	for i, n := range nodes {
		elements[i] = n.Payload
	}
	return elements
}
