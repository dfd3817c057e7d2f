package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

/*
We manage a tree of nodes, each carrying a payload of type parameter T.
Nodes maintain a slice of children in document order. Trees are built once by
a single pipeline stage and are read-only afterwards, therefore no locking is
done.
*/

// Node is the base type our trees are built of.
type Node[T comparable] struct {
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // children in insertion order
	Payload  T          // nodes may carry a payload of arbitrary type
	Rank     uint32     // rank is the position within the parent's children
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a new child node. The newly inserted node is connected
// to this node as its parent.
// It returns the parent node to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		ch.parent = node
		ch.Rank = uint32(len(node.children))
		node.children = append(node.children, ch)
	}
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	if node == nil {
		return nil
	}
	return node.parent
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	if node == nil {
		return 0
	}
	return len(node.children)
}

// Child returns the n-th child of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || node.ChildCount() <= n {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a slice with all children of a node.
// The slice is a copy; modifying it does not alter the tree.
func (node *Node[T]) Children() []*Node[T] {
	if node.ChildCount() == 0 {
		return nil
	}
	children := make([]*Node[T], len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1 if ch is not a child of node.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.Children() {
		if ch == child {
			return i
		}
	}
	return -1
}
