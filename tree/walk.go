package tree

import "errors"

// ErrEmptyTree is returned if a walk is started on an empty tree.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// SkipChildren may be returned by an Action to prevent the walk from
// descending into the children of the current node.
var SkipChildren = errors.New("skip children")

// Action is called for every node visited during a walk, together with the
// depth of the node (the initial node has depth 0).
type Action[T comparable] func(node *Node[T], depth int) error

// TopDown walks a (sub-)tree in pre-order: a node is visited before its
// children, and children are visited in order.
// Walking stops at the first error returned by action, which is handed back
// to the caller (with the exception of SkipChildren).
func TopDown[T comparable](initial *Node[T], action Action[T]) error {
	if initial == nil {
		return ErrEmptyTree
	}
	return topDown(initial, 0, action)
}

func topDown[T comparable](node *Node[T], depth int, action Action[T]) error {
	if err := action(node, depth); err != nil {
		if err == SkipChildren {
			return nil
		}
		return err
	}
	for _, ch := range node.children {
		if err := topDown(ch, depth+1, action); err != nil {
			return err
		}
	}
	return nil
}

// Predicate is a function type to match against nodes of a tree.
type Predicate[T comparable] func(test *Node[T]) bool

// Whatever is a predicate to match anything (see type Predicate).
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) bool {
		return true
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T]) bool {
		return test.ChildCount() == 0
	}
}

// Collect returns all nodes of a (sub-)tree matching a predicate, in pre-order.
func Collect[T comparable](initial *Node[T], pred Predicate[T]) []*Node[T] {
	var selection []*Node[T]
	_ = TopDown(initial, func(n *Node[T], _ int) error {
		if pred(n) {
			selection = append(selection, n)
		}
		return nil
	})
	tracer().Debugf("tree collect: %d nodes selected", len(selection))
	return selection
}
