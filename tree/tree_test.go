package tree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildTestTree() *Node[string] {
	root := NewNode("root")
	a := NewNode("a")
	a.AddChild(NewNode("a1")).AddChild(NewNode("a2"))
	root.AddChild(a).AddChild(NewNode("b"))
	return root
}

func TestNodeChildren(t *testing.T) {
	root := buildTestTree()
	if root.ChildCount() != 2 {
		t.Fatalf("expected root to have 2 children, has %d", root.ChildCount())
	}
	b, ok := root.Child(1)
	if !ok || b.Payload != "b" {
		t.Errorf("expected second child to be b, is %v", b)
	}
	if b.Parent() != root {
		t.Errorf("expected parent of b to be root")
	}
	if b.Rank != 1 || root.IndexOfChild(b) != 1 {
		t.Errorf("expected b at position 1, rank=%d index=%d", b.Rank, root.IndexOfChild(b))
	}
	if _, ok := root.Child(2); ok {
		t.Errorf("expected no child at position 2")
	}
}

func TestTopDownOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxpaint.tree")
	defer teardown()
	//
	var seen []string
	var depths []int
	err := TopDown(buildTestTree(), func(n *Node[string], depth int) error {
		seen = append(seen, n.Payload)
		depths = append(depths, depth)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"root", "a", "a1", "a2", "b"}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected pre-order %v, got %v", want, seen)
		}
	}
	if depths[2] != 2 || depths[4] != 1 {
		t.Errorf("unexpected depths %v", depths)
	}
}

func TestTopDownSkipAndAbort(t *testing.T) {
	var seen []string
	_ = TopDown(buildTestTree(), func(n *Node[string], _ int) error {
		seen = append(seen, n.Payload)
		if n.Payload == "a" {
			return SkipChildren
		}
		return nil
	})
	if len(seen) != 3 {
		t.Errorf("expected children of a to be skipped, visited %v", seen)
	}
	stop := errors.New("stop")
	err := TopDown(buildTestTree(), func(n *Node[string], _ int) error {
		if n.Payload == "a1" {
			return stop
		}
		return nil
	})
	if err != stop {
		t.Errorf("expected walk to return stop error, got %v", err)
	}
	if TopDown[string](nil, nil) != ErrEmptyTree {
		t.Errorf("expected empty tree error")
	}
}

func TestCollectLeafs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxpaint.tree")
	defer teardown()
	//
	leafs := Collect(buildTestTree(), NodeIsLeaf[string]())
	if len(leafs) != 3 {
		t.Errorf("expected 3 leafs, got %d", len(leafs))
	}
	all := Collect(buildTestTree(), Whatever[string]())
	if len(all) != 5 {
		t.Errorf("expected 5 nodes, got %d", len(all))
	}
}
