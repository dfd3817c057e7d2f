package styledtree

import (
	"testing"

	"github.com/npillmayer/boxpaint/dom"
	"github.com/npillmayer/boxpaint/dom/style"
	"github.com/npillmayer/boxpaint/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func buildTree() *Node {
	px := style.UnitValue(2, style.PX)
	root := NewNodeForHTMLNode(dom.NewElement("html"), map[string]style.Value{"padding": px})
	div := NewNodeForHTMLNode(dom.NewElement("div", "id", "a"), nil)
	div.AddChild(NewNodeForHTMLNode(dom.NewText("Hello"), nil))
	root.AddChild(div)
	root.AddChild(NewNodeForHTMLNode(dom.NewElement("p"), map[string]style.Value{
		"margin":  px,
		"display": style.TextValue("block"),
	}))
	return root
}

func TestStyledNodeAccess(t *testing.T) {
	root := buildTree()
	chs := root.Children()
	assert.Len(t, chs, 2)
	assert.Equal(t, "div", chs[0].HTMLNode().Data)
	assert.Equal(t, root, FromTreeNode(chs[0].Parent()))
	assert.False(t, chs[0].Children()[0].IsElement())
	v, ok := root.Value("padding")
	assert.True(t, ok)
	assert.Equal(t, "2px", v.String())
	_, ok = chs[0].Value("padding")
	assert.False(t, ok, "no inheritance")
	assert.Equal(t, []string{"display", "margin"}, chs[1].Names())
	assert.Equal(t, `p { display: block; margin: 2px; }`, chs[1].String())
	assert.Equal(t, `"Hello"`, chs[0].Children()[0].String())
}

func TestStyledTreeWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxpaint.tree")
	defer teardown()
	//
	root := buildTree()
	t.Logf("styled tree:\n%s", Dump(root))
	var visited []string
	err := root.Walk(func(sn *Node, depth int) error {
		visited = append(visited, dom.NodeName(sn.HTMLNode()))
		if sn.HTMLNode().Data == "div" {
			return tree.SkipChildren
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"html", "div", "p"}, visited)
	var nilNode *Node
	assert.ErrorIs(t, nilNode.Walk(nil), tree.ErrEmptyTree)
	//
	elements := Elements(root)
	assert.Len(t, elements, 3)
	assert.Equal(t, "p", elements[2].HTMLNode().Data)
	assert.Nil(t, Elements(nil))
}
