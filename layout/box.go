package layout

import (
	"fmt"

	"github.com/npillmayer/boxpaint/dom"
	"github.com/npillmayer/boxpaint/dom/style"
	"github.com/npillmayer/boxpaint/dom/style/css"
	"github.com/npillmayer/boxpaint/dom/styledtree"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// BoxKind distinguishes block, inline and anonymous boxes.
type BoxKind uint8

// Kinds of boxes.
const (
	BlockBox BoxKind = iota
	InlineBox
	AnonymousBox
)

func (k BoxKind) String() string {
	switch k {
	case BlockBox:
		return "block"
	case InlineBox:
		return "inline"
	case AnonymousBox:
		return "anonymous"
	}
	return "?"
}

// Box is a node of the layout tree. Boxes own their children; there are no
// references back to the parent.
type Box struct {
	Kind       BoxKind
	Dimensions Dimensions
	Children   []*Box
	styled     *styledtree.Node // nil for anonymous boxes
}

// NewAnonymousBox creates a box without a styled node.
func NewAnonymousBox(children ...*Box) *Box {
	return &Box{Kind: AnonymousBox, Children: children}
}

// StyledNode returns the styled node a box has been generated for, or nil
// for anonymous boxes.
func (b *Box) StyledNode() *styledtree.Node {
	return b.styled
}

// IsBlockFormatted is true for boxes which are stacked vertically.
func (b *Box) IsBlockFormatted() bool {
	return b.Kind == BlockBox || b.Kind == AnonymousBox
}

// Walk visits a box tree in pre-order. A box is visited before its
// children; children are visited in order.
func (b *Box) Walk(visit func(box *Box, depth int)) {
	if b == nil {
		return
	}
	b.walk(visit, 0)
}

func (b *Box) walk(visit func(*Box, int), depth int) {
	visit(b, depth)
	for _, ch := range b.Children {
		ch.walk(visit, depth+1)
	}
}

// Count returns the number of boxes in a box tree.
func (b *Box) Count() int {
	n := 0
	b.Walk(func(*Box, int) { n++ })
	return n
}

func (b *Box) String() string {
	label := b.Kind.String()
	if b.styled != nil {
		h := b.styled.HTMLNode()
		if h.Type == html.ElementNode {
			label += " <" + h.Data + ">"
		} else {
			label += " " + dom.NodeName(h)
		}
	}
	return fmt.Sprintf("%s %v", label, b.Dimensions.Content)
}

// Dump prints a box tree, one box per line.
func Dump(root *Box) string {
	if root == nil {
		return "<empty>"
	}
	p := tp.New()
	dump(p, root)
	return p.String()
}

func dump(p tp.Tree, b *Box) {
	if len(b.Children) == 0 {
		p.AddNode(b.String())
		return
	}
	branch := p.AddBranch(b.String())
	for _, ch := range b.Children {
		dump(branch, ch)
	}
}

// --- Box tree construction -------------------------------------------------

// Options configure the construction of boxes.
type Options struct {
	// DefaultDisplay is used for elements without a display declaration.
	DefaultDisplay css.DisplayMode
	// UserAgentDisplay selects per-element display defaults (e.g., <span>
	// is inline, <head> is not displayed) instead of DefaultDisplay.
	UserAgentDisplay bool
}

// DefaultOptions returns options where every element without a display
// declaration is a block.
func DefaultOptions() Options {
	return Options{DefaultDisplay: css.BlockMode | css.InnerBlockMode}
}

// BuildBoxTree creates the (not yet laid out) box tree for a styled tree.
// It returns nil if the root does not generate a box.
func BuildBoxTree(root *styledtree.Node, opts Options) *Box {
	if root == nil {
		return nil
	}
	return buildBox(root, opts)
}

func buildBox(sn *styledtree.Node, opts Options) *Box {
	var kind BoxKind
	h := sn.HTMLNode()
	switch h.Type {
	case html.TextNode:
		kind = InlineBox
	case html.ElementNode:
		mode := displayMode(sn, opts)
		if mode.Contains(css.DisplayNone) {
			return nil
		}
		if mode.Outer().Contains(css.InlineMode) {
			kind = InlineBox
		}
	default:
		return nil
	}
	box := &Box{Kind: kind, styled: sn}
	box.Dimensions.Padding = EdgesFrom(css.EdgeSizes(sn, style.PropPadding))
	box.Dimensions.Border = EdgesFrom(css.EdgeSizes(sn, style.PropBorderWidth))
	box.Dimensions.Margin = EdgesFrom(css.EdgeSizes(sn, style.PropMargin))
	var children []*Box
	for _, ch := range sn.Children() {
		if chbox := buildBox(ch, opts); chbox != nil {
			children = append(children, chbox)
		}
	}
	box.Children = wrapInlineRuns(children)
	return box
}

func displayMode(sn *styledtree.Node, opts Options) css.DisplayMode {
	if mode, ok := css.Display(sn); ok {
		return mode
	}
	if opts.UserAgentDisplay {
		mode, _ := css.ParseDisplay(style.DisplayPropertyForHTMLNode(sn.HTMLNode()))
		return mode
	}
	if opts.DefaultDisplay == css.NoMode {
		return css.BlockMode
	}
	return opts.DefaultDisplay
}

// wrapInlineRuns wraps every run of consecutive inline boxes into an
// anonymous box, if there are block boxes among the children as well.
// Afterwards the children are either all inline or all block-formatted.
func wrapInlineRuns(children []*Box) []*Box {
	var blocks, inlines int
	for _, ch := range children {
		if ch.IsBlockFormatted() {
			blocks++
		} else {
			inlines++
		}
	}
	if blocks == 0 || inlines == 0 {
		return children
	}
	wrapped := make([]*Box, 0, blocks+1)
	var run *Box
	for _, ch := range children {
		if ch.IsBlockFormatted() {
			run = nil
			wrapped = append(wrapped, ch)
			continue
		}
		if run == nil {
			run = NewAnonymousBox()
			wrapped = append(wrapped, run)
		}
		run.Children = append(run.Children, ch)
	}
	tracer().Debugf("layout: wrapped %d inline boxes into anonymous boxes", inlines)
	return wrapped
}
