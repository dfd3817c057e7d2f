package boxpaint

import (
	"fmt"
	"io"

	"github.com/npillmayer/boxpaint/display"
	"github.com/npillmayer/boxpaint/dom"
	"github.com/npillmayer/boxpaint/dom/style"
	"github.com/npillmayer/boxpaint/dom/style/css"
	"github.com/npillmayer/boxpaint/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/boxpaint/dom/styledtree"
	"github.com/npillmayer/boxpaint/layout"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'boxpaint'.
func tracer() tracing.Trace {
	return tracing.Select("boxpaint")
}

// Result holds the outcome of every stage of the rendering pipeline.
type Result struct {
	Styled  *styledtree.Node
	Boxes   *layout.Box
	Display *display.List
}

// Render styles a document, lays it out within a viewport and creates its
// display list. A nil document is an empty document, a nil stylesheet is an
// empty stylesheet.
func Render(doc *html.Node, sheet *style.StyleSheet, viewport layout.Rect, opts layout.Options) Result {
	styled := css.Resolve(doc, sheet)
	tracer().Debugf("styled %d elements", len(styledtree.Elements(styled)))
	boxes := layout.Layout(styled, layout.Dimensions{Content: viewport}, opts)
	list := display.Build(boxes)
	tracer().Infof("rendered %d boxes into %d display commands", boxes.Count(), list.Len())
	return Result{Styled: styled, Boxes: boxes, Display: list}
}

// RenderSource parses an HTML document and a CSS stylesheet and renders them.
// Style elements contained in the document are appended to the stylesheet.
func RenderSource(doc io.Reader, cssSource string, viewport layout.Rect, opts layout.Options) (Result, error) {
	root, err := dom.Parse(doc)
	if err != nil {
		return Result{}, err
	}
	sheet, err := douceuradapter.Parse(cssSource)
	if err != nil {
		return Result{}, err
	}
	embedded, err := douceuradapter.ExtractStyleElements(root)
	if err != nil {
		return Result{}, fmt.Errorf("parsing style element: %w", err)
	}
	sheet.AppendRules(embedded)
	return Render(root, sheet, viewport, opts), nil
}
