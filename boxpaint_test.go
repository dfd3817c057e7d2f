package boxpaint_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/boxpaint"
	"github.com/npillmayer/boxpaint/display"
	"github.com/npillmayer/boxpaint/dom"
	"github.com/npillmayer/boxpaint/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/boxpaint/layout"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var viewport = layout.Rect{Width: 800, Height: 600}

func TestRenderScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxpaint")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader(`<html><div></div></html>`))
	require.NoError(t, err)
	sheet, err := douceuradapter.Parse(`* { background: #000000; display: block; padding: 12px; }`)
	require.NoError(t, err)
	r := boxpaint.Render(doc, sheet, viewport, layout.DefaultOptions())
	require.NotNil(t, r.Styled)
	assert.Equal(t, 3, r.Styled.Len())
	assert.Equal(t, 2, r.Boxes.Count())
	require.Equal(t, 10, r.Display.Len())
	cmd, _ := r.Display.Front()
	rect := cmd.(display.RectangleCmd)
	assert.Equal(t, layout.Rect{Width: 800, Height: 48}, rect.Rect)
	assert.Equal(t, "rgba(0, 0, 0, 255)", rect.Color.String())
}

func TestRenderEmptyDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxpaint")
	defer teardown()
	//
	r := boxpaint.Render(nil, nil, viewport, layout.DefaultOptions())
	assert.Equal(t, "html", r.Styled.HTMLNode().Data)
	assert.Equal(t, 0, r.Styled.Len())
	assert.Equal(t, 0.0, r.Boxes.Dimensions.Content.Height)
	assert.Equal(t, 0, r.Display.Len())
	assert.Equal(t, 1, r.Boxes.Count())
}

func TestRenderSourceWithStyleElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxpaint")
	defer teardown()
	//
	doc := `<html><head><style>p { background: red; padding: 2px; }</style></head><p></p></html>`
	opts := layout.DefaultOptions()
	opts.UserAgentDisplay = true
	r, err := boxpaint.RenderSource(strings.NewReader(doc), `p { padding: 4px; }`, viewport, opts)
	require.NoError(t, err)
	require.Equal(t, 5, r.Display.Len())
	cmd, _ := r.Display.Front()
	assert.Equal(t, "rect 0 0 800 8 rgba(255, 0, 0, 255)", cmd.String(), "first padding declaration wins")
}
