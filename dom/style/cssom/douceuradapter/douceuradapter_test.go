package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/boxpaint/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxpaint.cssom")
	defer teardown()
	//
	sheet, err := Parse("* { background: #000000; display: block; padding: 12px; }")
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	r := sheet.Rules[0]
	assert.Equal(t, "*", r.Selectors[0].String())
	require.Len(t, r.Declarations, 3)
	assert.Equal(t, "background: rgba(0, 0, 0, 255);", r.Declarations[0].String())
	assert.Equal(t, "display: block;", r.Declarations[1].String())
	assert.Equal(t, "padding: 12px;", r.Declarations[2].String())
}

func TestParseOrdersSelectorsAndSkipsUnsupported(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxpaint.cssom")
	defer teardown()
	//
	sheet, err := Parse(`
@media print { p { color: red; } }
p, #intro, .a.b { color: red; }
div p { color: blue; }
h1 { color: green; margin: 1px 2px; }
`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 2, "at-rule and descendant rule must be dropped:\n%s", sheet)
	sels := sheet.Rules[0].Selectors
	require.Len(t, sels, 3)
	assert.Equal(t, "#intro", sels[0].String())
	assert.Equal(t, ".a.b", sels[1].String())
	assert.Equal(t, "p", sels[2].String())
	assert.Equal(t, "margin: 1px 2px;", sheet.Rules[1].Declarations[1].String())
}

func TestExtractStyleElements(t *testing.T) {
	root, err := dom.Parse(strings.NewReader(`<html><head>
<style>div { padding: 4px; }</style></head>
<body><style>p { display: inline; }</style><div></div></body></html>`))
	require.NoError(t, err)
	sheet, err := ExtractStyleElements(root)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 2)
	assert.Equal(t, "div { padding: 4px; }\np { display: inline; }", sheet.String())
}
