/*
Package douceuradapter reads CSS source text into a style.StyleSheet.

Parsing of the CSS grammar is done by https://github.com/aymerick/douceur;
this package converts douceur's rules into the stylesheet model, reading
selectors and values with package cssom.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/boxpaint/dom/style"
	"github.com/npillmayer/boxpaint/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'boxpaint.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("boxpaint.cssom")
}

// Parse reads CSS source text. At-rules are skipped, as are selectors which
// are not simple compound selectors. Rules without any usable selector are
// dropped.
func Parse(source string) (*style.StyleSheet, error) {
	c, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parsing CSS: %w", err)
	}
	return Convert(c), nil
}

// Convert converts a douceur stylesheet into the stylesheet model, keeping
// the source order of rules and declarations.
func Convert(c *css.Stylesheet) *style.StyleSheet {
	sheet := style.NewStyleSheet()
	if c == nil {
		return sheet
	}
	for _, r := range c.Rules {
		if rule, ok := convertRule(r); ok {
			sheet.Rules = append(sheet.Rules, rule)
		}
	}
	tracer().Debugf("douceur: converted %d of %d rules", len(sheet.Rules), len(c.Rules))
	return sheet
}

func convertRule(r *css.Rule) (style.Rule, bool) {
	if r.Kind != css.QualifiedRule {
		tracer().Infof("douceur: skipping at-rule %s", r.Name)
		return style.Rule{}, false
	}
	preludes := r.Selectors
	if len(preludes) == 0 {
		preludes = strings.Split(r.Prelude, ",")
	}
	selectors := make([]style.Selector, 0, len(preludes))
	for _, p := range preludes {
		sel, err := cssom.ParseSelector(p)
		if err != nil {
			tracer().Infof("douceur: skipping selector: %v", err)
			continue
		}
		selectors = append(selectors, sel)
	}
	if len(selectors) == 0 {
		return style.Rule{}, false
	}
	decls := make([]style.Declaration, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		name := strings.ToLower(strings.TrimSpace(d.Property))
		decls = append(decls, style.Declare(name, cssom.ParseValue(d.Value)))
	}
	return style.NewRule(selectors, decls), true
}

// ExtractStyleElements visits the elements of an HTML parse tree and
// searches for embedded <style>s. It returns the content of style-elements
// as a single style sheet, in document order. Style elements which fail to
// parse are reported as an error; the stylesheet still contains the rules
// of all other style elements.
func ExtractStyleElements(htmldoc *html.Node) (*style.StyleSheet, error) {
	sheet := style.NewStyleSheet()
	var lasterr error
	var walk func(*html.Node)
	walk = func(h *html.Node) {
		if h.Type == html.ElementNode && (h.DataAtom == atom.Style || h.Data == "style") {
			if h.FirstChild != nil {
				c, err := Parse(h.FirstChild.Data)
				if err != nil {
					lasterr = err
				} else {
					sheet.AppendRules(c)
				}
			}
			return
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	if htmldoc != nil {
		walk(htmldoc)
	}
	return sheet, lasterr
}
