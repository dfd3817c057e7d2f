package dom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parse reads HTML from r and builds a literal DOM tree, returning its root
// element. Text is trimmed and whitespace-only text is dropped. Void elements
// (<br>, <img>, …) never receive children. Unbalanced end tags close the
// nearest matching open element; end tags without a matching open element
// are ignored.
//
// If the document does not consist of exactly one <html> element, its
// content is wrapped into an implicit <html> root. Comments next to
// a single <html> root element are dropped. An empty input results in
// an empty <html> element.
func Parse(r io.Reader) (*html.Node, error) {
	z := html.NewTokenizer(r)
	top := &html.Node{Type: html.DocumentNode}
	stack := []*html.Node{top}
	current := func() *html.Node { return stack[len(stack)-1] }
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parsing HTML: %w", err)
			}
			return documentRoot(top), nil
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			el := NewElement(tok.Data)
			el.DataAtom = tok.DataAtom
			el.Attr = tok.Attr
			current().AppendChild(el)
			if tt == html.StartTagToken && !isVoid(tok.Data) {
				stack = append(stack, el)
			}
		case html.EndTagToken:
			tok := z.Token()
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].Data == tok.Data {
					stack = stack[:i]
					break
				}
			}
		case html.TextToken:
			text := strings.TrimSpace(string(z.Text()))
			if text != "" {
				current().AppendChild(NewText(text))
			}
		case html.CommentToken:
			text := strings.TrimSpace(string(z.Text()))
			current().AppendChild(NewComment(text))
		case html.DoctypeToken:
			tracer().Debugf("dom: ignoring doctype")
		}
	}
}

// documentRoot returns the single root element of a document node, creating
// an implicit one if necessary. The returned element is detached from the
// document node.
func documentRoot(doc *html.Node) *html.Node {
	var elements int
	var root *html.Node
	for ch := doc.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			elements++
			root = ch
		}
	}
	if elements == 1 && root.Data == RootTag && !hasText(doc) {
		// top-level comments are dropped
		doc.RemoveChild(root)
		return root
	}
	tracer().Debugf("dom: wrapping document content into implicit <%s>", RootTag)
	root = ImplicitRoot()
	for ch := doc.FirstChild; ch != nil; ch = doc.FirstChild {
		doc.RemoveChild(ch)
		root.AppendChild(ch)
	}
	return root
}

func hasText(n *html.Node) bool {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			return true
		}
	}
	return false
}

func isVoid(tag string) bool {
	switch tag {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "source", "track", "wbr":
		return true
	}
	return false
}
