package style

import (
	"golang.org/x/net/html"
)

// DisplayPropertyForHTMLNode returns the user-agent default `display`
// property for an HTML node. Clients use it only if they opt into
// user-agent defaults; the layout engine otherwise assumes a single,
// configurable default display mode.
func DisplayPropertyForHTMLNode(node *html.Node) string {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type == html.TextNode {
		return "inline"
	}
	if node.Type != html.ElementNode {
		return "none"
	}
	switch node.Data {
	case "head", "script", "style", "title", "meta", "link":
		return "none"
	case "html", "aside", "body", "div", "h1", "h2", "h3",
		"h4", "h5", "h6", "main", "nav", "ol", "p", "section",
		"header", "footer", "ul", "li", "article", "pre":
		return "block"
	case "a", "b", "i", "em", "span", "strong", "code", "small", "img":
		return "inline"
	}
	tracer().Infof("unknown HTML element %s will be set to display: block", node.Data)
	return "block"
}
