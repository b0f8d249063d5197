package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes n as HTML. A rendering boundary is written as a declarative
// shadow root: a <template shadowrootmode="open"> first child of its host.
func Render(w io.Writer, n Node) error {
	return html.Render(w, toHTML(n))
}

// OuterHTML returns the HTML serialization of n, or "" if it cannot be
// rendered.
func OuterHTML(n Node) string {
	var sb strings.Builder
	if err := Render(&sb, n); err != nil {
		return ""
	}
	return sb.String()
}

func toHTML(n Node) *html.Node {
	switch n.NodeType() {
	case TextNode:
		return &html.Node{Type: html.TextNode, Data: n.TextContent()}
	case BoundaryNode:
		tmpl := &html.Node{
			Type:     html.ElementNode,
			Data:     "template",
			DataAtom: atom.Template,
			Attr:     []html.Attribute{{Key: "shadowrootmode", Val: "open"}},
		}
		appendHTMLChildren(tmpl, n)
		return tmpl
	}

	el := n.(*Element)
	out := &html.Node{
		Type:      html.ElementNode,
		Data:      el.tag,
		DataAtom:  atom.Lookup([]byte(el.tag)),
		Namespace: shortNamespace(el.namespace),
	}
	for _, a := range el.attrs {
		out.Attr = append(out.Attr, html.Attribute{Key: a.Name, Val: a.Value})
	}
	if el.style != nil && el.style.Len() > 0 && !el.HasAttribute("style") {
		out.Attr = append(out.Attr, html.Attribute{Key: "style", Val: el.style.String()})
	}
	if el.boundary != nil {
		out.AppendChild(toHTML(el.boundary))
	}
	appendHTMLChildren(out, n)
	return out
}

func appendHTMLChildren(parent *html.Node, n Node) {
	for _, c := range n.base().children {
		parent.AppendChild(toHTML(c))
	}
}

func shortNamespace(uri string) string {
	switch uri {
	case SVGNamespace:
		return "svg"
	case MathMLNamespace:
		return "math"
	default:
		return ""
	}
}
