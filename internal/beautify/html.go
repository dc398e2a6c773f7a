package beautify

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

var voidElements = map[string]bool{
	"area": true, "base": true, "basefont": true, "bgsound": true,
	"br": true, "col": true, "command": true, "embed": true,
	"frame": true, "hr": true, "image": true, "img": true,
	"input": true, "isindex": true, "keygen": true, "link": true,
	"menuitem": true, "meta": true, "nextid": true, "param": true,
	"source": true, "track": true, "wbr": true,
}

// Text inside these is written exactly as received.
var rawTextElements = map[string]bool{
	"script": true, "style": true,
}

func isVoidElement(name string) bool {
	return voidElements[strings.ToLower(name)]
}

// formatHTML parses content the way a browser would and writes the tree
// back with a doctype, one node per line. Comments and the source doctype
// are dropped.
func formatHTML(content string) (string, bool) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", false
	}

	var buf strings.Builder
	writeHTMLNode(&buf, doc, 0)
	return strings.TrimSuffix(buf.String(), "\n"), true
}

func writeHTMLNode(buf *strings.Builder, n *html.Node, level int) {
	switch n.Type {
	case html.DocumentNode:
		buf.WriteString("<!DOCTYPE html>\n")
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeHTMLNode(buf, c, level)
		}

	case html.TextNode:
		writeHTMLText(buf, n, level)

	case html.ElementNode:
		writeHTMLElement(buf, n, level)
	}
}

func writeHTMLText(buf *strings.Builder, n *html.Node, level int) {
	if strings.TrimSpace(n.Data) == "" {
		return
	}

	writeIndent(buf, level)
	if n.Parent != nil && n.Parent.Type == html.ElementNode && rawTextElements[strings.ToLower(n.Parent.Data)] {
		buf.WriteString(n.Data)
	} else {
		buf.WriteString(textEscaper.Replace(strings.TrimSpace(n.Data)))
	}
	buf.WriteString("\n")
}

func writeHTMLElement(buf *strings.Builder, n *html.Node, level int) {
	writeIndent(buf, level)
	buf.WriteString("<")
	buf.WriteString(n.Data)
	for _, attr := range n.Attr {
		buf.WriteString(" ")
		if attr.Namespace != "" {
			buf.WriteString(attr.Namespace)
			buf.WriteString(":")
		}
		buf.WriteString(attr.Key)
		buf.WriteString(`="`)
		buf.WriteString(attrEscaper.Replace(attr.Val))
		buf.WriteString(`"`)
	}

	if isVoidElement(n.Data) {
		buf.WriteString("/>\n")
		return
	}

	if !hasPrintableChild(n) {
		buf.WriteString("></")
		buf.WriteString(n.Data)
		buf.WriteString(">\n")
		return
	}

	buf.WriteString(">\n")
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeHTMLNode(buf, c, level+1)
	}
	writeIndent(buf, level)
	buf.WriteString("</")
	buf.WriteString(n.Data)
	buf.WriteString(">\n")
}

func hasPrintableChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			return true
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return true
			}
		}
	}
	return false
}

// balancedHTML reports whether every non-void start tag in content is closed
// by a matching end tag in order.
func balancedHTML(content string) bool {
	z := html.NewTokenizer(strings.NewReader(content))
	var stack []string

	for {
		switch z.Next() {
		case html.ErrorToken:
			return z.Err() == io.EOF && len(stack) == 0

		case html.StartTagToken:
			name, _ := z.TagName()
			if !isVoidElement(string(name)) {
				stack = append(stack, string(name))
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if len(stack) == 0 || stack[len(stack)-1] != string(name) {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
}
