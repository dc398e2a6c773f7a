package beautify

import (
	"encoding/xml"
	"io"
	"strings"
)

type xmlNodeKind int

const (
	xmlElement xmlNodeKind = iota
	xmlText
	xmlComment
	xmlProcInst
	xmlDirective
)

type xmlNode struct {
	kind     xmlNodeKind
	name     string
	attrs    []xml.Attr
	text     string
	children []*xmlNode
}

// formatXML parses content into a tree and writes it back with one node per
// line. Unbalanced tags, stray top-level text or a missing root element make
// it fail.
func formatXML(content string) (string, bool) {
	nodes, ok := parseXML(content)
	if !ok {
		return "", false
	}

	var buf strings.Builder
	for _, n := range nodes {
		writeXMLNode(&buf, n, 0)
	}
	return strings.TrimSuffix(buf.String(), "\n"), true
}

func parseXML(content string) ([]*xmlNode, bool) {
	// A byte order mark is not document text.
	content = strings.TrimPrefix(content, "\ufeff")
	decoder := xml.NewDecoder(strings.NewReader(content))
	// The body is already text; a declared encoding is shown, not applied.
	decoder.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var (
		top   []*xmlNode
		stack []*xmlNode
		roots int
	)

	appendNode := func(n *xmlNode) {
		if len(stack) == 0 {
			top = append(top, n)
			return
		}
		parent := stack[len(stack)-1]
		parent.children = append(parent.children, n)
	}

	for {
		token, err := decoder.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, false
		}

		switch t := token.(type) {
		case xml.StartElement:
			if len(stack) == 0 {
				roots++
			}
			attrs := make([]xml.Attr, len(t.Attr))
			copy(attrs, t.Attr)
			n := &xmlNode{kind: xmlElement, name: qualifiedName(t.Name), attrs: attrs}
			appendNode(n)
			stack = append(stack, n)

		case xml.EndElement:
			if len(stack) == 0 || stack[len(stack)-1].name != qualifiedName(t.Name) {
				return nil, false
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			if len(stack) == 0 {
				return nil, false
			}
			appendNode(&xmlNode{kind: xmlText, text: text})

		case xml.Comment:
			appendNode(&xmlNode{kind: xmlComment, text: string(t)})

		case xml.ProcInst:
			text := t.Target
			if len(t.Inst) > 0 {
				text += " " + string(t.Inst)
			}
			appendNode(&xmlNode{kind: xmlProcInst, text: text})

		case xml.Directive:
			appendNode(&xmlNode{kind: xmlDirective, text: string(t)})
		}
	}

	if len(stack) != 0 || roots != 1 {
		return nil, false
	}
	return top, true
}

func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

func writeXMLNode(buf *strings.Builder, n *xmlNode, level int) {
	writeIndent(buf, level)

	switch n.kind {
	case xmlText:
		buf.WriteString(textEscaper.Replace(n.text))
	case xmlComment:
		buf.WriteString("<!--")
		buf.WriteString(n.text)
		buf.WriteString("-->")
	case xmlProcInst:
		buf.WriteString("<?")
		buf.WriteString(n.text)
		buf.WriteString("?>")
	case xmlDirective:
		buf.WriteString("<!")
		buf.WriteString(n.text)
		buf.WriteString(">")
	case xmlElement:
		writeXMLElement(buf, n, level)
		return
	}
	buf.WriteString("\n")
}

func writeXMLElement(buf *strings.Builder, n *xmlNode, level int) {
	buf.WriteString("<")
	buf.WriteString(n.name)
	for _, attr := range n.attrs {
		buf.WriteString(" ")
		buf.WriteString(qualifiedName(attr.Name))
		buf.WriteString(`="`)
		buf.WriteString(attrEscaper.Replace(attr.Value))
		buf.WriteString(`"`)
	}

	switch {
	case len(n.children) == 0:
		buf.WriteString("/>\n")
		return
	case len(n.children) == 1 && n.children[0].kind == xmlText:
		// Lone text stays on the element's line.
		buf.WriteString(">")
		buf.WriteString(textEscaper.Replace(n.children[0].text))
	default:
		buf.WriteString(">\n")
		for _, child := range n.children {
			writeXMLNode(buf, child, level+1)
		}
		writeIndent(buf, level)
	}

	buf.WriteString("</")
	buf.WriteString(n.name)
	buf.WriteString(">\n")
}
