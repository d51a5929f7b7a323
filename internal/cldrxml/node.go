// Package cldrxml builds a navigable tree from a CLDR XML document and
// answers path queries of the form "a/b[type=x]/c[!alt]" against it.
package cldrxml

import (
	"cldrgen/internal/source"
)

// Node is one element of a parsed document. Children keep document order.
type Node struct {
	Parent *Node
	Nodes  []*Node

	Tag   string
	Attrs [][2]string
	Text  string
	Span  source.Span
}

// Attr returns the value of the named attribute, or "" when absent.
func (n *Node) Attr(key string) string {
	for _, attr := range n.Attrs {
		if attr[0] == key {
			return attr[1]
		}
	}
	return ""
}

// AttrOK returns the value of the named attribute and whether it is present.
func (n *Node) AttrOK(key string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr[0] == key {
			return attr[1], true
		}
	}
	return "", false
}

// IsVariantAlt reports whether the element carries alt="variant", CLDR's
// marker for alternate, non-canonical forms. Readers of eras, day periods
// and patterns must skip such elements.
func (n *Node) IsVariantAlt() bool {
	return n.Attr("alt") == "variant"
}

// Path renders the element's location for diagnostics:
// "ldml/dates/calendars/calendar[type=gregorian]".
func (n *Node) Path() string {
	if n == nil {
		return ""
	}
	var parts []string
	for cur := n; cur != nil && cur.Tag != ""; cur = cur.Parent {
		elem := cur.Tag
		for _, attr := range cur.Attrs {
			elem += "[" + attr[0] + "=" + attr[1] + "]"
		}
		parts = append(parts, elem)
	}
	out := ""
	for i := len(parts) - 1; i >= 0; i-- {
		if out != "" {
			out += "/"
		}
		out += parts[i]
	}
	return out
}
