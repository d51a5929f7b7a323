// Package build extracts typed locale records from parsed CLDR documents.
//
// The primitive readers here share one contract: given an element tree
// (possibly nil) and an item path, return the best single match or none.
// Absence is never an error at this level; enclosing record builders decide
// what absence means.
package build

import (
	"strings"

	"cldrgen/internal/cldrxml"
	"cldrgen/internal/model"
)

// isDirectionalityMark reports whether r is an ignorable identifier code
// point: a bidi control CLDR embeds around symbols in RTL locales.
func isDirectionalityMark(r rune) bool {
	switch r {
	case '\u200E', '\u200F', '\u061C': // LRM, RLM, ALM
		return true
	}
	return false
}

// charAt reads the element at path and returns its first code point that is
// not a directionality mark. None when the element is absent or its text is
// empty or all-ignorable.
func charAt(n *cldrxml.Node, path string) model.Opt[rune] {
	elem, ok := n.Find(path)
	if !ok {
		return model.None[rune]()
	}
	for _, r := range elem.Text {
		if !isDirectionalityMark(r) {
			return model.Some(r)
		}
	}
	return model.None[rune]()
}

// textAt reads the element at path and returns its trimmed text content.
// None when the element is absent.
func textAt(n *cldrxml.Node, path string) model.Opt[string] {
	elem, ok := n.Find(path)
	if !ok {
		return model.None[string]()
	}
	return model.Some(strings.TrimSpace(elem.Text))
}

// listAt collects the text of container's children named childTag, in
// document order, skipping alt="variant" forms. The container is located by
// path; a missing container or no matching children yields an empty slice,
// not none; "absent" versus "empty" is distinguished only by the enclosing
// record builder.
func listAt(n *cldrxml.Node, path, childTag string) []string {
	container, ok := n.Find(path)
	if !ok {
		return nil
	}
	var out []string
	for _, child := range container.Nodes {
		if child.Tag != childTag || child.IsVariantAlt() {
			continue
		}
		out = append(out, strings.TrimSpace(child.Text))
	}
	return out
}

// hasElem reports whether path matches at least one element.
func hasElem(n *cldrxml.Node, path string) bool {
	_, ok := n.Find(path)
	return ok
}
