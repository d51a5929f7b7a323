package cldrxml

import (
	"strings"
)

type condType int

const (
	condExists condType = iota
	condNotExists
	condValue
	condNotValue
)

type cond struct {
	typ   condType
	attr  string
	value string
}

func (c cond) match(n *Node) bool {
	switch c.typ {
	case condExists:
		_, ok := n.AttrOK(c.attr)
		return ok
	case condNotExists:
		_, ok := n.AttrOK(c.attr)
		return !ok
	case condValue:
		v, ok := n.AttrOK(c.attr)
		return ok && v == c.value
	case condNotValue:
		v, ok := n.AttrOK(c.attr)
		return !ok || v != c.value
	}
	return true
}

// parseConds strips trailing [..] conditions from a path element.
func parseConds(elem string) (string, []cond) {
	var conds []cond
	for {
		bracket := strings.LastIndexByte(elem, '[')
		if bracket == -1 || !strings.HasSuffix(elem, "]") {
			return elem, conds
		}
		body := elem[bracket+1 : len(elem)-1]
		switch {
		case strings.Contains(body, "!="):
			i := strings.Index(body, "!=")
			conds = append(conds, cond{typ: condNotValue, attr: body[:i], value: body[i+2:]})
		case strings.ContainsRune(body, '='):
			i := strings.IndexByte(body, '=')
			conds = append(conds, cond{typ: condValue, attr: body[:i], value: body[i+1:]})
		case strings.HasPrefix(body, "!"):
			conds = append(conds, cond{typ: condNotExists, attr: body[1:]})
		default:
			conds = append(conds, cond{typ: condExists, attr: body})
		}
		elem = elem[:bracket]
	}
}

// Find returns the first match of the path query in document order.
func (n *Node) Find(path string) (*Node, bool) {
	matches := n.FindAll(path)
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0], true
}

// FindAll returns every node matching the path query, in document order.
// Path elements are tag names or "*", optionally followed by attribute
// conditions: [attr], [!attr], [attr=v], [attr!=v].
func (n *Node) FindAll(path string) []*Node {
	if n == nil {
		return nil
	}
	elems := strings.Split(path, "/")

	matches := []*Node{n}
	for _, elem := range elems {
		if elem == "" {
			continue
		}
		tag, conds := parseConds(elem)

		var next []*Node
		for _, m := range matches {
			for _, child := range m.Nodes {
				if tag != "*" && child.Tag != tag {
					continue
				}
				ok := true
				for _, c := range conds {
					if !c.match(child) {
						ok = false
						break
					}
				}
				if ok {
					next = append(next, child)
				}
			}
		}
		matches = next
		if len(matches) == 0 {
			return nil
		}
	}
	return matches
}
