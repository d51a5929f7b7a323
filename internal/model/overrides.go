package model

import "sort"

// ParentOverrides is the supplemental parent-locale table: explicit
// parent declarations that short-circuit bundle-name fallback during
// inheritance resolution.
type ParentOverrides struct {
	byParent map[string][]string
	byChild  map[string]string
}

// NewParentOverrides creates an empty override table.
func NewParentOverrides() *ParentOverrides {
	return &ParentOverrides{
		byParent: make(map[string][]string),
		byChild:  make(map[string]string),
	}
}

// Add declares parent as the direct parent of the child bundle name.
// A child declared twice keeps its first parent.
func (p *ParentOverrides) Add(parent, child string) {
	if _, dup := p.byChild[child]; dup {
		return
	}
	p.byChild[child] = parent
	p.byParent[parent] = append(p.byParent[parent], child)
}

// ParentOf returns the declared parent bundle name for child, if any.
func (p *ParentOverrides) ParentOf(child string) (string, bool) {
	if p == nil {
		return "", false
	}
	parent, ok := p.byChild[child]
	return parent, ok
}

// Children returns the declared children of parent, sorted.
func (p *ParentOverrides) Children(parent string) []string {
	if p == nil {
		return nil
	}
	out := append([]string(nil), p.byParent[parent]...)
	sort.Strings(out)
	return out
}

// Len returns the number of child declarations.
func (p *ParentOverrides) Len() int {
	if p == nil {
		return 0
	}
	return len(p.byChild)
}
