package model

import "testing"

func TestParentOverrides(t *testing.T) {
	p := NewParentOverrides()
	p.Add("root", "en_150")
	p.Add("en_001", "en_GB")
	p.Add("en_001", "en_AU")

	if got, ok := p.ParentOf("en_GB"); !ok || got != "en_001" {
		t.Errorf("ParentOf(en_GB) = %q, %v", got, ok)
	}
	if _, ok := p.ParentOf("en_US"); ok {
		t.Error("en_US should have no declared parent")
	}

	children := p.Children("en_001")
	if len(children) != 2 || children[0] != "en_AU" || children[1] != "en_GB" {
		t.Errorf("Children(en_001) = %v, want sorted [en_AU en_GB]", children)
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
}

func TestParentOverridesFirstWins(t *testing.T) {
	p := NewParentOverrides()
	p.Add("en_001", "en_GB")
	p.Add("root", "en_GB")

	if got, _ := p.ParentOf("en_GB"); got != "en_001" {
		t.Errorf("ParentOf(en_GB) = %q, want first declaration en_001", got)
	}
}

func TestParentOverridesNil(t *testing.T) {
	var p *ParentOverrides
	if _, ok := p.ParentOf("x"); ok {
		t.Error("nil overrides should answer nothing")
	}
	if p.Len() != 0 {
		t.Error("nil overrides should be empty")
	}
}
