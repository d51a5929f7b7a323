package resolve

import (
	"strings"
	"testing"

	"cldrgen/internal/diag"
	"cldrgen/internal/model"
)

func resolvedCorpus(pairs ...[2]string) []model.Resolved {
	out := make([]model.Resolved, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, model.Resolved{
			Locale: mkLocale(p[0], "", "", ""),
			Parent: p[1],
		})
	}
	return out
}

func TestCheckTreeValid(t *testing.T) {
	resolved := []model.Resolved{
		{Locale: mkLocale("root", "", "", ""), Parent: ""},
		{Locale: mkLocale("en", "", "", ""), Parent: "root"},
		{Locale: mkLocale("en", "", "GB", ""), Parent: "en"},
		{Locale: mkLocale("fr", "", "", ""), Parent: "root"},
	}
	if err := CheckTree(resolved, diag.NopReporter{}); err != nil {
		t.Errorf("CheckTree: %v", err)
	}
}

func TestCheckTreeNoRoot(t *testing.T) {
	resolved := resolvedCorpus([2]string{"en", "root"})
	err := CheckTree(resolved, diag.NopReporter{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "not in the corpus") && !strings.Contains(err.Error(), "no root") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheckTreeParentlessNonRoot(t *testing.T) {
	resolved := []model.Resolved{
		{Locale: mkLocale("root", "", "", ""), Parent: ""},
		{Locale: mkLocale("en", "", "", ""), Parent: ""},
	}
	if err := CheckTree(resolved, diag.NopReporter{}); err == nil {
		t.Error("expected an error: en has no parent but is not the root")
	}
}

func TestCheckTreeDanglingParent(t *testing.T) {
	resolved := []model.Resolved{
		{Locale: mkLocale("root", "", "", ""), Parent: ""},
		{Locale: mkLocale("en", "", "GB", ""), Parent: "en"},
	}
	err := CheckTree(resolved, diag.NopReporter{})
	if err == nil {
		t.Fatal("expected an error: parent en is not in the corpus")
	}
	if !strings.Contains(err.Error(), "en") {
		t.Errorf("error should name the dangling reference: %v", err)
	}
}

func TestCheckTreeReportsCodes(t *testing.T) {
	tests := []struct {
		name     string
		resolved []model.Resolved
		want     diag.Code
	}{
		{
			"dangling parent",
			[]model.Resolved{
				{Locale: mkLocale("root", "", "", ""), Parent: ""},
				{Locale: mkLocale("en", "", "GB", ""), Parent: "en"},
			},
			diag.ResolveUnresolvedParent,
		},
		{
			"parentless non-root",
			[]model.Resolved{
				{Locale: mkLocale("root", "", "", ""), Parent: ""},
				{Locale: mkLocale("en", "", "", ""), Parent: ""},
			},
			diag.ResolveMultipleRoots,
		},
		{
			"empty corpus",
			nil,
			diag.ResolveNoRoot,
		},
		{
			"cycle",
			[]model.Resolved{
				{Locale: mkLocale("root", "", "", ""), Parent: ""},
				{Locale: mkLocale("aa", "", "", ""), Parent: "bb"},
				{Locale: mkLocale("bb", "", "", ""), Parent: "aa"},
			},
			diag.ResolveCycle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := diag.NewBag(10)
			if err := CheckTree(tt.resolved, diag.BagReporter{Bag: bag}); err == nil {
				t.Fatal("expected an error")
			}
			if bag.Len() != 1 || bag.Items()[0].Code != tt.want {
				t.Errorf("diagnostics = %v, want one %v", bag.Items(), tt.want)
			}
		})
	}
}

func TestCheckTreeCycle(t *testing.T) {
	// a cycle can only enter through overrides; the checker must still
	// refuse it
	a := model.Resolved{Locale: mkLocale("aa", "", "", ""), Parent: "bb"}
	b := model.Resolved{Locale: mkLocale("bb", "", "", ""), Parent: "aa"}
	root := model.Resolved{Locale: mkLocale("root", "", "", ""), Parent: ""}

	err := CheckTree([]model.Resolved{root, a, b}, diag.NopReporter{})
	if err == nil {
		t.Fatal("expected a cycle error")
	}
	if !strings.Contains(err.Error(), "cycle") && !strings.Contains(err.Error(), "terminate") {
		t.Errorf("unexpected error: %v", err)
	}
}
