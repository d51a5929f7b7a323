package resolve

import (
	"fmt"

	"cldrgen/internal/diag"
	"cldrgen/internal/model"
	"cldrgen/internal/source"
)

// CheckTree verifies the whole-corpus post-condition of resolution: the
// parent edges form a tree. Exactly one locale (the root) has no parent,
// every parent reference names an existing locale, and every chain of
// parent links reaches the root without cycles. Resolution is not trusted
// per-locale; this runs over the complete result. Violations are reported
// through the reporter and returned as errors.
func CheckTree(resolved []model.Resolved, reporter diag.Reporter) error {
	parents := make(map[string]string, len(resolved))
	rootCount := 0
	for _, res := range resolved {
		key := res.Locale.Key()
		parents[key] = res.Parent
		if res.Parent == "" {
			rootCount++
			if key != model.RootKey {
				return treeDefect(reporter, diag.ResolveMultipleRoots,
					"locale %s has no parent but is not the root", key)
			}
		}
	}

	if rootCount == 0 {
		return treeDefect(reporter, diag.ResolveNoRoot, "no root locale in resolved corpus")
	}
	if rootCount > 1 {
		return treeDefect(reporter, diag.ResolveMultipleRoots,
			"%d locales resolved with no parent, want exactly one root", rootCount)
	}

	for _, res := range resolved {
		key := res.Locale.Key()
		cur := key
		// Any valid chain is shorter than the corpus; a longer walk means
		// a cycle.
		for hops := 0; cur != model.RootKey; hops++ {
			if hops > len(resolved) {
				return treeDefect(reporter, diag.ResolveCycle,
					"locale %s: parent chain does not terminate (cycle)", key)
			}
			parent, ok := parents[cur]
			if !ok {
				return treeDefect(reporter, diag.ResolveUnresolvedParent,
					"locale %s: parent %q is not in the corpus", key, cur)
			}
			if parent == cur {
				return treeDefect(reporter, diag.ResolveCycle,
					"locale %s: self-parent at %q", key, cur)
			}
			cur = parent
		}
	}
	return nil
}

func treeDefect(reporter diag.Reporter, code diag.Code, format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	diag.ReportError(reporter, code, source.Span{}, err.Error())
	return err
}
