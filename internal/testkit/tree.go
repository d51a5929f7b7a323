// Package testkit carries reusable test assertions over resolved locale
// corpora. It is imported by _test files only.
package testkit

import (
	"testing"

	"cldrgen/internal/model"
)

// CheckLocaleTree fails the test unless the resolved corpus forms a valid
// inheritance tree: exactly one parentless locale and it is the root, every
// parent reference names a corpus member, and every chain of parent links
// reaches the root within a bounded number of hops.
func CheckLocaleTree(t *testing.T, resolved []model.Resolved) {
	t.Helper()

	parents := make(map[string]string, len(resolved))
	var roots []string
	for _, res := range resolved {
		key := res.Locale.Key()
		parents[key] = res.Parent
		if res.Parent == "" {
			roots = append(roots, key)
		}
	}

	if len(roots) != 1 {
		t.Fatalf("parentless locales = %v, want exactly [root]", roots)
	}
	if roots[0] != model.RootKey {
		t.Fatalf("parentless locale is %q, want %q", roots[0], model.RootKey)
	}

	for _, res := range resolved {
		key := res.Locale.Key()
		cur := key
		for hops := 0; cur != model.RootKey; hops++ {
			if hops > len(resolved) {
				t.Fatalf("locale %s: parent chain does not terminate", key)
			}
			parent, ok := parents[cur]
			if !ok {
				t.Fatalf("locale %s: parent %q is not in the corpus", key, cur)
			}
			cur = parent
		}
	}
}
