// Package resolve computes each locale's effective parent in the CLDR
// inheritance hierarchy: explicit supplemental overrides first, bundle-name
// fallback second. Resolution is name-based throughout: parents are
// canonical keys, never object links.
package resolve

import (
	"fmt"
	"sort"
	"strings"

	"cldrgen/internal/diag"
	"cldrgen/internal/model"
	"cldrgen/internal/source"
)

// Resolver answers parent queries against a fully loaded corpus. It is
// built once, after every descriptor exists, and is read-only afterwards.
// Failures are reported through the reporter and returned as errors, like
// the record-building stage does.
type Resolver struct {
	byKey     map[string]*model.Locale
	byBundle  map[string]*model.Locale
	overrides *model.ParentOverrides
	reporter  diag.Reporter
}

// New indexes the corpus. Canonical keys must be unique; a collision is a
// corpus defect and fails loudly.
func New(locales []*model.Locale, overrides *model.ParentOverrides, reporter diag.Reporter) (*Resolver, error) {
	r := &Resolver{
		byKey:     make(map[string]*model.Locale, len(locales)),
		byBundle:  make(map[string]*model.Locale, len(locales)),
		overrides: overrides,
		reporter:  reporter,
	}
	for _, loc := range locales {
		key := loc.Key()
		if prev, dup := r.byKey[key]; dup {
			return nil, r.fail(diag.BuildDuplicateCanonical,
				"canonical key %q produced by both %s and %s",
				key, prev.BundleName, loc.BundleName)
		}
		r.byKey[key] = loc
		r.byBundle[loc.BundleName] = loc
	}
	return r, nil
}

// fail reports the condition as an error diagnostic and returns it.
// Resolution works on records, not documents, so there is no span.
func (r *Resolver) fail(code diag.Code, format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	diag.ReportError(r.reporter, code, source.Span{}, err.Error())
	return err
}

// Parent determines the single parent of loc, as a canonical key. The
// empty string is returned only for the root locale. Order matters and
// first match wins:
//
//  1. an explicit parent-locale override for the target's bundle name;
//  2. bundle-name fallback: drop the last subtag and look the remainder up
//     in the corpus key set; a lone language subtag with no match falls
//     back to the root.
//
// A remainder of more than one subtag with no corpus match is unresolved
// and fails, naming the target. There is no silent default.
func (r *Resolver) Parent(loc *model.Locale) (string, error) {
	if parentBundle, ok := r.overrides.ParentOf(loc.BundleName); ok {
		parent, known := r.byBundle[parentBundle]
		if !known {
			return "", r.fail(diag.ResolveUnresolvedParent,
				"locale %s: override parent %q is not in the corpus",
				loc.Key(), parentBundle)
		}
		return parent.Key(), nil
	}

	tokens := loc.Identity.Subtags()
	if loc.Key() == model.RootKey {
		return "", nil
	}
	if len(tokens) == 1 {
		return model.RootKey, nil
	}

	rest := tokens[:len(tokens)-1]
	joined := strings.Join(rest, model.KeySep)
	if _, ok := r.byKey[joined]; ok {
		return joined, nil
	}
	if len(rest) == 1 {
		return model.RootKey, nil
	}
	return "", r.fail(diag.ResolveUnresolvedParent,
		"locale %s: no parent candidate for %s", loc.Key(), joined)
}

// All resolves every locale in the corpus, in deterministic key order, and
// verifies the tree post-condition over the whole result. Termination per
// locale is bounded by its subtag count.
func (r *Resolver) All() ([]model.Resolved, error) {
	locales := make([]*model.Locale, 0, len(r.byKey))
	for _, loc := range r.byKey {
		locales = append(locales, loc)
	}
	sort.Slice(locales, func(i, j int) bool {
		return locales[i].Key() < locales[j].Key()
	})

	out := make([]model.Resolved, 0, len(locales))
	for _, loc := range locales {
		parent, err := r.Parent(loc)
		if err != nil {
			return nil, err
		}
		out = append(out, model.Resolved{Locale: loc, Parent: parent})
	}

	if err := CheckTree(out, r.reporter); err != nil {
		return nil, err
	}
	return out, nil
}
