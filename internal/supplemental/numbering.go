// Package supplemental loads the corpus-wide CLDR side tables: numbering
// systems, calendar identifiers, territory code mappings, parent-locale
// overrides, and the ISO-639-2 flat file. These tables are built once per
// run, fully materialized, and passed down by reference to every locale
// builder.
package supplemental

import (
	"fmt"

	"cldrgen/internal/cldrxml"
	"cldrgen/internal/diag"
	"cldrgen/internal/model"
)

// NumberingSystems extracts the (id, digit-set) table from the
// numbering-systems supplemental document, keeping only purely numeric
// systems. Algorithmic systems carry rules instead of digit glyphs and are
// of no use to a digit-substituting formatter.
func NumberingSystems(doc *cldrxml.Node, reporter diag.Reporter) (map[string]model.NumberingSystem, error) {
	entries := doc.FindAll("supplementalData/numberingSystems/numberingSystem[type=numeric]")
	if len(entries) == 0 {
		return nil, fmt.Errorf("numbering systems document has no numeric systems")
	}

	out := make(map[string]model.NumberingSystem, len(entries))
	for _, entry := range entries {
		id := entry.Attr("id")
		if id == "" {
			continue
		}
		digits := []rune(entry.Attr("digits"))
		if len(digits) != 10 {
			diag.ReportWarning(reporter, diag.BuildBadNumberingDigits, entry.Span,
				fmt.Sprintf("numbering system %q has %d digits, want 10", id, len(digits)))
			continue
		}
		if _, dup := out[id]; dup {
			continue
		}
		sys := model.NumberingSystem{ID: id}
		copy(sys.Digits[:], digits)
		out[id] = sys
	}
	return out, nil
}
