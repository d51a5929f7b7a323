package build

import (
	"fmt"

	"cldrgen/internal/cldrxml"
	"cldrgen/internal/diag"
	"cldrgen/internal/model"
	"cldrgen/internal/source"
)

// Locale assembles a full locale descriptor from one parsed document.
// systems is the corpus-wide numbering system table, already loaded from
// the supplemental document. A missing language subtag is fatal; every
// other absence degrades to optionality.
func Locale(file *source.File, doc *cldrxml.Node, systems map[string]model.NumberingSystem, reporter diag.Reporter) (*model.Locale, error) {
	ldml, ok := doc.Find("ldml")
	if !ok {
		diag.ReportError(reporter, diag.XMLEmptyDocument, source.Span{File: file.ID},
			"document has no ldml element")
		return nil, fmt.Errorf("%s: document has no ldml element", file.Path)
	}

	identity, err := identity(file, ldml, reporter)
	if err != nil {
		return nil, err
	}

	bundle := file.BundleName()

	loc := &model.Locale{
		Identity:      identity,
		BundleName:    bundle,
		NumberSymbols: NumberSymbols(ldml, systems, reporter),
	}

	// Unknown default-numbering-system ids are dropped without complaint:
	// the descriptor simply carries no default and the consumer falls back
	// to inherited values.
	if id, ok := textAt(ldml, "numbers/defaultNumberingSystem").Get(); ok && id != "" {
		if _, known := systems[id]; known {
			loc.DefaultNumberingSystem = model.Some(id)
		}
	}

	cal, _ := gregorianNode(ldml)
	loc.Calendar = CalendarSymbols(cal)
	loc.Patterns, err = CalendarPatterns(cal, bundle, reporter)
	if err != nil {
		return nil, err
	}

	return loc, nil
}

// identity reads the ldml/identity block. The language subtag is the one
// hard requirement: without it the locale cannot be keyed at all.
func identity(file *source.File, ldml *cldrxml.Node, reporter diag.Reporter) (model.Identity, error) {
	idNode, ok := ldml.Find("identity")
	span := source.Span{File: file.ID}
	if ok {
		span = idNode.Span
	}

	id := model.Identity{
		Language:  attrAt(ldml, "identity/language", "type"),
		Script:    attrAt(ldml, "identity/script", "type"),
		Territory: attrAt(ldml, "identity/territory", "type"),
		Variant:   attrAt(ldml, "identity/variant", "type"),
	}
	if id.Language == "" {
		diag.ReportError(reporter, diag.BuildMissingLanguage, span, "identity has no language subtag")
		return model.Identity{}, fmt.Errorf("%s: identity has no language subtag", file.Path)
	}
	return id, nil
}

// attrAt reads one attribute of the element at path, "" when absent.
func attrAt(n *cldrxml.Node, path, attr string) string {
	elem, ok := n.Find(path)
	if !ok {
		return ""
	}
	return elem.Attr(attr)
}
