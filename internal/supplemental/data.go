package supplemental

import (
	"sort"
	"strings"

	"cldrgen/internal/cldrxml"
	"cldrgen/internal/model"
)

// Data is the parsed supplemental-data document: calendar identifiers in
// use, territory alpha-2 to alpha-3 code mappings, and the parent-locale
// override declarations.
type Data struct {
	Calendars       []string
	TerritoryAlpha3 map[string]string
	Overrides       *model.ParentOverrides
}

// ParseData extracts the pieces of supplementalData.xml this generator
// consumes. Everything else in the document is ignored.
func ParseData(doc *cldrxml.Node) *Data {
	data := &Data{
		TerritoryAlpha3: make(map[string]string),
		Overrides:       model.NewParentOverrides(),
	}

	seen := make(map[string]bool)
	for _, cal := range doc.FindAll("supplementalData/calendarData/calendar[type]") {
		id := cal.Attr("type")
		if id != "" && !seen[id] {
			seen[id] = true
			data.Calendars = append(data.Calendars, id)
		}
	}
	sort.Strings(data.Calendars)

	for _, tc := range doc.FindAll("supplementalData/codeMappings/territoryCodes[type][alpha3]") {
		data.TerritoryAlpha3[tc.Attr("type")] = tc.Attr("alpha3")
	}

	// parentLocale: parent="xx_YY" locales="aa_BB cc_DD ..."
	for _, pl := range doc.FindAll("supplementalData/parentLocales/parentLocale[parent][locales]") {
		parent := pl.Attr("parent")
		for _, child := range strings.Fields(pl.Attr("locales")) {
			data.Overrides.Add(parent, child)
		}
	}

	return data
}
