package build

import (
	"fmt"

	"cldrgen/internal/cldrxml"
	"cldrgen/internal/diag"
	"cldrgen/internal/model"
)

const gregorianPath = "dates/calendars/calendar[type=gregorian]"

// gregorianNode returns the first canonical gregorian calendar block of the
// document. CLDR locale files carry at most one.
func gregorianNode(ldml *cldrxml.Node) (*cldrxml.Node, bool) {
	return ldml.Find(gregorianPath)
}

// CalendarSymbols assembles the four symbol groups from a gregorian
// calendar node. The result is none only when all four groups are absent
// from the source; once any group is present, missing groups default to
// their empty form.
func CalendarSymbols(cal *cldrxml.Node) model.Opt[model.CalendarSymbols] {
	if cal == nil {
		return model.None[model.CalendarSymbols]()
	}

	present := hasElem(cal, "months") || hasElem(cal, "days") ||
		hasElem(cal, "dayPeriods") || hasElem(cal, "eras")
	if !present {
		return model.None[model.CalendarSymbols]()
	}

	syms := model.CalendarSymbols{
		MonthsWide:   listAt(cal, "months/monthContext[type=format]/monthWidth[type=wide]", "month"),
		MonthsAbbr:   listAt(cal, "months/monthContext[type=format]/monthWidth[type=abbreviated]", "month"),
		WeekdaysWide: listAt(cal, "days/dayContext[type=format]/dayWidth[type=wide]", "day"),
		WeekdaysAbbr: listAt(cal, "days/dayContext[type=format]/dayWidth[type=abbreviated]", "day"),
		AmPm:         dayPeriods(cal),
		Eras:         eras(cal),
	}
	return model.Some(syms)
}

// dayPeriods extracts the AM and PM markers, AM first. Other day periods
// (morning1, noon, ...) are not part of this model.
func dayPeriods(cal *cldrxml.Node) []string {
	width, ok := cal.Find("dayPeriods/dayPeriodContext[type=format]/dayPeriodWidth[type=wide]")
	if !ok {
		return nil
	}
	var am, pm model.Opt[string]
	for _, child := range width.Nodes {
		if child.Tag != "dayPeriod" || child.IsVariantAlt() {
			continue
		}
		switch child.Attr("type") {
		case "am":
			if am.IsNone() {
				am = model.Some(child.Text)
			}
		case "pm":
			if pm.IsNone() {
				pm = model.Some(child.Text)
			}
		}
	}
	var out []string
	if v, ok := am.Get(); ok {
		out = append(out, v)
	}
	if v, ok := pm.Get(); ok {
		out = append(out, v)
	}
	return out
}

// eras extracts the abbreviated era names, BCE then CE. Era indices with
// only alt="variant" entries stay absent; that is data shape, not an error.
func eras(cal *cldrxml.Node) []string {
	abbr, ok := cal.Find("eras/eraAbbr")
	if !ok {
		return nil
	}
	var bce, ce model.Opt[string]
	for _, child := range abbr.Nodes {
		if child.Tag != "era" || child.IsVariantAlt() {
			continue
		}
		switch child.Attr("type") {
		case "0":
			if bce.IsNone() {
				bce = model.Some(child.Text)
			}
		case "1":
			if ce.IsNone() {
				ce = model.Some(child.Text)
			}
		}
	}
	var out []string
	if v, ok := bce.Get(); ok {
		out = append(out, v)
	}
	if v, ok := ce.Get(); ok {
		out = append(out, v)
	}
	return out
}

// CalendarPatterns reads the date and time pattern sets from a gregorian
// calendar node. An unrecognized format-length designator is malformed
// input and fails the whole run, naming the offending string and locale.
func CalendarPatterns(cal *cldrxml.Node, bundle string, reporter diag.Reporter) (model.Opt[model.CalendarPatternSet], error) {
	if cal == nil {
		return model.None[model.CalendarPatternSet](), nil
	}

	hasDates := hasElem(cal, "dateFormats")
	hasTimes := hasElem(cal, "timeFormats")
	if !hasDates && !hasTimes {
		return model.None[model.CalendarPatternSet](), nil
	}

	dates, err := patternList(cal, "dateFormats", "dateFormatLength", "dateFormat", bundle, reporter)
	if err != nil {
		return model.None[model.CalendarPatternSet](), err
	}
	times, err := patternList(cal, "timeFormats", "timeFormatLength", "timeFormat", bundle, reporter)
	if err != nil {
		return model.None[model.CalendarPatternSet](), err
	}
	return model.Some(model.CalendarPatternSet{DateFormats: dates, TimeFormats: times}), nil
}

func patternList(cal *cldrxml.Node, container, length, format, bundle string, reporter diag.Reporter) ([]model.DateTimePattern, error) {
	var out []model.DateTimePattern
	for _, lengthNode := range cal.FindAll(container + "/" + length + "[type]") {
		kindStr := lengthNode.Attr("type")
		kind, ok := model.PatternKindOf(kindStr)
		if !ok {
			diag.ReportError(reporter, diag.BuildBadPatternKind, lengthNode.Span,
				fmt.Sprintf("unknown pattern kind %q", kindStr))
			return nil, fmt.Errorf("locale %s: unknown pattern kind %q", bundle, kindStr)
		}
		pattern, ok := lengthNode.Find(format + "/pattern[!alt]")
		if !ok {
			continue
		}
		out = append(out, model.DateTimePattern{Kind: kind, Pattern: pattern.Text})
	}
	return out, nil
}
