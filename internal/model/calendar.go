package model

import "fmt"

// CalendarSymbols carries the gregorian display names of a locale. Every
// group defaults to an empty slice when the source omits it; a group is
// never individually "none" once any group is present.
type CalendarSymbols struct {
	MonthsWide   []string
	MonthsAbbr   []string
	WeekdaysWide []string
	WeekdaysAbbr []string
	AmPm         []string // 0-2 entries, AM then PM
	Eras         []string // 0-2 entries, BCE then CE
}

// Empty reports whether all four symbol groups are empty.
func (c CalendarSymbols) Empty() bool {
	return len(c.MonthsWide) == 0 && len(c.MonthsAbbr) == 0 &&
		len(c.WeekdaysWide) == 0 && len(c.WeekdaysAbbr) == 0 &&
		len(c.AmPm) == 0 && len(c.Eras) == 0
}

// PatternKind ranks a date/time format length. The set is closed: CLDR
// defines exactly these four lengths, and anything else in the input is
// malformed data.
type PatternKind uint8

const (
	PatternFull   PatternKind = 0
	PatternLong   PatternKind = 1
	PatternMedium PatternKind = 2
	PatternShort  PatternKind = 3
)

var patternKinds = map[string]PatternKind{
	"full":   PatternFull,
	"long":   PatternLong,
	"medium": PatternMedium,
	"short":  PatternShort,
}

// PatternKindOf maps a CLDR format-length designator to its rank.
func PatternKindOf(s string) (PatternKind, bool) {
	k, ok := patternKinds[s]
	return k, ok
}

func (k PatternKind) String() string {
	switch k {
	case PatternFull:
		return "full"
	case PatternLong:
		return "long"
	case PatternMedium:
		return "medium"
	case PatternShort:
		return "short"
	}
	return fmt.Sprintf("PatternKind(%d)", uint8(k))
}

// DateTimePattern pairs a format length with its pattern string.
type DateTimePattern struct {
	Kind    PatternKind
	Pattern string
}

// CalendarPatternSet holds the date and time pattern lists of a locale.
type CalendarPatternSet struct {
	DateFormats []DateTimePattern
	TimeFormats []DateTimePattern
}
