package emit

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"cldrgen/internal/assemble"
)

// GoSourceEmitter writes the payload as a generated Go source file: one
// package-level declaration per table, self-contained types, deterministic
// ordering so regeneration diffs stay meaningful.
type GoSourceEmitter struct {
	path string
	pkg  string
}

// NewGoSource creates an emitter writing package pkg to path.
func NewGoSource(path, pkg string) *GoSourceEmitter {
	return &GoSourceEmitter{path: path, pkg: pkg}
}

func (e *GoSourceEmitter) Emit(m *assemble.Model) error {
	payload := FromModel(m)

	dir := filepath.Dir(e.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer os.Remove(tmpName)

	w := bufio.NewWriter(f)
	writeGoSource(w, e.pkg, payload)
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, e.path)
}

const goPreamble = `// Code generated by cldrgen. DO NOT EDIT.

package %s

// Symbols is one number-symbols record; empty fields are unset and
// inherit from the parent locale. AliasOf redirects the whole record.
type Symbols struct {
	AliasOf  string
	Decimal  string
	Group    string
	List     string
	Percent  string
	Plus     string
	Minus    string
	PerMille string
	Infinity string
	NaN      string
	Exponent string
}

// Pattern is one date or time pattern: Kind ranks full=0 long=1 medium=2
// short=3.
type Pattern struct {
	Kind    uint8
	Pattern string
}

// Locale is one resolved locale. Parent is a canonical key, empty for the
// root.
type Locale struct {
	Parent                 string
	Language               string
	Script                 string
	Territory              string
	Variant                string
	DefaultNumberingSystem string
	Symbols                map[string]Symbols
	MonthsWide             []string
	MonthsAbbr             []string
	WeekdaysWide           []string
	WeekdaysAbbr           []string
	AmPm                   []string
	Eras                   []string
	DateFormats            []Pattern
	TimeFormats            []Pattern
}
`

func writeGoSource(w io.Writer, pkg string, p *Payload) {
	fmt.Fprintf(w, goPreamble, pkg)

	fmt.Fprintf(w, "\nvar numberingSystems = map[string]string{\n")
	for _, sys := range p.NumberingSystems {
		fmt.Fprintf(w, "\t%q: %q,\n", sys.ID, sys.Digits)
	}
	fmt.Fprintf(w, "}\n")

	writeStringSlice(w, "calendars", p.Calendars)
	writeStringSlice(w, "territories", p.Territories)
	writeStringSlice(w, "languages", p.Languages)
	writeStringSlice(w, "scripts", p.Scripts)
	writeStringMap(w, "territoryAlpha3", p.TerritoryAlpha3)
	writeStringMap(w, "iso639", p.ISO639)

	fmt.Fprintf(w, "\nvar locales = map[string]Locale{\n")
	for _, loc := range p.Locales {
		writeLocale(w, loc)
	}
	fmt.Fprintf(w, "}\n")
}

func writeStringSlice(w io.Writer, name string, values []string) {
	fmt.Fprintf(w, "\nvar %s = []string{", name)
	for i, v := range values {
		if i > 0 {
			fmt.Fprintf(w, ", ")
		}
		fmt.Fprintf(w, "%q", v)
	}
	fmt.Fprintf(w, "}\n")
}

func writeStringMap(w io.Writer, name string, values map[string]string) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(w, "\nvar %s = map[string]string{\n", name)
	for _, k := range keys {
		fmt.Fprintf(w, "\t%q: %q,\n", k, values[k])
	}
	fmt.Fprintf(w, "}\n")
}

func writeLocale(w io.Writer, loc LocalePayload) {
	fmt.Fprintf(w, "\t%q: {\n", loc.Key)
	if loc.Parent != "" {
		fmt.Fprintf(w, "\t\tParent: %q,\n", loc.Parent)
	}
	fmt.Fprintf(w, "\t\tLanguage: %q,\n", loc.Language)
	writeOptField(w, "Script", loc.Script)
	writeOptField(w, "Territory", loc.Territory)
	writeOptField(w, "Variant", loc.Variant)
	writeOptField(w, "DefaultNumberingSystem", loc.DefaultNumberingSystem)

	if len(loc.Symbols) > 0 {
		fmt.Fprintf(w, "\t\tSymbols: map[string]Symbols{\n")
		for _, sym := range loc.Symbols {
			writeSymbols(w, sym)
		}
		fmt.Fprintf(w, "\t\t},\n")
	}

	if loc.HasCalendar {
		writeLocaleSlice(w, "MonthsWide", loc.MonthsWide)
		writeLocaleSlice(w, "MonthsAbbr", loc.MonthsAbbr)
		writeLocaleSlice(w, "WeekdaysWide", loc.WeekdaysWide)
		writeLocaleSlice(w, "WeekdaysAbbr", loc.WeekdaysAbbr)
		writeLocaleSlice(w, "AmPm", loc.AmPm)
		writeLocaleSlice(w, "Eras", loc.Eras)
	}
	if loc.HasPatterns {
		writePatterns(w, "DateFormats", loc.DateFormats)
		writePatterns(w, "TimeFormats", loc.TimeFormats)
	}
	fmt.Fprintf(w, "\t},\n")
}

func writeOptField(w io.Writer, name, value string) {
	if value != "" {
		fmt.Fprintf(w, "\t\t%s: %q,\n", name, value)
	}
}

func writeLocaleSlice(w io.Writer, name string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(w, "\t\t%s: []string{", name)
	for i, v := range values {
		if i > 0 {
			fmt.Fprintf(w, ", ")
		}
		fmt.Fprintf(w, "%q", v)
	}
	fmt.Fprintf(w, "},\n")
}

func writeSymbols(w io.Writer, sym SymbolsPayload) {
	fmt.Fprintf(w, "\t\t\t%q: {", sym.System)
	fields := []struct {
		name  string
		value string
	}{
		{"AliasOf", sym.AliasOf},
		{"Decimal", sym.Decimal},
		{"Group", sym.Group},
		{"List", sym.List},
		{"Percent", sym.Percent},
		{"Plus", sym.Plus},
		{"Minus", sym.Minus},
		{"PerMille", sym.PerMille},
		{"Infinity", sym.Infinity},
		{"NaN", sym.NaN},
		{"Exponent", sym.Exponent},
	}
	first := true
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		if !first {
			fmt.Fprintf(w, ", ")
		}
		first = false
		fmt.Fprintf(w, "%s: %q", field.name, field.value)
	}
	fmt.Fprintf(w, "},\n")
}

func writePatterns(w io.Writer, name string, patterns []PatternPayload) {
	if len(patterns) == 0 {
		return
	}
	fmt.Fprintf(w, "\t\t%s: []Pattern{", name)
	for i, pat := range patterns {
		if i > 0 {
			fmt.Fprintf(w, ", ")
		}
		fmt.Fprintf(w, "{Kind: %d, Pattern: %q}", pat.Kind, pat.Pattern)
	}
	fmt.Fprintf(w, "},\n")
}
