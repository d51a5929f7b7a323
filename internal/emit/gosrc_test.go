package emit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGoSourceEmit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.go")

	if err := NewGoSource(path, "locale").Emit(testModel()); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	src := string(raw)

	for _, want := range []string{
		"// Code generated by cldrgen. DO NOT EDIT.",
		"package locale",
		`var numberingSystems = map[string]string{`,
		`"latn": "0123456789",`,
		`var locales = map[string]Locale{`,
		`"en": {`,
		`Parent: "root",`,
		`"root": {`,
		`AliasOf: "latn"`,
		`MonthsWide: []string{"M01", "M02"},`,
		`{Kind: 0, Pattern: "y MMMM d, EEEE"}`,
		`var territoryAlpha3 = map[string]string{`,
		`"GB": "GBR",`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source is missing %q", want)
		}
	}
}

func TestGoSourceDeterministic(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.go")
	p2 := filepath.Join(dir, "b.go")

	if err := NewGoSource(p1, "locale").Emit(testModel()); err != nil {
		t.Fatal(err)
	}
	if err := NewGoSource(p2, "locale").Emit(testModel()); err != nil {
		t.Fatal(err)
	}

	a, err := os.ReadFile(p1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(p2)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("two emissions of the same model differ")
	}
}
