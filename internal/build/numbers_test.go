package build

import (
	"testing"

	"cldrgen/internal/diag"
	"cldrgen/internal/model"
)

func TestNumberSymbolsDefaultSystem(t *testing.T) {
	_, doc := parseDoc(t, "en.xml", `<ldml><numbers>
		<symbols>
			<decimal>.</decimal>
			<group>,</group>
			<minusSign>-</minusSign>
			<infinity>∞</infinity>
			<nan>NaN</nan>
		</symbols>
	</numbers></ldml>`)
	ldml, _ := doc.Find("ldml")

	syms := NumberSymbols(ldml, latnSystems(), diag.NopReporter{})
	got, ok := syms[model.LatnSystem]
	if !ok {
		t.Fatal("block without numberSystem attribute should belong to latn")
	}
	if v, _ := got.Decimal.Get(); v != '.' {
		t.Errorf("Decimal = %q", v)
	}
	if v, _ := got.Group.Get(); v != ',' {
		t.Errorf("Group = %q", v)
	}
	if v, _ := got.Infinity.Get(); v != "∞" {
		t.Errorf("Infinity = %q", v)
	}
	if got.Percent.IsSome() {
		t.Error("Percent should be absent")
	}
	if got.AliasOf.IsSome() {
		t.Error("AliasOf should be absent")
	}
}

func TestNumberSymbolsExplicitSystem(t *testing.T) {
	_, doc := parseDoc(t, "ar.xml", `<ldml><numbers>
		<symbols numberSystem="arab"><decimal>٫</decimal></symbols>
		<symbols numberSystem="latn"><decimal>.</decimal></symbols>
	</numbers></ldml>`)
	ldml, _ := doc.Find("ldml")

	syms := NumberSymbols(ldml, latnSystems(), diag.NopReporter{})
	if len(syms) != 2 {
		t.Fatalf("got %d systems, want 2", len(syms))
	}
	if v, _ := syms["arab"].Decimal.Get(); v != '٫' {
		t.Errorf("arab decimal = %q", v)
	}
}

func TestNumberSymbolsDuplicateKeepsFirst(t *testing.T) {
	_, doc := parseDoc(t, "dup.xml", `<ldml><numbers>
		<symbols numberSystem="latn"><decimal>.</decimal></symbols>
		<symbols numberSystem="latn"><decimal>,</decimal></symbols>
	</numbers></ldml>`)
	ldml, _ := doc.Find("ldml")

	bag := diag.NewBag(10)
	syms := NumberSymbols(ldml, latnSystems(), diag.BagReporter{Bag: bag})
	if v, _ := syms["latn"].Decimal.Get(); v != '.' {
		t.Errorf("decimal = %q, want first block's '.'", v)
	}
	if !bag.HasWarnings() {
		t.Error("expected a duplicate-symbols warning")
	}
	if bag.Items()[0].Code != diag.BuildDuplicateSymbols {
		t.Errorf("code = %v, want BuildDuplicateSymbols", bag.Items()[0].Code)
	}
}

func TestNumberSymbolsAlias(t *testing.T) {
	_, doc := parseDoc(t, "alias.xml", `<ldml><numbers>
		<symbols numberSystem="arab"><alias source="locale" path="../symbols[@numberSystem='latn']"/></symbols>
	</numbers></ldml>`)
	ldml, _ := doc.Find("ldml")

	syms := NumberSymbols(ldml, latnSystems(), diag.NopReporter{})
	got := syms["arab"]
	target, ok := got.AliasOf.Get()
	if !ok || target != model.LatnSystem {
		t.Errorf("AliasOf = %q, %v; want latn", target, ok)
	}
	if got.Decimal.IsSome() {
		t.Error("aliased block should carry no data of its own")
	}
}

func TestNumberSymbolsUnknownSystemDropped(t *testing.T) {
	// every surviving record must reference a system the corpus knows
	_, doc := parseDoc(t, "en.xml", `<ldml><numbers>
		<symbols numberSystem="bogus"><decimal>.</decimal></symbols>
		<symbols numberSystem="latn"><decimal>.</decimal></symbols>
	</numbers></ldml>`)
	ldml, _ := doc.Find("ldml")

	bag := diag.NewBag(10)
	syms := NumberSymbols(ldml, latnSystems(), diag.BagReporter{Bag: bag})
	if _, ok := syms["bogus"]; ok {
		t.Error("symbols keyed by an unknown numbering system must not survive")
	}
	if _, ok := syms["latn"]; !ok {
		t.Error("the latn block should survive")
	}
	if !bag.HasWarnings() {
		t.Error("expected an unknown-system warning")
	}
	if bag.Items()[0].Code != diag.BuildUnknownNumberSystem {
		t.Errorf("code = %v, want BuildUnknownNumberSystem", bag.Items()[0].Code)
	}
}

func TestNumberSymbolsAllBlocksUnknown(t *testing.T) {
	_, doc := parseDoc(t, "odd.xml", `<ldml><numbers>
		<symbols numberSystem="bogus"><decimal>.</decimal></symbols>
	</numbers></ldml>`)
	ldml, _ := doc.Find("ldml")

	if syms := NumberSymbols(ldml, latnSystems(), diag.NopReporter{}); syms != nil {
		t.Errorf("expected nil map when no block survives, got %v", syms)
	}
}

func TestNumberSymbolsDirectionalityMarks(t *testing.T) {
	// RTL locales wrap the minus sign in bidi control marks; the mark is
	// not the symbol
	_, doc := parseDoc(t, "he.xml", `<ldml><numbers>
		<symbols numberSystem="latn"><minusSign>` + "\u200E-\u200E" + `</minusSign></symbols>
	</numbers></ldml>`)
	ldml, _ := doc.Find("ldml")

	syms := NumberSymbols(ldml, latnSystems(), diag.NopReporter{})
	if v, _ := syms["latn"].Minus.Get(); v != '-' {
		t.Errorf("Minus = %q, want '-'", v)
	}
}

func TestNumberSymbolsAbsent(t *testing.T) {
	_, doc := parseDoc(t, "none.xml", `<ldml><identity><language type="en"/></identity></ldml>`)
	ldml, _ := doc.Find("ldml")
	if syms := NumberSymbols(ldml, latnSystems(), diag.NopReporter{}); syms != nil {
		t.Errorf("expected nil map for a document without symbols, got %v", syms)
	}
}
