package build

import (
	"fmt"

	"cldrgen/internal/cldrxml"
	"cldrgen/internal/diag"
	"cldrgen/internal/model"
)

// NumberSymbols builds one record per <symbols> block in the numbers
// section, keyed by owning numbering system. A block without a
// numberSystem attribute belongs to latn: that is CLDR's own fallback
// rule, not a loose default. Every surviving record references a system
// present in the corpus table; blocks naming an unknown system are
// dropped with a warning. Duplicate blocks for a system keep the first
// and warn.
func NumberSymbols(ldml *cldrxml.Node, systems map[string]model.NumberingSystem, reporter diag.Reporter) map[string]model.NumberSymbols {
	blocks := ldml.FindAll("numbers/symbols")
	if len(blocks) == 0 {
		return nil
	}

	out := make(map[string]model.NumberSymbols, len(blocks))
	for _, block := range blocks {
		system := block.Attr("numberSystem")
		if system == "" {
			system = model.LatnSystem
		}
		if _, known := systems[system]; !known {
			diag.ReportWarning(reporter, diag.BuildUnknownNumberSystem, block.Span,
				fmt.Sprintf("symbols block names unknown numbering system %q", system))
			continue
		}
		if _, dup := out[system]; dup {
			diag.ReportWarning(reporter, diag.BuildDuplicateSymbols, block.Span,
				fmt.Sprintf("duplicate symbols block for numbering system %q", system))
			continue
		}
		out[system] = symbolsBlock(block, system)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func symbolsBlock(block *cldrxml.Node, system string) model.NumberSymbols {
	// A block that aliases another system's symbols carries no data of its
	// own. The alias target is always recorded as latn regardless of the
	// declared path, a known narrowing of the CLDR alias rule.
	// TODO: resolve the declared alias target instead of assuming latn.
	if hasElem(block, "alias") {
		return model.AliasSymbols(system, model.LatnSystem)
	}

	return model.NumberSymbols{
		System:   system,
		Decimal:  charAt(block, "decimal"),
		Group:    charAt(block, "group"),
		List:     charAt(block, "list"),
		Percent:  charAt(block, "percentSign"),
		Plus:     charAt(block, "plusSign"),
		Minus:    charAt(block, "minusSign"),
		PerMille: charAt(block, "perMille"),
		Infinity: textAt(block, "infinity"),
		NaN:      textAt(block, "nan"),
		Exponent: textAt(block, "exponential"),
	}
}
