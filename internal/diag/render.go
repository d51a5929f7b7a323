package diag

import (
	"fmt"
	"strings"

	"cldrgen/internal/source"
)

// FormatShort renders diagnostics one line per entry in a stable order:
// SEVERITY CODE path:line:col message. Entries without a span drop the
// location segment. Suitable for CLI output and golden files.
func FormatShort(diags []Diagnostic, fileSet *source.FileSet, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, d := range diags {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeLine(&b, d.Severity, d.Code, d.Primary, d.Message, fileSet)
		if includeNotes {
			for _, note := range d.Notes {
				b.WriteByte('\n')
				b.WriteString("  note: ")
				writeLocation(&b, note.Span, fileSet)
				b.WriteString(note.Msg)
			}
		}
	}
	return b.String()
}

func writeLine(b *strings.Builder, sev Severity, code Code, span source.Span, msg string, fileSet *source.FileSet) {
	fmt.Fprintf(b, "%s %s ", sev, code.ID())
	writeLocation(b, span, fileSet)
	b.WriteString(msg)
}

func writeLocation(b *strings.Builder, span source.Span, fileSet *source.FileSet) {
	// a zero-width span at offset 0 carries no usable position
	if fileSet == nil || (span.Start == 0 && span.End == 0) {
		return
	}
	if int(span.File) >= fileSet.Len() {
		return
	}
	f := fileSet.Get(span.File)
	start, _ := fileSet.Resolve(span)
	fmt.Fprintf(b, "%s:%d:%d ", f.Path, start.Line, start.Col)
}
