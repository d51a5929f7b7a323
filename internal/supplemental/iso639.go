package supplemental

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"cldrgen/internal/diag"
	"cldrgen/internal/source"
)

// ISO639Entry is one language row of the ISO-639-2 code list.
type ISO639Entry struct {
	Bibliographic string // alpha-3, always present
	Terminology   string // alpha-3, present for 20-odd languages
	Alpha2        string // ISO 639-1 code, may be empty
}

// Alpha3 returns the preferred 3-letter code: terminology when the
// language has one, bibliographic otherwise.
func (e ISO639Entry) Alpha3() string {
	if e.Terminology != "" {
		return e.Terminology
	}
	return e.Bibliographic
}

// ParseISO639 reads the pipe-delimited ISO-639-2 code list
// (alpha3-b|alpha3-t|alpha2|english name|french name) and returns entries
// keyed by their 2-letter code. Rows without a 2-letter code are skipped:
// the table exists to cross-reference the 2-letter codes found in the
// corpus. Malformed rows are reported and skipped, not fatal; the file is
// collaborator data, not CLDR input.
func ParseISO639(r io.Reader, fileID source.FileID, reporter diag.Reporter) (map[string]ISO639Entry, error) {
	out := make(map[string]ISO639Entry)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) < 3 {
			diag.ReportWarning(reporter, diag.BuildISO639MalformedEntry, source.Span{File: fileID},
				fmt.Sprintf("line %d: want at least 3 pipe-delimited fields, got %d", lineNo, len(fields)))
			continue
		}
		entry := ISO639Entry{
			Bibliographic: strings.TrimSpace(fields[0]),
			Terminology:   strings.TrimSpace(fields[1]),
			Alpha2:        strings.TrimSpace(fields[2]),
		}
		if entry.Alpha2 == "" || entry.Bibliographic == "" {
			continue
		}
		if _, dup := out[entry.Alpha2]; !dup {
			out[entry.Alpha2] = entry
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
