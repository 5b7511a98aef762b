package notes

import "strings"

// markupGapReplacer repairs a known spreadsheet export defect where the
// closing color markup and the spell block run together with no space.
var markupGapReplacer = strings.NewReplacer("|r{", "|r {")

// NormalizeLine returns line with a single space restored between a markup
// close and an immediately following brace. Lines without the defect pass
// through unchanged, so the repair is idempotent.
func NormalizeLine(line string) string {
	return markupGapReplacer.Replace(line)
}

// NormalizeLines applies NormalizeLine to every element, preserving order
// and length.
func NormalizeLines(lines []string) []string {
	fixed := make([]string, len(lines))
	for i, line := range lines {
		fixed[i] = NormalizeLine(line)
	}
	return fixed
}
