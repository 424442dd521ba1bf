package scan

import "regexp"

// Field identifies one of the three status fields.
type Field int

const (
	FieldPage Field = iota
	FieldLine
	FieldCol
)

// String returns the lowercase field name as used in messages and output.
func (f Field) String() string {
	switch f {
	case FieldPage:
		return "page"
	case FieldLine:
		return "line"
	case FieldCol:
		return "col"
	}
	return "unknown"
}

// The pattern tables below cover the label spellings Duxbury has used
// across versions: full English words, short abbreviations, and the
// Croatian set (Stranica/Str, Linija/Redak/Retka/Red, Kolona/Stupac).
// Patterns are tried in listed order and the first match wins, so the
// ambiguous single-letter forms (P, L, R, C) sit at the end of each
// table.
var pagePatterns = compileAll(
	`\b(Page|Pg|P|Stranica|Str)\b\s*[:#.=]?\s*(\d+)\b`,
	`\b(Page)\s+(\d+)\s+of\b`,
	`\bP\s*=\s*(\d+)\b`,
	`\bP(\d+)\b`,
	`\bStr\s*=\s*(\d+)\b`,
	`\bStr(\d+)\b`,
)

var linePatterns = compileAll(
	`\b(Line|Ln|Row|Linija|Redak|Retka)\b\s*[:#.=]?\s*(\d+)\b`,
	`\b(Line)\s+(\d+)\s+of\b`,
	`\b(L|R)\b\s*[:#.=]?\s*(\d+)\b`,
	`\bL\s*=\s*(\d+)\b`,
	`\bL(\d+)\b`,
	`\bLn\.?\s*[:#.=]?\s*(\d+)\b`,
	`\b(Red(?:ak)?)\b\s*[:#.=]?\s*(\d+)\b`,
)

var colPatterns = compileAll(
	`\b(Column|Col|Cell|Kolona|Stupac|Kol|Stu)\b\s*[:#.=]?\s*(\d+)\b`,
	`\b(C)\s*[:#.=]?\s*(\d+)\b`,
	`\bC\s*=\s*(\d+)\b`,
	`\bC(\d+)\b`,
)

func compileAll(exprs ...string) []*regexp.Regexp {
	pats := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		pats[i] = regexp.MustCompile(`(?i)` + e)
	}
	return pats
}

func patternsFor(f Field) []*regexp.Regexp {
	switch f {
	case FieldPage:
		return pagePatterns
	case FieldLine:
		return linePatterns
	case FieldCol:
		return colPatterns
	}
	return nil
}

// MatchNumber extracts the field's number from text. Patterns are tried
// in table order; on the first match the value is taken from the last
// non-empty capture group that is purely decimal digits (earlier groups
// capture the label token itself). Returns "" when nothing matches.
func MatchNumber(text string, f Field) string {
	for _, pat := range patternsFor(f) {
		m := pat.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for i := len(m) - 1; i >= 1; i-- {
			if m[i] != "" && isDigits(m[i]) {
				return m[i]
			}
		}
	}
	return ""
}

var digitRun = regexp.MustCompile(`\d+`)

// DigitRuns returns every run of consecutive decimal digits in text, in
// order of appearance. Used by the positional fallback.
func DigitRuns(text string) []string {
	return digitRun.FindAllString(text, -1)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
