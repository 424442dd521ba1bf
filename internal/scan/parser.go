package scan

import (
	"strings"

	"github.com/nrundek/duxburyInfo/internal/model"
)

// candidateSeparator joins candidate texts for the cross-fragment pass.
// It contains no digits and no word characters, so it cannot fabricate a
// label+number match that no fragment sequence supports.
const candidateSeparator = " | "

// Parse recovers page/line/column from the prioritized candidate list
// using three staged strategies:
//
//  1. each candidate on its own, strongest priority first, stopping as
//     soon as all three fields are resolved;
//  2. all candidates joined into one string, for status text fragmented
//     across several short UI labels;
//  3. positional fallback: with three or more digit runs in the joined
//     text, the 1st/2nd/3rd runs fill still-missing page/line/col.
//
// Later stages never overwrite a field an earlier stage resolved.
func Parse(cands []model.Candidate) model.Status {
	var st model.Status

	for _, c := range cands {
		if st.Page == "" {
			st.Page = MatchNumber(c.Text, FieldPage)
		}
		if st.Line == "" {
			st.Line = MatchNumber(c.Text, FieldLine)
		}
		if st.Col == "" {
			st.Col = MatchNumber(c.Text, FieldCol)
		}
		if st.Complete() {
			return st
		}
	}

	joined := JoinTexts(cands)
	if st.Page == "" {
		st.Page = MatchNumber(joined, FieldPage)
	}
	if st.Line == "" {
		st.Line = MatchNumber(joined, FieldLine)
	}
	if st.Col == "" {
		st.Col = MatchNumber(joined, FieldCol)
	}
	if st.Complete() {
		return st
	}

	// Last resort: Duxbury sometimes exposes the three numbers with no
	// labels at all. Trades precision for availability.
	if runs := DigitRuns(joined); len(runs) >= 3 {
		if st.Page == "" {
			st.Page = runs[0]
		}
		if st.Line == "" {
			st.Line = runs[1]
		}
		if st.Col == "" {
			st.Col = runs[2]
		}
	}

	return st
}

// JoinTexts concatenates the candidate texts with the parser's separator.
func JoinTexts(cands []model.Candidate) string {
	parts := make([]string, len(cands))
	for i, c := range cands {
		parts[i] = c.Text
	}
	return strings.Join(parts, candidateSeparator)
}
