package scan

import (
	"reflect"
	"testing"
)

func TestMatchNumber_Page(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"word_label", "Page 5", "5"},
		{"abbrev_colon", "Pg: 3", "3"},
		{"single_letter", "P 7", "7"},
		{"croatian_word", "Stranica 12", "12"},
		{"croatian_abbrev", "Str 4", "4"},
		{"croatian_equals", "Str=4", "4"},
		{"croatian_glued", "Str7", "7"},
		{"page_of", "Page 5 of 10", "5"},
		{"equals", "P=9", "9"},
		{"glued", "P12", "12"},
		{"hash_separator", "Page #8", "8"},
		{"no_label", "Line 12", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchNumber(tt.text, FieldPage); got != tt.want {
				t.Errorf("MatchNumber(%q, FieldPage) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchNumber_Line(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"word_label", "Line 12", "12"},
		{"abbrev", "Ln 4", "4"},
		{"row", "Row: 8", "8"},
		{"croatian_linija", "Linija 3", "3"},
		{"croatian_redak", "Redak 9", "9"},
		{"croatian_retka", "Retka 2", "2"},
		{"croatian_red", "Red 6", "6"},
		{"single_letter_l", "L 5", "5"},
		{"single_letter_r", "R: 12", "12"},
		{"glued", "L12", "12"},
		{"line_of", "Line 12 of 300", "12"},
		{"no_label", "Page 5", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchNumber(tt.text, FieldLine); got != tt.want {
				t.Errorf("MatchNumber(%q, FieldLine) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchNumber_Col(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"word_label", "Column 3", "3"},
		{"abbrev", "Col 4", "4"},
		{"cell", "Cell: 7", "7"},
		{"croatian_kolona", "Kolona 2", "2"},
		{"croatian_stupac", "Stupac 8", "8"},
		{"croatian_kol", "Kol 1", "1"},
		{"croatian_stu", "Stu 5", "5"},
		{"single_letter", "C 9", "9"},
		{"equals", "C=2", "2"},
		{"glued", "C3", "3"},
		{"no_label", "Line 12", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchNumber(tt.text, FieldCol); got != tt.want {
				t.Errorf("MatchNumber(%q, FieldCol) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchNumber_CaseInsensitive(t *testing.T) {
	if got := MatchNumber("pAgE 5", FieldPage); got != "5" {
		t.Errorf("expected case-insensitive match, got %q", got)
	}
	if got := MatchNumber("STRANICA 7", FieldPage); got != "7" {
		t.Errorf("expected case-insensitive Croatian match, got %q", got)
	}
}

func TestMatchNumber_CombinedStatusText(t *testing.T) {
	text := "Page 5 Line 12 Col 3"
	if got := MatchNumber(text, FieldPage); got != "5" {
		t.Errorf("page = %q, want 5", got)
	}
	if got := MatchNumber(text, FieldLine); got != "12" {
		t.Errorf("line = %q, want 12", got)
	}
	if got := MatchNumber(text, FieldCol); got != "3" {
		t.Errorf("col = %q, want 3", got)
	}
}

func TestDigitRuns(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"three_runs", "5 12 3", []string{"5", "12", "3"}},
		{"embedded", "P5-L12", []string{"5", "12"}},
		{"no_digits", "ready", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DigitRuns(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DigitRuns(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestField_String(t *testing.T) {
	if FieldPage.String() != "page" || FieldLine.String() != "line" || FieldCol.String() != "col" {
		t.Errorf("unexpected field names: %s %s %s", FieldPage, FieldLine, FieldCol)
	}
}
