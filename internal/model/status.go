package model

import "strings"

// Status holds the parsed cursor position. Each field is the digit string
// as extracted from the UI text; an empty field means "not found", never
// zero.
type Status struct {
	Page string `yaml:"page,omitempty" json:"page,omitempty"`
	Line string `yaml:"line,omitempty" json:"line,omitempty"`
	Col  string `yaml:"col,omitempty"  json:"col,omitempty"`
}

// Complete reports whether all three fields are resolved.
func (s Status) Complete() bool {
	return s.Page != "" && s.Line != "" && s.Col != ""
}

// Empty reports whether no field at all was resolved.
func (s Status) Empty() bool {
	return s.Page == "" && s.Line == "" && s.Col == ""
}

// Summary composes the user-facing message, e.g. "Page 5, Line 12,
// Column 3". Only resolved fields are included, in that fixed order.
func (s Status) Summary() string {
	var parts []string
	if s.Page != "" {
		parts = append(parts, "Page "+s.Page)
	}
	if s.Line != "" {
		parts = append(parts, "Line "+s.Line)
	}
	if s.Col != "" {
		parts = append(parts, "Column "+s.Col)
	}
	return strings.Join(parts, ", ")
}
