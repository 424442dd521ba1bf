package model

import "sort"

// Candidate priority levels. Lower value = stronger signal.
const (
	PriorityStatusBar   = 0 // node role-tagged as a status bar
	PriorityStatusClass = 1 // node whose window class is a known status-bar class
	PriorityOther       = 2 // any other text-bearing node
)

// Candidate is one normalized text fragment pulled from the UI tree,
// tagged with the confidence priority of its source node.
type Candidate struct {
	Priority int    `yaml:"p" json:"p"`
	Text     string `yaml:"t" json:"t"`
}

// Dedupe sorts candidates ascending by priority (stable, preserving
// discovery order among equal priorities) and keeps only the first
// occurrence of each distinct text. A text seen at priority 0 therefore
// shadows the same text seen again at priority 2.
func Dedupe(cands []Candidate) []Candidate {
	sorted := make([]Candidate, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	seen := make(map[string]bool, len(sorted))
	var unique []Candidate
	for _, c := range sorted {
		if seen[c.Text] {
			continue
		}
		seen[c.Text] = true
		unique = append(unique, c)
	}
	return unique
}
