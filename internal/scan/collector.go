package scan

import (
	"regexp"
	"strings"

	"github.com/nrundek/duxburyInfo/internal/model"
	"github.com/nrundek/duxburyInfo/internal/platform"
)

// Traversal safety bounds. The tree belongs to the host application and
// can be pathologically deep, huge, or even cyclic through stale
// references; the scan must terminate regardless.
const (
	maxDepth = 6
	maxNodes = 800
)

var wsRun = regexp.MustCompile(`\s+`)

// NormalizeText collapses internal whitespace runs to single spaces and
// strips leading/trailing whitespace.
func NormalizeText(s string) string {
	return strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
}

// Collect walks the tree under root depth-first in pre-order and returns
// the deduplicated, priority-sorted candidate texts. A nil root yields an
// empty result. Any node whose children or attributes cannot be read
// contributes nothing and the walk continues with its siblings.
func Collect(root platform.Node) []model.Candidate {
	if root == nil {
		return nil
	}

	type frame struct {
		node  platform.Node
		depth int
	}

	var cands []model.Candidate
	stack := []frame{{root, 0}}
	visited := 0

	for len(stack) > 0 && visited < maxNodes {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited++

		cands = append(cands, nodeCandidates(f.node)...)

		if f.depth >= maxDepth {
			continue
		}
		kids, err := f.node.Children()
		if err != nil {
			// Node vanished or refused enumeration mid-scan; siblings
			// already on the stack are unaffected.
			continue
		}
		for i := len(kids) - 1; i >= 0; i-- {
			if kids[i] != nil {
				stack = append(stack, frame{kids[i], f.depth + 1})
			}
		}
	}

	return model.Dedupe(cands)
}

// nodeCandidates probes the four readable attributes of a node in fixed
// order. A failed read of any single attribute contributes nothing.
func nodeCandidates(n platform.Node) []model.Candidate {
	prio := nodePriority(n)

	var out []model.Candidate
	for _, read := range []func() (string, error){n.Name, n.Value, n.WindowText, n.Description} {
		raw, err := read()
		if err != nil {
			continue
		}
		if s := NormalizeText(raw); s != "" {
			out = append(out, model.Candidate{Priority: prio, Text: s})
		}
	}
	return out
}

// nodePriority ranks the node as a status-text source: an explicit
// status-bar role beats a status-bar window class, which beats everything
// else. Panes and static texts often hold status chunks too, hence even
// generic nodes contribute at the weakest priority.
func nodePriority(n platform.Node) int {
	if role, err := n.Role(); err == nil && role == model.RoleStatusBar {
		return model.PriorityStatusBar
	}
	if class, err := n.WindowClassName(); err == nil && model.IsStatusBarClass(class) {
		return model.PriorityStatusClass
	}
	return model.PriorityOther
}
