package scan

import (
	"github.com/nrundek/duxburyInfo/internal/platform"
)

// NodeInfo is a debug snapshot of one node's readable surface, for the
// tree introspection command. It mirrors exactly what the collector sees:
// role, window class, candidate priority, and the normalized texts of the
// four readable attributes.
type NodeInfo struct {
	Role     string     `yaml:"r"                json:"r"`
	Class    string     `yaml:"wc,omitempty"     json:"wc,omitempty"`
	Priority int        `yaml:"p"                json:"p"`
	Texts    []string   `yaml:"texts,omitempty"  json:"texts,omitempty"`
	Children []NodeInfo `yaml:"c,omitempty"      json:"c,omitempty"`
}

// FlatNodeInfo is a NodeInfo with a role-path breadcrumb instead of
// children.
type FlatNodeInfo struct {
	Role     string   `yaml:"r"               json:"r"`
	Class    string   `yaml:"wc,omitempty"    json:"wc,omitempty"`
	Priority int      `yaml:"p"               json:"p"`
	Texts    []string `yaml:"texts,omitempty" json:"texts,omitempty"`
	Path     string   `yaml:"path"            json:"path"`
}

// Inspect builds a debug snapshot of the tree under root, honoring the
// same depth and node budgets as Collect. Returns nil for a nil root.
func Inspect(root platform.Node) *NodeInfo {
	if root == nil {
		return nil
	}
	budget := maxNodes
	return inspectNode(root, 0, &budget)
}

func inspectNode(n platform.Node, depth int, budget *int) *NodeInfo {
	if *budget <= 0 {
		return nil
	}
	*budget--

	info := NodeInfo{Priority: nodePriority(n)}
	if role, err := n.Role(); err == nil {
		info.Role = role
	}
	if class, err := n.WindowClassName(); err == nil {
		info.Class = class
	}
	for _, read := range []func() (string, error){n.Name, n.Value, n.WindowText, n.Description} {
		raw, err := read()
		if err != nil {
			continue
		}
		if s := NormalizeText(raw); s != "" {
			info.Texts = append(info.Texts, s)
		}
	}

	if depth < maxDepth {
		if kids, err := n.Children(); err == nil {
			for _, k := range kids {
				if k == nil {
					continue
				}
				if child := inspectNode(k, depth+1, budget); child != nil {
					info.Children = append(info.Children, *child)
				}
			}
		}
	}
	return &info
}

// FlattenInfo converts a NodeInfo tree into a flat list with role-path
// breadcrumbs joined by " > ".
func FlattenInfo(root *NodeInfo) []FlatNodeInfo {
	if root == nil {
		return nil
	}
	var result []FlatNodeInfo
	flattenInfo(*root, "", &result)
	return result
}

func flattenInfo(n NodeInfo, parentPath string, result *[]FlatNodeInfo) {
	path := n.Role
	if parentPath != "" {
		path = parentPath + " > " + n.Role
	}
	*result = append(*result, FlatNodeInfo{
		Role:     n.Role,
		Class:    n.Class,
		Priority: n.Priority,
		Texts:    n.Texts,
		Path:     path,
	})
	for _, child := range n.Children {
		flattenInfo(child, path, result)
	}
}
