package cmd

import (
	"log"
	"time"

	"github.com/nrundek/duxburyInfo/internal/output"
	"github.com/nrundek/duxburyInfo/internal/platform"
	"github.com/nrundek/duxburyInfo/internal/scan"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Debug: dump the scanned accessibility tree",
	Long: `Dump the foreground window's accessibility tree exactly as the scanner
sees it: role, window class, candidate priority, and the normalized
texts of each node's readable attributes. Honors the same depth and
node budgets as the scan itself.`,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().Bool("flat", false, "Flatten the tree with role-path breadcrumbs")
}

// treeResult is the structured output of the tree command.
type treeResult struct {
	TS   int64          `yaml:"ts"             json:"ts"`
	Root *scan.NodeInfo `yaml:"root,omitempty" json:"root,omitempty"`
}

// treeFlatResult is the output when --flat is used.
type treeFlatResult struct {
	TS    int64               `yaml:"ts"    json:"ts"`
	Nodes []scan.FlatNodeInfo `yaml:"nodes" json:"nodes"`
}

func runTree(cmd *cobra.Command, args []string) error {
	flat, _ := cmd.Flags().GetBool("flat")

	// A missing backend degrades to an empty dump, same as every other
	// command.
	var root platform.Node
	provider, err := platform.NewProvider()
	switch {
	case err != nil:
		log.Printf("tree: %v", err)
	case provider.Accessor == nil:
		log.Printf("tree: accessor not available from the registered backend")
	default:
		if root, err = provider.Accessor.ForegroundWindow(); err != nil {
			log.Printf("tree: foreground window query failed: %v", err)
			root = nil
		}
	}

	info := scan.Inspect(root)
	ts := time.Now().Unix()

	if flat {
		nodes := scan.FlattenInfo(info)
		if nodes == nil {
			nodes = []scan.FlatNodeInfo{}
		}
		return output.Print(treeFlatResult{TS: ts, Nodes: nodes})
	}
	return output.Print(treeResult{TS: ts, Root: info})
}
