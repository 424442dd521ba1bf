package cmd

import (
	"github.com/nrundek/duxburyInfo/internal/model"
	"github.com/nrundek/duxburyInfo/internal/output"
	"github.com/spf13/cobra"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Debug: list candidate UI texts and speak the best-found status",
	Long: `Run the UI scan, log the raw candidate texts it collected, and speak
the best status summary that could be parsed from them. The full
candidate list is printed in the selected output format.`,
	RunE: runCandidates,
}

func init() {
	rootCmd.AddCommand(candidatesCmd)
	candidatesCmd.Flags().Bool("silent", false, "Do not speak, only print")
}

// candidatesResult is the structured output of the candidates command.
type candidatesResult struct {
	OK         bool              `yaml:"ok"                json:"ok"`
	Op         string            `yaml:"op"                json:"op"`
	Message    string            `yaml:"message,omitempty" json:"message,omitempty"`
	Status     *model.Status     `yaml:"status,omitempty"  json:"status,omitempty"`
	Candidates []model.Candidate `yaml:"candidates"        json:"candidates"`
	Total      int               `yaml:"total"             json:"total"`
}

func runCandidates(cmd *cobra.Command, args []string) error {
	silent, _ := cmd.Flags().GetBool("silent")
	r, rec := newReporter(silent)

	cands, st := r.DebugCandidates()

	res := candidatesResult{
		OK:         true,
		Op:         "candidates",
		Message:    rec.last(),
		Candidates: cands,
		Total:      len(cands),
	}
	if !st.Empty() {
		res.Status = &st
	}
	if res.Candidates == nil {
		res.Candidates = []model.Candidate{}
	}
	return output.Print(res)
}
