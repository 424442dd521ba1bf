package cmd

import (
	"github.com/nrundek/duxburyInfo/internal/output"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Debug: force a UI scan and speak the Page/Line/Column summary",
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().Bool("silent", false, "Do not speak, only print")
}

func runScan(cmd *cobra.Command, args []string) error {
	silent, _ := cmd.Flags().GetBool("silent")
	r, rec := newReporter(silent)

	st := r.DebugScanSummary()

	res := statusResult{OK: true, Op: "scan", Message: rec.last()}
	if !st.Empty() {
		res.Status = &st
	}
	return output.Print(res)
}
