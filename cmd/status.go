package cmd

import (
	"github.com/nrundek/duxburyInfo/internal/output"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Speak and print the full status bar",
	Long: `Report the entire status bar. Tries the host's built-in status report
first, then the direct status text, then a summary composed from a scan
of the foreground window's UI tree.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().Bool("silent", false, "Do not speak, only print")
}

func runStatus(cmd *cobra.Command, args []string) error {
	silent, _ := cmd.Flags().GetBool("silent")
	r, rec := newReporter(silent)

	r.FullStatus()

	// An empty message means the host's own reporter handled the whole
	// operation.
	return output.Print(statusResult{OK: true, Op: "status", Message: rec.last()})
}
