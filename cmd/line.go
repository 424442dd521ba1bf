package cmd

import (
	"github.com/nrundek/duxburyInfo/internal/output"
	"github.com/spf13/cobra"
)

var lineCmd = &cobra.Command{
	Use:   "line",
	Short: "Speak and print only the current line number",
	RunE:  runLine,
}

func init() {
	rootCmd.AddCommand(lineCmd)
	lineCmd.Flags().Bool("silent", false, "Do not speak, only print")
}

func runLine(cmd *cobra.Command, args []string) error {
	silent, _ := cmd.Flags().GetBool("silent")
	r, rec := newReporter(silent)

	r.LineOnly()

	return output.Print(statusResult{OK: true, Op: "line", Message: rec.last()})
}
