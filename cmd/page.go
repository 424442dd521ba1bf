package cmd

import (
	"github.com/nrundek/duxburyInfo/internal/output"
	"github.com/spf13/cobra"
)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Speak and print only the current page number",
	RunE:  runPage,
}

func init() {
	rootCmd.AddCommand(pageCmd)
	pageCmd.Flags().Bool("silent", false, "Do not speak, only print")
}

func runPage(cmd *cobra.Command, args []string) error {
	silent, _ := cmd.Flags().GetBool("silent")
	r, rec := newReporter(silent)

	r.PageOnly()

	return output.Print(statusResult{OK: true, Op: "page", Message: rec.last()})
}
