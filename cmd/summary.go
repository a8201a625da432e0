package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mjunit/mjunit/internal/logger"
	"github.com/mjunit/mjunit/pkg/report"
	"github.com/mjunit/mjunit/pkg/summary"
)

// summaryCmd represents the summary command.
var summaryCmd = &cobra.Command{
	Use:   "summary REPORT_FILE",
	Short: "Print a per-suite digest of a test-run report",
	Long:  `mjunit summary displays the suites of a test-run report file as a table, with their test, failure and pending counts.`,
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		rprt, err := report.Load(args[0])
		if err != nil {
			logger.Fatalf("Summary failed: %v", err)
		}

		summary.Render(os.Stdout, rprt)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
