package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var reportsFilter string

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Manage partner reports",
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reports (admin)",
	Long: `Lists all partner reports, newest first. Requires the admin password.

Examples:
  pairchat reports list
  pairchat reports list --filter '.reason | contains("spam")'`,
	Run: func(cmd *cobra.Command, args []string) {
		code, err := compileJqFilter(reportsFilter)
		if reportsFilter != "" && err != nil {
			out.Error("Invalid jq filter: %v", err)
			os.Exit(1)
		}
		if reportsFilter == "" {
			code = nil
		}

		reports, err := getClient().Reports()
		if err != nil {
			out.Error("Failed to list reports: %v", err)
			os.Exit(1)
		}

		filtered := reports[:0]
		for _, r := range reports {
			if matchesJqFilter(code, r) {
				filtered = append(filtered, r)
			}
		}

		if jsonOutput {
			out.JSON(filtered)
			return
		}

		if len(filtered) == 0 {
			out.Info("No reports")
			return
		}
		for _, r := range filtered {
			out.KeyValue(r.CreatedAt.Format("2006-01-02 15:04"), r.Reason)
		}
	},
}

var reportsSubmitCmd = &cobra.Command{
	Use:   "submit <reason>",
	Short: "Submit a report",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reason := strings.Join(args, " ")
		if err := getClient().SubmitReport(reason); err != nil {
			out.Error("Failed to submit report: %v", err)
			os.Exit(1)
		}
		out.Success("Report submitted")
	},
}

func init() {
	reportsListCmd.Flags().StringVar(&reportsFilter, "filter", "", "jq filter applied to each report")

	reportsCmd.AddCommand(reportsListCmd)
	reportsCmd.AddCommand(reportsSubmitCmd)
	rootCmd.AddCommand(reportsCmd)
}
