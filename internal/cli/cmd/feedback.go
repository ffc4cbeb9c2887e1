package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	feedbackFilter string
	feedbackName   string
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Manage user feedback",
}

var feedbackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List feedback (admin)",
	Long: `Lists all feedback entries, newest first. Requires the admin password.

Examples:
  pairchat feedback list
  pairchat feedback list --filter '.name == "alex"'`,
	Run: func(cmd *cobra.Command, args []string) {
		code, err := compileJqFilter(feedbackFilter)
		if feedbackFilter != "" && err != nil {
			out.Error("Invalid jq filter: %v", err)
			os.Exit(1)
		}
		if feedbackFilter == "" {
			code = nil
		}

		feedback, err := getClient().ListFeedback()
		if err != nil {
			out.Error("Failed to list feedback: %v", err)
			os.Exit(1)
		}

		filtered := feedback[:0]
		for _, f := range feedback {
			if matchesJqFilter(code, f) {
				filtered = append(filtered, f)
			}
		}

		if jsonOutput {
			out.JSON(filtered)
			return
		}

		if len(filtered) == 0 {
			out.Info("No feedback")
			return
		}
		for _, f := range filtered {
			name := f.Name
			if name == "" {
				name = "anonymous"
			}
			out.KeyValue(f.CreatedAt.Format("2006-01-02 15:04")+" "+name, f.Message)
		}
	},
}

var feedbackSubmitCmd = &cobra.Command{
	Use:   "submit <message>",
	Short: "Submit feedback",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		message := strings.Join(args, " ")
		if err := getClient().SubmitFeedback(feedbackName, message); err != nil {
			out.Error("Failed to submit feedback: %v", err)
			os.Exit(1)
		}
		out.Success("Feedback submitted")
	},
}

func init() {
	feedbackListCmd.Flags().StringVar(&feedbackFilter, "filter", "", "jq filter applied to each entry")
	feedbackSubmitCmd.Flags().StringVar(&feedbackName, "name", "", "optional name to sign the feedback with")

	feedbackCmd.AddCommand(feedbackListCmd)
	feedbackCmd.AddCommand(feedbackSubmitCmd)
	rootCmd.AddCommand(feedbackCmd)
}
