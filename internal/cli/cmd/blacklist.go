package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var blacklistCmd = &cobra.Command{
	Use:   "blacklist",
	Short: "Show the word blacklist (admin)",
	Run: func(cmd *cobra.Command, args []string) {
		words, err := getClient().Blacklist()
		if err != nil {
			out.Error("Failed to fetch blacklist: %v", err)
			os.Exit(1)
		}

		if jsonOutput {
			out.JSON(map[string]any{"words": words})
			return
		}

		if len(words) == 0 {
			out.Info("Blacklist is empty")
			return
		}
		for _, w := range words {
			out.KeyValue("word", w)
		}
	},
}

var blacklistSetCmd = &cobra.Command{
	Use:   "set <word...>",
	Short: "Replace the word blacklist (admin)",
	Long: `Replaces the entire word blacklist. Masked terms take effect on chat
relays within the server's blacklist cache TTL.

Examples:
  pairchat blacklist set badword worse
  pairchat blacklist set ""   # clear the blacklist`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var words []string
		for _, a := range args {
			if w := strings.TrimSpace(a); w != "" {
				words = append(words, w)
			}
		}
		if err := getClient().SetBlacklist(words); err != nil {
			out.Error("Failed to update blacklist: %v", err)
			os.Exit(1)
		}
		out.Success("Blacklist updated (%d words)", len(words))
	},
}

func init() {
	blacklistCmd.AddCommand(blacklistSetCmd)
	rootCmd.AddCommand(blacklistCmd)
}
