package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server health",
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()

		health, err := c.Health()
		if err != nil {
			out.Error("Server unreachable: %v", err)
			os.Exit(1)
		}

		ready, readyErr := c.Ready()

		if jsonOutput {
			out.JSON(map[string]any{"health": health, "ready": ready})
			return
		}

		out.Success("Server is %s", health.Status)
		if readyErr != nil {
			out.Warn("Not ready: %v", readyErr)
			return
		}
		out.KeyValue("Database", ready.Database)
		out.KeyValue("Online", strconv.Itoa(ready.Online))
		out.KeyValue("Waiting", strconv.Itoa(ready.Waiting))
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
