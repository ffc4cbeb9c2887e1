package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var maintenanceMessage string

var maintenanceCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "Show maintenance status",
	Run: func(cmd *cobra.Command, args []string) {
		status, err := getClient().Maintenance()
		if err != nil {
			out.Error("Failed to fetch maintenance status: %v", err)
			os.Exit(1)
		}

		if jsonOutput {
			out.JSON(status)
			return
		}
		out.KeyValue("Mode", status.Mode)
		if status.Message != "" {
			out.KeyValue("Message", status.Message)
		}
	},
}

var maintenanceSetCmd = &cobra.Command{
	Use:   "set <on|off>",
	Short: "Set maintenance mode (admin)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mode := strings.ToLower(args[0])
		if mode != "on" && mode != "off" {
			out.Error("Mode must be on or off")
			os.Exit(1)
		}
		if err := getClient().SetMaintenance(mode, maintenanceMessage); err != nil {
			out.Error("Failed to set maintenance mode: %v", err)
			os.Exit(1)
		}
		out.Success("Maintenance mode %s", mode)
	},
}

var maintenanceHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show maintenance change history (admin)",
	Run: func(cmd *cobra.Command, args []string) {
		history, err := getClient().MaintenanceHistory()
		if err != nil {
			out.Error("Failed to fetch history: %v", err)
			os.Exit(1)
		}

		if jsonOutput {
			out.JSON(history)
			return
		}

		if len(history) == 0 {
			out.Info("No maintenance history")
			return
		}
		for _, e := range history {
			line := e.Mode
			if e.Message != "" {
				line += " (" + e.Message + ")"
			}
			out.KeyValue(e.CreatedAt.Format("2006-01-02 15:04"), line)
		}
	},
}

func init() {
	maintenanceSetCmd.Flags().StringVar(&maintenanceMessage, "message", "", "message shown to users while maintenance is on")

	maintenanceCmd.AddCommand(maintenanceSetCmd)
	maintenanceCmd.AddCommand(maintenanceHistoryCmd)
	rootCmd.AddCommand(maintenanceCmd)
}
