package cmd

import (
	"fmt"
	"os"

	"github.com/pairchat/pairchat/internal/cli/output"
	"github.com/pairchat/pairchat/pkg/client"
	"github.com/spf13/cobra"
)

var (
	serverURL     string
	jsonOutput    bool
	adminPassword string
	out           *output.Output
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pairchat",
	Short: "CLI for the pairchat matchmaking server",
	Long:  `pairchat is a command-line tool for chatting through and administering a pairchat server.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		out = output.New(jsonOutput)

		// Server URL priority: flag > env > default
		if serverURL == "" {
			serverURL = os.Getenv("PAIRCHAT_SERVER")
		}
		if serverURL == "" {
			serverURL = client.DefaultServer
		}
		if adminPassword == "" {
			adminPassword = os.Getenv("PAIRCHAT_ADMIN_PASSWORD")
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server URL (default $PAIRCHAT_SERVER or "+client.DefaultServer+")")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&adminPassword, "password", "", "admin password (default $PAIRCHAT_ADMIN_PASSWORD)")
}

// getClient creates a client with current flags.
func getClient() *client.Client {
	return client.New(adminPassword, client.WithServer(serverURL))
}
