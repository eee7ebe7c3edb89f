package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matcher",
	Short: "Operate Dad Circles matching from the command line",
	Long: `matcher runs the same matching and group lifecycle operations as the
admin API, against the database configured through the environment.

Available subcommands:
  run     - Run a matching pass (optionally one city and state, or dry run)
  groups  - List groups by status
  approve - Approve a pending group and send introductions
  delete  - Delete a pending group and release its members
  token   - Mint an admin API token`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Missing .env is normal outside development
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.AddCommand(runCmd, groupsCmd, approveCmd, deleteCmd, tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
