// Package main is the entry point of the homework status bot.
//
// Usage:
//
//	bot           # poll forever (same as "bot run")
//	bot once      # run a single poll cycle and exit
//	bot check     # validate configuration and print it with secrets masked
//	bot version   # show build information
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information, set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "bot",
	Short: "Relays Practicum homework review statuses to Telegram",
	Long: `Polls the Practicum homework statuses API every 10 minutes and sends
a Telegram message whenever the status of the latest submission changes.

Required environment variables (a .env file is read too):
  PRACTICUM_TOKEN   OAuth token for the Practicum API
  TELEGRAM_TOKEN    Telegram bot token
  TELEGRAM_CHAT_ID  chat that receives the notifications

Optional:
  LOG_LEVEL         logrus level (default debug)
  ENVIRONMENT       production|staging switch logs to JSON (default development)
  RETRY_SCHEDULE    pause between polls as "@every <duration>" (default "@every 10m")`,
	SilenceUsage: true,
	RunE:         runPoller,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bot %s\n", version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}
