package main

import (
	"fmt"

	"homework_bot/internal/infra/config"
	"homework_bot/internal/infra/logger"
	"homework_bot/internal/infra/scheduler"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration without polling",
	Long: `Loads configuration from the environment and .env, checks that every
required variable is set and that RETRY_SCHEDULE parses, then prints the
effective configuration as YAML with tokens masked.

Exit codes:
  0 - configuration is valid
  1 - configuration is invalid (details are logged to stderr)`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger.Configure(logger.Log, cmd.ErrOrStderr(), cfg)
	log := logger.Component("check")

	if err := cfg.Validate(log); err != nil {
		return err
	}
	if _, err := scheduler.ParseSchedule(cfg.RetrySchedule); err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg.Redacted())
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid!")
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
