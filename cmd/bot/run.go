package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_bot/internal/app"
	"homework_bot/internal/infra/config"
	"homework_bot/internal/infra/logger"
	"homework_bot/internal/infra/practicum"
	"homework_bot/internal/infra/scheduler"
	"homework_bot/internal/infra/telegram"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Poll the homework API until interrupted",
	RunE:  runPoller,
}

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Run a single poll cycle and exit",
	Long: `Runs exactly one poll-check-notify cycle using a cursor of now minus
the given lookback, then exits. Handy for checking tokens and chat wiring.`,
	RunE: runOnce,
}

func init() {
	onceCmd.Flags().Duration("lookback", 0, "start the cursor this far in the past (e.g. 720h)")
	rootCmd.AddCommand(runCmd, onceCmd)
}

// buildPoller loads configuration and wires the poller. Configuration
// problems are fatal.
func buildPoller(startAt time.Time) (*app.Poller, error) {
	cfg := config.Load()
	logger.Init(cfg)
	mainLogger := logger.Component("main")

	if err := cfg.Validate(mainLogger); err != nil {
		mainLogger.WithError(err).Fatal("Cannot start without required configuration")
	}

	retry, err := scheduler.NewRetryScheduler(cfg.RetrySchedule, logger.Component("scheduler"))
	if err != nil {
		mainLogger.WithError(err).Fatal("Invalid RETRY_SCHEDULE")
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, "", logger.Component("telegram"))
	if err != nil {
		return nil, err
	}
	mainLogger.Debug("Telegram bot initialized")

	api := practicum.NewClient(nil, practicum.DefaultEndpoint, cfg.PracticumToken, logger.Component("practicum"))

	return app.NewPoller(
		api,
		telegram.NewTelebotAdapter(bot, cfg.TelegramChatID),
		retry,
		logger.Component("poller"),
		startAt,
	), nil
}

func runPoller(cmd *cobra.Command, args []string) error {
	poller, err := buildPoller(time.Now())
	if err != nil {
		logger.Log.WithError(err).Error("Failed to set up the poller")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return poller.Run(ctx)
}

func runOnce(cmd *cobra.Command, args []string) error {
	lookback, _ := cmd.Flags().GetDuration("lookback")

	poller, err := buildPoller(time.Now().Add(-lookback))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to set up the poller")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	poller.RunCycle(ctx)
	logger.Log.WithField("from_date", poller.Cursor()).Info("Single cycle finished")
	return nil
}
