package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kevinemt0605/vitalmoto/app/service"
	"github.com/kevinemt0605/vitalmoto/config"
)

var workerMode bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the membership flag of every paid account",
	Long:  "Run the daily membership reset sweep once, or continuously at the configured local time with --worker.",
	Run:   runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&workerMode, "worker", false, "Run daily at the configured hour instead of once")
}

func runReset(_ *cobra.Command, _ []string) {
	services, cleanup := mustCreateServices()
	defer cleanup()

	if workerMode {
		runResetWorker(services.cfg, services.reset)
		return
	}

	runResetJob(services.reset)
}

func runResetWorker(cfg *config.Config, resetService *service.ResetService) {
	location, err := time.LoadLocation(cfg.Reset.Timezone)
	if err != nil {
		logrus.WithError(err).WithField("timezone", cfg.Reset.Timezone).Fatal("Invalid reset timezone")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		wait := untilNextRun(time.Now().In(location), cfg.Reset.Hour)
		logrus.WithField("next_run_in", wait.String()).Info("Reset worker sleeping until next scheduled sweep")

		timer := time.NewTimer(wait)
		select {
		case <-quit:
			timer.Stop()
			logrus.Info("Reset worker shutdown requested")
			return
		case <-timer.C:
			runResetJob(resetService)
		}
	}
}

// untilNextRun returns the duration until the next wall-clock occurrence of
// the scheduled hour in now's location.
func untilNextRun(now time.Time, hour int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

func runResetJob(resetService *service.ResetService) {
	start := time.Now()
	cleared, err := resetService.Run(context.Background())
	latency := time.Since(start)

	entry := logrus.WithField("job", "membership_reset").
		WithField("accounts_cleared", cleared).
		WithField("latency", latency.String())
	if err != nil {
		entry.WithError(err).Error("job_failed")
		return
	}
	entry.Info("job_completed")
}
