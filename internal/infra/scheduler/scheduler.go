package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const everyPrefix = "@every "

// RetryScheduler paces the poll loop: Wait blocks until the next tick of a
// cron schedule. Ticks are computed from the moment Wait is called, so a slow
// cycle never causes two polls back to back.
type RetryScheduler struct {
	schedule cron.Schedule
	spec     string
	logger   *logrus.Entry
	now      func() time.Time
}

// ParseSchedule accepts only fixed-delay specs of the form "@every <duration>".
// Wall-clock specs ("*/10 * * * *", "@hourly") are rejected: the pause
// between polls is a constant delay, not a calendar.
func ParseSchedule(spec string) (cron.Schedule, error) {
	if !strings.HasPrefix(spec, everyPrefix) {
		return nil, fmt.Errorf("invalid retry schedule %q: want %s<duration>", spec, everyPrefix)
	}
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid retry schedule %q: %w", spec, err)
	}
	return schedule, nil
}

func NewRetryScheduler(spec string, logger *logrus.Entry) (*RetryScheduler, error) {
	schedule, err := ParseSchedule(spec)
	if err != nil {
		return nil, err
	}
	return newRetryScheduler(schedule, spec, logger), nil
}

func newRetryScheduler(schedule cron.Schedule, spec string, logger *logrus.Entry) *RetryScheduler {
	return &RetryScheduler{
		schedule: schedule,
		spec:     spec,
		logger:   logger,
		now:      time.Now,
	}
}

// Next returns the time of the next tick after now.
func (s *RetryScheduler) Next() time.Time {
	return s.schedule.Next(s.now())
}

// Wait blocks until the next tick or until ctx is done, in which case it
// returns ctx.Err().
func (s *RetryScheduler) Wait(ctx context.Context) error {
	next := s.Next()
	delay := time.Until(next)
	if delay < 0 {
		delay = 0
	}
	s.logger.WithFields(logrus.Fields{
		"schedule": s.spec,
		"next_run": next.Format(time.RFC3339),
	}).Debug("Waiting for the next poll")

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.logger.Info("Wait interrupted, stopping")
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
