package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PollFunc is one poll iteration. Its error has already been handled by the caller.
type PollFunc func(ctx context.Context) error

// PollScheduler runs a PollFunc, then waits for the next activation of a cron
// schedule, forever. Iterations never overlap.
type PollScheduler struct {
	poll     PollFunc
	schedule cron.Schedule
	logger   *logrus.Entry
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewPollScheduler parses spec with the standard cron parser,
// so "@every 600s" and five-field expressions are both accepted.
func NewPollScheduler(poll PollFunc, spec string, logger *logrus.Entry) (*PollScheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", spec, err)
	}
	return &PollScheduler{
		poll:     poll,
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
		sleep:    sleepContext,
	}, nil
}

// Run blocks until ctx is cancelled. The first iteration starts immediately.
func (s *PollScheduler) Run(ctx context.Context) error {
	s.logger.Info("Starting homework poll loop...")
	for {
		if err := s.poll(ctx); err != nil {
			s.logger.WithError(err).Debug("Poll iteration finished with error")
		}

		now := s.now()
		wait := s.schedule.Next(now).Sub(now)
		s.logger.WithField("next_poll_in", wait.String()).Debug("Waiting for next poll")
		if err := s.sleep(ctx, wait); err != nil {
			s.logger.Info("Homework poll loop stopped.")
			return err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
