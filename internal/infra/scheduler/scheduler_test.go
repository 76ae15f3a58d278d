package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func testLogger() *logrus.Entry {
	l, _ := test.NewNullLogger()
	return logrus.NewEntry(l)
}

func TestNewPollSchedulerRejectsBadSpec(t *testing.T) {
	if _, err := NewPollScheduler(func(context.Context) error { return nil }, "every ten minutes", testLogger()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRunWaitsScheduleIntervalAfterEachPoll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	polls := 0
	poll := func(context.Context) error {
		polls++
		if polls == 2 {
			return errors.New("transient")
		}
		return nil
	}
	s, err := NewPollScheduler(poll, "@every 600s", testLogger())
	if err != nil {
		t.Fatalf("NewPollScheduler: %v", err)
	}

	base := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	var waits []time.Duration
	s.sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		if len(waits) == 3 {
			cancel()
			return context.Canceled
		}
		return nil
	}

	err = s.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if polls != 3 {
		t.Fatalf("expected 3 polls, got %d", polls)
	}
	for i, w := range waits {
		if w != 600*time.Second {
			t.Fatalf("wait %d: expected 600s, got %v", i, w)
		}
	}
}

func TestSleepContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	if err := sleepContext(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("sleepContext did not return promptly")
	}
}

func TestSleepContextElapses(t *testing.T) {
	if err := sleepContext(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}
