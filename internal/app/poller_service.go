// internal/app/poller_service.go
package app

import (
	"context"
	"errors"
	"fmt"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// PollerService runs single poll iterations against the review API and
// relays status changes to one Telegram chat. It is not safe for concurrent use.
type PollerService struct {
	reviews        homework.ReviewClient
	telegramClient domainTelegram.Client
	chatID         string
	logger         *logrus.Entry

	timestamp        int64
	lastReportedFail string
}

func NewPollerService(
	rc homework.ReviewClient,
	tc domainTelegram.Client,
	chatID string,
	startTimestamp int64,
	logger *logrus.Entry,
) *PollerService {
	return &PollerService{
		reviews:        rc,
		telegramClient: tc,
		chatID:         chatID,
		timestamp:      startTimestamp,
		logger:         logger,
	}
}

// Timestamp returns the checkpoint used as from_date for the next poll.
func (s *PollerService) Timestamp() int64 {
	return s.timestamp
}

// Poll performs one iteration. Errors are logged and, except for send
// failures, relayed to the chat before being returned; a failure whose text
// matches the last relayed one is not sent again until a poll succeeds.
func (s *PollerService) Poll(ctx context.Context) error {
	err := s.poll(ctx)
	if err == nil {
		s.lastReportedFail = ""
		return nil
	}

	logCtx := s.logger.WithError(err).WithField("from_date", s.timestamp)
	logCtx.Error("Poll iteration failed")

	if errors.Is(err, homework.ErrNotify) {
		return err
	}

	failure := fmt.Sprintf("Сбой в работе программы: %v", err)
	if failure == s.lastReportedFail {
		logCtx.Debug("Same failure already reported, not sending it again")
		return err
	}
	if sendErr := s.send(ctx, failure); sendErr != nil {
		logCtx.WithField("send_error", sendErr.Error()).Error("Failed to report failure to chat")
		return err
	}
	s.lastReportedFail = failure
	return err
}

func (s *PollerService) poll(ctx context.Context) error {
	s.logger.WithField("from_date", s.timestamp).Debug("Requesting homework statuses")

	resp, err := s.reviews.Statuses(ctx, s.timestamp)
	if err != nil {
		return err
	}

	records, err := resp.Check()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		s.logger.Debug("No new homework statuses")
	} else {
		// The API lists the most recent change first; only that one is reported.
		latest, err := homework.Parse(records[0])
		if err != nil {
			return err
		}
		message, err := homework.StatusMessage(latest)
		if err != nil {
			return err
		}
		if err := s.send(ctx, message); err != nil {
			return err
		}
		s.logger.WithField("homework", latest.Name).WithField("status", latest.Status).Info("Status message sent")
	}

	next := resp.Checkpoint(s.timestamp)
	if next != s.timestamp {
		s.logger.WithField("current_date", next).Debug("Checkpoint advanced")
	}
	s.timestamp = next
	return nil
}

func (s *PollerService) send(ctx context.Context, text string) error {
	if err := s.telegramClient.SendMessage(ctx, s.chatID, text); err != nil {
		return fmt.Errorf("%w: %v", homework.ErrNotify, err)
	}
	return nil
}
