// internal/app/poller.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homework_bot/internal/domain/homework"
	domainTelegram "homework_bot/internal/domain/telegram"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// StatusSource fetches the raw homework statuses payload.
type StatusSource interface {
	HomeworkStatuses(ctx context.Context, fromDate int64) (any, error)
}

// Waiter blocks between poll cycles. It returns a non-nil error only when
// ctx is done.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Poller checks the latest homework status and relays changes to Telegram.
// It owns all poll state; a Poller must not be shared between goroutines.
type Poller struct {
	source   StatusSource
	telegram domainTelegram.Client
	waiter   Waiter
	logger   *logrus.Entry

	cursor       int64  // from_date of the next request
	lastErrorMsg string // last error message delivered to the chat
}

func NewPoller(
	source StatusSource,
	tc domainTelegram.Client,
	waiter Waiter,
	logger *logrus.Entry,
	startAt time.Time,
) *Poller {
	return &Poller{
		source:   source,
		telegram: tc,
		waiter:   waiter,
		logger:   logger,
		cursor:   startAt.Unix(),
	}
}

// Cursor returns the timestamp the next request will use.
func (p *Poller) Cursor() int64 {
	return p.cursor
}

// Run polls until ctx is cancelled. Cycle errors never stop the loop.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.WithField("from_date", p.cursor).Info("Poller started")
	for {
		p.RunCycle(ctx)

		if err := p.waiter.Wait(ctx); err != nil {
			p.logger.Info("Poller stopped")
			return nil
		}
	}
}

// RunCycle performs one poll-check-notify iteration and reports any failure
// to the chat, suppressing a repeat of the previously delivered error.
func (p *Poller) RunCycle(ctx context.Context) {
	log := p.logger.WithField("cycle_id", uuid.NewString())

	err := p.checkStatuses(ctx, log)
	if err == nil {
		return
	}
	if errors.Is(err, context.Canceled) {
		log.Debug("Cycle interrupted by shutdown")
		return
	}

	message := fmt.Sprintf("Сбой в работе программы: %v", err)
	log.WithError(err).WithField("kind", kindName(err)).Error(message)

	if message == p.lastErrorMsg {
		log.Debug("Same error already reported, not sending it again")
		return
	}
	if p.sendMessage(log, message) {
		p.lastErrorMsg = message
	}
}

func (p *Poller) checkStatuses(ctx context.Context, log *logrus.Entry) error {
	response, err := p.source.HomeworkStatuses(ctx, p.cursor)
	if err != nil {
		return err
	}

	homeworks, err := homework.CheckResponse(response)
	if err != nil {
		return err
	}
	log.WithField("homeworks", len(homeworks)).Debug("API response has the expected shape")

	if len(homeworks) == 0 {
		log.Debug("No new statuses")
		return nil
	}

	// Only the most recent submission is reported.
	message, err := homework.ParseStatus(homeworks[0])
	if err != nil {
		return err
	}

	if !p.sendMessage(log, message) {
		log.WithField("from_date", p.cursor).Error("Status message was not delivered, cursor kept")
		return nil
	}

	if next, ok := homework.CurrentDate(response); ok {
		p.cursor = next
	} else {
		log.Warn("current_date is missing from the API response, cursor kept")
	}
	p.lastErrorMsg = ""
	log.WithField("from_date", p.cursor).Debug("Cursor advanced")
	return nil
}

// sendMessage delivers text and reports whether it succeeded. Delivery
// errors are logged here and go no further.
func (p *Poller) sendMessage(log *logrus.Entry, text string) bool {
	log.WithField("text", text).Debug("Sending message")
	if err := p.telegram.SendMessage(text); err != nil {
		log.WithError(err).Error("Failed to send message to Telegram")
		return false
	}
	log.Debug("Message sent")
	return true
}

func kindName(err error) string {
	if k := homework.KindOf(err); k != nil {
		return k.Error()
	}
	return "unexpected"
}
