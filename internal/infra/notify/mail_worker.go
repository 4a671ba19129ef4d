package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/logger"
)

// MailWorker drains the reset-mail outbox. Jobs that fail to send are moved
// to the dead-letter list and not retried.
type MailWorker struct {
	client        *redis.Client
	sender        Sender
	queue         string
	deadLetterKey string
	linkBaseURL   string
	pollTimeout   time.Duration
}

func NewMailWorker(
	client *redis.Client,
	sender Sender,
	queue string,
	linkBaseURL string,
) *MailWorker {

	if queue == "" {
		queue = DefaultQueue
	}
	return &MailWorker{
		client:        client,
		sender:        sender,
		queue:         queue,
		deadLetterKey: queue + ":dead",
		linkBaseURL:   linkBaseURL,
		pollTimeout:   2 * time.Second,
	}
}

// Run blocks until ctx is cancelled.
func (w *MailWorker) Run(ctx context.Context) {
	logger.Info("Mail worker started", zap.String("queue", w.queue))
	defer logger.Info("Mail worker stopped", zap.String("queue", w.queue))

	for {
		if ctx.Err() != nil {
			return
		}

		if _, err := w.ProcessOne(ctx); err != nil && ctx.Err() == nil {
			logger.Warn("Mail worker iteration failed", zap.Error(err))
			time.Sleep(w.pollTimeout)
		}
	}
}

// ProcessOne waits up to the poll timeout for one job. It reports whether a
// job was taken off the queue; a send failure is not returned as an error.
func (w *MailWorker) ProcessOne(ctx context.Context) (bool, error) {
	res, err := w.client.BLPop(ctx, w.pollTimeout, w.queue).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("pop reset mail: %w", err)
	}
	if len(res) != 2 {
		return false, nil
	}

	raw := res[1]

	var job resetMailJob
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		logger.Error("Discarding malformed reset mail job", zap.Error(err))
		w.deadLetter(ctx, raw)
		return true, nil
	}

	msg := NewResetMessage(w.linkBaseURL, job.To, job.Token)
	if err := w.sender.Send(ctx, msg); err != nil {
		logger.Error("Reset mail delivery failed",
			zap.String("event", "password_reset_mail_failed"),
			zap.String("email", job.To),
			zap.Error(err),
		)
		w.deadLetter(ctx, raw)
		return true, nil
	}

	logger.Info("Reset mail delivered",
		zap.String("event", "password_reset_mail_sent"),
		zap.String("email", job.To),
	)
	return true, nil
}

func (w *MailWorker) deadLetter(ctx context.Context, raw string) {
	if err := w.client.RPush(ctx, w.deadLetterKey, raw).Err(); err != nil {
		logger.Error("Failed to dead-letter reset mail job", zap.Error(err))
	}
}
