package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
)

const DefaultQueue = "carwash:reset_mail"

// resetMailJob is the JSON payload stored on the outbox list.
type resetMailJob struct {
	To       string    `json:"to"`
	Token    string    `json:"token"`
	QueuedAt time.Time `json:"queuedAt"`
}

// RedisOutbox queues reset mails on a redis list for MailWorker to send.
type RedisOutbox struct {
	client *redis.Client
	queue  string
	now    func() time.Time
}

func NewRedisOutbox(client *redis.Client, queue string) *RedisOutbox {
	if queue == "" {
		queue = DefaultQueue
	}
	return &RedisOutbox{
		client: client,
		queue:  queue,
		now:    time.Now,
	}
}

func (o *RedisOutbox) SendPasswordReset(ctx context.Context, address, token string) error {
	payload, err := json.Marshal(resetMailJob{
		To:       address,
		Token:    token,
		QueuedAt: o.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode reset mail job: %w", err)
	}

	if err := o.client.RPush(ctx, o.queue, payload).Err(); err != nil {
		return fmt.Errorf("queue reset mail: %w", err)
	}
	return nil
}

// Compile-time check
var _ domain.Notifier = (*RedisOutbox)(nil)
