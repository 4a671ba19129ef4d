package notify

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/logger"
)

// LogNotifier is used when no mail outbox is configured. It records the
// dispatch but never the token.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) SendPasswordReset(_ context.Context, address, _ string) error {
	logger.Info("Password reset mail not sent: no outbox configured",
		zap.String("event", "password_reset_mail_skipped"),
		zap.String("email", address),
	)
	return nil
}

// Compile-time check
var _ domain.Notifier = (*LogNotifier)(nil)
