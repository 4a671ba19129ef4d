package passwordreset

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/audit"
	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/logger"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/metrics"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
)

// TokenTTL is fixed; it is not configurable.
const TokenTTL = time.Hour

type ForgotPassword struct {
	tx       domain.TransactionManager
	notifier domain.Notifier
	audit    *audit.Dispatcher
	now      func() time.Time
	newToken func() string
}

func NewForgotPassword(
	tx domain.TransactionManager,
	notifier domain.Notifier,
	audit *audit.Dispatcher,
) *ForgotPassword {
	return &ForgotPassword{
		tx:       tx,
		notifier: notifier,
		audit:    audit,
		now:      time.Now,
		newToken: uuid.NewString,
	}
}

// Execute replaces every earlier token for email with a fresh one and hands
// it to the notifier. The token is committed before the notifier runs; if
// delivery fails the token stays valid and the error is returned.
func (uc *ForgotPassword) Execute(ctx context.Context, email string) error {
	now := uc.now().UTC()
	token := &models.PasswordResetToken{
		Token:     uc.newToken(),
		Email:     email,
		ExpiresAt: now.Add(TokenTTL),
		CreatedAt: now,
	}

	err := uc.tx.Execute(ctx, func(s domain.Stores) error {
		// Locking the account row serializes concurrent requests for the
		// same email, keeping at most one live token.
		if _, err := s.Accounts().FindByEmailForUpdate(ctx, email); err != nil {
			return err
		}
		if err := s.ResetTokens().DeleteByEmail(ctx, email); err != nil {
			return err
		}
		return s.ResetTokens().Create(ctx, token)
	})
	if err != nil {
		return err
	}

	metrics.IncAuthEvent("password_reset_requested")
	logger.Info("Password reset token generated",
		zap.String("event", "password_reset_token_generated"),
		zap.String("email", email),
		zap.Time("expires_at", token.ExpiresAt),
	)

	uc.audit.Dispatch(audit.Event{
		Actor:    email,
		Action:   "password_reset_requested",
		Entity:   "password_reset_token",
		EntityID: &token.ID,
	})

	if err := uc.notifier.SendPasswordReset(ctx, email, token.Token); err != nil {
		logger.Error("Password reset notification failed",
			zap.String("event", "password_reset_notify_failed"),
			zap.String("email", email),
			zap.Error(err),
		)
		return err
	}
	return nil
}
