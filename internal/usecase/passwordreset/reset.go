package passwordreset

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/audit"
	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/logger"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/metrics"
)

type ResetPassword struct {
	tx     domain.TransactionManager
	tokens domain.ResetTokenRepository
	hasher domain.PasswordHasher
	audit  *audit.Dispatcher
	now    func() time.Time
}

func NewResetPassword(
	tx domain.TransactionManager,
	tokens domain.ResetTokenRepository,
	hasher domain.PasswordHasher,
	audit *audit.Dispatcher,
) *ResetPassword {
	return &ResetPassword{
		tx:     tx,
		tokens: tokens,
		hasher: hasher,
		audit:  audit,
		now:    time.Now,
	}
}

// Execute redeems token once. Expired and already used tokens share one
// error. The token is consumed and the password replaced in one transaction;
// the consume is conditional so only one concurrent redeemer gets through.
func (uc *ResetPassword) Execute(
	ctx context.Context,
	token string,
	newPassword string,
) error {

	t, err := uc.tokens.FindByToken(ctx, token)
	if err != nil {
		return err
	}
	if t.Used || t.IsExpired(uc.now()) {
		metrics.IncAuthEvent("password_reset_rejected")
		return domain.ErrTokenExpiredOrUsed
	}

	digest, err := uc.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	var accountID uint
	err = uc.tx.Execute(ctx, func(s domain.Stores) error {
		if err := s.ResetTokens().MarkUsed(ctx, t.ID); err != nil {
			return err
		}

		acc, err := s.Accounts().FindByEmail(ctx, t.Email)
		if err != nil {
			return err
		}
		accountID = acc.ID

		return s.Accounts().UpdatePasswordHash(ctx, acc.ID, digest, uc.now().UTC())
	})
	if err != nil {
		return err
	}

	metrics.IncAuthEvent("password_reset_success")
	logger.Info("Password reset",
		zap.String("event", "password_reset_success"),
		zap.Uint("account_id", accountID),
	)

	uc.audit.Dispatch(audit.Event{
		Actor:    t.Email,
		Action:   "password_reset",
		Entity:   "account",
		EntityID: &accountID,
	})

	return nil
}
