package account

import (
	"context"

	"go.uber.org/zap"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/audit"
	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/logger"
)

// DeleteAccount removes the account together with its reset tokens.
type DeleteAccount struct {
	tx    domain.TransactionManager
	audit *audit.Dispatcher
}

func NewDeleteAccount(
	tx domain.TransactionManager,
	audit *audit.Dispatcher,
) *DeleteAccount {
	return &DeleteAccount{
		tx:    tx,
		audit: audit,
	}
}

func (uc *DeleteAccount) Execute(ctx context.Context, id uint) error {
	err := uc.tx.Execute(ctx, func(s domain.Stores) error {
		acc, err := s.Accounts().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.ResetTokens().DeleteByEmail(ctx, acc.Email); err != nil {
			return err
		}
		return s.Accounts().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	logger.Info("Account deleted",
		zap.String("event", "account_deleted"),
		zap.Uint("account_id", id),
	)

	uc.audit.Dispatch(audit.Event{
		Actor:    audit.ActorAnonymous,
		Action:   "account_deleted",
		Entity:   "account",
		EntityID: &id,
	})

	return nil
}
