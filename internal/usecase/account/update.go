package account

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/audit"
	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/logger"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
)

type UpdateInput struct {
	Email   string
	Name    string
	Role    string
	Phone   string
	Address string
}

// UpdateAccount replaces the profile of an account. Changing the email drops
// the reset tokens issued to the old one.
type UpdateAccount struct {
	tx       domain.TransactionManager
	accounts domain.Directory
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewUpdateAccount(
	tx domain.TransactionManager,
	accounts domain.Directory,
	audit *audit.Dispatcher,
) *UpdateAccount {
	return &UpdateAccount{
		tx:       tx,
		accounts: accounts,
		audit:    audit,
		now:      time.Now,
	}
}

func (uc *UpdateAccount) Execute(
	ctx context.Context,
	id uint,
	in UpdateInput,
) (*models.Account, error) {

	role, ok := domain.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidRole
	}

	var emailChanged bool
	err := uc.tx.Execute(ctx, func(s domain.Stores) error {
		acc, err := s.Accounts().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if acc.Email != in.Email {
			emailChanged = true

			taken, err := s.Accounts().ExistsByEmail(ctx, in.Email)
			if err != nil {
				return err
			}
			if taken {
				return domain.ErrDuplicateEmail
			}
			if err := s.ResetTokens().DeleteByEmail(ctx, acc.Email); err != nil {
				return err
			}
		}

		return s.Accounts().UpdateProfile(ctx, id, domain.Profile{
			Email:   in.Email,
			Name:    in.Name,
			Role:    role,
			Phone:   in.Phone,
			Address: in.Address,
		}, uc.now().UTC())
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Account updated",
		zap.String("event", "account_updated"),
		zap.Uint("account_id", id),
		zap.Bool("email_changed", emailChanged),
	)

	uc.audit.Dispatch(audit.Event{
		Actor:    audit.ActorAnonymous,
		Action:   "account_updated",
		Entity:   "account",
		EntityID: &id,
		Metadata: map[string]any{"emailChanged": emailChanged},
	})

	return uc.accounts.FindByID(ctx, id)
}
