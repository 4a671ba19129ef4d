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

type CreateInput struct {
	Email   string
	Name    string
	Role    string
	Phone   string
	Address string

	// Password is optional. Without one the account cannot log in until a
	// password reset sets it.
	Password string
}

// CreateAccount adds an account through the directory instead of signup: no
// token is issued.
type CreateAccount struct {
	accounts domain.Repository
	hasher   domain.PasswordHasher
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewCreateAccount(
	accounts domain.Repository,
	hasher domain.PasswordHasher,
	audit *audit.Dispatcher,
) *CreateAccount {
	return &CreateAccount{
		accounts: accounts,
		hasher:   hasher,
		audit:    audit,
		now:      time.Now,
	}
}

func (uc *CreateAccount) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Account, error) {

	role, ok := domain.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidRole
	}

	exists, err := uc.accounts.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}

	var digest string
	if in.Password != "" {
		if digest, err = uc.hasher.Hash(in.Password); err != nil {
			return nil, err
		}
	}

	now := uc.now().UTC()
	acc := &models.Account{
		Email:        in.Email,
		PasswordHash: digest,
		Name:         in.Name,
		Role:         string(role),
		Phone:        in.Phone,
		Address:      in.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.accounts.Create(ctx, acc); err != nil {
		return nil, err
	}

	logger.Info("Account created",
		zap.String("event", "account_created"),
		zap.Uint("account_id", acc.ID),
		zap.String("role", acc.Role),
		zap.Bool("has_password", digest != ""),
	)

	uc.audit.Dispatch(audit.Event{
		Actor:    audit.ActorAnonymous,
		Action:   "account_created",
		Entity:   "account",
		EntityID: &acc.ID,
	})

	return acc, nil
}
