package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/logger"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/metrics"
)

type Login struct {
	accounts domain.Repository
	hasher   domain.PasswordHasher
	issuer   domain.TokenIssuer
}

func NewLogin(
	accounts domain.Repository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
) *Login {
	return &Login{
		accounts: accounts,
		hasher:   hasher,
		issuer:   issuer,
	}
}

// Execute answers ErrInvalidCredentials both for an unknown email and for a
// wrong password, so callers cannot probe which emails are registered.
func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (*Result, error) {

	acc, err := uc.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.IncAuthEvent("login_failed_unknown_email")
			logger.Info("Login failed",
				zap.String("event", "login_failed_unknown_email"),
			)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !uc.hasher.Verify(password, acc.PasswordHash) {
		metrics.IncAuthEvent("login_failed_invalid_password")
		logger.Info("Login failed",
			zap.String("event", "login_failed_invalid_password"),
			zap.Uint("account_id", acc.ID),
		)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.issuer.Issue(acc.Email)
	if err != nil {
		return nil, err
	}

	metrics.IncAuthEvent("login_success")
	logger.Info("Login succeeded",
		zap.String("event", "login_success"),
		zap.Uint("account_id", acc.ID),
	)

	return &Result{
		Token: token,
		Email: acc.Email,
		Name:  acc.Name,
		Role:  domain.Role(acc.Role),
	}, nil
}
