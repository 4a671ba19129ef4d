package auth

import (
	"context"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
)

// GetProfile resolves the subject of a validated bearer token.
type GetProfile struct {
	accounts domain.Repository
}

func NewGetProfile(accounts domain.Repository) *GetProfile {
	return &GetProfile{accounts: accounts}
}

func (uc *GetProfile) Execute(ctx context.Context, email string) (*models.Account, error) {
	return uc.accounts.FindByEmail(ctx, email)
}
