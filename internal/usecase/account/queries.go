package account

import (
	"context"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
)

// Queries groups the read-only directory lookups. Lists are never nil.
type Queries struct {
	accounts domain.Directory
}

func NewQueries(accounts domain.Directory) *Queries {
	return &Queries{accounts: accounts}
}

func (q *Queries) Get(ctx context.Context, id uint) (*models.Account, error) {
	return q.accounts.FindByID(ctx, id)
}

func (q *Queries) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return q.accounts.FindByEmail(ctx, email)
}

func (q *Queries) List(ctx context.Context) ([]models.Account, error) {
	return q.accounts.List(ctx)
}

func (q *Queries) ListByRole(ctx context.Context, role domain.Role) ([]models.Account, error) {
	return q.accounts.ListByRole(ctx, role)
}

func (q *Queries) SearchByName(ctx context.Context, fragment string) ([]models.Account, error) {
	return q.accounts.SearchByName(ctx, fragment)
}

func (q *Queries) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	return q.accounts.CountByRole(ctx, role)
}
