package booking

import (
	"context"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/booking"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
)

// Queries groups the read-only booking operations. Lists are never nil and
// an empty match is not an error.
type Queries struct {
	repo domain.Repository
}

func NewQueries(repo domain.Repository) *Queries {
	return &Queries{repo: repo}
}

func (q *Queries) Get(ctx context.Context, id uint) (*models.Booking, error) {
	return q.repo.GetByID(ctx, id)
}

func (q *Queries) List(ctx context.Context) ([]models.Booking, error) {
	return q.repo.List(ctx)
}

func (q *Queries) ListByCustomer(ctx context.Context, customerID uint) ([]models.Booking, error) {
	return q.repo.ListByCustomer(ctx, customerID)
}

func (q *Queries) ListByProvider(ctx context.Context, providerID uint) ([]models.Booking, error) {
	return q.repo.ListByProvider(ctx, providerID)
}

func (q *Queries) ListByStatus(ctx context.Context, status domain.Status) ([]models.Booking, error) {
	return q.repo.ListByStatus(ctx, status)
}

func (q *Queries) CountByProviderAndStatus(
	ctx context.Context,
	providerID uint,
	status domain.Status,
) (int64, error) {
	return q.repo.CountByProviderAndStatus(ctx, providerID, status)
}
