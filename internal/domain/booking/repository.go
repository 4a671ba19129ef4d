package booking

import (
	"context"
	"time"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
)

type Repository interface {
	// -------- Create / read --------
	Create(ctx context.Context, b *models.Booking) error

	// GetByID returns ErrNotFound when the id is absent.
	GetByID(ctx context.Context, id uint) (*models.Booking, error)

	List(ctx context.Context) ([]models.Booking, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]models.Booking, error)
	ListByProvider(ctx context.Context, providerID uint) ([]models.Booking, error)
	ListByStatus(ctx context.Context, status Status) ([]models.Booking, error)

	CountByProviderAndStatus(ctx context.Context, providerID uint, status Status) (int64, error)

	// -------- Write --------
	// Update writes the set fields of patch and updated_at, nothing else.
	// It returns ErrNotFound when the id is absent.
	Update(ctx context.Context, id uint, patch Patch, at time.Time) error

	// AssignProvider sets providerID and ACCEPTED only if the stored status
	// still equals expected. It returns ErrInvalidState when the row moved on
	// in between and ErrNotFound when it disappeared.
	AssignProvider(
		ctx context.Context,
		id uint,
		expected Status,
		providerID uint,
		at time.Time,
	) error

	// Delete returns ErrNotFound when nothing was removed.
	Delete(ctx context.Context, id uint) error
}
