package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/booking"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Create / read
// --------------------------------------------------

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

func (r *BookingGormRepository) List(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, "list bookings", nil)
}

func (r *BookingGormRepository) ListByCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Booking, error) {
	return r.find(ctx, "list bookings by customer", "customer_id = ?", customerID)
}

func (r *BookingGormRepository) ListByProvider(
	ctx context.Context,
	providerID uint,
) ([]models.Booking, error) {
	return r.find(ctx, "list bookings by provider", "provider_id = ?", providerID)
}

func (r *BookingGormRepository) ListByStatus(
	ctx context.Context,
	status domain.Status,
) ([]models.Booking, error) {
	return r.find(ctx, "list bookings by status", "status = ?", string(status))
}

func (r *BookingGormRepository) find(
	ctx context.Context,
	op string,
	query any,
	args ...any,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Order("id ASC")
	if query != nil {
		q = q.Where(query, args...)
	}

	bookings := []models.Booking{}
	if err := q.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return bookings, nil
}

func (r *BookingGormRepository) CountByProviderAndStatus(
	ctx context.Context,
	providerID uint,
	status domain.Status,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("provider_id = ? AND status = ?", providerID, string(status)).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

// Update writes only the columns set in patch, plus updated_at. Columns the
// patch leaves nil keep whatever the row holds at write time, so a concurrent
// assignment is never rolled back by a stale read.
func (r *BookingGormRepository) Update(
	ctx context.Context,
	id uint,
	patch domain.Patch,
	at time.Time,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(patchColumns(patch, at))
	if res.Error != nil {
		return fmt.Errorf("update booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func patchColumns(p domain.Patch, at time.Time) map[string]any {
	cols := map[string]any{"updated_at": at}

	if p.ProviderID != nil {
		cols["provider_id"] = *p.ProviderID
	}
	if p.ServiceType != nil {
		cols["service_type"] = string(*p.ServiceType)
	}
	if p.Status != nil {
		cols["status"] = string(*p.Status)
	}
	if p.Location != nil {
		cols["location"] = *p.Location
	}
	if p.ScheduledTime != nil {
		cols["scheduled_time"] = p.ScheduledTime.UTC()
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	return cols
}

func (r *BookingGormRepository) AssignProvider(
	ctx context.Context,
	id uint,
	expected domain.Status,
	providerID uint,
	at time.Time,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Updates(map[string]any{
			"provider_id": providerID,
			"status":      string(domain.StatusAccepted),
			"updated_at":  at,
		})
	if res.Error != nil {
		return fmt.Errorf("assign provider: %w", res.Error)
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return fmt.Errorf("assign provider: %w", err)
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return domain.ErrInvalidState
}

func (r *BookingGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
