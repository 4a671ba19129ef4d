package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/audit"
	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/booking"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/logger"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/metrics"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
)

// UpdateBooking merges a partial patch into the stored booking. Only the
// patched columns are written.
type UpdateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	id uint,
	patch domain.Patch,
) (*models.Booking, error) {

	if err := uc.repo.Update(ctx, id, patch, uc.now().UTC()); err != nil {
		return nil, err
	}

	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		metrics.IncBookingTransition(b.Status)
	}
	logger.Info("Booking updated",
		zap.String("event", "booking_updated"),
		zap.Uint("booking_id", b.ID),
		zap.Bool("empty_patch", patch.IsEmpty()),
	)

	uc.audit.Dispatch(audit.Event{
		Actor:    audit.ActorAnonymous,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

// ======================================================
// STATUS
// ======================================================

// UpdateBookingStatus overwrites the status without consulting any
// transition table. Every status is reachable from every other one here;
// only AssignProvider is guarded.
type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	id uint,
	status domain.Status,
) (*models.Booking, error) {

	before, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := before.Status

	if err := uc.repo.Update(ctx, id, domain.Patch{Status: &status}, uc.now().UTC()); err != nil {
		return nil, err
	}

	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.IncBookingTransition(b.Status)
	logger.Info("Booking status changed",
		zap.String("event", "booking_status_changed"),
		zap.Uint("booking_id", b.ID),
		zap.String("from", previous),
		zap.String("to", b.Status),
	)

	uc.audit.Dispatch(audit.Event{
		Actor:    audit.ActorAnonymous,
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"from": previous, "to": b.Status},
	})

	return b, nil
}
