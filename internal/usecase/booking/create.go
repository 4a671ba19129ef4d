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

// ======================================================
// INPUT
// ======================================================

// CreateInput leaves every field optional so that the required ones can be
// reported individually.
type CreateInput struct {
	CustomerID    *uint
	ServiceType   *domain.ServiceType
	ScheduledTime *time.Time

	ProviderID *uint
	Location   *string
	Price      *float64
	Status     *domain.Status
}

func (in CreateInput) validate() error {
	if in.CustomerID == nil {
		return domain.ErrCustomerIDRequired
	}
	if in.ServiceType == nil {
		return domain.ErrServiceTypeRequired
	}
	if in.ScheduledTime == nil {
		return domain.ErrScheduledTimeRequired
	}
	return nil
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Booking, error) {

	if err := in.validate(); err != nil {
		return nil, err
	}

	status := domain.InitialStatus()
	if in.Status != nil {
		status = *in.Status
	}

	now := uc.now().UTC()
	b := &models.Booking{
		CustomerID:    *in.CustomerID,
		ProviderID:    in.ProviderID,
		ServiceType:   string(*in.ServiceType),
		Status:        string(status),
		Location:      in.Location,
		ScheduledTime: *in.ScheduledTime,
		Price:         in.Price,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncBookingTransition(b.Status)
	logger.Info("Booking created",
		zap.String("event", "booking_created"),
		zap.Uint("booking_id", b.ID),
		zap.Uint("customer_id", b.CustomerID),
		zap.String("status", b.Status),
	)

	uc.audit.Dispatch(audit.Event{
		Actor:    audit.ActorAnonymous,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"customerId": b.CustomerID, "serviceType": b.ServiceType},
	})

	return b, nil
}
