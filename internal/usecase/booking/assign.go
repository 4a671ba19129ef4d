package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/audit"
	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/booking"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/logger"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/metrics"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
)

type AssignProvider struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewAssignProvider(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AssignProvider {
	return &AssignProvider{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// Execute binds providerID to a PENDING booking and moves it to ACCEPTED.
// The write is conditional on the status read here, so of several
// concurrent callers exactly one succeeds; the others get ErrInvalidState.
func (uc *AssignProvider) Execute(
	ctx context.Context,
	id uint,
	providerID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	observed := domain.Status(b.Status)
	if err := domain.CanAssign(observed); err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	if err := uc.repo.AssignProvider(ctx, id, observed, providerID, now); err != nil {
		if errors.Is(err, domain.ErrInvalidState) {
			logger.Info("Provider assignment lost race",
				zap.String("event", "booking_assign_conflict"),
				zap.Uint("booking_id", id),
				zap.Uint("provider_id", providerID),
			)
		}
		return nil, err
	}

	if err := domain.Assign(b, providerID, now); err != nil {
		return nil, err
	}

	metrics.IncBookingTransition(b.Status)
	logger.Info("Provider assigned",
		zap.String("event", "booking_provider_assigned"),
		zap.Uint("booking_id", b.ID),
		zap.Uint("provider_id", providerID),
	)

	uc.audit.Dispatch(audit.Event{
		Actor:    audit.ActorAnonymous,
		Action:   "booking_provider_assigned",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"providerId": providerID},
	})

	return b, nil
}
