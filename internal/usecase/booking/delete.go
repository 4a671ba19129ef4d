package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/audit"
	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/booking"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/logger"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Booking deleted",
		zap.String("event", "booking_deleted"),
		zap.Uint("booking_id", id),
	)

	uc.audit.Dispatch(audit.Event{
		Actor:    audit.ActorAnonymous,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &id,
	})

	return nil
}
