package booking

import (
	"time"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
)

// Patch carries the fields of a partial update. Nil means "leave as is".
type Patch struct {
	ProviderID    *uint
	ServiceType   *ServiceType
	Status        *Status
	Location      *string
	ScheduledTime *time.Time
	Price         *float64
}

func (p Patch) IsEmpty() bool {
	return p.ProviderID == nil &&
		p.ServiceType == nil &&
		p.Status == nil &&
		p.Location == nil &&
		p.ScheduledTime == nil &&
		p.Price == nil
}

// Assign binds providerID and moves the booking to ACCEPTED.
func Assign(b *models.Booking, providerID uint, now time.Time) error {
	if err := CanAssign(Status(b.Status)); err != nil {
		return err
	}

	b.ProviderID = &providerID
	b.Status = string(StatusAccepted)
	b.UpdatedAt = now
	return nil
}
