package dto

import (
	"time"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
)

// BookingRequest is shared by create and update. Absent fields stay nil;
// scheduledTime is parsed by the handler so zone-less values can be read in
// the business timezone.
type BookingRequest struct {
	CustomerID    *uint    `json:"customerId"`
	ProviderID    *uint    `json:"providerId"`
	ServiceType   *string  `json:"serviceType"`
	Status        *string  `json:"status"`
	Location      *string  `json:"location"`
	ScheduledTime *string  `json:"scheduledTime"`
	Price         *float64 `json:"price"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type BookingResponse struct {
	ID            uint      `json:"id"`
	CustomerID    uint      `json:"customerId"`
	ProviderID    *uint     `json:"providerId"`
	ServiceType   string    `json:"serviceType"`
	Status        string    `json:"status"`
	Location      *string   `json:"location"`
	ScheduledTime time.Time `json:"scheduledTime"`
	Price         *float64  `json:"price"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		ProviderID:    b.ProviderID,
		ServiceType:   b.ServiceType,
		Status:        b.Status,
		Location:      b.Location,
		ScheduledTime: b.ScheduledTime,
		Price:         b.Price,
		CreatedAt:     b.CreatedAt,
	}
}

func NewBookingList(bs []models.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for i := range bs {
		out = append(out, NewBookingResponse(&bs[i]))
	}
	return out
}
