package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint  `gorm:"index;not null" json:"customerId"`
	ProviderID *uint `gorm:"index" json:"providerId"`

	ServiceType string `gorm:"size:20;not null" json:"serviceType"`
	Status      string `gorm:"size:20;index;not null" json:"status"`

	Location      *string   `gorm:"size:255" json:"location"`
	ScheduledTime time.Time `gorm:"not null" json:"scheduledTime"`
	Price         *float64  `json:"price"`

	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (Booking) TableName() string {
	return "bookings"
}
