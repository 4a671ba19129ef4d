package models

import "time"

// Account is a registered customer or service provider.
type Account struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Role         string `gorm:"size:20;not null" json:"role"`
	Phone        string `gorm:"size:20" json:"phone"`
	Address      string `gorm:"size:255" json:"address"`

	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (Account) TableName() string {
	return "accounts"
}
