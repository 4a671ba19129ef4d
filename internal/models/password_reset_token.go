package models

import "time"

// PasswordResetToken is keyed by email rather than account id; the email is
// stored as given on the forgot-password request.
type PasswordResetToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	Email     string    `gorm:"size:255;index;not null" json:"email"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Used      bool      `gorm:"not null;default:false" json:"used"`

	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}

func (t *PasswordResetToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
