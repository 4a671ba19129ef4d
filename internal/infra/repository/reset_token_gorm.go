package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
)

type ResetTokenGormRepository struct {
	db *gorm.DB
}

func NewResetTokenGormRepository(db *gorm.DB) *ResetTokenGormRepository {
	return &ResetTokenGormRepository{db: db}
}

func (r *ResetTokenGormRepository) DeleteByEmail(
	ctx context.Context,
	email string,
) error {
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&models.PasswordResetToken{}).Error; err != nil {
		return fmt.Errorf("delete reset tokens: %w", err)
	}
	return nil
}

func (r *ResetTokenGormRepository) Create(
	ctx context.Context,
	t *models.PasswordResetToken,
) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create reset token: %w", err)
	}
	return nil
}

func (r *ResetTokenGormRepository) FindByToken(
	ctx context.Context,
	token string,
) (*models.PasswordResetToken, error) {

	var t models.PasswordResetToken
	if err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("find reset token: %w", err)
	}
	return &t, nil
}

// MarkUsed is a conditional update: of two concurrent redeemers only one
// gets an affected row.
func (r *ResetTokenGormRepository) MarkUsed(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.PasswordResetToken{}).
		Where("id = ? AND used = ?", id, false).
		Update("used", true)
	if res.Error != nil {
		return fmt.Errorf("mark reset token used: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrTokenExpiredOrUsed
	}
	return nil
}

func (r *ResetTokenGormRepository) CountLiveByEmail(
	ctx context.Context,
	email string,
	now time.Time,
) (int64, error) {

	var tokens []models.PasswordResetToken
	if err := r.db.WithContext(ctx).
		Where("email = ? AND used = ?", email, false).
		Find(&tokens).Error; err != nil {
		return 0, fmt.Errorf("list reset tokens: %w", err)
	}

	var live int64
	for i := range tokens {
		if !tokens[i].IsExpired(now) {
			live++
		}
	}
	return live, nil
}

// Compile-time check
var _ domain.ResetTokenRepository = (*ResetTokenGormRepository)(nil)
