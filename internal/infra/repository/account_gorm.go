package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/httperr"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count accounts by email: %w", err)
	}
	return count > 0, nil
}

func (r *AccountGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.Account, error) {
	return r.findByEmail(r.db.WithContext(ctx), email)
}

func (r *AccountGormRepository) FindByEmailForUpdate(
	ctx context.Context,
	email string,
) (*models.Account, error) {
	return r.findByEmail(
		r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}),
		email,
	)
}

func (r *AccountGormRepository) findByEmail(q *gorm.DB, email string) (*models.Account, error) {
	var acc models.Account
	if err := q.Where("email = ?", email).First(&acc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return &acc, nil
}

func (r *AccountGormRepository) Create(
	ctx context.Context,
	a *models.Account,
) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (r *AccountGormRepository) UpdatePasswordHash(
	ctx context.Context,
	id uint,
	hash string,
	at time.Time,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password_hash": hash,
			"updated_at":    at,
		})
	if res.Error != nil {
		return fmt.Errorf("update password hash: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (r *AccountGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Account, error) {

	var acc models.Account
	if err := r.db.WithContext(ctx).First(&acc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find account by id: %w", err)
	}
	return &acc, nil
}

func (r *AccountGormRepository) List(ctx context.Context) ([]models.Account, error) {
	return r.find(ctx, "list accounts", nil)
}

func (r *AccountGormRepository) ListByRole(
	ctx context.Context,
	role domain.Role,
) ([]models.Account, error) {
	return r.find(ctx, "list accounts by role", "role = ?", string(role))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *AccountGormRepository) SearchByName(
	ctx context.Context,
	fragment string,
) ([]models.Account, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(fragment)) + "%"
	return r.find(ctx, "search accounts by name", `LOWER(name) LIKE ? ESCAPE '\'`, pattern)
}

func (r *AccountGormRepository) find(
	ctx context.Context,
	op string,
	query any,
	args ...any,
) ([]models.Account, error) {

	q := r.db.WithContext(ctx).Order("id ASC")
	if query != nil {
		q = q.Where(query, args...)
	}

	accounts := []models.Account{}
	if err := q.Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return accounts, nil
}

func (r *AccountGormRepository) CountByRole(
	ctx context.Context,
	role domain.Role,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("role = ?", string(role)).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count accounts by role: %w", err)
	}
	return count, nil
}

func (r *AccountGormRepository) UpdateProfile(
	ctx context.Context,
	id uint,
	p domain.Profile,
	at time.Time,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"email":      p.Email,
			"name":       p.Name,
			"role":       string(p.Role),
			"phone":      p.Phone,
			"address":    p.Address,
			"updated_at": at,
		})
	if res.Error != nil {
		if httperr.IsUniqueViolation(res.Error) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("update account profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *AccountGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Account{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete account: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Directory = (*AccountGormRepository)(nil)
