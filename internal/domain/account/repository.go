package account

import (
	"context"
	"time"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
)

// Repository is the credential store. Lookups that find nothing return
// ErrUserNotFound.
type Repository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	FindByEmail(ctx context.Context, email string) (*models.Account, error)

	// FindByEmailForUpdate locks the account row until the surrounding
	// transaction ends.
	FindByEmailForUpdate(ctx context.Context, email string) (*models.Account, error)

	// Create returns ErrDuplicateEmail when the unique email index rejects it.
	Create(ctx context.Context, a *models.Account) error

	UpdatePasswordHash(ctx context.Context, id uint, hash string, at time.Time) error
}

// Profile is the editable part of an account. The password hash is only ever
// changed through password reset.
type Profile struct {
	Email   string
	Name    string
	Role    Role
	Phone   string
	Address string
}

// Directory extends the credential store with the lookups and profile writes
// behind /api/users.
type Directory interface {
	Repository

	FindByID(ctx context.Context, id uint) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	ListByRole(ctx context.Context, role Role) ([]models.Account, error)

	// SearchByName matches fragment anywhere in the name, ignoring case.
	SearchByName(ctx context.Context, fragment string) ([]models.Account, error)

	CountByRole(ctx context.Context, role Role) (int64, error)

	// UpdateProfile returns ErrUserNotFound when the id is absent and
	// ErrDuplicateEmail when the new email belongs to someone else.
	UpdateProfile(ctx context.Context, id uint, p Profile, at time.Time) error

	Delete(ctx context.Context, id uint) error
}

// ResetTokenRepository is the password-reset token store.
type ResetTokenRepository interface {
	DeleteByEmail(ctx context.Context, email string) error

	Create(ctx context.Context, t *models.PasswordResetToken) error

	// FindByToken returns ErrInvalidToken when no row carries that value.
	FindByToken(ctx context.Context, token string) (*models.PasswordResetToken, error)

	// MarkUsed flips used to true only if it is still false. A caller that
	// loses the race gets ErrTokenExpiredOrUsed.
	MarkUsed(ctx context.Context, id uint) error

	CountLiveByEmail(ctx context.Context, email string, now time.Time) (int64, error)
}

// Stores hands out repositories bound to one transaction.
type Stores interface {
	Accounts() Directory
	ResetTokens() ResetTokenRepository
}

type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(s Stores) error) error
}
