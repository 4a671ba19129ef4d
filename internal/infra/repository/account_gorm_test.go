package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/testdb"
)

func newAccount(email string) *models.Account {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	return &models.Account{
		Email:        email,
		PasswordHash: "digest",
		Name:         "Jane",
		Role:         string(domain.RoleCustomer),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestAccountGormRepository(t *testing.T) {
	db := testdb.Open(t)
	repo := NewAccountGormRepository(db)
	ctx := context.Background()

	t.Run("CreateAndFind", func(t *testing.T) {
		acc := newAccount("jane@example.com")
		require.NoError(t, repo.Create(ctx, acc))
		assert.NotZero(t, acc.ID)

		exists, err := repo.ExistsByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		got, err := repo.FindByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, acc.ID, got.ID)
		assert.Equal(t, "digest", got.PasswordHash)
		assert.True(t, acc.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("EmailIsCaseSensitive", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "JANE@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		err := repo.Create(ctx, newAccount("jane@example.com"))
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		_, err = repo.FindByEmailForUpdate(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("UpdatePasswordHash", func(t *testing.T) {
		acc, err := repo.FindByEmail(ctx, "jane@example.com")
		require.NoError(t, err)

		at := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)
		require.NoError(t, repo.UpdatePasswordHash(ctx, acc.ID, "new-digest", at))

		got, err := repo.FindByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, "new-digest", got.PasswordHash)
		assert.True(t, at.Equal(got.UpdatedAt))

		assert.ErrorIs(t, repo.UpdatePasswordHash(ctx, 9999, "x", at), domain.ErrUserNotFound)
	})
}

func TestGormTransactionManager_RollsBack(t *testing.T) {
	db := testdb.Open(t)
	tm := NewGormTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(s domain.Stores) error {
		require.NoError(t, s.Accounts().Create(ctx, newAccount("tx@example.com")))
		return domain.ErrUserNotFound
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	exists, err := NewAccountGormRepository(db).ExistsByEmail(ctx, "tx@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	err = tm.Execute(ctx, func(s domain.Stores) error {
		return s.Accounts().Create(ctx, newAccount("tx@example.com"))
	})
	require.NoError(t, err)

	exists, err = NewAccountGormRepository(db).ExistsByEmail(ctx, "tx@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAccountGormRepository_Directory(t *testing.T) {
	db := testdb.Open(t)
	repo := NewAccountGormRepository(db)
	ctx := context.Background()

	jane := newAccount("jane@example.com")
	jane.Name = "Jane Doe"
	bob := newAccount("bob@example.com")
	bob.Name = "Bob 100%_Clean"
	bob.Role = string(domain.RoleServiceProvider)
	for _, a := range []*models.Account{jane, bob} {
		require.NoError(t, repo.Create(ctx, a))
	}

	t.Run("FindByID", func(t *testing.T) {
		got, err := repo.FindByID(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", got.Email)

		_, err = repo.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("ListAndRole", func(t *testing.T) {
		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, jane.ID, all[0].ID)

		providers, err := repo.ListByRole(ctx, domain.RoleServiceProvider)
		require.NoError(t, err)
		require.Len(t, providers, 1)
		assert.Equal(t, bob.ID, providers[0].ID)

		n, err := repo.CountByRole(ctx, domain.RoleCustomer)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("SearchByName", func(t *testing.T) {
		got, err := repo.SearchByName(ctx, "DOE")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, jane.ID, got[0].ID)

		got, err = repo.SearchByName(ctx, "%_")
		require.NoError(t, err)
		require.Len(t, got, 1, "wildcards match literally")
		assert.Equal(t, bob.ID, got[0].ID)

		got, err = repo.SearchByName(ctx, "nobody")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("UpdateProfile", func(t *testing.T) {
		at := time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)
		err := repo.UpdateProfile(ctx, jane.ID, domain.Profile{
			Email: "jane.doe@example.com",
			Name:  "Jane D",
			Role:  domain.RoleServiceProvider,
			Phone: "555-0199",
		}, at)
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, jane.ID)
		require.NoError(t, err)
		assert.Equal(t, "jane.doe@example.com", got.Email)
		assert.Equal(t, "Jane D", got.Name)
		assert.Equal(t, "digest", got.PasswordHash)
		assert.True(t, jane.CreatedAt.Equal(got.CreatedAt))
		assert.True(t, at.Equal(got.UpdatedAt))

		err = repo.UpdateProfile(ctx, jane.ID, domain.Profile{Email: "bob@example.com", Name: "x", Role: domain.RoleCustomer}, at)
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

		err = repo.UpdateProfile(ctx, 9999, domain.Profile{Email: "z@example.com", Name: "x", Role: domain.RoleCustomer}, at)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, bob.ID))
		assert.ErrorIs(t, repo.Delete(ctx, bob.ID), domain.ErrUserNotFound)
	})
}
