package passwordreset

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/infra/repository"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/infra/security"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/testdb"
)

// ------------------------------------------------------
// Mocks
// ------------------------------------------------------

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendPasswordReset(ctx context.Context, address, token string) error {
	return m.Called(ctx, address, token).Error(0)
}

type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Verify(plain, digest string) bool {
	return m.Called(plain, digest).Bool(0)
}

// ------------------------------------------------------
// Fixture
// ------------------------------------------------------

type fixture struct {
	accounts *repository.AccountGormRepository
	tokens   *repository.ResetTokenGormRepository
	notifier *MockNotifier
	hasher   *MockHasher
	forgot   *ForgotPassword
	reset    *ResetPassword
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testdb.Open(t)
	f := &fixture{
		accounts: repository.NewAccountGormRepository(db),
		tokens:   repository.NewResetTokenGormRepository(db),
		notifier: new(MockNotifier),
		hasher:   new(MockHasher),
		now:      time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}
	tx := repository.NewGormTransactionManager(db)

	var seq int
	f.forgot = NewForgotPassword(tx, f.notifier, nil)
	f.forgot.now = func() time.Time { return f.now }
	f.forgot.newToken = func() string {
		seq++
		return fmt.Sprintf("t%d", seq)
	}

	f.reset = NewResetPassword(tx, f.tokens, f.hasher, nil)
	f.reset.now = func() time.Time { return f.now }

	return f
}

func (f *fixture) addAccount(t *testing.T, email string) {
	t.Helper()
	require.NoError(t, f.accounts.Create(context.Background(), &models.Account{
		Email:        email,
		PasswordHash: "old-digest",
		Name:         "A",
		Role:         string(domain.RoleCustomer),
		CreatedAt:    f.now,
		UpdatedAt:    f.now,
	}))
}

// ------------------------------------------------------
// Forgot password
// ------------------------------------------------------

func TestForgotPassword_UnknownEmail(t *testing.T) {
	f := newFixture(t)

	err := f.forgot.Execute(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	f.notifier.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything, mock.Anything)

	_, err = f.tokens.FindByToken(context.Background(), "t1")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestForgotPassword_SupersedesEarlierToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addAccount(t, "a@b.com")
	f.notifier.On("SendPasswordReset", mock.Anything, "a@b.com", mock.Anything).Return(nil)

	require.NoError(t, f.forgot.Execute(ctx, "a@b.com"))

	t1, err := f.tokens.FindByToken(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, f.now.Add(time.Hour).Equal(t1.ExpiresAt))
	assert.False(t, t1.Used)

	require.NoError(t, f.forgot.Execute(ctx, "a@b.com"))

	_, err = f.tokens.FindByToken(ctx, "t1")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	_, err = f.tokens.FindByToken(ctx, "t2")
	require.NoError(t, err)

	live, err := f.tokens.CountLiveByEmail(ctx, "a@b.com", f.now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), live)

	err = f.reset.Execute(ctx, "t1", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	f.notifier.AssertCalled(t, "SendPasswordReset", mock.Anything, "a@b.com", "t1")
	f.notifier.AssertCalled(t, "SendPasswordReset", mock.Anything, "a@b.com", "t2")
}

// A failed notification does not roll the token back.
func TestForgotPassword_NotifierFailureKeepsToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addAccount(t, "a@b.com")

	boom := errors.New("smtp down")
	f.notifier.On("SendPasswordReset", mock.Anything, "a@b.com", "t1").Return(boom)

	err := f.forgot.Execute(ctx, "a@b.com")
	assert.ErrorIs(t, err, boom)

	tok, err := f.tokens.FindByToken(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, tok.Used)
}

// ------------------------------------------------------
// Reset password
// ------------------------------------------------------

func TestResetPassword_SucceedsOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addAccount(t, "a@b.com")
	f.notifier.On("SendPasswordReset", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.hasher.On("Hash", "n3w").Return("new-digest", nil)

	require.NoError(t, f.forgot.Execute(ctx, "a@b.com"))
	require.NoError(t, f.reset.Execute(ctx, "t1", "n3w"))

	acc, err := f.accounts.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "new-digest", acc.PasswordHash)

	tok, err := f.tokens.FindByToken(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, tok.Used)

	err = f.reset.Execute(ctx, "t1", "n3w")
	assert.ErrorIs(t, err, domain.ErrTokenExpiredOrUsed)
	assert.Equal(t, "Token expired or already used", err.Error())
}

func TestResetPassword_PasswordTooLong(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addAccount(t, "a@b.com")
	f.notifier.On("SendPasswordReset", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.reset.hasher = security.NewBcryptHasher(bcrypt.MinCost)

	require.NoError(t, f.forgot.Execute(ctx, "a@b.com"))

	err := f.reset.Execute(ctx, "t1", strings.Repeat("p", 80))
	assert.ErrorIs(t, err, domain.ErrPasswordTooLong)

	tok, err := f.tokens.FindByToken(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, tok.Used)

	acc, err := f.accounts.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "old-digest", acc.PasswordHash)
}

func TestResetPassword_UnknownToken(t *testing.T) {
	f := newFixture(t)
	err := f.reset.Execute(context.Background(), "nope", "n3w")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestResetPassword_Expired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addAccount(t, "a@b.com")
	f.notifier.On("SendPasswordReset", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, f.forgot.Execute(ctx, "a@b.com"))

	f.now = f.now.Add(time.Hour)
	f.hasher.On("Hash", "n3w").Return("new-digest", nil)
	require.NoError(t, f.reset.Execute(ctx, "t1", "n3w"), "expiry instant itself is still valid")

	require.NoError(t, f.forgot.Execute(ctx, "a@b.com"))
	f.now = f.now.Add(time.Hour + time.Second)

	err := f.reset.Execute(ctx, "t2", "n3w")
	assert.ErrorIs(t, err, domain.ErrTokenExpiredOrUsed)
	f.hasher.AssertNumberOfCalls(t, "Hash", 1)
}

func TestResetPassword_AccountGoneKeepsTokenUnused(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.hasher.On("Hash", mock.Anything).Return("new-digest", nil)

	require.NoError(t, f.tokens.Create(ctx, &models.PasswordResetToken{
		Token:     "orphan",
		Email:     "gone@example.com",
		ExpiresAt: f.now.Add(time.Hour),
		CreatedAt: f.now,
	}))

	err := f.reset.Execute(ctx, "orphan", "n3w")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	tok, err := f.tokens.FindByToken(ctx, "orphan")
	require.NoError(t, err)
	assert.False(t, tok.Used)
}

func TestResetPassword_ConcurrentRedeemOneWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addAccount(t, "a@b.com")
	f.notifier.On("SendPasswordReset", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.hasher.On("Hash", mock.Anything).Return("new-digest", nil)

	require.NoError(t, f.forgot.Execute(ctx, "a@b.com"))

	const callers = 8
	var wins, losses atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := f.reset.Execute(ctx, "t1", "n3w")
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, domain.ErrTokenExpiredOrUsed):
				losses.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(callers-1), losses.Load())
}
