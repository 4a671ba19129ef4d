package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/audit"
	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/logger"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/metrics"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
)

// Result is what signup and login hand back: a bearer token plus an echo of
// the profile.
type Result struct {
	Token string
	Email string
	Name  string
	Role  domain.Role
}

type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     string
	Phone    string
	Address  string
}

type Signup struct {
	accounts domain.Repository
	hasher   domain.PasswordHasher
	issuer   domain.TokenIssuer
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewSignup(
	accounts domain.Repository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	audit *audit.Dispatcher,
) *Signup {
	return &Signup{
		accounts: accounts,
		hasher:   hasher,
		issuer:   issuer,
		audit:    audit,
		now:      time.Now,
	}
}

// Execute stores the email exactly as given; no case folding is applied.
func (uc *Signup) Execute(
	ctx context.Context,
	in SignupInput,
) (*Result, error) {

	role, ok := domain.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidRole
	}

	exists, err := uc.accounts.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		metrics.IncAuthEvent("signup_duplicate_email")
		logger.Warn("Signup rejected",
			zap.String("event", "signup_duplicate_email"),
			zap.String("email", in.Email),
		)
		return nil, domain.ErrDuplicateEmail
	}

	digest, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	acc := &models.Account{
		Email:        in.Email,
		PasswordHash: digest,
		Name:         in.Name,
		Role:         string(role),
		Phone:        in.Phone,
		Address:      in.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// A concurrent signup can still win the unique index here.
	if err := uc.accounts.Create(ctx, acc); err != nil {
		return nil, err
	}

	token, err := uc.issuer.Issue(acc.Email)
	if err != nil {
		return nil, err
	}

	metrics.IncAuthEvent("signup_success")
	logger.Info("Account created",
		zap.String("event", "signup_success"),
		zap.Uint("account_id", acc.ID),
		zap.String("role", acc.Role),
	)

	uc.audit.Dispatch(audit.Event{
		Actor:    acc.Email,
		Action:   "account_created",
		Entity:   "account",
		EntityID: &acc.ID,
	})

	return &Result{
		Token: token,
		Email: acc.Email,
		Name:  acc.Name,
		Role:  role,
	}, nil
}
