package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
)

var ErrEmptySecret = errors.New("jwt secret must not be empty")

// JWTIssuer signs HS256 tokens whose subject is the account email. Nothing is
// persisted; a token is valid as long as its signature and exp claim hold.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// WithClock replaces the time source. Used by tests.
func (i *JWTIssuer) WithClock(now func() time.Time) *JWTIssuer {
	i.now = now
	return i
}

func (i *JWTIssuer) Issue(subject string) (string, error) {
	now := i.now()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate returns the subject of a well-signed, unexpired token and
// ErrInvalidAccessToken for anything else.
func (i *JWTIssuer) Validate(token string) (string, error) {
	var claims jwt.RegisteredClaims

	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidAccessToken
	}
	return claims.Subject, nil
}

// Compile-time check
var _ domain.TokenIssuer = (*JWTIssuer)(nil)
