package account

import "context"

// PasswordHasher produces salted one-way digests; two calls with the same
// input return different digests.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// TokenIssuer signs stateless bearer tokens whose subject is the account email.
type TokenIssuer interface {
	Issue(subject string) (string, error)
	Validate(token string) (string, error)
}

// Notifier delivers the reset link. Delivery is best effort.
type Notifier interface {
	SendPasswordReset(ctx context.Context, address, token string) error
}
