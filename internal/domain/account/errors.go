package account

import "github.com/SumitSharma2000/Car-Wash-APP/internal/httperr"

// Login deliberately returns ErrInvalidCredentials for both an unknown email
// and a wrong password.
var (
	ErrDuplicateEmail     = httperr.NewBusiness("duplicate_email", "Email already exists")
	ErrInvalidCredentials = httperr.NewBusiness("invalid_credentials", "Invalid credentials")
	ErrUserNotFound       = httperr.NewBusiness("user_not_found", "User not found")
	ErrInvalidToken       = httperr.NewBusiness("invalid_token", "Invalid token")
	ErrTokenExpiredOrUsed = httperr.NewBusiness("token_expired_or_used", "Token expired or already used")
	ErrInvalidAccessToken = httperr.NewBusiness("invalid_access_token", "Invalid or expired access token")
	ErrInvalidRole        = httperr.NewBusiness("invalid_role", "Role must be CUSTOMER or SERVICE_PROVIDER")
	ErrPasswordTooLong    = httperr.NewBusiness("password_too_long", "Password must be at most 72 bytes")
)
