package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/httperr"
)

const ContextSubject = "subject"

// AuthMiddleware accepts "Authorization: Bearer <token>" and stores the
// token subject (the account email) under ContextSubject.
func AuthMiddleware(issuer domain.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a bearer token")
			c.Abort()
			return
		}

		subject, err := issuer.Validate(parts[1])
		if err != nil {
			httperr.WriteBusiness(c, http.StatusUnauthorized, domain.ErrInvalidAccessToken)
			c.Abort()
			return
		}

		c.Set(ContextSubject, subject)
		c.Next()
	}
}

// Subject returns the authenticated email, or "" outside AuthMiddleware.
func Subject(c *gin.Context) string {
	return c.GetString(ContextSubject)
}
