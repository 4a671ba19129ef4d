package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBusinessError(t *testing.T) {
	err := NewBusiness("invalid_token", "Invalid token")
	wrapped := fmt.Errorf("reset: %w", err)

	assert.Equal(t, "Invalid token", err.Error())
	assert.True(t, IsBusiness(wrapped, "invalid_token"))
	assert.False(t, IsBusiness(wrapped, "user_not_found"))
	assert.True(t, errors.Is(wrapped, err))

	be, ok := AsBusiness(wrapped)
	require.True(t, ok)
	assert.Equal(t, "invalid_token", be.Code)

	assert.Equal(t, "missing_field", ErrBusiness("missing_field").Error())

	_, ok = AsBusiness(errors.New("boom"))
	assert.False(t, ok)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
}

func TestWriteBusiness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	WriteBusiness(c, http.StatusBadRequest, NewBusiness("duplicate_email", "Email already exists"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, HTTPError{Code: "duplicate_email", Message: "Email already exists"}, body)
}
