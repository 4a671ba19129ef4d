package dto

import (
	"time"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
)

// --------- Requests ---------

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,max=72"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=CUSTOMER SERVICE_PROVIDER"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,max=72"`
}

// --------- Responses ---------

type AuthResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type AccountResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewAccountResponse(a *models.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Role:      a.Role,
		Phone:     a.Phone,
		Address:   a.Address,
		CreatedAt: a.CreatedAt,
	}
}

// --------- Account directory ---------

type CreateAccountRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=CUSTOMER SERVICE_PROVIDER"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password" binding:"omitempty,max=72"`
}

type UpdateAccountRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name" binding:"required"`
	Role    string `json:"role" binding:"required,oneof=CUSTOMER SERVICE_PROVIDER"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// NewAccountList never returns nil, so an empty result encodes as [].
func NewAccountList(accounts []models.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, NewAccountResponse(&accounts[i]))
	}
	return out
}
