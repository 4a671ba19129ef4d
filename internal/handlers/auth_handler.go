package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/dto"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/httperr"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/httpresp"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/middleware"
	ucAuth "github.com/SumitSharma2000/Car-Wash-APP/internal/usecase/auth"
	ucReset "github.com/SumitSharma2000/Car-Wash-APP/internal/usecase/passwordreset"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/validators"
)

const (
	msgResetEmailSent   = "Password reset email sent"
	msgResetSuccessful  = "Password reset successful"
	msgInvalidEmailHost = "The email domain does not look valid"
)

type AuthHandler struct {
	signup  *ucAuth.Signup
	login   *ucAuth.Login
	profile *ucAuth.GetProfile
	forgot  *ucReset.ForgotPassword
	reset   *ucReset.ResetPassword

	verifyEmailDomain bool
}

func NewAuthHandler(
	signup *ucAuth.Signup,
	login *ucAuth.Login,
	profile *ucAuth.GetProfile,
	forgot *ucReset.ForgotPassword,
	reset *ucReset.ResetPassword,
	verifyEmailDomain bool,
) *AuthHandler {
	return &AuthHandler{
		signup:            signup,
		login:             login,
		profile:           profile,
		forgot:            forgot,
		reset:             reset,
		verifyEmailDomain: verifyEmailDomain,
	}
}

// --------- Signup / login ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if h.verifyEmailDomain && !validators.IsEmailDomainValid(c.Request.Context(), nil, req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", msgInvalidEmailHost)
		return
	}

	res, err := h.signup.Execute(c.Request.Context(), ucAuth.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		writeAuthError(c, err)
		return
	}

	httpresp.OK(c, authResponse(res))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeAuthError(c, err)
		return
	}

	httpresp.OK(c, authResponse(res))
}

// Me returns the account behind the bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	acc, err := h.profile.Execute(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			httperr.WriteBusiness(c, http.StatusNotFound, domain.ErrUserNotFound)
			return
		}
		writeInternal(c, err)
		return
	}

	httpresp.OK(c, dto.NewAccountResponse(acc))
}

// --------- Password reset ---------

// ForgotPassword answers with plain text. Every failure, including a delivery
// failure after the token was stored, is 400 "User not found".
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Text(c, http.StatusBadRequest, domain.ErrUserNotFound.Error())
		return
	}

	if err := h.forgot.Execute(c.Request.Context(), req.Email); err != nil {
		if _, ok := httperr.AsBusiness(err); !ok {
			_ = c.Error(err)
		}
		httpresp.Text(c, http.StatusBadRequest, domain.ErrUserNotFound.Error())
		return
	}

	httpresp.Text(c, http.StatusOK, msgResetEmailSent)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Text(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.reset.Execute(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httpresp.Text(c, http.StatusBadRequest, be.Error())
			return
		}
		writeInternal(c, err)
		return
	}

	httpresp.Text(c, http.StatusOK, msgResetSuccessful)
}

// --------- Helpers ---------

func authResponse(res *ucAuth.Result) dto.AuthResponse {
	return dto.AuthResponse{
		Token: res.Token,
		Email: res.Email,
		Name:  res.Name,
		Role:  string(res.Role),
	}
}

// writeAuthError maps every business failure of signup and login to 400.
func writeAuthError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		httperr.WriteBusiness(c, http.StatusBadRequest, be)
		return
	}
	writeInternal(c, err)
}
