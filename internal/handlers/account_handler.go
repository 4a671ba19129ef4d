package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/dto"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/httperr"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/httpresp"
	ucAccount "github.com/SumitSharma2000/Car-Wash-APP/internal/usecase/account"
)

// AccountHandler serves the account directory under /api/users.
type AccountHandler struct {
	create  *ucAccount.CreateAccount
	update  *ucAccount.UpdateAccount
	remove  *ucAccount.DeleteAccount
	queries *ucAccount.Queries
}

func NewAccountHandler(
	create *ucAccount.CreateAccount,
	update *ucAccount.UpdateAccount,
	remove *ucAccount.DeleteAccount,
	queries *ucAccount.Queries,
) *AccountHandler {
	return &AccountHandler{
		create:  create,
		update:  update,
		remove:  remove,
		queries: queries,
	}
}

// --------- Write ---------

func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	acc, err := h.create.Execute(c.Request.Context(), ucAccount.CreateInput{
		Email:    req.Email,
		Name:     req.Name,
		Role:     req.Role,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		writeAccountError(c, err)
		return
	}

	httpresp.Created(c, dto.NewAccountResponse(acc))
}

func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	acc, err := h.update.Execute(c.Request.Context(), id, ucAccount.UpdateInput{
		Email:   req.Email,
		Name:    req.Name,
		Role:    req.Role,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		writeAccountError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAccountResponse(acc))
}

func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		writeAccountError(c, err)
		return
	}

	httpresp.NoContent(c)
}

// --------- Read ---------

func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	acc, err := h.queries.Get(c.Request.Context(), id)
	if err != nil {
		writeAccountError(c, err)
		return
	}
	httpresp.OK(c, dto.NewAccountResponse(acc))
}

func (h *AccountHandler) GetByEmail(c *gin.Context) {
	acc, err := h.queries.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeAccountError(c, err)
		return
	}
	httpresp.OK(c, dto.NewAccountResponse(acc))
}

func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.queries.List(c.Request.Context())
	if err != nil {
		writeInternal(c, err)
		return
	}
	httpresp.OK(c, dto.NewAccountList(accounts))
}

func (h *AccountHandler) ListByRole(c *gin.Context) {
	role, ok := parseRole(c)
	if !ok {
		return
	}

	accounts, err := h.queries.ListByRole(c.Request.Context(), role)
	if err != nil {
		writeInternal(c, err)
		return
	}
	httpresp.OK(c, dto.NewAccountList(accounts))
}

// Search requires the name query parameter; an empty value matches everyone.
func (h *AccountHandler) Search(c *gin.Context) {
	name, ok := c.GetQuery("name")
	if !ok {
		httperr.BadRequest(c, "invalid_request", "Query parameter name is required")
		return
	}

	accounts, err := h.queries.SearchByName(c.Request.Context(), name)
	if err != nil {
		writeInternal(c, err)
		return
	}
	httpresp.OK(c, dto.NewAccountList(accounts))
}

// CountByRole responds with a bare JSON integer.
func (h *AccountHandler) CountByRole(c *gin.Context) {
	role, ok := parseRole(c)
	if !ok {
		return
	}

	n, err := h.queries.CountByRole(c.Request.Context(), role)
	if err != nil {
		writeInternal(c, err)
		return
	}
	httpresp.OK(c, n)
}

// --------- Helpers ---------

func parseRole(c *gin.Context) (domain.Role, bool) {
	raw := c.Param("role")
	role, ok := domain.ParseRole(raw)
	if !ok {
		httperr.BadRequest(c, "invalid_request", "Invalid role: "+raw)
		return "", false
	}
	return role, true
}

// writeAccountError: UserNotFound is 404, every other business error 400.
func writeAccountError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrUserNotFound) {
		httperr.WriteBusiness(c, http.StatusNotFound, domain.ErrUserNotFound)
		return
	}
	if be, ok := httperr.AsBusiness(err); ok {
		httperr.WriteBusiness(c, http.StatusBadRequest, be)
		return
	}
	writeInternal(c, err)
}
