package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/domain/booking"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/httperr"
)

// writeInternal hides err from the client and attaches it to the gin
// context, where the logging middleware picks it up.
func writeInternal(c *gin.Context, err error) {
	_ = c.Error(err)
	httperr.Internal(c, "internal_error", "Internal server error")
}

// writeBookingError: BookingNotFound is 404, every other business error 400.
func writeBookingError(c *gin.Context, err error) {
	if errors.Is(err, booking.ErrNotFound) {
		httperr.WriteBusiness(c, http.StatusNotFound, booking.ErrNotFound)
		return
	}
	if be, ok := httperr.AsBusiness(err); ok {
		httperr.WriteBusiness(c, http.StatusBadRequest, be)
		return
	}
	writeInternal(c, err)
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || v == 0 {
		httperr.BadRequest(c, "invalid_request", "Invalid "+name)
		return 0, false
	}
	return uint(v), true
}

func parseStatus(c *gin.Context, raw string) (booking.Status, bool) {
	st, ok := booking.ParseStatus(raw)
	if !ok {
		httperr.BadRequest(c, "invalid_request", "Invalid status: "+raw)
		return "", false
	}
	return st, true
}
