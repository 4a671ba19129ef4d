package handlers

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/booking"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/dto"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/httperr"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/httpresp"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/timezone"
	ucBooking "github.com/SumitSharma2000/Car-Wash-APP/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *ucBooking.CreateBooking
	update       *ucBooking.UpdateBooking
	updateStatus *ucBooking.UpdateBookingStatus
	assign       *ucBooking.AssignProvider
	remove       *ucBooking.DeleteBooking
	queries      *ucBooking.Queries

	loc *time.Location
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	update *ucBooking.UpdateBooking,
	updateStatus *ucBooking.UpdateBookingStatus,
	assign *ucBooking.AssignProvider,
	remove *ucBooking.DeleteBooking,
	queries *ucBooking.Queries,
	loc *time.Location,
) *BookingHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &BookingHandler{
		create:       create,
		update:       update,
		updateStatus: updateStatus,
		assign:       assign,
		remove:       remove,
		queries:      queries,
		loc:          loc,
	}
}

// ======================================================
// REQUEST PARSING
// ======================================================

// bookingFields is the typed form of dto.BookingRequest.
type bookingFields struct {
	serviceType   *domain.ServiceType
	status        *domain.Status
	scheduledTime *time.Time
}

func (h *BookingHandler) parseFields(c *gin.Context, req dto.BookingRequest) (bookingFields, bool) {
	var f bookingFields

	if req.ServiceType != nil {
		st, ok := domain.ParseServiceType(*req.ServiceType)
		if !ok {
			httperr.BadRequest(c, "invalid_request", "Invalid service type: "+*req.ServiceType)
			return f, false
		}
		f.serviceType = &st
	}

	if req.Status != nil {
		st, ok := parseStatus(c, *req.Status)
		if !ok {
			return f, false
		}
		f.status = &st
	}

	if req.ScheduledTime != nil {
		t, err := timezone.ParseDateTime(*req.ScheduledTime, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid scheduled time: "+*req.ScheduledTime)
			return f, false
		}
		f.scheduledTime = &t
	}

	return f, true
}

// readStatusBody accepts either a bare JSON string ("COMPLETED") or an
// object ({"status":"COMPLETED"}).
func readStatusBody(c *gin.Context) (string, bool) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Unreadable body")
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}

	var req dto.StatusRequest
	if err := json.Unmarshal(raw, &req); err == nil && req.Status != "" {
		return req.Status, true
	}

	// Unquoted text/plain bodies.
	if text := strings.TrimSpace(string(raw)); text != "" && !strings.ContainsAny(text, "{}[]\"") {
		return text, true
	}

	httperr.BadRequest(c, "invalid_request", "Status is required")
	return "", false
}

// ======================================================
// WRITE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	f, ok := h.parseFields(c, req)
	if !ok {
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateInput{
		CustomerID:    req.CustomerID,
		ServiceType:   f.serviceType,
		ScheduledTime: f.scheduledTime,
		ProviderID:    req.ProviderID,
		Location:      req.Location,
		Price:         req.Price,
		Status:        f.status,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, dto.NewBookingResponse(b))
}

// Update is a partial merge: fields missing from the body are kept.
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	f, ok := h.parseFields(c, req)
	if !ok {
		return
	}

	b, err := h.update.Execute(c.Request.Context(), id, domain.Patch{
		ProviderID:    req.ProviderID,
		ServiceType:   f.serviceType,
		Status:        f.status,
		Location:      req.Location,
		ScheduledTime: f.scheduledTime,
		Price:         req.Price,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, dto.NewBookingResponse(b))
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	raw, ok := readStatusBody(c)
	if !ok {
		return
	}
	status, ok := parseStatus(c, raw)
	if !ok {
		return
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), id, status)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, dto.NewBookingResponse(b))
}

func (h *BookingHandler) AssignProvider(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	providerID, ok := parseID(c, "providerId")
	if !ok {
		return
	}

	b, err := h.assign.Execute(c.Request.Context(), id, providerID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, dto.NewBookingResponse(b))
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// READ
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	b, err := h.queries.Get(c.Request.Context(), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, dto.NewBookingResponse(b))
}

func (h *BookingHandler) List(c *gin.Context) {
	bs, err := h.queries.List(c.Request.Context())
	if err != nil {
		writeInternal(c, err)
		return
	}
	httpresp.OK(c, dto.NewBookingList(bs))
}

func (h *BookingHandler) ListByCustomer(c *gin.Context) {
	id, ok := parseID(c, "customerId")
	if !ok {
		return
	}

	bs, err := h.queries.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		writeInternal(c, err)
		return
	}
	httpresp.OK(c, dto.NewBookingList(bs))
}

func (h *BookingHandler) ListByProvider(c *gin.Context) {
	id, ok := parseID(c, "providerId")
	if !ok {
		return
	}

	bs, err := h.queries.ListByProvider(c.Request.Context(), id)
	if err != nil {
		writeInternal(c, err)
		return
	}
	httpresp.OK(c, dto.NewBookingList(bs))
}

func (h *BookingHandler) ListByStatus(c *gin.Context) {
	status, ok := parseStatus(c, c.Param("status"))
	if !ok {
		return
	}

	bs, err := h.queries.ListByStatus(c.Request.Context(), status)
	if err != nil {
		writeInternal(c, err)
		return
	}
	httpresp.OK(c, dto.NewBookingList(bs))
}

// CountByProviderAndStatus responds with a bare JSON integer.
func (h *BookingHandler) CountByProviderAndStatus(c *gin.Context) {
	providerID, ok := parseID(c, "providerId")
	if !ok {
		return
	}
	status, ok := parseStatus(c, c.Param("status"))
	if !ok {
		return
	}

	n, err := h.queries.CountByProviderAndStatus(c.Request.Context(), providerID, status)
	if err != nil {
		writeInternal(c, err)
		return
	}
	httpresp.OK(c, n)
}
