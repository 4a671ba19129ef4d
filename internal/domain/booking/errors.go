package booking

import "github.com/SumitSharma2000/Car-Wash-APP/internal/httperr"

const CodeMissingField = "missing_field"

var (
	ErrNotFound     = httperr.NewBusiness("booking_not_found", "Booking not found")
	ErrInvalidState = httperr.NewBusiness("invalid_booking_state", "Can only assign provider to pending bookings")

	ErrCustomerIDRequired    = httperr.NewBusiness(CodeMissingField, "Customer ID is required")
	ErrServiceTypeRequired   = httperr.NewBusiness(CodeMissingField, "Service type is required")
	ErrScheduledTimeRequired = httperr.NewBusiness(CodeMissingField, "Scheduled time is required")
)
