package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusPending, StatusAccepted, StatusCompleted, StatusCancelled:
		return st, true
	}
	return "", false
}

func InitialStatus() Status {
	return StatusPending
}

// CanAssign is the only transition rule enforced anywhere: a provider can be
// bound to a booking only while it is PENDING. Direct status updates are not
// checked against any transition table.
func CanAssign(current Status) error {
	if current != StatusPending {
		return ErrInvalidState
	}
	return nil
}

// ===============================
// Service Type
// ===============================

type ServiceType string

const (
	ServiceBasicWash   ServiceType = "BASIC_WASH"
	ServicePremiumWash ServiceType = "PREMIUM_WASH"
	ServiceFullDetail  ServiceType = "FULL_DETAIL"
)

func ParseServiceType(s string) (ServiceType, bool) {
	switch st := ServiceType(s); st {
	case ServiceBasicWash, ServicePremiumWash, ServiceFullDetail:
		return st, true
	}
	return "", false
}
