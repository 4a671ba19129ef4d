package timezone

import (
	"errors"
	"time"
)

const DefaultTimezone = "UTC"

var ErrInvalidDateTime = errors.New("invalid date-time")

// zoneless layouts are read in the business location.
var zoneless = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

// ParseDateTime accepts RFC 3339 or a zone-less ISO local date-time and
// returns the instant in UTC.
func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}

	for _, layout := range zoneless {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDateTime
}
