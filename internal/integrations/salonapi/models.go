package salonapi

import (
	"fmt"
	"time"

	"github.com/klyszcz/salon-dayview/internal/domain"
)

// AppointmentSummary is one appointment record as returned by the salon API.
// Fields are validated in ToDomain before the record enters local state;
// use sites never touch the raw shape.
type AppointmentSummary struct {
	ID            int64  `json:"id"`
	StartTime     string `json:"start_time"` // ISO 8601
	EndTime       string `json:"end_time"`   // ISO 8601
	Status        string `json:"status"`
	StatusDisplay string `json:"status_display"`
	Employee      int64  `json:"employee"`
	Client        *int64 `json:"client"` // null for walk-ins
	ServiceName   string `json:"service_name"`
}

// AppointmentPage is the paginated list envelope of the salon API
type AppointmentPage struct {
	Count    int                  `json:"count"`
	Next     *string              `json:"next"`
	Previous *string              `json:"previous"`
	Results  []AppointmentSummary `json:"results"`
}

// EmployeeLite is one active-employee record from the salon API
type EmployeeLite struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsActive  *bool  `json:"is_active"`
}

// StatusChangeRequest is the body of the status-change endpoint
type StatusChangeRequest struct {
	Status             string `json:"status"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
}

// ErrorResponse is the error envelope of the salon API
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Accepted timestamp layouts. The salon API emits ISO 8601; records without
// an explicit offset are interpreted in local time.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ToDomain validates the raw record and converts it into the domain model.
// Malformed records (unknown status, unparsable timestamps, missing
// employee reference) are rejected here, at the boundary.
func (s *AppointmentSummary) ToDomain() (*domain.Appointment, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("%w: appointment without id", ErrInvalidResponse)
	}
	if s.Employee == 0 {
		return nil, fmt.Errorf("%w: appointment id=%d without employee reference", ErrInvalidResponse, s.ID)
	}
	if !domain.IsValidStatus(s.Status) {
		return nil, fmt.Errorf("%w: appointment id=%d has unknown status %q", ErrInvalidResponse, s.ID, s.Status)
	}

	startAt, err := parseTimestamp(s.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: appointment id=%d has invalid start_time %q: %v", ErrInvalidResponse, s.ID, s.StartTime, err)
	}
	endAt, err := parseTimestamp(s.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: appointment id=%d has invalid end_time %q: %v", ErrInvalidResponse, s.ID, s.EndTime, err)
	}

	return &domain.Appointment{
		ID:            s.ID,
		StartAt:       startAt,
		EndAt:         endAt,
		Status:        domain.AppointmentStatus(s.Status),
		StatusDisplay: s.StatusDisplay,
		EmployeeID:    s.Employee,
		ClientID:      s.Client,
		ServiceName:   s.ServiceName,
	}, nil
}

// ToDomain converts the raw employee record into the domain model
func (e *EmployeeLite) ToDomain() (*domain.Employee, error) {
	if e.ID == 0 {
		return nil, fmt.Errorf("%w: employee without id", ErrInvalidResponse)
	}
	active := true
	if e.IsActive != nil {
		active = *e.IsActive
	}
	return &domain.Employee{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Active:    active,
	}, nil
}
