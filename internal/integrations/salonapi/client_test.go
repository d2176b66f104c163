package salonapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klyszcz/salon-dayview/internal/domain"
	"github.com/klyszcz/salon-dayview/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListAppointmentsForDay_FollowsPagination(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/appointments/", r.URL.Path)
		assert.Equal(t, "2026-03-10", r.URL.Query().Get("date_from"))
		assert.Equal(t, "2026-03-10", r.URL.Query().Get("date_to"))

		page := r.URL.Query().Get("page")
		w.Header().Set("Content-Type", "application/json")
		if page == "2" {
			json.NewEncoder(w).Encode(AppointmentPage{
				Count:   3,
				Results: []AppointmentSummary{summaryFixture(3, "09:00")},
			})
			return
		}
		next := fmt.Sprintf("%s/appointments/?page=2&page_size=50&date_from=2026-03-10&date_to=2026-03-10", server.URL)
		json.NewEncoder(w).Encode(AppointmentPage{
			Count: 3,
			Next:  &next,
			Results: []AppointmentSummary{
				summaryFixture(1, "10:00"),
				summaryFixture(2, "11:30"),
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 50, nopLogger{}, nil)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	appointments, err := client.ListAppointmentsForDay(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, appointments, 3)
	assert.Equal(t, int64(1), appointments[0].ID)
	assert.Equal(t, int64(3), appointments[2].ID)
	assert.Equal(t, domain.StatusConfirmed, appointments[0].Status)
}

func TestListAppointmentsForDay_RejectsUnknownStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bad := summaryFixture(1, "10:00")
		bad.Status = "rescheduled"
		json.NewEncoder(w).Encode(AppointmentPage{Count: 1, Results: []AppointmentSummary{bad}})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 50, nopLogger{}, nil)
	_, err := client.ListAppointmentsForDay(context.Background(), time.Now())
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestChangeStatus_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/appointments/7/status", r.URL.Path)

		var req StatusChangeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cancelled", req.Status)
		assert.Equal(t, "klientka odwołała telefonicznie", req.CancellationReason)

		updated := summaryFixture(7, "10:00")
		updated.Status = "cancelled"
		updated.StatusDisplay = "Anulowana"
		json.NewEncoder(w).Encode(updated)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 50, nopLogger{}, nil)
	appt, err := client.ChangeStatus(context.Background(), 7, domain.StatusCancelled, "klientka odwołała telefonicznie")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, appt.Status)
	assert.Equal(t, "Anulowana", appt.StatusDisplay)
}

func TestChangeStatus_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		wantErr error
	}{
		{"not found", http.StatusNotFound, ErrAppointmentNotFound},
		{"validation rejected", http.StatusBadRequest, ErrStatusRejected},
		{"conflict rejected", http.StatusConflict, ErrStatusRejected},
		{"server error", http.StatusInternalServerError, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				json.NewEncoder(w).Encode(ErrorResponse{Detail: "nie można"})
			}))
			defer server.Close()

			client := NewClient(server.URL, 5*time.Second, 50, nopLogger{}, nil)
			_, err := client.ChangeStatus(context.Background(), 7, domain.StatusConfirmed, "")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListActiveEmployees_FiltersInactive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/employees/active/", r.URL.Path)
		json.NewEncoder(w).Encode([]EmployeeLite{
			{ID: 1, FirstName: "Anna", LastName: "Kowalska"},
			{ID: 2, FirstName: "Marta", LastName: "Nowak", IsActive: ptr.To(false)},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 50, nopLogger{}, nil)
	employees, err := client.ListActiveEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Anna Kowalska", employees[0].FullName())
}

func summaryFixture(id int64, startHHMM string) AppointmentSummary {
	start, _ := time.ParseInLocation("2006-01-02T15:04", "2026-03-10T"+startHHMM, time.Local)
	return AppointmentSummary{
		ID:            id,
		StartTime:     start.Format("2006-01-02T15:04:05"),
		EndTime:       start.Add(45 * time.Minute).Format("2006-01-02T15:04:05"),
		Status:        "confirmed",
		StatusDisplay: "Potwierdzona",
		Employee:      5,
		ServiceName:   "Manicure hybrydowy",
	}
}
