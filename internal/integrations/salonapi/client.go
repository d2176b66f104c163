package salonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/klyszcz/salon-dayview/internal/domain"
	"github.com/klyszcz/salon-dayview/pkg/timegrid"
)

// Logger is the logging interface required by the client
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder records upstream request outcomes; may be nil
type MetricsRecorder interface {
	RecordUpstreamRequest(operation, outcome string, duration time.Duration)
}

// Client talks to the salon booking API (the authoritative backend)
type Client struct {
	baseURL    string
	pageSize   int
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient creates a salon API client. metrics may be nil.
func NewClient(baseURL string, timeout time.Duration, pageSize int, log Logger, metrics MetricsRecorder) *Client {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &Client{
		baseURL:  baseURL,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

func (c *Client) record(operation, outcome string, started time.Time) {
	if c.metrics != nil {
		c.metrics.RecordUpstreamRequest(operation, outcome, time.Since(started))
	}
}

// ListAppointmentsForDay fetches every appointment whose start falls on the
// given day, following pagination to exhaustion. The date filter is applied
// server-side via date_from/date_to.
func (c *Client) ListAppointmentsForDay(ctx context.Context, day time.Time) ([]*domain.Appointment, error) {
	started := time.Now()
	isoDay := timegrid.ISODate(day)

	query := url.Values{}
	query.Set("page", "1")
	query.Set("page_size", strconv.Itoa(c.pageSize))
	query.Set("date_from", isoDay)
	query.Set("date_to", isoDay)

	nextURL := fmt.Sprintf("%s/appointments/?%s", c.baseURL, query.Encode())

	appointments := make([]*domain.Appointment, 0)
	for nextURL != "" {
		page, err := c.fetchAppointmentPage(ctx, nextURL)
		if err != nil {
			c.record("list_appointments", "error", started)
			return nil, err
		}

		for i := range page.Results {
			appt, err := page.Results[i].ToDomain()
			if err != nil {
				c.record("list_appointments", "error", started)
				return nil, err
			}
			appointments = append(appointments, appt)
		}

		if page.Next == nil || *page.Next == "" {
			break
		}
		nextURL = *page.Next
	}

	c.record("list_appointments", "ok", started)
	c.log.Info("ListAppointmentsForDay: fetched %d appointments for date=%s", len(appointments), isoDay)
	return appointments, nil
}

func (c *Client) fetchAppointmentPage(ctx context.Context, pageURL string) (*AppointmentPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var page AppointmentPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &page, nil
}

// ChangeStatus submits a status change for the appointment. The reason is
// forwarded only when non-empty. Returns the updated record on success.
func (c *Client) ChangeStatus(ctx context.Context, appointmentID int64, status domain.AppointmentStatus, reason string) (*domain.Appointment, error) {
	started := time.Now()

	body, err := json.Marshal(StatusChangeRequest{
		Status:             string(status),
		CancellationReason: reason,
	})
	if err != nil {
		c.record("change_status", "error", started)
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	reqURL := fmt.Sprintf("%s/appointments/%d/status", c.baseURL, appointmentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		c.record("change_status", "error", started)
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record("change_status", "error", started)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Continue below
	case http.StatusNotFound:
		c.record("change_status", "not_found", started)
		return nil, ErrAppointmentNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		c.record("change_status", "rejected", started)
		return nil, fmt.Errorf("%w: %s", ErrStatusRejected, errResp.Detail)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		c.record("change_status", "error", started)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var summary AppointmentSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		c.record("change_status", "error", started)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	appt, err := summary.ToDomain()
	if err != nil {
		c.record("change_status", "error", started)
		return nil, err
	}

	c.record("change_status", "ok", started)
	c.log.Info("ChangeStatus: appointment id=%d set to status=%s", appointmentID, status)
	return appt, nil
}

// ListActiveEmployees fetches the active employee records used for the
// day-grid columns
func (c *Client) ListActiveEmployees(ctx context.Context) ([]*domain.Employee, error) {
	started := time.Now()

	reqURL := fmt.Sprintf("%s/employees/active/", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.record("list_employees", "error", started)
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record("list_employees", "error", started)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.record("list_employees", "error", started)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var raw []EmployeeLite
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		c.record("list_employees", "error", started)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	employees := make([]*domain.Employee, 0, len(raw))
	for i := range raw {
		emp, err := raw[i].ToDomain()
		if err != nil {
			c.record("list_employees", "error", started)
			return nil, err
		}
		if !emp.Active {
			continue
		}
		employees = append(employees, emp)
	}

	c.record("list_employees", "ok", started)
	c.log.Info("ListActiveEmployees: fetched %d active employees", len(employees))
	return employees, nil
}
