package models

import (
	"sort"
	"time"

	"github.com/klyszcz/salon-dayview/internal/domain"
	"github.com/klyszcz/salon-dayview/pkg/timegrid"
)

// DayViewResponse is the aggregated day view served to the UI
type DayViewResponse struct {
	Date            string           `json:"date"` // YYYY-MM-DD
	GridStartMinute int              `json:"gridStartMinute"`
	GridEndMinute   int              `json:"gridEndMinute"`
	Columns         []EmployeeColumn `json:"columns"`
}

// EmployeeColumn is one employee's column on the day grid
type EmployeeColumn struct {
	EmployeeID   int64              `json:"employeeId"`
	Name         string             `json:"name"`
	Appointments []AppointmentBlock `json:"appointments"`
}

// AppointmentBlock is one appointment rendered on the grid, including its
// computed placement and the actions legal for the requesting viewer
type AppointmentBlock struct {
	ID            int64            `json:"id"`
	StartTime     string           `json:"startTime"` // HH:MM
	EndTime       string           `json:"endTime"`   // HH:MM
	Status        string           `json:"status"`
	StatusDisplay string           `json:"statusDisplay"`
	ServiceName   string           `json:"serviceName"`
	ClientID      *int64           `json:"clientId,omitempty"`
	TopPercent    float64          `json:"topPercent"`
	HeightPercent float64          `json:"heightPercent"`
	Busy          bool             `json:"busy"` // a status change is in flight
	Actions       []ActionResponse `json:"actions"`
}

// ActionResponse is one legal status transition offered to the viewer
type ActionResponse struct {
	Status    string `json:"status"`
	Label     string `json:"label"`
	Category  string `json:"category"`
	AskReason bool   `json:"askReason"`
}

// FromDomainActions converts policy output into response DTOs
func FromDomainActions(actions []domain.StatusAction) []ActionResponse {
	resp := make([]ActionResponse, 0, len(actions))
	for _, a := range actions {
		resp = append(resp, ActionResponse{
			Status:    string(a.Next),
			Label:     a.Label,
			Category:  string(a.Category),
			AskReason: a.AskReason,
		})
	}
	return resp
}

// FromDomainAppointment converts one appointment into its rendered block
func FromDomainAppointment(a *domain.Appointment, v domain.Viewer, busy bool, gridStart, gridEnd int, now time.Time) AppointmentBlock {
	block := timegrid.LayoutBlock(a.StartAt, a.EndAt, gridStart, gridEnd)

	return AppointmentBlock{
		ID:            a.ID,
		StartTime:     a.StartAt.Format(domain.TimeFormat),
		EndTime:       a.EndAt.Format(domain.TimeFormat),
		Status:        string(a.Status),
		StatusDisplay: a.DisplayLabel(),
		ServiceName:   a.ServiceName,
		ClientID:      a.ClientID,
		TopPercent:    block.TopPercent,
		HeightPercent: block.HeightPercent,
		Busy:          busy,
		Actions:       FromDomainActions(domain.ActionsFor(a, v, now)),
	}
}

// BuildDayView groups appointments by employee, sorts each group by start
// time ascending and renders the grid columns. Column order follows the
// employee list. Employee viewers see only their own column.
func BuildDayView(
	day time.Time,
	employees []*domain.Employee,
	appointments []*domain.Appointment,
	busyIDs map[int64]bool,
	viewer domain.Viewer,
	gridStart, gridEnd int,
	now time.Time,
) *DayViewResponse {
	byEmployee := make(map[int64][]*domain.Appointment, len(employees))
	for _, a := range appointments {
		if viewer.Role == domain.RoleEmployee && a.EmployeeID != viewer.EmployeeID {
			continue
		}
		byEmployee[a.EmployeeID] = append(byEmployee[a.EmployeeID], a)
	}

	columns := make([]EmployeeColumn, 0, len(employees))
	for _, emp := range employees {
		if viewer.Role == domain.RoleEmployee && emp.ID != viewer.EmployeeID {
			continue
		}

		group := byEmployee[emp.ID]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].StartAt.Before(group[j].StartAt)
		})

		blocks := make([]AppointmentBlock, 0, len(group))
		for _, a := range group {
			blocks = append(blocks, FromDomainAppointment(a, viewer, busyIDs[a.ID], gridStart, gridEnd, now))
		}

		columns = append(columns, EmployeeColumn{
			EmployeeID:   emp.ID,
			Name:         emp.FullName(),
			Appointments: blocks,
		})
	}

	return &DayViewResponse{
		Date:            day.Format(domain.DateFormat),
		GridStartMinute: gridStart,
		GridEndMinute:   gridEnd,
		Columns:         columns,
	}
}

// EmployeeResponse is one employee record served to the UI
type EmployeeResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FromDomainEmployees converts employee records into response DTOs
func FromDomainEmployees(employees []*domain.Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, EmployeeResponse{
			ID:        e.ID,
			FirstName: e.FirstName,
			LastName:  e.LastName,
		})
	}
	return resp
}
