package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointment(status AppointmentStatus, employeeID int64, start time.Time) *Appointment {
	return &Appointment{
		ID:          1,
		StartAt:     start,
		EndAt:       start.Add(45 * time.Minute),
		Status:      status,
		EmployeeID:  employeeID,
		ServiceName: "Strzyżenie damskie",
	}
}

func TestActionsFor_PendingManager(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	appt := newAppointment(StatusPending, 5, now.Add(2*time.Hour))
	manager := Viewer{UserID: 1, Role: RoleManager}

	actions := ActionsFor(appt, manager, now)

	require.Len(t, actions, 2)
	assert.Equal(t, StatusConfirmed, actions[0].Next)
	assert.Equal(t, CategorySuccess, actions[0].Category)
	assert.False(t, actions[0].AskReason)
	assert.Equal(t, StatusCancelled, actions[1].Next)
	assert.Equal(t, CategoryDanger, actions[1].Category)
	assert.True(t, actions[1].AskReason)
}

func TestActionsFor_ConfirmedOutsideStartWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	manager := Viewer{UserID: 1, Role: RoleManager}

	tests := []struct {
		name  string
		start time.Time
	}{
		{"far in the future", now.Add(16 * time.Minute)},
		{"long past", now.Add(-4*time.Hour - time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := newAppointment(StatusConfirmed, 5, tt.start)
			actions := ActionsFor(appt, manager, now)

			require.Len(t, actions, 2)
			for _, a := range actions {
				assert.NotEqual(t, StatusInProgress, a.Next)
			}
			assert.Equal(t, StatusCancelled, actions[0].Next)
			assert.Equal(t, StatusNoShow, actions[1].Next)
		})
	}
}

func TestActionsFor_ConfirmedInsideStartWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	manager := Viewer{UserID: 1, Role: RoleManager}

	tests := []struct {
		name  string
		start time.Time
	}{
		{"15 minutes before start", now.Add(15 * time.Minute)},
		{"exactly at start", now},
		{"4 hours after start", now.Add(-4 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := newAppointment(StatusConfirmed, 5, tt.start)
			actions := ActionsFor(appt, manager, now)

			require.Len(t, actions, 3)
			assert.Equal(t, StatusInProgress, actions[0].Next)
			assert.Equal(t, CategoryInfo, actions[0].Category)
			assert.Equal(t, StatusCancelled, actions[1].Next)
			assert.Equal(t, StatusNoShow, actions[2].Next)
		})
	}
}

func TestActionsFor_InProgress(t *testing.T) {
	now := time.Now()
	appt := newAppointment(StatusInProgress, 5, now.Add(-time.Hour))
	manager := Viewer{UserID: 1, Role: RoleManager}

	actions := ActionsFor(appt, manager, now)

	require.Len(t, actions, 1)
	assert.Equal(t, StatusCompleted, actions[0].Next)
	assert.Equal(t, CategorySuccess, actions[0].Category)
}

func TestActionsFor_TerminalStatuses(t *testing.T) {
	now := time.Now()
	manager := Viewer{UserID: 1, Role: RoleManager}

	for _, status := range TerminalStatuses {
		t.Run(string(status), func(t *testing.T) {
			appt := newAppointment(status, 5, now)
			assert.Empty(t, ActionsFor(appt, manager, now))
		})
	}
}

func TestActionsFor_EmployeeAuthorization(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	appt := newAppointment(StatusPending, 5, now.Add(time.Hour))

	own := Viewer{UserID: 10, Role: RoleEmployee, EmployeeID: 5}
	actions := ActionsFor(appt, own, now)
	require.Len(t, actions, 2)
	assert.Equal(t, StatusConfirmed, actions[0].Next)
	assert.True(t, actions[1].AskReason)

	other := Viewer{UserID: 11, Role: RoleEmployee, EmployeeID: 9}
	assert.Empty(t, ActionsFor(appt, other, now))
}

func TestActionsFor_ClientNeverActs(t *testing.T) {
	now := time.Now()
	client := Viewer{UserID: 20, Role: RoleClient}

	for _, status := range []AppointmentStatus{
		StatusPending, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow,
	} {
		appt := newAppointment(status, 5, now)
		assert.Empty(t, ActionsFor(appt, client, now), "status %s", status)
	}
}

func TestTransitionAllowed(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	appt := newAppointment(StatusPending, 5, now.Add(time.Hour))
	manager := Viewer{UserID: 1, Role: RoleManager}

	assert.True(t, TransitionAllowed(appt, manager, StatusConfirmed, now))
	assert.True(t, TransitionAllowed(appt, manager, StatusCancelled, now))
	assert.False(t, TransitionAllowed(appt, manager, StatusInProgress, now))
	assert.False(t, TransitionAllowed(appt, manager, StatusCompleted, now))

	client := Viewer{UserID: 2, Role: RoleClient}
	assert.False(t, TransitionAllowed(appt, client, StatusConfirmed, now))
}
