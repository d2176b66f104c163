package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_CanStartNow(t *testing.T) {
	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	appt := &Appointment{ID: 1, StartAt: start, Status: StatusConfirmed}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"16 minutes early", start.Add(-16 * time.Minute), false},
		{"15 minutes early", start.Add(-15 * time.Minute), true},
		{"on time", start, true},
		{"4 hours late", start.Add(4 * time.Hour), true},
		{"over 4 hours late", start.Add(4*time.Hour + time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, appt.CanStartNow(tt.now))
		})
	}
}

func TestAppointment_SnapshotRestore(t *testing.T) {
	appt := &Appointment{ID: 1, Status: StatusPending, StatusDisplay: "Oczekująca"}

	snap := appt.Snapshot()
	appt.Status = StatusConfirmed
	appt.StatusDisplay = "Potwierdzona"

	appt.Restore(snap)
	assert.Equal(t, StatusPending, appt.Status)
	assert.Equal(t, "Oczekująca", appt.StatusDisplay)
}

func TestAppointment_DisplayLabel(t *testing.T) {
	appt := &Appointment{Status: StatusNoShow}
	assert.Equal(t, "Nieobecność", appt.DisplayLabel())

	appt.StatusDisplay = "Klient nie przyszedł"
	assert.Equal(t, "Klient nie przyszedł", appt.DisplayLabel())
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "in_progress", "completed", "cancelled", "no_show"} {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("rescheduled"))
	assert.False(t, IsValidStatus(""))
}

func TestAppointment_Predicates(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusCompleted}).IsTerminal())
	assert.True(t, (&Appointment{Status: StatusCancelled}).IsTerminal())
	assert.True(t, (&Appointment{Status: StatusNoShow}).IsTerminal())
	assert.False(t, (&Appointment{Status: StatusInProgress}).IsTerminal())

	assert.True(t, (&Appointment{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Appointment{Status: StatusNoShow}).IsActive())
}
