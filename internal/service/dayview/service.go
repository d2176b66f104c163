package dayview

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/klyszcz/salon-dayview/internal/domain"
	"github.com/klyszcz/salon-dayview/internal/service/dayview/models"
	"github.com/klyszcz/salon-dayview/pkg/timegrid"
)

// Service holds the per-day in-memory view state: the active employee
// columns and the appointments of the currently selected day. The salon API
// stays authoritative; this state is a cache replaced on every explicit
// load and mutated only by the optimistic status coordinator.
//
// Known gap, kept on purpose: there is no generation token guarding two
// overlapping loads of different days, so the later response wins even if
// it was issued earlier. The mutex protects map access only.
type Service struct {
	client       SalonAPIClient
	timeProvider TimeProvider
	logger       Logger

	gridStartMinute int
	gridEndMinute   int

	mu           sync.Mutex
	loaded       bool
	day          time.Time
	employees    []*domain.Employee
	appointments map[int64]*domain.Appointment
	busy         map[int64]bool
}

// NewService creates the day view service with the given grid window
func NewService(client SalonAPIClient, gridStartMinute, gridEndMinute int, logger Logger) *Service {
	if gridEndMinute <= gridStartMinute {
		gridStartMinute = domain.DefaultGridStartMinute
		gridEndMinute = domain.DefaultGridEndMinute
	}
	return &Service{
		client:          client,
		timeProvider:    RealTimeProvider{},
		logger:          logger,
		gridStartMinute: gridStartMinute,
		gridEndMinute:   gridEndMinute,
		appointments:    make(map[int64]*domain.Appointment),
		busy:            make(map[int64]bool),
	}
}

// LoadDay fetches the employees and the given day's appointments from the
// salon API and replaces the local state. On failure the affected
// collections are reset to empty rather than left stale.
func (s *Service) LoadDay(ctx context.Context, day time.Time) error {
	day = timegrid.StartOfDay(day)
	s.logger.Info("LoadDay: loading date=%s", timegrid.ISODate(day))

	employees, err := s.client.ListActiveEmployees(ctx)
	if err != nil {
		s.logger.Error("LoadDay: failed to fetch employees: %v", err)
		s.reset(day)
		return fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	appointments, err := s.client.ListAppointmentsForDay(ctx, day)
	if err != nil {
		s.logger.Error("LoadDay: failed to fetch appointments for date=%s: %v", timegrid.ISODate(day), err)
		s.reset(day)
		return fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	byID := make(map[int64]*domain.Appointment, len(appointments))
	for _, a := range appointments {
		byID[a.ID] = a
	}

	s.mu.Lock()
	s.loaded = true
	s.day = day
	s.employees = employees
	s.appointments = byID
	s.busy = make(map[int64]bool)
	s.mu.Unlock()

	s.logger.Info("LoadDay: loaded date=%s, employees=%d, appointments=%d",
		timegrid.ISODate(day), len(employees), len(appointments))
	return nil
}

// reset clears the collections after a failed load so the UI never renders
// a stale day as if it were current
func (s *Service) reset(day time.Time) {
	s.mu.Lock()
	s.loaded = false
	s.day = day
	s.employees = nil
	s.appointments = make(map[int64]*domain.Appointment)
	s.busy = make(map[int64]bool)
	s.mu.Unlock()
}

// EnsureDay loads the given day unless it is already the loaded one.
// Explicit refreshes go through LoadDay directly.
func (s *Service) EnsureDay(ctx context.Context, day time.Time) error {
	day = timegrid.StartOfDay(day)

	s.mu.Lock()
	current := s.loaded && s.day.Equal(day)
	s.mu.Unlock()

	if current {
		return nil
	}
	return s.LoadDay(ctx, day)
}

// View renders the aggregated day view for the viewer. Employee viewers are
// scoped to their own column; action lists are derived per viewer.
func (s *Service) View(viewer domain.Viewer) (*models.DayViewResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, ErrDayNotLoaded
	}

	appointments := make([]*domain.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		appointments = append(appointments, a)
	}

	busyIDs := make(map[int64]bool, len(s.busy))
	for id, b := range s.busy {
		busyIDs[id] = b
	}

	return models.BuildDayView(
		s.day,
		s.employees,
		appointments,
		busyIDs,
		viewer,
		s.gridStartMinute,
		s.gridEndMinute,
		s.timeProvider.Now(),
	), nil
}

// Employees returns the loaded active employees
func (s *Service) Employees() ([]*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, ErrDayNotLoaded
	}
	out := make([]*domain.Employee, len(s.employees))
	copy(out, s.employees)
	return out, nil
}

// GetAppointment returns a copy of the appointment from the loaded day
func (s *Service) GetAppointment(id int64) (domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return domain.Appointment{}, ErrAppointmentNotFound
	}
	return *a, nil
}

// ApplyStatus optimistically sets the appointment's status and local display
// label, returning the pre-change snapshot for a possible rollback
func (s *Service) ApplyStatus(id int64, status domain.AppointmentStatus) (domain.StatusSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return domain.StatusSnapshot{}, ErrAppointmentNotFound
	}

	snapshot := a.Snapshot()
	a.Status = status
	a.StatusDisplay = domain.StatusDisplayPL(status)
	return snapshot, nil
}

// RestoreStatus reverts the appointment to the pre-change snapshot. The
// record is restored to its exact prior value, not re-fetched.
func (s *Service) RestoreStatus(id int64, snapshot domain.StatusSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.appointments[id]; ok {
		a.Restore(snapshot)
	}
}

// TryBeginChange marks the record busy for the duration of an in-flight
// status change. Returns false when a change is already pending, so only
// one mutation per record can be in flight.
func (s *Service) TryBeginChange(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy[id] {
		return false
	}
	if _, ok := s.appointments[id]; !ok {
		return false
	}
	s.busy[id] = true
	return true
}

// EndChange clears the busy flag after the status change resolves
func (s *Service) EndChange(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, id)
}

// Now exposes the service clock (shared with the status coordinator so
// policy decisions and renders agree on the current time)
func (s *Service) Now() time.Time {
	return s.timeProvider.Now()
}
