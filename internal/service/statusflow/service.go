package statusflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/klyszcz/salon-dayview/internal/domain"
	"github.com/klyszcz/salon-dayview/internal/service/dayview"
)

// Service is the optimistic status update coordinator. It applies a
// user-confirmed status change against the local day state immediately,
// issues the authoritative request to the salon API, and rolls the local
// record back to its exact pre-change snapshot on failure.
type Service struct {
	state        DayState
	client       SalonAPIClient
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
}

// NewService creates the coordinator. metrics may be nil.
func NewService(state DayState, client SalonAPIClient, metrics MetricsRecorder, logger Logger) *Service {
	return &Service{
		state:        state,
		client:       client,
		timeProvider: RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// ChangeRequest describes one user-confirmed status transition
type ChangeRequest struct {
	AppointmentID int64
	Target        domain.AppointmentStatus
	Reason        string // free text, collected for cancellation; not required non-empty
	Viewer        domain.Viewer
}

func (s *Service) recordOutcome(target domain.AppointmentStatus, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordStatusChange(string(target), outcome)
	}
}

// ChangeStatus runs the optimistic update protocol:
//
//  1. re-validate the transition against the policy (a rendered action list
//     may be stale and is never trusted);
//  2. reject a second change while one is in flight on the same record;
//  3. snapshot {status, display}, apply the target status locally;
//  4. issue the upstream request;
//  5. on failure restore the snapshot exactly and report the rollback.
//
// No automatic retry; the caller must re-trigger the action.
func (s *Service) ChangeStatus(ctx context.Context, req *ChangeRequest) error {
	if !domain.IsValidStatus(string(req.Target)) {
		s.logger.Warn("ChangeStatus: unknown target status %q for appointment id=%d", req.Target, req.AppointmentID)
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Target)
	}
	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	appt, err := s.state.GetAppointment(req.AppointmentID)
	if err != nil {
		if errors.Is(err, dayview.ErrAppointmentNotFound) {
			s.logger.Warn("ChangeStatus: appointment id=%d not in loaded day", req.AppointmentID)
			return ErrAppointmentNotFound
		}
		return err
	}

	now := s.timeProvider.Now()
	if !domain.TransitionAllowed(&appt, req.Viewer, req.Target, now) {
		s.logger.Warn("ChangeStatus: transition %s->%s not allowed for appointment id=%d, user=%d, role=%s",
			appt.Status, req.Target, req.AppointmentID, req.Viewer.UserID, req.Viewer.Role)
		return ErrNotAllowed
	}

	if !s.state.TryBeginChange(req.AppointmentID) {
		s.logger.Warn("ChangeStatus: change already in flight for appointment id=%d", req.AppointmentID)
		return ErrChangeInFlight
	}
	defer s.state.EndChange(req.AppointmentID)

	snapshot, err := s.state.ApplyStatus(req.AppointmentID, req.Target)
	if err != nil {
		return err
	}

	// The reason travels upstream only for cancellations
	reason := ""
	if req.Target == domain.StatusCancelled {
		reason = req.Reason
	}

	if _, err := s.client.ChangeStatus(ctx, req.AppointmentID, req.Target, reason); err != nil {
		s.state.RestoreStatus(req.AppointmentID, snapshot)
		s.recordOutcome(req.Target, "rolled_back")
		s.logger.Error("ChangeStatus: upstream rejected %s->%s for appointment id=%d, rolled back: %v",
			snapshot.Status, req.Target, req.AppointmentID, err)
		return fmt.Errorf("%w: %v", ErrChangeFailed, err)
	}

	// Success: the optimistic state stands; the next explicit reload
	// resynchronizes the display label with the server
	s.recordOutcome(req.Target, "applied")
	s.logger.Info("ChangeStatus: appointment id=%d changed %s->%s by user=%d",
		req.AppointmentID, snapshot.Status, req.Target, req.Viewer.UserID)
	return nil
}
