package domain

import "time"

// ActionCategory is the visual emphasis hint attached to a status action
type ActionCategory string

const (
	CategorySuccess ActionCategory = "success"
	CategoryInfo    ActionCategory = "info"
	CategoryDanger  ActionCategory = "danger"
	CategoryNeutral ActionCategory = "neutral"
)

// StatusAction describes one legal status transition offered to a viewer.
// Transient and derived; never persisted.
type StatusAction struct {
	Next      AppointmentStatus
	Label     string
	Category  ActionCategory
	AskReason bool // collect a free-text justification before submitting
}

// Action labels (Polish, matching the rest of the UI surface)
const (
	labelConfirm  = "Potwierdź"
	labelCancel   = "Anuluj"
	labelStart    = "Rozpocznij"
	labelComplete = "Zakończ"
	labelNoShow   = "Nieobecność"
)

// ActionsFor returns the ordered list of legal status transitions for the
// given appointment and viewer at time now.
//
// Transition table:
//
//	pending     -> confirmed, cancelled
//	confirmed   -> in_progress (only within the can-start-now window),
//	               cancelled, no_show
//	in_progress -> completed
//	completed, cancelled, no_show -> none (terminal)
//
// Authorization is evaluated first: an unauthorized viewer gets an empty
// list regardless of status. Order is stable; when in_progress is offered
// it comes first. A reason is collected only for cancellation.
func ActionsFor(a *Appointment, v Viewer, now time.Time) []StatusAction {
	if !v.CanActOn(a) {
		return []StatusAction{}
	}

	switch a.Status {
	case StatusPending:
		return []StatusAction{
			{Next: StatusConfirmed, Label: labelConfirm, Category: CategorySuccess},
			{Next: StatusCancelled, Label: labelCancel, Category: CategoryDanger, AskReason: true},
		}

	case StatusConfirmed:
		actions := make([]StatusAction, 0, 3)
		if a.CanStartNow(now) {
			actions = append(actions, StatusAction{
				Next: StatusInProgress, Label: labelStart, Category: CategoryInfo,
			})
		}
		actions = append(actions,
			StatusAction{Next: StatusCancelled, Label: labelCancel, Category: CategoryDanger, AskReason: true},
			StatusAction{Next: StatusNoShow, Label: labelNoShow, Category: CategoryNeutral},
		)
		return actions

	case StatusInProgress:
		return []StatusAction{
			{Next: StatusCompleted, Label: labelComplete, Category: CategorySuccess},
		}

	default:
		// Terminal or unknown status - nothing to offer
		return []StatusAction{}
	}
}

// TransitionAllowed reports whether changing the appointment to target is
// among the actions offered to the viewer at time now. Used by the update
// coordinator to re-validate a rendered action before trusting it.
func TransitionAllowed(a *Appointment, v Viewer, target AppointmentStatus, now time.Time) bool {
	for _, action := range ActionsFor(a, v, now) {
		if action.Next == target {
			return true
		}
	}
	return false
}
