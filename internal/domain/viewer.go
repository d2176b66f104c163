package domain

// Role determines which status actions a viewer may invoke
type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
	RoleClient   Role = "client"
)

// Viewer is the authenticated identity acting on the day view.
// Resolved once per request from the session headers; immutable afterwards.
type Viewer struct {
	UserID     int64
	Role       Role
	EmployeeID int64 // set only for employee viewers
}

// CanActOn reports whether the viewer is authorized to change the status of
// the given appointment. Managers act on any appointment, employees only on
// their own, clients never.
func (v Viewer) CanActOn(a *Appointment) bool {
	switch v.Role {
	case RoleManager:
		return true
	case RoleEmployee:
		return v.EmployeeID != 0 && v.EmployeeID == a.EmployeeID
	default:
		return false
	}
}

// IsValidRole returns true for a known viewer role
func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleManager, RoleEmployee, RoleClient:
		return true
	default:
		return false
	}
}
