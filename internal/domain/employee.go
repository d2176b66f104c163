package domain

// Employee is the lite employee record used to build day-grid columns
// and to scope "my appointments" views for employee viewers
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Active    bool
}

// FullName returns "FirstName LastName" for column headers
func (e *Employee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
