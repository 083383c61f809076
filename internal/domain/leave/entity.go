package leave

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// LeaveRequest is an employee's request for the inclusive date range
// [StartDate, EndDate]. AdminID is the owning admin, resolved at creation
// time from the employee record.
type LeaveRequest struct {
	ID        string
	UserID    string
	AdminID   string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields for responses
	EmployeeName  *string
	EmployeeEmail *string
	EmployeeCode  *string
}

// Overlaps reports whether [startA, endA] and [startB, endB] share at least
// one day. Boundaries are inclusive: equal edge dates count as overlap.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return !startA.After(endB) && !endA.Before(startB)
}
