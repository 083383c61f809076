package message

import (
	"time"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusRejected   Status = "Rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// Message is a free-text note from an employee to their admin. AdminID is a
// real foreign key resolved from the sender's principal, never a literal.
type Message struct {
	ID           string
	EmployeeName string
	Body         string
	AdminID      string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
