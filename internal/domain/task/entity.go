package task

import (
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task is created by an admin and assigned to one or more of their
// employees. Status is mutated only by an assigned employee.
type Task struct {
	ID          string
	AdminID     string
	AssignedTo  []string
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields for responses
	AdminName     *string
	AssigneeNames []string
}
