package task

import (
	"context"
)

// TaskRepository defines data access for tasks. Assignment is stored as a
// uuid array; the status update is guarded in SQL by assignment membership.
type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)

	// ListByAdmin returns tasks created by the admin, newest first.
	ListByAdmin(ctx context.Context, adminID string) ([]Task, error)

	// ListByAssignee returns tasks assigned to the employee, newest first.
	ListByAssignee(ctx context.Context, userID string) ([]Task, error)

	// UpdateStatus updates status only when userID is among the assignees.
	UpdateStatus(ctx context.Context, taskID string, userID string, status Status) (Task, error)

	// CountByStatusForAdmin returns per-status counts for the dashboard.
	CountByStatusForAdmin(ctx context.Context, adminID string) (map[Status]int64, error)

	Count(ctx context.Context) (int64, error)
}
