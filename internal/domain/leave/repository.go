package leave

import (
	"context"
)

// LeaveRepository defines data access for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByUser returns the employee's requests, newest first.
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)

	// ListIntervalsByUser returns every existing request of the employee
	// regardless of status. Input to the overlap guard.
	ListIntervalsByUser(ctx context.Context, userID string) ([]LeaveRequest, error)

	// ListByAdmin returns requests of employees owned by adminID, newest first.
	ListByAdmin(ctx context.Context, adminID string) ([]LeaveRequest, error)

	// ListAll returns every request (superadmin view).
	ListAll(ctx context.Context) ([]LeaveRequest, error)

	UpdateStatus(ctx context.Context, id string, status Status) (LeaveRequest, error)

	// CountPendingByAdmin counts requests awaiting the admin's decision.
	CountPendingByAdmin(ctx context.Context, adminID string) (int64, error)

	Count(ctx context.Context) (int64, error)
}
