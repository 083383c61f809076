package leave

import (
	"context"
)

type LeaveService interface {
	// Request creates a pending leave for the authenticated employee after
	// the overlap guard passes.
	Request(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// MyLeaves returns the authenticated employee's requests, newest first.
	MyLeaves(ctx context.Context) ([]LeaveResponse, error)

	// List returns requests scoped to the caller: admins get their
	// employees', the superadmin everything.
	List(ctx context.Context) ([]LeaveResponse, error)

	// Decide approves or rejects a request owned by the calling admin.
	Decide(ctx context.Context, leaveID string, req UpdateLeaveStatusRequest) (LeaveResponse, error)
}
