package attendance

import (
	"context"
)

// AttendanceService defines business logic for punch operations.
type AttendanceService interface {
	// PunchIn opens a new record for the authenticated employee. Rejected
	// with ErrAlreadyPunchedIn when an open record exists.
	PunchIn(ctx context.Context, req PunchRequest) (AttendanceResponse, error)

	// PunchOut closes the most recent open record. ErrNoActivePunchIn when
	// none is open.
	PunchOut(ctx context.Context, req PunchRequest) (AttendanceResponse, error)

	// History returns records scoped by the caller's role: employees see
	// their own, admins their employees', the superadmin everything.
	History(ctx context.Context) ([]AttendanceResponse, error)
}
