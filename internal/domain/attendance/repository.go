package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for punch records.
type AttendanceRepository interface {
	// Create inserts a new open record (punch-in).
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// HasOpenRecord reports whether the employee currently has a record with
	// no punch-out. Checked before every punch-in.
	HasOpenRecord(ctx context.Context, userID string) (bool, error)

	// GetOpenRecord returns the most recent open record (punch_in DESC).
	GetOpenRecord(ctx context.Context, userID string) (Attendance, error)

	// ClosePunch sets punch-out on the record, guarded by punch_out IS NULL
	// so concurrent punch-outs cannot close the same record twice.
	ClosePunch(ctx context.Context, recordID string, punchOut time.Time, latitude, longitude *float64) (Attendance, error)

	// ListByUser returns the employee's records, newest punch-in first.
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)

	// ListByAdmin returns records of all employees owned by adminID.
	ListByAdmin(ctx context.Context, adminID string) ([]Attendance, error)

	// ListAll returns every record (superadmin view).
	ListAll(ctx context.Context) ([]Attendance, error)

	// ListByUserBetween returns records whose punch-in falls in [from, to],
	// ordered by punch-in ascending. Used by the salary slip.
	ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]Attendance, error)

	// CountOpenByAdmin counts currently open records across the admin's
	// employees (dashboard).
	CountOpenByAdmin(ctx context.Context, adminID string) (int64, error)
}
