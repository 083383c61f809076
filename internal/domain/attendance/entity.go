package attendance

import (
	"time"
)

// Attendance is one punch-in/punch-out pair. A record with a nil PunchOut is
// an open session; at most one open record exists per employee.
type Attendance struct {
	ID                string
	UserID            string
	PunchIn           time.Time
	PunchInLatitude   *float64
	PunchInLongitude  *float64
	PunchOut          *time.Time
	PunchOutLatitude  *float64
	PunchOutLongitude *float64
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields for responses
	EmployeeName  *string
	EmployeeEmail *string
}
