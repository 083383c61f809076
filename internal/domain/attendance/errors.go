package attendance

import "errors"

var (
	ErrAlreadyPunchedIn   = errors.New("already punched in")
	ErrNoActivePunchIn    = errors.New("no active punch-in found to punch out")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
