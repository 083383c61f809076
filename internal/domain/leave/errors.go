package leave

import "errors"

var (
	ErrLeaveNotFound    = errors.New("leave request not found")
	ErrOverlappingLeave = errors.New("a leave already exists for this date range")
	ErrInvalidStatus    = errors.New("invalid leave status")
	ErrNotLeaveOwner    = errors.New("not authorized to update this leave")
)
