package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/auth"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/leave"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/message"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/payroll"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/task"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrInvalidResetCode):
		BadRequest(w, "Invalid or expired reset code", nil)
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Google account email is not verified")

	// User domain errors
	case errors.Is(err, user.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, user.ErrAdminNotFound):
		NotFound(w, "Admin not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email or username already registered")
	case errors.Is(err, user.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, user.ErrEmployeeUnlinked):
		BadRequest(w, "Employee is not linked to an admin", nil)
	case errors.Is(err, user.ErrSuperadminAccessRequired),
		errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrEmployeeAccessRequired):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, "Already punched in")
	case errors.Is(err, attendance.ErrNoActivePunchIn):
		NotFound(w, "No active punch-in found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrOverlappingLeave):
		BadRequest(w, "Leave request overlaps an existing request", nil)
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrNotLeaveOwner):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, "Invalid leave status", nil)

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found or not assigned to you")
	case errors.Is(err, task.ErrNoEmployees):
		NotFound(w, "No employees to assign the task to")

	// Message domain errors
	case errors.Is(err, message.ErrMessageNotFound):
		NotFound(w, "Message not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrMissingSalary):
		BadRequest(w, "Employee has no salary configured", nil)

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
