package leave

import (
	"strings"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required"})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "is required"})
	} else if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be greater than or equal to start date"})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	} else if len(strings.TrimSpace(r.Reason)) < 5 {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "must be at least 5 characters long"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateLeaveStatusRequest) Validate() error {
	// Admins can only decide a request, never reset it to pending.
	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		return validator.ValidationErrors{{Field: "status", Message: "must be approved or rejected"}}
	}
	return nil
}

type LeaveResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	AdminID       string    `json:"admin_id"`
	EmployeeName  *string   `json:"employee_name,omitempty"`
	EmployeeEmail *string   `json:"employee_email,omitempty"`
	EmployeeCode  *string   `json:"employee_code,omitempty"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Reason        string    `json:"reason"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToResponse(request LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:            request.ID,
		UserID:        request.UserID,
		AdminID:       request.AdminID,
		EmployeeName:  request.EmployeeName,
		EmployeeEmail: request.EmployeeEmail,
		EmployeeCode:  request.EmployeeCode,
		StartDate:     request.StartDate.Format("2006-01-02"),
		EndDate:       request.EndDate.Format("2006-01-02"),
		Reason:        request.Reason,
		Status:        request.Status,
		CreatedAt:     request.CreatedAt,
	}
}

func ToResponses(requests []LeaveRequest) []LeaveResponse {
	responses := make([]LeaveResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, ToResponse(request))
	}
	return responses
}
