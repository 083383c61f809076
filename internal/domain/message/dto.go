package message

import (
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/validator"
)

type SendMessageRequest struct {
	EmployeeName string `json:"employee_name"`
	Message      string `json:"message"`
}

func (r SendMessageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{Field: "employee_name", Message: "is required"})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateMessageStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateMessageStatusRequest) Validate() error {
	if !Status(r.Status).Valid() {
		return validator.ValidationErrors{{Field: "status", Message: "must be Pending, In Progress, Resolved or Rejected"}}
	}
	return nil
}

type MessageResponse struct {
	ID           string    `json:"id"`
	EmployeeName string    `json:"employee_name"`
	Message      string    `json:"message"`
	AdminID      string    `json:"admin_id"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToResponse(m Message) MessageResponse {
	return MessageResponse{
		ID:           m.ID,
		EmployeeName: m.EmployeeName,
		Message:      m.Body,
		AdminID:      m.AdminID,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
	}
}

func ToResponses(messages []Message) []MessageResponse {
	responses := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, ToResponse(m))
	}
	return responses
}
