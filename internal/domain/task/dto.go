package task

import (
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
}

func (r CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if r.Priority != "" && !Priority(r.Priority).Valid() {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be Low, Medium or High"})
	}
	if r.DueDate != "" {
		if _, ok := validator.IsValidDate(r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateTaskStatusRequest) Validate() error {
	if !Status(r.Status).Valid() {
		return validator.ValidationErrors{{Field: "status", Message: "must be Pending, In Progress or Completed"}}
	}
	return nil
}

type TaskResponse struct {
	ID            string    `json:"id"`
	AdminID       string    `json:"admin_id"`
	AdminName     *string   `json:"admin_name,omitempty"`
	AssignedTo    []string  `json:"assigned_to"`
	AssigneeNames []string  `json:"assignee_names,omitempty"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Priority      Priority  `json:"priority"`
	DueDate       *string   `json:"due_date,omitempty"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:            t.ID,
		AdminID:       t.AdminID,
		AdminName:     t.AdminName,
		AssignedTo:    t.AssignedTo,
		AssigneeNames: t.AssigneeNames,
		Title:         t.Title,
		Description:   t.Description,
		Priority:      t.Priority,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt,
	}
	if t.DueDate != nil {
		due := t.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	return resp
}

func ToResponses(tasks []Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, ToResponse(t))
	}
	return responses
}
