package user

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserResponse is the wire shape for any account. Password and reset fields
// are never serialized.
type UserResponse struct {
	ID           string           `json:"id"`
	Username     string           `json:"username"`
	Email        string           `json:"email"`
	Name         *string          `json:"name,omitempty"`
	EmployeeCode *string          `json:"employee_code,omitempty"`
	Department   *string          `json:"department,omitempty"`
	Position     *string          `json:"position,omitempty"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	JoinDate     *string          `json:"join_date,omitempty"`
	Company      *string          `json:"company,omitempty"`
	ImagePath    *string          `json:"image,omitempty"`
	Role         Role             `json:"role"`
	AdminID      *string          `json:"admin_id,omitempty"`
	AdminName    *string          `json:"admin_name,omitempty"`
	IsActive     bool             `json:"is_active"`
	CreatedAt    time.Time        `json:"created_at"`

	EmployeeCount *int64 `json:"employee_count,omitempty"`
}

// ToResponse maps an entity to its wire shape.
func ToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Name:          u.Name,
		EmployeeCode:  u.EmployeeCode,
		Department:    u.Department,
		Position:      u.Position,
		Salary:        u.Salary,
		Company:       u.Company,
		ImagePath:     u.ImagePath,
		Role:          u.Role,
		AdminID:       u.AdminID,
		AdminName:     u.AdminName,
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt,
		EmployeeCount: u.EmployeeCount,
	}
	if u.JoinDate != nil {
		joined := u.JoinDate.Format("2006-01-02")
		resp.JoinDate = &joined
	}
	return resp
}

func ToResponses(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToResponse(u))
	}
	return responses
}
