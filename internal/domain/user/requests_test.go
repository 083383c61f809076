package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/validator"
)

func TestUsernameBase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "Jane Doe", "janedoe"},
		{"punctuation stripped", "O'Brien, Jr.", "obrienjr"},
		{"digits kept", "Agent 47", "agent47"},
		{"short name padded", "Al", "aluser"},
		{"empty name padded", "", "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UsernameBase(tt.in))
		})
	}
}

func validCreateEmployee() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Password:     "s3cret-pass",
		EmployeeCode: "EMP-001",
		Department:   "Engineering",
		Position:     "Backend Engineer",
		Salary:       "1250.50",
		JoinDate:     "2026-01-05",
	}
}

func TestCreateEmployeeRequestValidate(t *testing.T) {
	assert.NoError(t, validCreateEmployee().Validate())

	tests := []struct {
		name   string
		mutate func(*CreateEmployeeRequest)
		field  string
	}{
		{"missing name", func(r *CreateEmployeeRequest) { r.Name = "" }, "name"},
		{"bad email", func(r *CreateEmployeeRequest) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *CreateEmployeeRequest) { r.Password = "short" }, "password"},
		{"bad username", func(r *CreateEmployeeRequest) { r.Username = "x" }, "username"},
		{"missing employee code", func(r *CreateEmployeeRequest) { r.EmployeeCode = "" }, "employee_code"},
		{"non-numeric salary", func(r *CreateEmployeeRequest) { r.Salary = "a lot" }, "salary"},
		{"bad join date", func(r *CreateEmployeeRequest) { r.JoinDate = "05-01-2026" }, "join_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateEmployee()
			tt.mutate(&req)

			err := req.Validate()
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}
}

func TestUpdateEmployeeRequestEmptyIsValid(t *testing.T) {
	assert.NoError(t, UpdateEmployeeRequest{}.Validate())
}

func TestUpdateAdminStatusRequestValidate(t *testing.T) {
	assert.Error(t, UpdateAdminStatusRequest{}.Validate())

	active := true
	assert.NoError(t, UpdateAdminStatusRequest{IsActive: &active}.Validate())
}
