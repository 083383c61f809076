package user

import (
	"io"
	"strings"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/validator"
)

// ImageUpload carries an optional multipart profile image.
type ImageUpload struct {
	File     io.Reader
	Filename string
}

type CreateEmployeeRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Username     string `json:"username"`
	EmployeeCode string `json:"employee_code"`
	Department   string `json:"department"`
	Position     string `json:"position"`
	Salary       string `json:"salary"`
	JoinDate     string `json:"join_date"`
	Company      string `json:"company"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if r.Username != "" && !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "must be 3-50 characters of letters, digits, dot, dash or underscore"})
	}
	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must be 2-20 characters of letters, digits or dash"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "is required"})
	}
	if !validator.IsNumeric(r.Salary) {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be a number"})
	}
	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries only the fields to change; empty values are
// left untouched.
type UpdateEmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Salary     string `json:"salary"`
	JoinDate   string `json:"join_date"`
	Company    string `json:"company"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Password != "" && len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if r.Salary != "" && !validator.IsNumeric(r.Salary) {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be a number"})
	}
	if r.JoinDate != "" {
		if _, ok := validator.IsValidDate(r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Company  string `json:"company"`
}

func (r CreateAdminRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if r.Username != "" && !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "must be 3-50 characters of letters, digits, dot, dash or underscore"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAdminRequest carries only the fields to change. Employee-only fields
// are not accepted here.
type UpdateAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company"`
}

func (r UpdateAdminRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Password != "" && len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAdminStatusRequest struct {
	IsActive *bool `json:"is_active"`
}

func (r UpdateAdminStatusRequest) Validate() error {
	if r.IsActive == nil {
		return validator.ValidationErrors{{Field: "is_active", Message: "is required"}}
	}
	return nil
}

// UsernameBase derives the seed for username generation from a display name:
// lowercased with everything but letters and digits removed.
func UsernameBase(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	base := b.String()
	if len(base) < 3 {
		base = base + "user"
	}
	return base
}
