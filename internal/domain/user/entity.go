package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleSuperadmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleEmployee   Role = "employee"
)

// User is the single account record shared by all three roles. Employee-only
// fields (code, department, salary, join date, admin_id) stay nil for admins
// and the superadmin.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash *string
	Name         *string
	EmployeeCode *string
	Department   *string
	Position     *string
	Salary       *decimal.Decimal
	JoinDate     *time.Time
	Company      *string
	ImagePath    *string
	Role         Role
	AdminID      *string
	IsActive     bool

	ResetOTPHash      *string
	ResetOTPExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields for responses
	AdminName     *string
	EmployeeCount *int64
}
