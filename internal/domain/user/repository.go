package user

import (
	"context"
	"time"
)

// UserRepository defines data access for the shared users table. Employee
// queries take the owning adminID so an admin can never reach another
// company's records.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)

	// GetByLogin matches username or email and includes the password hash.
	GetByLogin(ctx context.Context, login string) (User, error)

	GetByEmail(ctx context.Context, email string) (User, error)

	UsernameTaken(ctx context.Context, username string) (bool, error)

	// EmailOrCodeTaken reports whether email or (when non-nil) employee code
	// is already registered.
	EmailOrCodeTaken(ctx context.Context, email string, employeeCode *string) (bool, error)

	Update(ctx context.Context, u User) (User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error

	SetResetOTP(ctx context.Context, id string, otpHash string, expiresAt time.Time) error
	ClearResetOTP(ctx context.Context, id string) error

	SetActive(ctx context.Context, id string, active bool) (User, error)

	ListAdmins(ctx context.Context) ([]User, error)
	DeleteAdmin(ctx context.Context, id string) (User, error)

	GetEmployee(ctx context.Context, id string, adminID string) (User, error)
	ListEmployees(ctx context.Context, adminID string) ([]User, error)
	ListAllEmployees(ctx context.Context) ([]User, error)
	SearchEmployees(ctx context.Context, adminID string, query string) ([]User, error)
	DeleteEmployee(ctx context.Context, id string, adminID string) (User, error)

	CountByRole(ctx context.Context, role Role) (int64, error)
}
