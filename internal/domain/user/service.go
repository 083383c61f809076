package user

import (
	"context"
)

// EmployeeService is the admin-facing management surface. Every operation is
// implicitly scoped to the calling admin's own employees.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest, image *ImageUpload) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
	Search(ctx context.Context, query string) ([]UserResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest, image *ImageUpload) (UserResponse, error)
	Delete(ctx context.Context, id string) error

	// Profile returns the caller's own record.
	Profile(ctx context.Context) (UserResponse, error)
}

// AdminService is the superadmin-facing management surface.
type AdminService interface {
	CreateAdmin(ctx context.Context, req CreateAdminRequest) (UserResponse, error)
	ListAdmins(ctx context.Context) ([]UserResponse, error)
	UpdateAdmin(ctx context.Context, id string, req UpdateAdminRequest) (UserResponse, error)
	DeleteAdmin(ctx context.Context, id string) error
	SetAdminStatus(ctx context.Context, id string, req UpdateAdminStatusRequest) (UserResponse, error)
	ListAllEmployees(ctx context.Context) ([]UserResponse, error)
}
