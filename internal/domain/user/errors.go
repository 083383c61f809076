package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmployeeNotFound = errors.New("employee not found or not owned by this admin")
	ErrAdminNotFound    = errors.New("admin not found")
	ErrEmailExists      = errors.New("an account with this email already exists")
	ErrEmployeeCodeExists = errors.New("employee code already in use")
	ErrAccountDisabled  = errors.New("account has been disabled")
	ErrEmployeeUnlinked = errors.New("employee is not linked to any admin")

	ErrSuperadminAccessRequired = errors.New("superadmin access required")
	ErrAdminAccessRequired      = errors.New("admin access required")
	ErrEmployeeAccessRequired   = errors.New("employee access required")
)
