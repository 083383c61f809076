package admin

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/email"
)

const maxUsernameAttempts = 50

type AdminServiceImpl struct {
	db *database.DB
	user.UserRepository
	emailService email.EmailService
}

func NewAdminService(db *database.DB, userRepository user.UserRepository, emailService email.EmailService) user.AdminService {
	return &AdminServiceImpl{
		db:             db,
		UserRepository: userRepository,
		emailService:   emailService,
	}
}

func (a *AdminServiceImpl) generateUsername(ctx context.Context, seed string) (string, error) {
	base := user.UsernameBase(seed)

	candidate := base
	for i := 1; i <= maxUsernameAttempts; i++ {
		taken, err := a.UserRepository.UsernameTaken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check username: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
	return "", fmt.Errorf("could not find a free username for %q", base)
}

// CreateAdmin implements user.AdminService.
func (a *AdminServiceImpl) CreateAdmin(ctx context.Context, req user.CreateAdminRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	taken, err := a.UserRepository.EmailOrCodeTaken(ctx, req.Email, nil)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check duplicates: %w", err)
	}
	if taken {
		return user.UserResponse{}, user.ErrEmailExists
	}

	username := req.Username
	if username == "" {
		seed := req.Name
		if seed == "" {
			seed = req.Email
		}
		username, err = a.generateUsername(ctx, seed)
		if err != nil {
			return user.UserResponse{}, err
		}
	} else {
		usernameTaken, err := a.UserRepository.UsernameTaken(ctx, username)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to check username: %w", err)
		}
		if usernameTaken {
			return user.UserResponse{}, user.ErrEmailExists
		}
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	hash := string(passwordHash)
	newAdmin := user.User{
		Username:     username,
		Email:        req.Email,
		PasswordHash: &hash,
		Role:         user.RoleAdmin,
		IsActive:     true,
	}
	if req.Name != "" {
		newAdmin.Name = &req.Name
	}
	if req.Company != "" {
		newAdmin.Company = &req.Company
	}

	created, err := a.UserRepository.Create(ctx, newAdmin)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create admin: %w", err)
	}

	go func() {
		data := email.AdminWelcomeData{
			Username: username,
			Email:    req.Email,
			Company:  req.Company,
			Password: req.Password,
		}
		if err := a.emailService.SendAdminWelcome(req.Email, data); err != nil {
			slog.Error("failed to send admin welcome email", "error", err, "admin_id", created.ID)
		}
	}()

	return user.ToResponse(created), nil
}

// ListAdmins implements user.AdminService.
func (a *AdminServiceImpl) ListAdmins(ctx context.Context) ([]user.UserResponse, error) {
	admins, err := a.UserRepository.ListAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return user.ToResponses(admins), nil
}

// UpdateAdmin implements user.AdminService. Employee-only fields never pass
// through here.
func (a *AdminServiceImpl) UpdateAdmin(ctx context.Context, id string, req user.UpdateAdminRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := a.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	if existing.Role != user.RoleAdmin {
		return user.UserResponse{}, user.ErrAdminNotFound
	}

	if req.Email != "" && req.Email != existing.Email {
		taken, err := a.UserRepository.EmailOrCodeTaken(ctx, req.Email, nil)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to check duplicates: %w", err)
		}
		if taken {
			return user.UserResponse{}, user.ErrEmailExists
		}
		existing.Email = req.Email
	}
	if req.Name != "" {
		existing.Name = &req.Name
	}
	if req.Company != "" {
		existing.Company = &req.Company
	}

	updated, err := a.UserRepository.Update(ctx, existing)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update admin: %w", err)
	}

	if req.Password != "" {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := a.UserRepository.UpdatePassword(ctx, updated.ID, string(passwordHash)); err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to update password: %w", err)
		}
	}

	return user.ToResponse(updated), nil
}

// DeleteAdmin implements user.AdminService.
func (a *AdminServiceImpl) DeleteAdmin(ctx context.Context, id string) error {
	_, err := a.UserRepository.DeleteAdmin(ctx, id)
	return err
}

// SetAdminStatus implements user.AdminService.
func (a *AdminServiceImpl) SetAdminStatus(ctx context.Context, id string, req user.UpdateAdminStatusRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := a.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	if existing.Role != user.RoleAdmin {
		return user.UserResponse{}, user.ErrAdminNotFound
	}

	updated, err := a.UserRepository.SetActive(ctx, id, *req.IsActive)
	if err != nil {
		return user.UserResponse{}, err
	}

	go func() {
		if err := a.emailService.SendAccountStatus(updated.Email, updated.Username, updated.IsActive); err != nil {
			slog.Error("failed to send account status email", "error", err, "admin_id", updated.ID)
		}
	}()

	return user.ToResponse(updated), nil
}

// ListAllEmployees implements user.AdminService.
func (a *AdminServiceImpl) ListAllEmployees(ctx context.Context) ([]user.UserResponse, error) {
	employees, err := a.UserRepository.ListAllEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return user.ToResponses(employees), nil
}
