package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/email"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/jwt"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/service/file"
)

const maxUsernameAttempts = 50

type EmployeeServiceImpl struct {
	db *database.DB
	user.UserRepository
	emailService email.EmailService
	fileService  file.FileService
}

func NewEmployeeService(
	db *database.DB,
	userRepository user.UserRepository,
	emailService email.EmailService,
	fileService file.FileService,
) user.EmployeeService {
	return &EmployeeServiceImpl{
		db:             db,
		UserRepository: userRepository,
		emailService:   emailService,
		fileService:    fileService,
	}
}

// generateUsername derives a unique username from the display name, suffixing
// a counter until it is free.
func (e *EmployeeServiceImpl) generateUsername(ctx context.Context, name string) (string, error) {
	base := user.UsernameBase(name)

	candidate := base
	for i := 1; i <= maxUsernameAttempts; i++ {
		taken, err := e.UserRepository.UsernameTaken(ctx, candidate)
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

// Create implements user.EmployeeService.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req user.CreateEmployeeRequest, image *user.ImageUpload) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	code := req.EmployeeCode
	taken, err := e.UserRepository.EmailOrCodeTaken(ctx, req.Email, &code)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check duplicates: %w", err)
	}
	if taken {
		return user.UserResponse{}, user.ErrEmailExists
	}

	username := req.Username
	if username == "" {
		username, err = e.generateUsername(ctx, req.Name)
		if err != nil {
			return user.UserResponse{}, err
		}
	} else {
		usernameTaken, err := e.UserRepository.UsernameTaken(ctx, username)
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

	salary, err := decimal.NewFromString(req.Salary)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to parse salary: %w", err)
	}
	joinDate, _ := time.Parse("2006-01-02", req.JoinDate)

	hash := string(passwordHash)
	newUser := user.User{
		Username:     username,
		Email:        req.Email,
		PasswordHash: &hash,
		Name:         &req.Name,
		EmployeeCode: &req.EmployeeCode,
		Department:   &req.Department,
		Position:     &req.Position,
		Salary:       &salary,
		JoinDate:     &joinDate,
		Role:         user.RoleEmployee,
		AdminID:      &principal.UserID,
		IsActive:     true,
	}
	if req.Company != "" {
		newUser.Company = &req.Company
	}

	created, err := e.UserRepository.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	if image != nil {
		imagePath, err := e.fileService.UploadProfileImage(ctx, created.ID, image.File, image.Filename)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to upload profile image: %w", err)
		}
		created.ImagePath = &imagePath
		created, err = e.UserRepository.Update(ctx, created)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to save profile image path: %w", err)
		}
	}

	// Welcome email carries the initial credentials. Delivery failure never
	// fails the create.
	go func() {
		data := email.EmployeeWelcomeData{
			Name:         req.Name,
			EmployeeCode: req.EmployeeCode,
			Email:        req.Email,
			Username:     username,
			Department:   req.Department,
			Position:     req.Position,
			Salary:       salary.StringFixed(2),
			JoinDate:     req.JoinDate,
			Password:     req.Password,
		}
		if err := e.emailService.SendEmployeeWelcome(req.Email, data); err != nil {
			slog.Error("failed to send employee welcome email", "error", err, "employee_id", created.ID)
		}
	}()

	return user.ToResponse(created), nil
}

// List implements user.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := e.UserRepository.ListEmployees(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return user.ToResponses(employees), nil
}

// Search implements user.EmployeeService.
func (e *EmployeeServiceImpl) Search(ctx context.Context, query string) ([]user.UserResponse, error) {
	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if query == "" {
		employees, err := e.UserRepository.ListEmployees(ctx, principal.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list employees: %w", err)
		}
		return user.ToResponses(employees), nil
	}

	employees, err := e.UserRepository.SearchEmployees(ctx, principal.UserID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}

	return user.ToResponses(employees), nil
}

// Update implements user.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, id string, req user.UpdateEmployeeRequest, image *user.ImageUpload) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	// Ownership check doubles as the load of current values.
	existing, err := e.UserRepository.GetEmployee(ctx, id, principal.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Email != "" && req.Email != existing.Email {
		taken, err := e.UserRepository.EmailOrCodeTaken(ctx, req.Email, nil)
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
	if req.Department != "" {
		existing.Department = &req.Department
	}
	if req.Position != "" {
		existing.Position = &req.Position
	}
	if req.Company != "" {
		existing.Company = &req.Company
	}
	if req.Salary != "" {
		salary, err := decimal.NewFromString(req.Salary)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to parse salary: %w", err)
		}
		existing.Salary = &salary
	}
	if req.JoinDate != "" {
		joinDate, _ := time.Parse("2006-01-02", req.JoinDate)
		existing.JoinDate = &joinDate
	}

	if image != nil {
		oldPath := existing.ImagePath
		imagePath, err := e.fileService.UploadProfileImage(ctx, existing.ID, image.File, image.Filename)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to upload profile image: %w", err)
		}
		existing.ImagePath = &imagePath
		if oldPath != nil {
			if err := e.fileService.DeleteFile(ctx, *oldPath); err != nil {
				slog.Warn("failed to delete old profile image", "error", err, "path", *oldPath)
			}
		}
	}

	updated, err := e.UserRepository.Update(ctx, existing)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	if req.Password != "" {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := e.UserRepository.UpdatePassword(ctx, updated.ID, string(passwordHash)); err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to update password: %w", err)
		}
	}

	return user.ToResponse(updated), nil
}

// Profile implements user.EmployeeService.
func (e *EmployeeServiceImpl) Profile(ctx context.Context) (user.UserResponse, error) {
	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	account, err := e.UserRepository.GetByID(ctx, principal.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(account), nil
}

// Delete implements user.EmployeeService.
func (e *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return err
	}

	deleted, err := e.UserRepository.DeleteEmployee(ctx, id, principal.UserID)
	if err != nil {
		return err
	}

	if deleted.ImagePath != nil {
		if err := e.fileService.DeleteFile(ctx, *deleted.ImagePath); err != nil {
			slog.Warn("failed to delete profile image", "error", err, "path", *deleted.ImagePath)
		}
	}

	return nil
}
