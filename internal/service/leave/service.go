package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/leave"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/jwt"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
	user.UserRepository
}

func NewLeaveService(db *database.DB, leaveRepo leave.LeaveRepository, userRepo user.UserRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:              db,
		LeaveRepository: leaveRepo,
		UserRepository:  userRepo,
	}
}

// Request implements leave.LeaveService.
func (l *LeaveServiceImpl) Request(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if principal.AdminID == nil {
		return leave.LeaveResponse{}, user.ErrEmployeeUnlinked
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	// The guard considers every existing request, whatever its status, so a
	// rejected interval still blocks re-booking the same dates.
	existing, err := l.LeaveRepository.ListIntervalsByUser(ctx, principal.UserID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to list existing leaves: %w", err)
	}
	for _, interval := range existing {
		if leave.Overlaps(interval.StartDate, interval.EndDate, startDate, endDate) {
			return leave.LeaveResponse{}, leave.ErrOverlappingLeave
		}
	}

	created, err := l.LeaveRepository.Create(ctx, leave.LeaveRequest{
		UserID:    principal.UserID,
		AdminID:   *principal.AdminID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return leave.ToResponse(created), nil
}

// MyLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) MyLeaves(ctx context.Context) ([]leave.LeaveResponse, error) {
	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := l.LeaveRepository.ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}

	return leave.ToResponses(requests), nil
}

// List implements leave.LeaveService.
func (l *LeaveServiceImpl) List(ctx context.Context) ([]leave.LeaveResponse, error) {
	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var requests []leave.LeaveRequest
	switch principal.Role {
	case user.RoleSuperadmin:
		requests, err = l.LeaveRepository.ListAll(ctx)
	default:
		requests, err = l.LeaveRepository.ListByAdmin(ctx, principal.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}

	return leave.ToResponses(requests), nil
}

// Decide implements leave.LeaveService.
func (l *LeaveServiceImpl) Decide(ctx context.Context, leaveID string, req leave.UpdateLeaveStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := l.LeaveRepository.GetByID(ctx, leaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if request.AdminID != principal.UserID {
		return leave.LeaveResponse{}, leave.ErrNotLeaveOwner
	}

	updated, err := l.LeaveRepository.UpdateStatus(ctx, leaveID, leave.Status(req.Status))
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(updated), nil
}
