package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/jwt"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
	}
}

// PunchIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PunchIn(ctx context.Context, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// One open session per employee. The conditional close in PunchOut covers
	// the remaining race between this check and the insert.
	open, err := a.AttendanceRepository.HasOpenRecord(ctx, principal.UserID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check open attendance: %w", err)
	}
	if open {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyPunchedIn
	}

	created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID:           principal.UserID,
		PunchIn:          time.Now().UTC(),
		PunchInLatitude:  req.Latitude,
		PunchInLongitude: req.Longitude,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return attendance.ToResponse(created), nil
}

// PunchOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PunchOut(ctx context.Context, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	open, err := a.AttendanceRepository.GetOpenRecord(ctx, principal.UserID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	closed, err := a.AttendanceRepository.ClosePunch(ctx, open.ID, time.Now().UTC(), req.Latitude, req.Longitude)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(closed), nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var records []attendance.Attendance
	switch principal.Role {
	case user.RoleSuperadmin:
		records, err = a.AttendanceRepository.ListAll(ctx)
	case user.RoleAdmin:
		records, err = a.AttendanceRepository.ListByAdmin(ctx, principal.UserID)
	default:
		records, err = a.AttendanceRepository.ListByUser(ctx, principal.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return attendance.ToResponses(records), nil
}
