package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/dashboard"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/leave"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/task"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/jwt"
)

type DashboardServiceImpl struct {
	userRepo       user.UserRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	taskRepo       task.TaskRepository
}

func NewDashboardService(
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	taskRepo task.TaskRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		taskRepo:       taskRepo,
	}
}

// AdminDashboard returns combined dashboard data using parallel queries.
func (s *DashboardServiceImpl) AdminDashboard(ctx context.Context) (dashboard.AdminDashboardResponse, error) {
	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, err
	}
	adminID := principal.UserID

	var resp dashboard.AdminDashboardResponse

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.attendanceRepo.CountOpenByAdmin(gCtx, adminID)
		if err != nil {
			return fmt.Errorf("failed to count open punches: %w", err)
		}
		resp.OpenPunches = count
		return nil
	})

	g.Go(func() error {
		count, err := s.leaveRepo.CountPendingByAdmin(gCtx, adminID)
		if err != nil {
			return fmt.Errorf("failed to count pending leaves: %w", err)
		}
		resp.PendingLeaves = count
		return nil
	})

	g.Go(func() error {
		employees, err := s.userRepo.ListEmployees(gCtx, adminID)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		resp.Employees = int64(len(employees))
		return nil
	})

	g.Go(func() error {
		stats, err := s.taskRepo.CountByStatusForAdmin(gCtx, adminID)
		if err != nil {
			return fmt.Errorf("failed to count tasks: %w", err)
		}
		resp.TaskStats = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.AdminDashboardResponse{}, err
	}

	if resp.TaskStats == nil {
		resp.TaskStats = map[task.Status]int64{}
	}
	return resp, nil
}

// Overview returns platform-wide counts using parallel queries.
func (s *DashboardServiceImpl) Overview(ctx context.Context) (dashboard.OverviewResponse, error) {
	var resp dashboard.OverviewResponse

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.userRepo.CountByRole(gCtx, user.RoleAdmin)
		if err != nil {
			return fmt.Errorf("failed to count admins: %w", err)
		}
		resp.Admins = count
		return nil
	})

	g.Go(func() error {
		count, err := s.userRepo.CountByRole(gCtx, user.RoleEmployee)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		resp.Employees = count
		return nil
	})

	g.Go(func() error {
		count, err := s.leaveRepo.Count(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count leaves: %w", err)
		}
		resp.Leaves = count
		return nil
	})

	g.Go(func() error {
		count, err := s.taskRepo.Count(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count tasks: %w", err)
		}
		resp.Tasks = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.OverviewResponse{}, err
	}

	return resp, nil
}
