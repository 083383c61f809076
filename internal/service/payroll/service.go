package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/payroll"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/jwt"
)

type PayrollServiceImpl struct {
	db *database.DB
	user.UserRepository
	attendance.AttendanceRepository
}

func NewPayrollService(db *database.DB, userRepo user.UserRepository, attendanceRepo attendance.AttendanceRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                   db,
		UserRepository:       userRepo,
		AttendanceRepository: attendanceRepo,
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// SalarySlip implements payroll.PayrollService.
func (p *PayrollServiceImpl) SalarySlip(ctx context.Context, employeeID string, req payroll.SalarySlipRequest) (payroll.SalarySlipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalarySlipResponse{}, err
	}

	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return payroll.SalarySlipResponse{}, err
	}

	employee, err := p.UserRepository.GetEmployee(ctx, employeeID, principal.UserID)
	if err != nil {
		return payroll.SalarySlipResponse{}, err
	}
	if employee.Salary == nil {
		return payroll.SalarySlipResponse{}, payroll.ErrMissingSalary
	}

	fromDate, _ := time.Parse("2006-01-02", req.From)
	toDate, _ := time.Parse("2006-01-02", req.To)

	// Window covers whole days on both ends.
	windowStart := fromDate
	windowEnd := toDate.Add(24*time.Hour - time.Millisecond)

	records, err := p.AttendanceRepository.ListByUserBetween(ctx, employeeID, windowStart, windowEnd)
	if err != nil {
		return payroll.SalarySlipResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	dailyRate := *employee.Salary
	summary, lines := Summarize(records, dailyRate)

	return payroll.SalarySlipResponse{
		EmployeeID:    employee.ID,
		EmployeeName:  stringOrEmpty(employee.Name),
		EmployeeCode:  stringOrEmpty(employee.EmployeeCode),
		Department:    stringOrEmpty(employee.Department),
		Position:      stringOrEmpty(employee.Position),
		DailyRate:     payroll.FixedMoney(dailyRate),
		From:          req.From,
		To:            req.To,
		FullDays:      summary.FullDays,
		HalfDays:      summary.HalfDays,
		AbsentDays:    summary.AbsentDays,
		PayableDays:   summary.PayableDays.String(),
		PayableAmount: payroll.FixedMoney(summary.PayableAmount),
		Records:       payroll.ToLineResponses(lines),
	}, nil
}
