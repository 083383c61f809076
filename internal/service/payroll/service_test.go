package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/payroll"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/jwt"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/validator"
)

func adminContext(t *testing.T, adminID string) context.Context {
	t.Helper()

	jwtService := jwt.NewJWTService("test-secret", "1h", "24h")
	tokenString, _, err := jwtService.GenerateAccessToken(adminID, user.RoleAdmin, nil)
	require.NoError(t, err)

	token, err := jwtService.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

// employeeDirectory stubs the ownership-scoped employee lookup.
type employeeDirectory struct {
	user.UserRepository
	employees map[string]user.User
}

func (d *employeeDirectory) GetEmployee(_ context.Context, id string, adminID string) (user.User, error) {
	e, ok := d.employees[id]
	if !ok || e.AdminID == nil || *e.AdminID != adminID {
		return user.User{}, user.ErrEmployeeNotFound
	}
	return e, nil
}

// attendanceWindow stubs the range query backing the slip.
type attendanceWindow struct {
	attendance.AttendanceRepository
	records []attendance.Attendance
}

func (w *attendanceWindow) ListByUserBetween(_ context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range w.records {
		if r.UserID == userID && !r.PunchIn.Before(from) && !r.PunchIn.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func testEmployee(adminID string, salary decimal.Decimal) user.User {
	name := "Jane Employee"
	code := "EMP-001"
	department := "Engineering"
	return user.User{
		ID:           "emp-1",
		Role:         user.RoleEmployee,
		AdminID:      &adminID,
		Name:         &name,
		EmployeeCode: &code,
		Department:   &department,
		Salary:       &salary,
		IsActive:     true,
	}
}

func TestSalarySlip(t *testing.T) {
	employee := testEmployee("admin-1", decimal.NewFromInt(1000))
	users := &employeeDirectory{employees: map[string]user.User{"emp-1": employee}}

	at := func(d int) time.Time { return time.Date(2026, 1, d, 9, 0, 0, 0, time.UTC) }
	records := []attendance.Attendance{
		record(at(5), 8*time.Hour),
		record(at(6), 3*time.Hour),
		openRecord(at(7)),
	}
	for i := range records {
		records[i].UserID = "emp-1"
	}
	atts := &attendanceWindow{records: records}

	service := NewPayrollService(nil, users, atts)
	slip, err := service.SalarySlip(adminContext(t, "admin-1"), "emp-1", payroll.SalarySlipRequest{
		From: "2026-01-01",
		To:   "2026-01-31",
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Employee", slip.EmployeeName)
	assert.Equal(t, "1000.00", slip.DailyRate)
	assert.Equal(t, 1, slip.FullDays)
	assert.Equal(t, 1, slip.HalfDays)
	assert.Equal(t, 1, slip.AbsentDays)
	assert.Equal(t, "1.5", slip.PayableDays)
	assert.Equal(t, "1500.00", slip.PayableAmount)
	assert.Len(t, slip.Records, 3)
}

func TestSalarySlipWindowExcludesOutsideRecords(t *testing.T) {
	employee := testEmployee("admin-1", decimal.NewFromInt(500))
	users := &employeeDirectory{employees: map[string]user.User{"emp-1": employee}}

	inside := record(time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC), 8*time.Hour)
	inside.UserID = "emp-1"
	before := record(time.Date(2025, 12, 30, 9, 0, 0, 0, time.UTC), 8*time.Hour)
	before.UserID = "emp-1"
	atts := &attendanceWindow{records: []attendance.Attendance{inside, before}}

	service := NewPayrollService(nil, users, atts)
	slip, err := service.SalarySlip(adminContext(t, "admin-1"), "emp-1", payroll.SalarySlipRequest{
		From: "2026-01-01",
		To:   "2026-01-31",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, slip.FullDays)
	assert.Len(t, slip.Records, 1)
}

func TestSalarySlipForeignEmployee(t *testing.T) {
	employee := testEmployee("admin-1", decimal.NewFromInt(1000))
	users := &employeeDirectory{employees: map[string]user.User{"emp-1": employee}}
	service := NewPayrollService(nil, users, &attendanceWindow{})

	_, err := service.SalarySlip(adminContext(t, "admin-2"), "emp-1", payroll.SalarySlipRequest{
		From: "2026-01-01",
		To:   "2026-01-31",
	})
	assert.ErrorIs(t, err, user.ErrEmployeeNotFound)
}

func TestSalarySlipMissingSalary(t *testing.T) {
	employee := testEmployee("admin-1", decimal.Zero)
	employee.Salary = nil
	users := &employeeDirectory{employees: map[string]user.User{"emp-1": employee}}
	service := NewPayrollService(nil, users, &attendanceWindow{})

	_, err := service.SalarySlip(adminContext(t, "admin-1"), "emp-1", payroll.SalarySlipRequest{
		From: "2026-01-01",
		To:   "2026-01-31",
	})
	assert.ErrorIs(t, err, payroll.ErrMissingSalary)
}

func TestSalarySlipInvalidRange(t *testing.T) {
	employee := testEmployee("admin-1", decimal.NewFromInt(1000))
	users := &employeeDirectory{employees: map[string]user.User{"emp-1": employee}}
	service := NewPayrollService(nil, users, &attendanceWindow{})

	_, err := service.SalarySlip(adminContext(t, "admin-1"), "emp-1", payroll.SalarySlipRequest{
		From: "2026-01-31",
		To:   "2026-01-01",
	})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
