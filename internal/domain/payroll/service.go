package payroll

import (
	"context"
)

type PayrollService interface {
	// SalarySlip computes the payable summary for one employee across an
	// inclusive date window. Admins may only target their own employees.
	SalarySlip(ctx context.Context, employeeID string, req SalarySlipRequest) (SalarySlipResponse, error)
}
