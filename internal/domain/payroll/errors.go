package payroll

import "errors"

var (
	ErrMissingSalary = errors.New("employee has no salary configured")
)
