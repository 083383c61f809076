package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayType classifies a single attendance record for payroll purposes.
type DayType string

const (
	DayFull   DayType = "Full"
	DayHalf   DayType = "Half"
	DayAbsent DayType = "Absent"
)

// AttendanceLine is one attendance record scored against the credit rules:
// six or more worked hours earn a full credit, anything above zero but under
// six earns half, and open or zero-length records earn nothing.
type AttendanceLine struct {
	Date     time.Time
	PunchIn  time.Time
	PunchOut *time.Time
	Hours    decimal.Decimal
	Type     DayType
	Credit   decimal.Decimal
}

// SalarySummary aggregates the lines of one pay window.
type SalarySummary struct {
	FullDays      int
	HalfDays      int
	AbsentDays    int
	PayableDays   decimal.Decimal
	PayableAmount decimal.Decimal
}
