package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/payroll"
)

var (
	sixHours   = decimal.NewFromInt(6)
	fullCredit = decimal.NewFromInt(1)
	halfCredit = decimal.NewFromFloat(0.5)
)

// Classify scores a single attendance record. A session of six hours or more
// earns a full day, a shorter positive session earns half, and an open or
// zero-length record earns nothing.
func Classify(record attendance.Attendance) payroll.AttendanceLine {
	line := payroll.AttendanceLine{
		Date:     record.PunchIn,
		PunchIn:  record.PunchIn,
		PunchOut: record.PunchOut,
		Hours:    decimal.Zero,
		Type:     payroll.DayAbsent,
		Credit:   decimal.Zero,
	}

	if record.PunchOut == nil {
		return line
	}

	seconds := record.PunchOut.Sub(record.PunchIn).Seconds()
	line.Hours = decimal.NewFromFloat(seconds).Div(decimal.NewFromInt(3600))

	switch {
	case line.Hours.GreaterThanOrEqual(sixHours):
		line.Type = payroll.DayFull
		line.Credit = fullCredit
	case line.Hours.GreaterThan(decimal.Zero):
		line.Type = payroll.DayHalf
		line.Credit = halfCredit
	}

	return line
}

// Summarize scores each record and aggregates payable days and amount.
// payableDays = full + 0.5*half, payableAmount = payableDays * dailyRate.
func Summarize(records []attendance.Attendance, dailyRate decimal.Decimal) (payroll.SalarySummary, []payroll.AttendanceLine) {
	lines := make([]payroll.AttendanceLine, 0, len(records))
	summary := payroll.SalarySummary{
		PayableDays:   decimal.Zero,
		PayableAmount: decimal.Zero,
	}

	for _, record := range records {
		line := Classify(record)
		lines = append(lines, line)

		switch line.Type {
		case payroll.DayFull:
			summary.FullDays++
		case payroll.DayHalf:
			summary.HalfDays++
		default:
			summary.AbsentDays++
		}
	}

	summary.PayableDays = decimal.NewFromInt(int64(summary.FullDays)).
		Add(halfCredit.Mul(decimal.NewFromInt(int64(summary.HalfDays))))
	summary.PayableAmount = summary.PayableDays.Mul(dailyRate)

	return summary, lines
}
