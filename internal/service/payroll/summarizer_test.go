package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/payroll"
)

func record(punchIn time.Time, worked time.Duration) attendance.Attendance {
	out := punchIn.Add(worked)
	return attendance.Attendance{PunchIn: punchIn, PunchOut: &out}
}

func openRecord(punchIn time.Time) attendance.Attendance {
	return attendance.Attendance{PunchIn: punchIn}
}

func TestClassify(t *testing.T) {
	day := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		record     attendance.Attendance
		wantType   payroll.DayType
		wantCredit string
	}{
		{"eight hours is a full day", record(day, 8*time.Hour), payroll.DayFull, "1"},
		{"exactly six hours is a full day", record(day, 6*time.Hour), payroll.DayFull, "1"},
		{"just under six hours is half", record(day, 6*time.Hour-time.Minute), payroll.DayHalf, "0.5"},
		{"one minute is half", record(day, time.Minute), payroll.DayHalf, "0.5"},
		{"zero-length session is absent", record(day, 0), payroll.DayAbsent, "0"},
		{"open session is absent", openRecord(day), payroll.DayAbsent, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := Classify(tt.record)
			assert.Equal(t, tt.wantType, line.Type)
			assert.Equal(t, tt.wantCredit, line.Credit.String())
		})
	}
}

func TestSummarize(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 1, d, 9, 0, 0, 0, time.UTC)
	}
	rate := decimal.NewFromInt(1000)

	records := []attendance.Attendance{
		record(day(5), 8*time.Hour), // full
		record(day(6), 3*time.Hour), // half
		openRecord(day(7)),          // absent
	}

	summary, lines := Summarize(records, rate)

	assert.Equal(t, 1, summary.FullDays)
	assert.Equal(t, 1, summary.HalfDays)
	assert.Equal(t, 1, summary.AbsentDays)
	assert.Equal(t, "1.5", summary.PayableDays.String())
	assert.Equal(t, "1500", summary.PayableAmount.String())
	assert.Len(t, lines, 3)
}

func TestSummarizeEmpty(t *testing.T) {
	summary, lines := Summarize(nil, decimal.NewFromInt(500))

	assert.Equal(t, 0, summary.FullDays)
	assert.Equal(t, 0, summary.HalfDays)
	assert.Equal(t, 0, summary.AbsentDays)
	assert.True(t, summary.PayableDays.IsZero())
	assert.True(t, summary.PayableAmount.IsZero())
	assert.Empty(t, lines)
}
