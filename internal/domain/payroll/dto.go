package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/validator"
)

type SalarySlipRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (r SalarySlipRequest) Validate() error {
	var errs validator.ValidationErrors

	from, fromOK := validator.IsValidDate(r.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	to, toOK := validator.IsValidDate(r.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must not be before from"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceLineResponse struct {
	Date     string  `json:"date"`
	PunchIn  string  `json:"punch_in"`
	PunchOut *string `json:"punch_out"`
	Hours    string  `json:"hours"`
	Type     DayType `json:"type"`
	Credit   string  `json:"credit"`
}

type SalarySlipResponse struct {
	EmployeeID    string                   `json:"employee_id"`
	EmployeeName  string                   `json:"employee_name"`
	EmployeeCode  string                   `json:"employee_code,omitempty"`
	Department    string                   `json:"department,omitempty"`
	Position      string                   `json:"position,omitempty"`
	DailyRate     string                   `json:"daily_rate"`
	From          string                   `json:"from"`
	To            string                   `json:"to"`
	FullDays      int                      `json:"full_days"`
	HalfDays      int                      `json:"half_days"`
	AbsentDays    int                      `json:"absent_days"`
	PayableDays   string                   `json:"payable_days"`
	PayableAmount string                   `json:"payable_amount"`
	Records       []AttendanceLineResponse `json:"records"`
}

func ToLineResponses(lines []AttendanceLine) []AttendanceLineResponse {
	responses := make([]AttendanceLineResponse, 0, len(lines))
	for _, l := range lines {
		resp := AttendanceLineResponse{
			Date:    l.Date.Format("2006-01-02"),
			PunchIn: l.PunchIn.Format(time.RFC3339),
			Hours:   l.Hours.StringFixed(2),
			Type:    l.Type,
			Credit:  l.Credit.String(),
		}
		if l.PunchOut != nil {
			out := l.PunchOut.Format(time.RFC3339)
			resp.PunchOut = &out
		}
		responses = append(responses, resp)
	}
	return responses
}

// FixedMoney renders monetary values with two decimal places.
func FixedMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
