package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/payroll"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	SalarySlip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// SalarySlip implements PayrollHandler.
func (p *PayrollHandlerImpl) SalarySlip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	slipReq := payroll.SalarySlipRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	slip, err := p.payrollService.SalarySlip(r.Context(), employeeID, slipReq)
	if err != nil {
		slog.Error("SalarySlip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, slip)
}
