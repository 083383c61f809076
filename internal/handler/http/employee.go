package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/dashboard"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/handler/http/response"
)

const maxUploadSize = 10 << 20 // 10 MiB

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService  user.EmployeeService
	dashboardService dashboard.DashboardService
}

func NewEmployeeHandler(employeeService user.EmployeeService, dashboardService dashboard.DashboardService) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService:  employeeService,
		dashboardService: dashboardService,
	}
}

// imageFromForm pulls the optional profile image out of a multipart request.
// The caller keeps responsibility for closing nothing: the file is read fully
// by the service before the request body is released.
func imageFromForm(r *http.Request) *user.ImageUpload {
	file, header, err := r.FormFile("image")
	if err != nil {
		return nil
	}
	return &user.ImageUpload{File: file, Filename: header.Filename}
}

// Create implements EmployeeHandler. Accepts multipart form data so the
// profile image can ride along with the fields.
func (e *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		slog.Error("Create employee parse form error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	createReq := user.CreateEmployeeRequest{
		Name:         r.FormValue("name"),
		Email:        strings.ToLower(strings.TrimSpace(r.FormValue("email"))),
		Password:     r.FormValue("password"),
		Username:     r.FormValue("username"),
		EmployeeCode: r.FormValue("employee_code"),
		Department:   r.FormValue("department"),
		Position:     r.FormValue("position"),
		Salary:       r.FormValue("salary"),
		JoinDate:     r.FormValue("join_date"),
		Company:      r.FormValue("company"),
	}

	created, err := e.employeeService.Create(r.Context(), createReq, imageFromForm(r))
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

// List implements EmployeeHandler.
func (e *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := e.employeeService.List(r.Context())
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Search implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	employees, err := e.employeeService.Search(r.Context(), query)
	if err != nil {
		slog.Error("Search employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Update implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		slog.Error("Update employee parse form error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	updateReq := user.UpdateEmployeeRequest{
		Name:       r.FormValue("name"),
		Email:      strings.ToLower(strings.TrimSpace(r.FormValue("email"))),
		Password:   r.FormValue("password"),
		Department: r.FormValue("department"),
		Position:   r.FormValue("position"),
		Salary:     r.FormValue("salary"),
		JoinDate:   r.FormValue("join_date"),
		Company:    r.FormValue("company"),
	}

	updated, err := e.employeeService.Update(r.Context(), employeeID, updateReq, imageFromForm(r))
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", updated)
}

// Delete implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	if err := e.employeeService.Delete(r.Context(), employeeID); err != nil {
		slog.Error("Delete employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// Profile implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := e.employeeService.Profile(r.Context())
	if err != nil {
		slog.Error("Profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// Dashboard implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	data, err := e.dashboardService.AdminDashboard(r.Context())
	if err != nil {
		slog.Error("Dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}
