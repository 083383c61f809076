package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/dashboard"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/handler/http/response"
)

type SuperadminHandler interface {
	CreateAdmin(w http.ResponseWriter, r *http.Request)
	ListAdmins(w http.ResponseWriter, r *http.Request)
	UpdateAdmin(w http.ResponseWriter, r *http.Request)
	DeleteAdmin(w http.ResponseWriter, r *http.Request)
	SetAdminStatus(w http.ResponseWriter, r *http.Request)
	ListAllEmployees(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
}

type SuperadminHandlerImpl struct {
	adminService     user.AdminService
	dashboardService dashboard.DashboardService
}

func NewSuperadminHandler(adminService user.AdminService, dashboardService dashboard.DashboardService) SuperadminHandler {
	return &SuperadminHandlerImpl{
		adminService:     adminService,
		dashboardService: dashboardService,
	}
}

// CreateAdmin implements SuperadminHandler.
func (s *SuperadminHandlerImpl) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateAdminRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateAdmin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := s.adminService.CreateAdmin(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateAdmin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Admin created successfully", created)
}

// ListAdmins implements SuperadminHandler.
func (s *SuperadminHandlerImpl) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := s.adminService.ListAdmins(r.Context())
	if err != nil {
		slog.Error("ListAdmins service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, admins)
}

// UpdateAdmin implements SuperadminHandler.
func (s *SuperadminHandlerImpl) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "id")

	var updateReq user.UpdateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateAdmin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := s.adminService.UpdateAdmin(r.Context(), adminID, updateReq)
	if err != nil {
		slog.Error("UpdateAdmin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Admin updated successfully", updated)
}

// DeleteAdmin implements SuperadminHandler.
func (s *SuperadminHandlerImpl) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "id")

	if err := s.adminService.DeleteAdmin(r.Context(), adminID); err != nil {
		slog.Error("DeleteAdmin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Admin deleted successfully", nil)
}

// SetAdminStatus implements SuperadminHandler.
func (s *SuperadminHandlerImpl) SetAdminStatus(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "id")

	var statusReq user.UpdateAdminStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("SetAdminStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := s.adminService.SetAdminStatus(r.Context(), adminID, statusReq)
	if err != nil {
		slog.Error("SetAdminStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Admin status updated", updated)
}

// ListAllEmployees implements SuperadminHandler.
func (s *SuperadminHandlerImpl) ListAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := s.adminService.ListAllEmployees(r.Context())
	if err != nil {
		slog.Error("ListAllEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Overview implements SuperadminHandler.
func (s *SuperadminHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.dashboardService.Overview(r.Context())
	if err != nil {
		slog.Error("Overview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}
