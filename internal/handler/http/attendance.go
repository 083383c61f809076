package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// decodePunch tolerates an empty body: punching without a location is valid.
func decodePunch(r *http.Request) (attendance.PunchRequest, error) {
	var punchReq attendance.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&punchReq); err != nil && err != io.EOF {
		return attendance.PunchRequest{}, err
	}
	return punchReq, nil
}

// PunchIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	punchReq, err := decodePunch(r)
	if err != nil {
		slog.Error("PunchIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := a.attendanceService.PunchIn(r.Context(), punchReq)
	if err != nil {
		slog.Error("PunchIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punched in successfully", record)
}

// PunchOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	punchReq, err := decodePunch(r)
	if err != nil {
		slog.Error("PunchOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := a.attendanceService.PunchOut(r.Context(), punchReq)
	if err != nil {
		slog.Error("PunchOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punched out successfully", record)
}

// History implements AttendanceHandler.
func (a *AttendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	records, err := a.attendanceService.History(r.Context())
	if err != nil {
		slog.Error("Attendance history service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
