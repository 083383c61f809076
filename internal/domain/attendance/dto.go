package attendance

import (
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/validator"
)

// PunchRequest carries the optional geolocation sent with a punch-in or
// punch-out.
type PunchRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "latitude and longitude must be provided together",
		})
	}
	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LocationResponse struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type AttendanceResponse struct {
	ID               string            `json:"id"`
	UserID           string            `json:"user_id"`
	EmployeeName     *string           `json:"employee_name,omitempty"`
	EmployeeEmail    *string           `json:"employee_email,omitempty"`
	PunchIn          time.Time         `json:"punch_in"`
	PunchInLocation  *LocationResponse `json:"punch_in_location,omitempty"`
	PunchOut         *time.Time        `json:"punch_out,omitempty"`
	PunchOutLocation *LocationResponse `json:"punch_out_location,omitempty"`
}

func ToResponse(att Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            att.ID,
		UserID:        att.UserID,
		EmployeeName:  att.EmployeeName,
		EmployeeEmail: att.EmployeeEmail,
		PunchIn:       att.PunchIn,
		PunchOut:      att.PunchOut,
	}
	if att.PunchInLatitude != nil || att.PunchInLongitude != nil {
		resp.PunchInLocation = &LocationResponse{
			Latitude:  att.PunchInLatitude,
			Longitude: att.PunchInLongitude,
		}
	}
	if att.PunchOutLatitude != nil || att.PunchOutLongitude != nil {
		resp.PunchOutLocation = &LocationResponse{
			Latitude:  att.PunchOutLatitude,
			Longitude: att.PunchOutLongitude,
		}
	}
	return resp
}

func ToResponses(records []Attendance) []AttendanceResponse {
	responses := make([]AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, ToResponse(att))
	}
	return responses
}
