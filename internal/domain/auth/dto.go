package auth

import (
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshRequest) Validate() error {
	if validator.IsEmpty(r.RefreshToken) {
		return validator.ValidationErrors{{Field: "refresh_token", Message: "is required"}}
	}
	return nil
}

type RequestResetRequest struct {
	Username string `json:"username"`
}

func (r RequestResetRequest) Validate() error {
	if validator.IsEmpty(r.Username) {
		return validator.ValidationErrors{{Field: "username", Message: "is required"}}
	}
	return nil
}

type ConfirmResetRequest struct {
	Username    string `json:"username"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

func (r ConfirmResetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "is required"})
	}
	if !validator.IsValidOTP(r.OTP) {
		errs = append(errs, validator.ValidationError{Field: "otp", Message: "must be a 6-digit code"})
	}
	if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "must be at least 8 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	User         user.UserResponse `json:"user"`
}
