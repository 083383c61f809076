package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidResetCode   = errors.New("invalid or expired reset code")
	ErrOAuthStateMismatch = errors.New("oauth state mismatch")
	ErrEmailNotVerified   = errors.New("google account email is not verified")
)
