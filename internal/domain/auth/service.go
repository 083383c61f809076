package auth

import (
	"context"
)

type AuthService interface {
	// Login authenticates by username or email and issues a token pair.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)

	// RequestPasswordReset emails a short-lived OTP to the account's address.
	// It succeeds silently when the account does not exist.
	RequestPasswordReset(ctx context.Context, req RequestResetRequest) error

	// ConfirmPasswordReset verifies the OTP and sets the new password.
	ConfirmPasswordReset(ctx context.Context, req ConfirmResetRequest) error

	// GoogleLoginURL returns the consent redirect URL and its CSRF state.
	GoogleLoginURL(ctx context.Context, userAgent string) (url string, state string, err error)

	// GoogleCallback completes the OAuth flow and issues a token pair for
	// the account matching the verified Google email.
	GoogleCallback(ctx context.Context, state, expectedState, code string) (TokenResponse, error)
}
