package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/auth"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/email"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/jwt"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/oauth"
)

const resetOTPTTL = 15 * time.Minute

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
	emailService  email.EmailService
	googleService oauth.GoogleService
}

func NewAuthService(
	db *database.DB,
	userRepository user.UserRepository,
	jwtService jwt.Service,
	emailService email.EmailService,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		Service:        jwtService,
		emailService:   emailService,
		googleService:  googleService,
	}
}

func (a *AuthServiceImpl) issueTokens(account user.User) (auth.TokenResponse, error) {
	accessToken, _, err := a.Service.GenerateAccessToken(account.ID, account.Role, account.AdminID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := a.Service.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.ToResponse(account),
	}, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	account, err := a.UserRepository.GetByLogin(ctx, req.Username)
	if err != nil {
		// Same error for unknown account and wrong password.
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if account.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !account.IsActive {
		return auth.TokenResponse{}, user.ErrAccountDisabled
	}

	return a.issueTokens(account)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userID, err := a.Service.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	account, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if !account.IsActive {
		return auth.TokenResponse{}, user.ErrAccountDisabled
	}

	return a.issueTokens(account)
}

func generateOTP() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// RequestPasswordReset implements auth.AuthService. The response never
// reveals whether the account exists.
func (a *AuthServiceImpl) RequestPasswordReset(ctx context.Context, req auth.RequestResetRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	account, err := a.UserRepository.GetByLogin(ctx, req.Username)
	if err != nil {
		slog.Info("password reset requested for unknown account", "login", req.Username)
		return nil
	}

	otp, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	otpHash, err := bcrypt.GenerateFromPassword([]byte(otp), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash otp: %w", err)
	}

	expiresAt := time.Now().Add(resetOTPTTL)
	if err := a.UserRepository.SetResetOTP(ctx, account.ID, string(otpHash), expiresAt); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	go func() {
		if err := a.emailService.SendPasswordResetOTP(account.Email, otp, expiresAt); err != nil {
			slog.Error("failed to send password reset email", "error", err, "user_id", account.ID)
		}
	}()

	return nil
}

// ConfirmPasswordReset implements auth.AuthService.
func (a *AuthServiceImpl) ConfirmPasswordReset(ctx context.Context, req auth.ConfirmResetRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	account, err := a.UserRepository.GetByLogin(ctx, req.Username)
	if err != nil {
		return auth.ErrInvalidResetCode
	}

	if account.ResetOTPHash == nil || account.ResetOTPExpiresAt == nil {
		return auth.ErrInvalidResetCode
	}
	if time.Now().After(*account.ResetOTPExpiresAt) {
		return auth.ErrInvalidResetCode
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*account.ResetOTPHash), []byte(req.OTP)); err != nil {
		return auth.ErrInvalidResetCode
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.UserRepository.UpdatePassword(ctx, account.ID, string(passwordHash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := a.UserRepository.ClearResetOTP(ctx, account.ID); err != nil {
		return fmt.Errorf("failed to clear otp: %w", err)
	}

	return nil
}

// GoogleLoginURL implements auth.AuthService.
func (a *AuthServiceImpl) GoogleLoginURL(ctx context.Context, userAgent string) (string, string, error) {
	state := a.googleService.GenerateState(userAgent)
	if state == "" {
		return "", "", fmt.Errorf("failed to generate oauth state")
	}
	return a.googleService.RedirectURL(state), state, nil
}

// GoogleCallback implements auth.AuthService. Only accounts that already
// exist with the verified Google email can log in this way.
func (a *AuthServiceImpl) GoogleCallback(ctx context.Context, state, expectedState, code string) (auth.TokenResponse, error) {
	if state == "" || state != expectedState {
		return auth.TokenResponse{}, auth.ErrOAuthStateMismatch
	}

	token, err := a.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	info, err := a.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google user: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrEmailNotVerified
	}

	account, err := a.UserRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !account.IsActive {
		return auth.TokenResponse{}, user.ErrAccountDisabled
	}

	return a.issueTokens(account)
}
