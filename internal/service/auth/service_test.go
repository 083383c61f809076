package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/auth"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/email"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/jwt"
)

type memoryUserRepo struct {
	user.UserRepository
	mu    sync.Mutex
	users map[string]*user.User
}

func newMemoryUserRepo(users ...*user.User) *memoryUserRepo {
	byID := make(map[string]*user.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return &memoryUserRepo{users: byID}
}

func (m *memoryUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return *u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *memoryUserRepo) GetByLogin(_ context.Context, login string) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == login || u.Email == login {
			return *u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *memoryUserRepo) SetResetOTP(_ context.Context, id string, otpHash string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.users[id]
	u.ResetOTPHash = &otpHash
	u.ResetOTPExpiresAt = &expiresAt
	return nil
}

func (m *memoryUserRepo) ClearResetOTP(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.users[id]
	u.ResetOTPHash = nil
	u.ResetOTPExpiresAt = nil
	return nil
}

func (m *memoryUserRepo) UpdatePassword(_ context.Context, id string, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[id].PasswordHash = &passwordHash
	return nil
}

// captureEmail records the last reset OTP instead of talking to SMTP.
type captureEmail struct {
	mu      sync.Mutex
	lastOTP string
}

func (c *captureEmail) SendEmployeeWelcome(string, email.EmployeeWelcomeData) error { return nil }
func (c *captureEmail) SendAdminWelcome(string, email.AdminWelcomeData) error      { return nil }
func (c *captureEmail) SendAccountStatus(string, string, bool) error               { return nil }

func (c *captureEmail) SendPasswordResetOTP(_ string, otp string, _ time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastOTP = otp
	return nil
}

func (c *captureEmail) otp() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastOTP
}

func hashOf(t *testing.T, password string) *string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(hash)
	return &s
}

func testService(repo user.UserRepository, mail email.EmailService) auth.AuthService {
	jwtService := jwt.NewJWTService("test-secret", "1h", "24h")
	return NewAuthService(nil, repo, jwtService, mail, nil)
}

func activeAccount(t *testing.T, password string) *user.User {
	t.Helper()
	return &user.User{
		ID:           "user-1",
		Username:     "jdoe",
		Email:        "jdoe@example.com",
		PasswordHash: hashOf(t, password),
		Role:         user.RoleAdmin,
		IsActive:     true,
	}
}

func TestLoginSuccess(t *testing.T) {
	repo := newMemoryUserRepo(activeAccount(t, "s3cret-pass"))
	service := testService(repo, nil)

	resp, err := service.Login(context.Background(), auth.LoginRequest{Username: "jdoe", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "user-1", resp.User.ID)
}

func TestLoginByEmail(t *testing.T) {
	repo := newMemoryUserRepo(activeAccount(t, "s3cret-pass"))
	service := testService(repo, nil)

	_, err := service.Login(context.Background(), auth.LoginRequest{Username: "jdoe@example.com", Password: "s3cret-pass"})
	assert.NoError(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemoryUserRepo(activeAccount(t, "s3cret-pass"))
	service := testService(repo, nil)

	_, err := service.Login(context.Background(), auth.LoginRequest{Username: "jdoe", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownAccount(t *testing.T) {
	repo := newMemoryUserRepo()
	service := testService(repo, nil)

	_, err := service.Login(context.Background(), auth.LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	account := activeAccount(t, "s3cret-pass")
	account.IsActive = false
	repo := newMemoryUserRepo(account)
	service := testService(repo, nil)

	_, err := service.Login(context.Background(), auth.LoginRequest{Username: "jdoe", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, user.ErrAccountDisabled)
}

func TestRefreshIssuesNewTokens(t *testing.T) {
	repo := newMemoryUserRepo(activeAccount(t, "s3cret-pass"))
	service := testService(repo, nil)

	login, err := service.Login(context.Background(), auth.LoginRequest{Username: "jdoe", Password: "s3cret-pass"})
	require.NoError(t, err)

	refreshed, err := service.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	repo := newMemoryUserRepo(activeAccount(t, "s3cret-pass"))
	service := testService(repo, nil)

	login, err := service.Login(context.Background(), auth.LoginRequest{Username: "jdoe", Password: "s3cret-pass"})
	require.NoError(t, err)

	// An access token must not be accepted on the refresh endpoint.
	_, err = service.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshGarbageToken(t *testing.T) {
	repo := newMemoryUserRepo(activeAccount(t, "s3cret-pass"))
	service := testService(repo, nil)

	_, err := service.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: "not-a-jwt"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestPasswordResetRoundTrip(t *testing.T) {
	account := activeAccount(t, "old-password")
	repo := newMemoryUserRepo(account)
	mail := &captureEmail{}
	service := testService(repo, mail)

	err := service.RequestPasswordReset(context.Background(), auth.RequestResetRequest{Username: "jdoe"})
	require.NoError(t, err)

	// The OTP email is sent asynchronously.
	require.Eventually(t, func() bool { return mail.otp() != "" }, time.Second, 10*time.Millisecond)
	otp := mail.otp()
	require.Len(t, otp, 6)

	err = service.ConfirmPasswordReset(context.Background(), auth.ConfirmResetRequest{
		Username:    "jdoe",
		OTP:         otp,
		NewPassword: "brand-new-password",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), auth.LoginRequest{Username: "jdoe", Password: "brand-new-password"})
	assert.NoError(t, err)

	_, err = service.Login(context.Background(), auth.LoginRequest{Username: "jdoe", Password: "old-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestPasswordResetUnknownAccountIsSilent(t *testing.T) {
	repo := newMemoryUserRepo()
	mail := &captureEmail{}
	service := testService(repo, mail)

	err := service.RequestPasswordReset(context.Background(), auth.RequestResetRequest{Username: "ghost"})
	assert.NoError(t, err)
	assert.Empty(t, mail.otp())
}

func TestConfirmResetWrongOTP(t *testing.T) {
	account := activeAccount(t, "old-password")
	repo := newMemoryUserRepo(account)
	mail := &captureEmail{}
	service := testService(repo, mail)

	err := service.RequestPasswordReset(context.Background(), auth.RequestResetRequest{Username: "jdoe"})
	require.NoError(t, err)

	err = service.ConfirmPasswordReset(context.Background(), auth.ConfirmResetRequest{
		Username:    "jdoe",
		OTP:         "000000",
		NewPassword: "brand-new-password",
	})
	if err == nil {
		// One in a million the generated OTP really is 000000.
		t.Skip("generated OTP collided with the guess")
	}
	assert.ErrorIs(t, err, auth.ErrInvalidResetCode)
}

func TestConfirmResetExpiredOTP(t *testing.T) {
	account := activeAccount(t, "old-password")
	otpHash := hashOf(t, "123456")
	expired := time.Now().Add(-time.Minute)
	account.ResetOTPHash = otpHash
	account.ResetOTPExpiresAt = &expired
	repo := newMemoryUserRepo(account)
	service := testService(repo, &captureEmail{})

	err := service.ConfirmPasswordReset(context.Background(), auth.ConfirmResetRequest{
		Username:    "jdoe",
		OTP:         "123456",
		NewPassword: "brand-new-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidResetCode)
}

func TestConfirmResetWithoutRequest(t *testing.T) {
	repo := newMemoryUserRepo(activeAccount(t, "old-password"))
	service := testService(repo, &captureEmail{})

	err := service.ConfirmPasswordReset(context.Background(), auth.ConfirmResetRequest{
		Username:    "jdoe",
		OTP:         "123456",
		NewPassword: "brand-new-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidResetCode)
}
