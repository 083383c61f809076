package leave

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/leave"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/jwt"
)

func authedContext(t *testing.T, userID string, role user.Role, adminID *string) context.Context {
	t.Helper()

	jwtService := jwt.NewJWTService("test-secret", "1h", "24h")
	tokenString, _, err := jwtService.GenerateAccessToken(userID, role, adminID)
	require.NoError(t, err)

	token, err := jwtService.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

type memoryLeaveRepo struct {
	requests []leave.LeaveRequest
	nextID   int
}

func (m *memoryLeaveRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	m.nextID++
	request.ID = fmt.Sprintf("leave-%d", m.nextID)
	m.requests = append(m.requests, request)
	return request, nil
}

func (m *memoryLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	for _, r := range m.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveNotFound
}

func (m *memoryLeaveRepo) ListByUser(_ context.Context, userID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range m.requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryLeaveRepo) ListIntervalsByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	return m.ListByUser(ctx, userID)
}

func (m *memoryLeaveRepo) ListByAdmin(_ context.Context, adminID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range m.requests {
		if r.AdminID == adminID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryLeaveRepo) ListAll(_ context.Context) ([]leave.LeaveRequest, error) {
	return m.requests, nil
}

func (m *memoryLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.Status) (leave.LeaveRequest, error) {
	for i := range m.requests {
		if m.requests[i].ID == id {
			m.requests[i].Status = status
			return m.requests[i], nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveNotFound
}

func (m *memoryLeaveRepo) CountPendingByAdmin(_ context.Context, adminID string) (int64, error) {
	var n int64
	for _, r := range m.requests {
		if r.AdminID == adminID && r.Status == leave.StatusPending {
			n++
		}
	}
	return n, nil
}

func (m *memoryLeaveRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.requests)), nil
}

func TestRequestCreatesPendingLeave(t *testing.T) {
	repo := &memoryLeaveRepo{}
	service := NewLeaveService(nil, repo, nil)
	adminID := "admin-1"
	ctx := authedContext(t, "emp-1", user.RoleEmployee, &adminID)

	resp, err := service.Request(ctx, leave.CreateLeaveRequest{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-10",
		Reason:    "family vacation",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Equal(t, "emp-1", resp.UserID)
	assert.Equal(t, "admin-1", resp.AdminID)
	assert.Equal(t, "2026-01-05", resp.StartDate)
	assert.Equal(t, "2026-01-10", resp.EndDate)
}

func TestRequestRejectsOverlap(t *testing.T) {
	repo := &memoryLeaveRepo{}
	service := NewLeaveService(nil, repo, nil)
	adminID := "admin-1"
	ctx := authedContext(t, "emp-1", user.RoleEmployee, &adminID)

	_, err := service.Request(ctx, leave.CreateLeaveRequest{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-10",
		Reason:    "family vacation",
	})
	require.NoError(t, err)

	_, err = service.Request(ctx, leave.CreateLeaveRequest{
		StartDate: "2026-01-08",
		EndDate:   "2026-01-12",
		Reason:    "another trip",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
	assert.Len(t, repo.requests, 1)
}

func TestRequestOverlapIgnoresStatus(t *testing.T) {
	repo := &memoryLeaveRepo{}
	service := NewLeaveService(nil, repo, nil)
	adminID := "admin-1"
	empCtx := authedContext(t, "emp-1", user.RoleEmployee, &adminID)

	created, err := service.Request(empCtx, leave.CreateLeaveRequest{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-10",
		Reason:    "family vacation",
	})
	require.NoError(t, err)

	// A rejected interval still blocks re-booking the same dates.
	adminCtx := authedContext(t, "admin-1", user.RoleAdmin, nil)
	_, err = service.Decide(adminCtx, created.ID, leave.UpdateLeaveStatusRequest{Status: string(leave.StatusRejected)})
	require.NoError(t, err)

	_, err = service.Request(empCtx, leave.CreateLeaveRequest{
		StartDate: "2026-01-10",
		EndDate:   "2026-01-10",
		Reason:    "retry same day",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
}

func TestRequestAllowsDisjointDates(t *testing.T) {
	repo := &memoryLeaveRepo{}
	service := NewLeaveService(nil, repo, nil)
	adminID := "admin-1"
	ctx := authedContext(t, "emp-1", user.RoleEmployee, &adminID)

	_, err := service.Request(ctx, leave.CreateLeaveRequest{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-10",
		Reason:    "family vacation",
	})
	require.NoError(t, err)

	_, err = service.Request(ctx, leave.CreateLeaveRequest{
		StartDate: "2026-01-11",
		EndDate:   "2026-01-15",
		Reason:    "another trip",
	})
	assert.NoError(t, err)
	assert.Len(t, repo.requests, 2)
}

func TestRequestRequiresLinkedAdmin(t *testing.T) {
	repo := &memoryLeaveRepo{}
	service := NewLeaveService(nil, repo, nil)
	ctx := authedContext(t, "emp-1", user.RoleEmployee, nil)

	_, err := service.Request(ctx, leave.CreateLeaveRequest{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-10",
		Reason:    "family vacation",
	})
	assert.ErrorIs(t, err, user.ErrEmployeeUnlinked)
}

func TestDecideApprovesOwnEmployeeLeave(t *testing.T) {
	repo := &memoryLeaveRepo{}
	service := NewLeaveService(nil, repo, nil)
	adminID := "admin-1"
	empCtx := authedContext(t, "emp-1", user.RoleEmployee, &adminID)

	created, err := service.Request(empCtx, leave.CreateLeaveRequest{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-10",
		Reason:    "family vacation",
	})
	require.NoError(t, err)

	adminCtx := authedContext(t, "admin-1", user.RoleAdmin, nil)
	updated, err := service.Decide(adminCtx, created.ID, leave.UpdateLeaveStatusRequest{Status: string(leave.StatusApproved)})

	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, updated.Status)
}

func TestDecideRejectsForeignAdmin(t *testing.T) {
	repo := &memoryLeaveRepo{}
	service := NewLeaveService(nil, repo, nil)
	adminID := "admin-1"
	empCtx := authedContext(t, "emp-1", user.RoleEmployee, &adminID)

	created, err := service.Request(empCtx, leave.CreateLeaveRequest{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-10",
		Reason:    "family vacation",
	})
	require.NoError(t, err)

	otherCtx := authedContext(t, "admin-2", user.RoleAdmin, nil)
	_, err = service.Decide(otherCtx, created.ID, leave.UpdateLeaveStatusRequest{Status: string(leave.StatusApproved)})
	assert.ErrorIs(t, err, leave.ErrNotLeaveOwner)
}

func TestDecideRejectsPendingStatus(t *testing.T) {
	repo := &memoryLeaveRepo{}
	service := NewLeaveService(nil, repo, nil)
	adminCtx := authedContext(t, "admin-1", user.RoleAdmin, nil)

	_, err := service.Decide(adminCtx, "leave-1", leave.UpdateLeaveStatusRequest{Status: string(leave.StatusPending)})
	assert.Error(t, err)
}
