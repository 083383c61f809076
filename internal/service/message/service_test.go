package message

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/message"
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

type memoryMessageRepo struct {
	messages []message.Message
	nextID   int
}

func (m *memoryMessageRepo) Create(_ context.Context, msg message.Message) (message.Message, error) {
	m.nextID++
	msg.ID = fmt.Sprintf("msg-%d", m.nextID)
	m.messages = append(m.messages, msg)
	return msg, nil
}

func (m *memoryMessageRepo) ListByAdmin(_ context.Context, adminID string) ([]message.Message, error) {
	var out []message.Message
	for _, msg := range m.messages {
		if msg.AdminID == adminID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *memoryMessageRepo) ListAll(_ context.Context) ([]message.Message, error) {
	return m.messages, nil
}

func (m *memoryMessageRepo) UpdateStatus(_ context.Context, id string, adminID string, status message.Status) (message.Message, error) {
	for i := range m.messages {
		if m.messages[i].ID == id && m.messages[i].AdminID == adminID {
			m.messages[i].Status = status
			return m.messages[i], nil
		}
	}
	return message.Message{}, message.ErrMessageNotFound
}

func (m *memoryMessageRepo) Delete(_ context.Context, id string, adminID string) (message.Message, error) {
	for i := range m.messages {
		if m.messages[i].ID == id && m.messages[i].AdminID == adminID {
			deleted := m.messages[i]
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			return deleted, nil
		}
	}
	return message.Message{}, message.ErrMessageNotFound
}

func TestSendRoutesToOwningAdmin(t *testing.T) {
	repo := &memoryMessageRepo{}
	service := NewMessageService(nil, repo)
	adminID := "admin-1"
	ctx := authedContext(t, "emp-1", user.RoleEmployee, &adminID)

	resp, err := service.Send(ctx, message.SendMessageRequest{
		EmployeeName: "Jane Employee",
		Message:      "The coffee machine is broken again",
	})

	require.NoError(t, err)
	assert.Equal(t, "admin-1", resp.AdminID)
	assert.Equal(t, message.StatusPending, resp.Status)
}

func TestSendRequiresLinkedAdmin(t *testing.T) {
	repo := &memoryMessageRepo{}
	service := NewMessageService(nil, repo)
	ctx := authedContext(t, "emp-1", user.RoleEmployee, nil)

	_, err := service.Send(ctx, message.SendMessageRequest{
		EmployeeName: "Jane Employee",
		Message:      "Hello out there",
	})
	assert.ErrorIs(t, err, user.ErrEmployeeUnlinked)
}

func TestListScopedToAdminInbox(t *testing.T) {
	repo := &memoryMessageRepo{}
	service := NewMessageService(nil, repo)

	for i, adminID := range []string{"admin-1", "admin-2"} {
		ctx := authedContext(t, fmt.Sprintf("emp-%d", i+1), user.RoleEmployee, &adminID)
		_, err := service.Send(ctx, message.SendMessageRequest{
			EmployeeName: "Someone",
			Message:      "A message long enough",
		})
		require.NoError(t, err)
	}

	mine, err := service.List(authedContext(t, "admin-1", user.RoleAdmin, nil))
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := service.List(authedContext(t, "root-1", user.RoleSuperadmin, nil))
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateStatusOwnInboxOnly(t *testing.T) {
	repo := &memoryMessageRepo{}
	service := NewMessageService(nil, repo)
	adminID := "admin-1"
	empCtx := authedContext(t, "emp-1", user.RoleEmployee, &adminID)

	created, err := service.Send(empCtx, message.SendMessageRequest{
		EmployeeName: "Jane Employee",
		Message:      "Please fix the AC",
	})
	require.NoError(t, err)

	_, err = service.UpdateStatus(authedContext(t, "admin-2", user.RoleAdmin, nil), created.ID,
		message.UpdateMessageStatusRequest{Status: string(message.StatusResolved)})
	assert.ErrorIs(t, err, message.ErrMessageNotFound)

	updated, err := service.UpdateStatus(authedContext(t, "admin-1", user.RoleAdmin, nil), created.ID,
		message.UpdateMessageStatusRequest{Status: string(message.StatusResolved)})
	require.NoError(t, err)
	assert.Equal(t, message.StatusResolved, updated.Status)
}

func TestDeleteOwnInboxOnly(t *testing.T) {
	repo := &memoryMessageRepo{}
	service := NewMessageService(nil, repo)
	adminID := "admin-1"
	empCtx := authedContext(t, "emp-1", user.RoleEmployee, &adminID)

	created, err := service.Send(empCtx, message.SendMessageRequest{
		EmployeeName: "Jane Employee",
		Message:      "Please fix the AC",
	})
	require.NoError(t, err)

	err = service.Delete(authedContext(t, "admin-2", user.RoleAdmin, nil), created.ID)
	assert.ErrorIs(t, err, message.ErrMessageNotFound)

	err = service.Delete(authedContext(t, "admin-1", user.RoleAdmin, nil), created.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.messages)
}
