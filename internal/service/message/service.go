package message

import (
	"context"
	"fmt"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/message"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/jwt"
)

type MessageServiceImpl struct {
	db *database.DB
	message.MessageRepository
}

func NewMessageService(db *database.DB, messageRepo message.MessageRepository) message.MessageService {
	return &MessageServiceImpl{
		db:                db,
		MessageRepository: messageRepo,
	}
}

// Send implements message.MessageService. The owning admin comes from the
// sender's claims, so a message always lands in the right inbox.
func (m *MessageServiceImpl) Send(ctx context.Context, req message.SendMessageRequest) (message.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return message.MessageResponse{}, err
	}

	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return message.MessageResponse{}, err
	}
	if principal.AdminID == nil {
		return message.MessageResponse{}, user.ErrEmployeeUnlinked
	}

	created, err := m.MessageRepository.Create(ctx, message.Message{
		EmployeeName: req.EmployeeName,
		Body:         req.Message,
		AdminID:      *principal.AdminID,
		Status:       message.StatusPending,
	})
	if err != nil {
		return message.MessageResponse{}, fmt.Errorf("failed to create message: %w", err)
	}

	return message.ToResponse(created), nil
}

// List implements message.MessageService.
func (m *MessageServiceImpl) List(ctx context.Context) ([]message.MessageResponse, error) {
	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var messages []message.Message
	switch principal.Role {
	case user.RoleSuperadmin:
		messages, err = m.MessageRepository.ListAll(ctx)
	default:
		messages, err = m.MessageRepository.ListByAdmin(ctx, principal.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return message.ToResponses(messages), nil
}

// UpdateStatus implements message.MessageService.
func (m *MessageServiceImpl) UpdateStatus(ctx context.Context, messageID string, req message.UpdateMessageStatusRequest) (message.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return message.MessageResponse{}, err
	}

	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return message.MessageResponse{}, err
	}

	updated, err := m.MessageRepository.UpdateStatus(ctx, messageID, principal.UserID, message.Status(req.Status))
	if err != nil {
		return message.MessageResponse{}, err
	}

	return message.ToResponse(updated), nil
}

// Delete implements message.MessageService.
func (m *MessageServiceImpl) Delete(ctx context.Context, messageID string) error {
	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return err
	}

	_, err = m.MessageRepository.Delete(ctx, messageID, principal.UserID)
	return err
}
