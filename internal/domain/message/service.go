package message

import (
	"context"
)

type MessageService interface {
	// Send records a message from the authenticated employee to their admin.
	Send(ctx context.Context, req SendMessageRequest) (MessageResponse, error)

	// List returns messages scoped to the caller: admins see their own inbox,
	// superadmins see everything.
	List(ctx context.Context) ([]MessageResponse, error)

	// UpdateStatus moves a message in the calling admin's inbox between states.
	UpdateStatus(ctx context.Context, messageID string, req UpdateMessageStatusRequest) (MessageResponse, error)

	// Delete removes a message from the calling admin's inbox.
	Delete(ctx context.Context, messageID string) error
}
