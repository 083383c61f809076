package message

import (
	"context"
)

type MessageRepository interface {
	Create(ctx context.Context, m Message) (Message, error)

	// ListByAdmin returns messages addressed to the admin, newest first.
	ListByAdmin(ctx context.Context, adminID string) ([]Message, error)

	// ListAll returns every message, newest first.
	ListAll(ctx context.Context) ([]Message, error)

	// UpdateStatus updates only when the message belongs to adminID.
	UpdateStatus(ctx context.Context, id string, adminID string, status Status) (Message, error)

	// Delete removes only when the message belongs to adminID.
	Delete(ctx context.Context, id string, adminID string) (Message, error)
}
