package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/message"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
)

const messageColumns = `id, employee_name, body, admin_id, status, created_at, updated_at`

type messageRepositoryImpl struct {
	db *database.DB
}

func NewMessageRepository(db *database.DB) message.MessageRepository {
	return &messageRepositoryImpl{db: db}
}

func scanMessage(row pgx.Row) (message.Message, error) {
	var m message.Message
	err := row.Scan(
		&m.ID,
		&m.EmployeeName,
		&m.Body,
		&m.AdminID,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func collectMessages(rows pgx.Rows) ([]message.Message, error) {
	defer rows.Close()

	messages := []message.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Create implements message.MessageRepository.
func (r *messageRepositoryImpl) Create(ctx context.Context, m message.Message) (message.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO messages (employee_name, body, admin_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + messageColumns + `
	`

	created, err := scanMessage(q.QueryRow(ctx, query, m.EmployeeName, m.Body, m.AdminID, m.Status))
	if err != nil {
		return message.Message{}, err
	}

	return created, nil
}

// ListByAdmin implements message.MessageRepository.
func (r *messageRepositoryImpl) ListByAdmin(ctx context.Context, adminID string) ([]message.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + messageColumns + ` FROM messages WHERE admin_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, adminID)
	if err != nil {
		return nil, err
	}
	return collectMessages(rows)
}

// ListAll implements message.MessageRepository.
func (r *messageRepositoryImpl) ListAll(ctx context.Context) ([]message.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + messageColumns + ` FROM messages ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectMessages(rows)
}

// UpdateStatus implements message.MessageRepository.
func (r *messageRepositoryImpl) UpdateStatus(ctx context.Context, id string, adminID string, status message.Status) (message.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE messages
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND admin_id = $3
		RETURNING ` + messageColumns + `
	`

	updated, err := scanMessage(q.QueryRow(ctx, query, status, id, adminID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return message.Message{}, message.ErrMessageNotFound
		}
		return message.Message{}, err
	}

	return updated, nil
}

// Delete implements message.MessageRepository.
func (r *messageRepositoryImpl) Delete(ctx context.Context, id string, adminID string) (message.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM messages WHERE id = $1 AND admin_id = $2 RETURNING ` + messageColumns

	deleted, err := scanMessage(q.QueryRow(ctx, query, id, adminID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return message.Message{}, message.ErrMessageNotFound
		}
		return message.Message{}, err
	}

	return deleted, nil
}
