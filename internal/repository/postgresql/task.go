package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/task"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
)

const taskColumns = `t.id, t.admin_id, t.assigned_to, t.title, t.description, t.priority,
	   t.due_date, t.status, t.created_at, t.updated_at`

// assigneeNames resolves the assigned_to uuid array to employee names in one
// correlated subquery, so list endpoints stay a single round trip.
const taskAssigneeNames = `(
		SELECT COALESCE(ARRAY_AGG(u.name ORDER BY u.name), '{}')
		FROM users u
		WHERE u.id = ANY(t.assigned_to)
	) AS assignee_names`

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID,
		&t.AdminID,
		&t.AssignedTo,
		&t.Title,
		&t.Description,
		&t.Priority,
		&t.DueDate,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}

func collectTasks(rows pgx.Rows) ([]task.Task, error) {
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		var t task.Task
		err := rows.Scan(
			&t.ID, &t.AdminID, &t.AssignedTo, &t.Title, &t.Description, &t.Priority,
			&t.DueDate, &t.Status, &t.CreatedAt, &t.UpdatedAt, &t.AssigneeNames,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (admin_id, assigned_to, title, description, priority, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + taskColumns + `
	`

	created, err := scanTask(q.QueryRow(ctx, query,
		t.AdminID,
		t.AssignedTo,
		t.Title,
		t.Description,
		t.Priority,
		t.DueDate,
		t.Status,
	))
	if err != nil {
		return task.Task{}, err
	}

	return created, nil
}

// ListByAdmin implements task.TaskRepository.
func (r *taskRepositoryImpl) ListByAdmin(ctx context.Context, adminID string) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `, ` + taskAssigneeNames + `
		FROM tasks t
		WHERE t.admin_id = $1
		ORDER BY t.created_at DESC
	`

	rows, err := q.Query(ctx, query, adminID)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

// ListByAssignee implements task.TaskRepository.
func (r *taskRepositoryImpl) ListByAssignee(ctx context.Context, userID string) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `, ` + taskAssigneeNames + `
		FROM tasks t
		WHERE $1 = ANY(t.assigned_to)
		ORDER BY t.created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

// UpdateStatus implements task.TaskRepository. The membership predicate keeps
// one employee from moving another team's task.
func (r *taskRepositoryImpl) UpdateStatus(ctx context.Context, taskID string, userID string, status task.Status) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks t
		SET status = $1, updated_at = NOW()
		WHERE t.id = $2 AND $3 = ANY(t.assigned_to)
		RETURNING ` + taskColumns + `
	`

	updated, err := scanTask(q.QueryRow(ctx, query, status, taskID, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, err
	}

	return updated, nil
}

// CountByStatusForAdmin implements task.TaskRepository.
func (r *taskRepositoryImpl) CountByStatusForAdmin(ctx context.Context, adminID string) (map[task.Status]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT t.status, COUNT(*) FROM tasks t WHERE t.admin_id = $1 GROUP BY t.status
	`, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[task.Status]int64{}
	for rows.Next() {
		var status task.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// Count implements task.TaskRepository.
func (r *taskRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
