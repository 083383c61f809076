package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/leave"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
)

const leaveColumns = `l.id, l.user_id, l.admin_id, l.start_date, l.end_date, l.reason, l.status,
	   l.created_at, l.updated_at`

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.AdminID,
		&l.StartDate,
		&l.EndDate,
		&l.Reason,
		&l.Status,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

func collectLeaves(rows pgx.Rows, withEmployee bool) ([]leave.LeaveRequest, error) {
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		var l leave.LeaveRequest
		dest := []interface{}{
			&l.ID, &l.UserID, &l.AdminID, &l.StartDate, &l.EndDate, &l.Reason, &l.Status,
			&l.CreatedAt, &l.UpdatedAt,
		}
		if withEmployee {
			dest = append(dest, &l.EmployeeName, &l.EmployeeEmail, &l.EmployeeCode)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		requests = append(requests, l)
	}
	return requests, rows.Err()
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (user_id, admin_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + leaveColumns + `
	`

	created, err := scanLeave(q.QueryRow(ctx, query,
		request.UserID,
		request.AdminID,
		request.StartDate,
		request.EndDate,
		request.Reason,
		request.Status,
	))
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leaves l WHERE l.id = $1`

	found, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return found, nil
}

// ListByUser implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leaves l WHERE l.user_id = $1 ORDER BY l.created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectLeaves(rows, false)
}

// ListIntervalsByUser implements leave.LeaveRepository. Status is not
// filtered: rejected requests still block re-booking the same dates.
func (r *leaveRepositoryImpl) ListIntervalsByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leaves l WHERE l.user_id = $1 ORDER BY l.start_date ASC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectLeaves(rows, false)
}

// ListByAdmin implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByAdmin(ctx context.Context, adminID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, u.name, u.email, u.employee_code
		FROM leaves l
		JOIN users u ON u.id = l.user_id
		WHERE l.admin_id = $1
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query, adminID)
	if err != nil {
		return nil, err
	}
	return collectLeaves(rows, true)
}

// ListAll implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, u.name, u.email, u.employee_code
		FROM leaves l
		JOIN users u ON u.id = l.user_id
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectLeaves(rows, true)
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves l
		SET status = $1, updated_at = NOW()
		WHERE l.id = $2
		RETURNING ` + leaveColumns + `
	`

	updated, err := scanLeave(q.QueryRow(ctx, query, status, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return updated, nil
}

// CountPendingByAdmin implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) CountPendingByAdmin(ctx context.Context, adminID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM leaves l WHERE l.admin_id = $1 AND l.status = 'pending'
	`, adminID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Count implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leaves`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
