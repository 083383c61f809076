package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
)

const attendanceColumns = `a.id, a.user_id, a.punch_in, a.punch_in_latitude, a.punch_in_longitude,
	   a.punch_out, a.punch_out_latitude, a.punch_out_longitude, a.created_at, a.updated_at`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.PunchIn,
		&a.PunchInLatitude,
		&a.PunchInLongitude,
		&a.PunchOut,
		&a.PunchOutLatitude,
		&a.PunchOutLongitude,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func collectAttendances(rows pgx.Rows, withEmployee bool) ([]attendance.Attendance, error) {
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		var a attendance.Attendance
		dest := []interface{}{
			&a.ID, &a.UserID, &a.PunchIn, &a.PunchInLatitude, &a.PunchInLongitude,
			&a.PunchOut, &a.PunchOutLatitude, &a.PunchOutLongitude, &a.CreatedAt, &a.UpdatedAt,
		}
		if withEmployee {
			dest = append(dest, &a.EmployeeName, &a.EmployeeEmail)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (user_id, punch_in, punch_in_latitude, punch_in_longitude)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + attendanceColumns + `
	`

	created, err := scanAttendance(q.QueryRow(ctx, query,
		att.UserID,
		att.PunchIn,
		att.PunchInLatitude,
		att.PunchInLongitude,
	))
	if err != nil {
		return attendance.Attendance{}, err
	}

	return created, nil
}

// HasOpenRecord implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) HasOpenRecord(ctx context.Context, userID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM attendances a WHERE a.user_id = $1 AND a.punch_out IS NULL)
	`, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// GetOpenRecord implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOpenRecord(ctx context.Context, userID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1 AND a.punch_out IS NULL
		ORDER BY a.punch_in DESC
		LIMIT 1
	`

	found, err := scanAttendance(q.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrNoActivePunchIn
		}
		return attendance.Attendance{}, err
	}

	return found, nil
}

// ClosePunch implements attendance.AttendanceRepository. The punch_out IS NULL
// guard makes the close idempotent under concurrent requests: the second
// request matches no row and maps to ErrNoActivePunchIn.
func (r *attendanceRepositoryImpl) ClosePunch(ctx context.Context, recordID string, punchOut time.Time, latitude, longitude *float64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances a
		SET punch_out = $1, punch_out_latitude = $2, punch_out_longitude = $3, updated_at = NOW()
		WHERE a.id = $4 AND a.punch_out IS NULL
		RETURNING ` + attendanceColumns + `
	`

	closed, err := scanAttendance(q.QueryRow(ctx, query, punchOut, latitude, longitude, recordID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrNoActivePunchIn
		}
		return attendance.Attendance{}, err
	}

	return closed, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1
		ORDER BY a.punch_in DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectAttendances(rows, false)
}

// ListByAdmin implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByAdmin(ctx context.Context, adminID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, u.name, u.email
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE u.admin_id = $1
		ORDER BY a.punch_in DESC
	`

	rows, err := q.Query(ctx, query, adminID)
	if err != nil {
		return nil, err
	}
	return collectAttendances(rows, true)
}

// ListAll implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListAll(ctx context.Context) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, u.name, u.email
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		ORDER BY a.punch_in DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectAttendances(rows, true)
}

// ListByUserBetween implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1 AND a.punch_in BETWEEN $2 AND $3
		ORDER BY a.punch_in ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	return collectAttendances(rows, false)
}

// CountOpenByAdmin implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountOpenByAdmin(ctx context.Context, adminID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE u.admin_id = $1 AND a.punch_out IS NULL
	`, adminID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
