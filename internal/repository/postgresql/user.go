package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
)

const userColumns = `id, username, email, password_hash, name, employee_code, department, position,
	   salary, join_date, company, image_path, role, admin_id, is_active,
	   reset_otp_hash, reset_otp_expires_at, created_at, updated_at`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.EmployeeCode,
		&u.Department,
		&u.Position,
		&u.Salary,
		&u.JoinDate,
		&u.Company,
		&u.ImagePath,
		&u.Role,
		&u.AdminID,
		&u.IsActive,
		&u.ResetOTPHash,
		&u.ResetOTPExpiresAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func collectUsers(rows pgx.Rows) ([]user.User, error) {
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			username, email, password_hash, name, employee_code, department, position,
			salary, join_date, company, image_path, role, admin_id, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.Username,
		newUser.Email,
		newUser.PasswordHash,
		newUser.Name,
		newUser.EmployeeCode,
		newUser.Department,
		newUser.Position,
		newUser.Salary,
		newUser.JoinDate,
		newUser.Company,
		newUser.ImagePath,
		newUser.Role,
		newUser.AdminID,
		newUser.IsActive,
	))
	if err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	found, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// GetByLogin implements user.UserRepository.
func (r *userRepositoryImpl) GetByLogin(ctx context.Context, login string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $1`

	found, err := scanUser(q.QueryRow(ctx, query, login))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	found, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// UsernameTaken implements user.UserRepository.
func (r *userRepositoryImpl) UsernameTaken(ctx context.Context, username string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// EmailOrCodeTaken implements user.UserRepository.
func (r *userRepositoryImpl) EmailOrCodeTaken(ctx context.Context, email string, employeeCode *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	args := []interface{}{email}
	if employeeCode != nil {
		query = `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 OR employee_code = $2)`
		args = append(args, *employeeCode)
	}

	var exists bool
	err := q.QueryRow(ctx, query, args...).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET email = $1, name = $2, employee_code = $3, department = $4, position = $5,
			salary = $6, join_date = $7, company = $8, image_path = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING ` + userColumns

	updated, err := scanUser(q.QueryRow(ctx, query,
		u.Email,
		u.Name,
		u.EmployeeCode,
		u.Department,
		u.Position,
		u.Salary,
		u.JoinDate,
		u.Company,
		u.ImagePath,
		u.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return updated, nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// SetResetOTP implements user.UserRepository.
func (r *userRepositoryImpl) SetResetOTP(ctx context.Context, id string, otpHash string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE users
		SET reset_otp_hash = $1, reset_otp_expires_at = $2, updated_at = NOW()
		WHERE id = $3
	`, otpHash, expiresAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// ClearResetOTP implements user.UserRepository.
func (r *userRepositoryImpl) ClearResetOTP(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE users
		SET reset_otp_hash = NULL, reset_otp_expires_at = NULL, updated_at = NOW()
		WHERE id = $1
	`, id)
	return err
}

// SetActive implements user.UserRepository.
func (r *userRepositoryImpl) SetActive(ctx context.Context, id string, active bool) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET is_active = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + userColumns

	updated, err := scanUser(q.QueryRow(ctx, query, active, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return updated, nil
}

// ListAdmins implements user.UserRepository. Each admin carries the count of
// employees linked to them.
func (r *userRepositoryImpl) ListAdmins(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.username, u.email, u.password_hash, u.name, u.employee_code, u.department,
			   u.position, u.salary, u.join_date, u.company, u.image_path, u.role, u.admin_id,
			   u.is_active, u.reset_otp_hash, u.reset_otp_expires_at, u.created_at, u.updated_at,
			   COUNT(e.id) AS employee_count
		FROM users u
		LEFT JOIN users e ON e.admin_id = u.id AND e.role = 'employee'
		WHERE u.role = 'admin'
		GROUP BY u.id
		ORDER BY u.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := []user.User{}
	for rows.Next() {
		var u user.User
		var count int64
		err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Name, &u.EmployeeCode,
			&u.Department, &u.Position, &u.Salary, &u.JoinDate, &u.Company, &u.ImagePath,
			&u.Role, &u.AdminID, &u.IsActive, &u.ResetOTPHash, &u.ResetOTPExpiresAt,
			&u.CreatedAt, &u.UpdatedAt, &count,
		)
		if err != nil {
			return nil, err
		}
		u.EmployeeCount = &count
		admins = append(admins, u)
	}
	return admins, rows.Err()
}

// DeleteAdmin implements user.UserRepository. Employees linked to the admin
// are unlinked, not deleted; their admin_id becomes NULL.
func (r *userRepositoryImpl) DeleteAdmin(ctx context.Context, id string) (user.User, error) {
	var deleted user.User

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE users SET admin_id = NULL, updated_at = NOW() WHERE admin_id = $1`, id); err != nil {
			return err
		}

		query := `DELETE FROM users WHERE id = $1 AND role = 'admin' RETURNING ` + userColumns
		u, err := scanUser(tx.QueryRow(ctx, query, id))
		if err != nil {
			if err == pgx.ErrNoRows {
				return user.ErrAdminNotFound
			}
			return err
		}

		deleted = u
		return nil
	})
	if err != nil {
		return user.User{}, err
	}

	return deleted, nil
}

// GetEmployee implements user.UserRepository.
func (r *userRepositoryImpl) GetEmployee(ctx context.Context, id string, adminID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND admin_id = $2 AND role = 'employee'`

	found, err := scanUser(q.QueryRow(ctx, query, id, adminID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrEmployeeNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// ListEmployees implements user.UserRepository.
func (r *userRepositoryImpl) ListEmployees(ctx context.Context, adminID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE admin_id = $1 AND role = 'employee' ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, adminID)
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

// ListAllEmployees implements user.UserRepository. The superadmin view joins
// the owning admin's name onto each row.
func (r *userRepositoryImpl) ListAllEmployees(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.username, e.email, e.password_hash, e.name, e.employee_code, e.department,
			   e.position, e.salary, e.join_date, e.company, e.image_path, e.role, e.admin_id,
			   e.is_active, e.reset_otp_hash, e.reset_otp_expires_at, e.created_at, e.updated_at,
			   a.name AS admin_name
		FROM users e
		LEFT JOIN users a ON a.id = e.admin_id
		WHERE e.role = 'employee'
		ORDER BY e.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []user.User{}
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Name, &u.EmployeeCode,
			&u.Department, &u.Position, &u.Salary, &u.JoinDate, &u.Company, &u.ImagePath,
			&u.Role, &u.AdminID, &u.IsActive, &u.ResetOTPHash, &u.ResetOTPExpiresAt,
			&u.CreatedAt, &u.UpdatedAt, &u.AdminName,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, u)
	}
	return employees, rows.Err()
}

// SearchEmployees implements user.UserRepository. Case-insensitive substring
// match on name, email, employee code, department and position.
func (r *userRepositoryImpl) SearchEmployees(ctx context.Context, adminID string, searchQuery string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE admin_id = $1 AND role = 'employee'
		  AND (name ILIKE $2 OR email ILIKE $2 OR employee_code ILIKE $2
			   OR department ILIKE $2 OR position ILIKE $2)
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, adminID, "%"+searchQuery+"%")
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

// DeleteEmployee implements user.UserRepository.
func (r *userRepositoryImpl) DeleteEmployee(ctx context.Context, id string, adminID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM users WHERE id = $1 AND admin_id = $2 AND role = 'employee' RETURNING ` + userColumns

	deleted, err := scanUser(q.QueryRow(ctx, query, id, adminID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrEmployeeNotFound
		}
		return user.User{}, err
	}

	return deleted, nil
}

// CountByRole implements user.UserRepository.
func (r *userRepositoryImpl) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
