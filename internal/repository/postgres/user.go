package postgres

import (
	"context"
	"database/sql"
	"time"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `uid, email, name, photo_url, phone, address, role, created_on, updated_on`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	var created, updated time.Time
	if err := row.Scan(&u.UID, &u.Email, &u.Name, &u.PhotoURL, &u.Phone, &u.Address, &u.Role, &created, &updated); err != nil {
		return nil, err
	}
	u.CreatedOn = created.Format(time.RFC3339)
	u.UpdatedOn = updated.Format(time.RFC3339)
	return u, nil
}

func (r *userRepository) Upsert(ctx context.Context, u *domain.User) error {
	// Role is set only on insert; re-upserts keep whatever the admin assigned.
	query := `INSERT INTO users (uid, email, name, photo_url, phone, address, role, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	          ON CONFLICT (uid) DO UPDATE SET email = EXCLUDED.email, name = EXCLUDED.name,
	              photo_url = EXCLUDED.photo_url, updated_on = EXCLUDED.updated_on
	          RETURNING role`
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	return r.db.QueryRowContext(ctx, query, u.UID, u.Email, u.Name, u.PhotoURL, u.Phone, u.Address, u.Role, time.Now()).Scan(&u.Role)
}

func (r *userRepository) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uid = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, uid))
}

func (r *userRepository) UpdateProfile(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name = $1, photo_url = $2, phone = $3, address = $4, updated_on = $5 WHERE uid = $6`
	_, err := r.db.ExecContext(ctx, query, u.Name, u.PhotoURL, u.Phone, u.Address, time.Now(), u.UID)
	return err
}

func (r *userRepository) UpdateRole(ctx context.Context, uid string, role domain.Role) error {
	query := `UPDATE users SET role = $1, updated_on = $2 WHERE uid = $3`
	res, err := r.db.ExecContext(ctx, query, role, time.Now(), uid)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error) {
	return r.query(ctx, `SELECT `+userColumns+` FROM users`, `SELECT count(*) FROM users`, nil, page, pageSize)
}

func (r *userRepository) Search(ctx context.Context, q string, page, pageSize int32) ([]domain.User, int32, error) {
	where := ` WHERE name ILIKE $1 OR email ILIKE $1`
	pattern := "%" + q + "%"
	return r.query(ctx,
		`SELECT `+userColumns+` FROM users`+where,
		`SELECT count(*) FROM users`+where,
		[]interface{}{pattern}, page, pageSize)
}

func (r *userRepository) query(ctx context.Context, listSQL, countSQL string, args []interface{}, page, pageSize int32) ([]domain.User, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	listSQL += orderAndPage("created_on DESC", len(args))
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	return users, count, rows.Err()
}

func (r *userRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&count)
	return count, err
}

func (r *userRepository) CountByRole(ctx context.Context, role domain.Role) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users WHERE role = $1`, role).Scan(&count)
	return count, err
}
