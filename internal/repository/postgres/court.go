package postgres

import (
	"context"
	"database/sql"
	"time"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/repository"

	"github.com/lib/pq"
)

type courtRepository struct {
	db *sql.DB
}

func NewCourtRepository(db *sql.DB) repository.CourtRepository {
	return &courtRepository{db: db}
}

const courtColumns = `id, name, type, price_per_session_cents, capacity, location, image_url, available_slots, created_on, updated_on`

func scanCourt(row interface{ Scan(...any) error }) (*domain.Court, error) {
	c := &domain.Court{}
	var created, updated time.Time
	if err := row.Scan(&c.ID, &c.Name, &c.Type, &c.PricePerSessionCents, &c.Capacity, &c.Location, &c.ImageURL, pq.Array(&c.AvailableSlots), &created, &updated); err != nil {
		return nil, err
	}
	c.CreatedOn = created.Format(time.RFC3339)
	c.UpdatedOn = updated.Format(time.RFC3339)
	return c, nil
}

func (r *courtRepository) Create(ctx context.Context, c *domain.Court) error {
	query := `INSERT INTO courts (name, type, price_per_session_cents, capacity, location, image_url, available_slots, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name, c.Type, c.PricePerSessionCents, c.Capacity, c.Location, c.ImageURL, pq.Array(c.AvailableSlots), time.Now()).Scan(&c.ID)
}

func (r *courtRepository) GetByID(ctx context.Context, id int32) (*domain.Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts WHERE id = $1`
	return scanCourt(r.db.QueryRowContext(ctx, query, id))
}

func (r *courtRepository) Update(ctx context.Context, c *domain.Court) error {
	query := `UPDATE courts SET name=$1, type=$2, price_per_session_cents=$3, capacity=$4, location=$5, image_url=$6, available_slots=$7, updated_on=$8 WHERE id=$9`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.Type, c.PricePerSessionCents, c.Capacity, c.Location, c.ImageURL, pq.Array(c.AvailableSlots), time.Now(), c.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *courtRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *courtRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Court, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM courts`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + courtColumns + ` FROM courts` + orderAndPage("name ASC", 0)
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var courts []domain.Court
	for rows.Next() {
		c, err := scanCourt(rows)
		if err != nil {
			return nil, 0, err
		}
		courts = append(courts, *c)
	}
	return courts, count, rows.Err()
}

func (r *courtRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM courts`).Scan(&count)
	return count, err
}
