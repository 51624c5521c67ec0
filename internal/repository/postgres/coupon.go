package postgres

import (
	"context"
	"database/sql"
	"time"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/repository"
)

type couponRepository struct {
	db *sql.DB
}

func NewCouponRepository(db *sql.DB) repository.CouponRepository {
	return &couponRepository{db: db}
}

const couponColumns = `id, code, discount_percent, description, valid_from, valid_to, active, created_on, updated_on`

func scanCoupon(row interface{ Scan(...any) error }) (*domain.Coupon, error) {
	c := &domain.Coupon{}
	var created, updated time.Time
	if err := row.Scan(&c.ID, &c.Code, &c.DiscountPercent, &c.Description, &c.ValidFrom, &c.ValidTo, &c.Active, &created, &updated); err != nil {
		return nil, err
	}
	c.CreatedOn = created.Format(time.RFC3339)
	c.UpdatedOn = updated.Format(time.RFC3339)
	return c, nil
}

func (r *couponRepository) Create(ctx context.Context, c *domain.Coupon) error {
	query := `INSERT INTO coupons (code, discount_percent, description, valid_from, valid_to, active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Code, c.DiscountPercent, c.Description, c.ValidFrom, c.ValidTo, c.Active, time.Now()).Scan(&c.ID)
}

func (r *couponRepository) GetByID(ctx context.Context, id int32) (*domain.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1`
	return scanCoupon(r.db.QueryRowContext(ctx, query, id))
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE upper(code) = upper($1)`
	return scanCoupon(r.db.QueryRowContext(ctx, query, code))
}

func (r *couponRepository) Update(ctx context.Context, c *domain.Coupon) error {
	query := `UPDATE coupons SET code=$1, discount_percent=$2, description=$3, valid_from=$4, valid_to=$5, active=$6, updated_on=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query, c.Code, c.DiscountPercent, c.Description, c.ValidFrom, c.ValidTo, c.Active, time.Now(), c.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *couponRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *couponRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Coupon, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM coupons`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + couponColumns + ` FROM coupons` + orderAndPage("created_on DESC", 0)
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var coupons []domain.Coupon
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, 0, err
		}
		coupons = append(coupons, *c)
	}
	return coupons, count, rows.Err()
}

func (r *couponRepository) DeactivateExpired(ctx context.Context, now time.Time) (int32, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE coupons SET active = false, updated_on = $1 WHERE active = true AND valid_to IS NOT NULL AND valid_to < $1`, now)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int32(n), err
}
