package postgres

import (
	"context"
	"database/sql"
	"time"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, booking_id, user_uid, original_price_cents, coupon_code, discount_percent, discount_cents, final_price_cents, status, transaction_id, created_on`

func scanPayment(row interface{ Scan(...any) error }) (*domain.Payment, error) {
	p := &domain.Payment{}
	var created time.Time
	if err := row.Scan(&p.ID, &p.BookingID, &p.UserUID, &p.OriginalPriceCents, &p.CouponCode, &p.DiscountPercent, &p.DiscountCents, &p.FinalPriceCents, &p.Status, &p.TransactionID, &created); err != nil {
		return nil, err
	}
	p.CreatedOn = created.Format(time.RFC3339)
	return p, nil
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (booking_id, user_uid, original_price_cents, coupon_code, discount_percent, discount_cents, final_price_cents, status, transaction_id, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.BookingID, p.UserUID, p.OriginalPriceCents, p.CouponCode, p.DiscountPercent, p.DiscountCents, p.FinalPriceCents, p.Status, p.TransactionID, time.Now()).Scan(&p.ID)
}

func (r *paymentRepository) ListByUser(ctx context.Context, uid string, page, pageSize int32) ([]domain.Payment, int32, error) {
	return r.query(ctx, ` WHERE user_uid = $1`, []interface{}{uid}, page, pageSize)
}

func (r *paymentRepository) ListAll(ctx context.Context, page, pageSize int32) ([]domain.Payment, int32, error) {
	return r.query(ctx, ``, nil, page, pageSize)
}

func (r *paymentRepository) query(ctx context.Context, where string, args []interface{}, page, pageSize int32) ([]domain.Payment, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM payments`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + paymentColumns + ` FROM payments` + where + orderAndPage("created_on DESC", len(args))
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, 0, err
		}
		payments = append(payments, *p)
	}
	return payments, count, rows.Err()
}

func (r *paymentRepository) CountCompleted(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM payments WHERE status = $1`, domain.PaymentStatusCompleted).Scan(&count)
	return count, err
}

func (r *paymentRepository) RevenueCents(ctx context.Context) (int64, error) {
	var revenue int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(sum(final_price_cents), 0) FROM payments WHERE status = $1`, domain.PaymentStatusCompleted).Scan(&revenue)
	return revenue, err
}
