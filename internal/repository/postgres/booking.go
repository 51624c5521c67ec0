package postgres

import (
	"context"
	"database/sql"
	"time"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/repository"

	"github.com/lib/pq"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `b.id, b.court_id, c.name, b.user_uid, b.user_email, b.date, b.slots, b.total_price_cents, b.status, b.created_on, b.updated_on`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	b := &domain.Booking{}
	var created, updated time.Time
	if err := row.Scan(&b.ID, &b.CourtID, &b.CourtName, &b.UserUID, &b.UserEmail, &b.Date, pq.Array(&b.Slots), &b.TotalPriceCents, &b.Status, &created, &updated); err != nil {
		return nil, err
	}
	b.CreatedOn = created.Format(time.RFC3339)
	b.UpdatedOn = updated.Format(time.RFC3339)
	return b, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (court_id, user_uid, user_email, date, slots, total_price_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.CourtID, b.UserUID, b.UserEmail, b.Date, pq.Array(b.Slots), b.TotalPriceCents, b.Status, time.Now()).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b JOIN courts c ON c.id = b.court_id WHERE b.id = $1`
	return scanBooking(r.db.QueryRowContext(ctx, query, id))
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = $1, updated_on = $2 WHERE id = $3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, uid string, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	where := ` WHERE b.user_uid = $1`
	args := []interface{}{uid}
	if status != "" {
		where += ` AND b.status = $2`
		args = append(args, status)
	}
	return r.query(ctx, where, args, page, pageSize)
}

func (r *bookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	where := ``
	var args []interface{}
	if status != "" {
		where = ` WHERE b.status = $1`
		args = append(args, status)
	}
	return r.query(ctx, where, args, page, pageSize)
}

func (r *bookingRepository) query(ctx context.Context, where string, args []interface{}, page, pageSize int32) ([]domain.Booking, int32, error) {
	base := ` FROM bookings b JOIN courts c ON c.id = b.court_id` + where

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*)`+base, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + bookingColumns + base + orderAndPage("b.created_on DESC", len(args))
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, count, rows.Err()
}

func (r *bookingRepository) FindOverlapping(ctx context.Context, courtID int32, date string, slots []string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b JOIN courts c ON c.id = b.court_id
	          WHERE b.court_id = $1 AND b.date = $2 AND b.status != $3 AND b.slots && $4`
	rows, err := r.db.QueryContext(ctx, query, courtID, date, domain.BookingStatusRejected, pq.Array(slots))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) RejectPendingBefore(ctx context.Context, cutoff string) ([]domain.Booking, error) {
	query := `UPDATE bookings SET status = $1, updated_on = $2
	          WHERE status = $3 AND date < $4
	          RETURNING id, court_id, user_uid, user_email, date, slots, total_price_cents, status, created_on, updated_on`
	rows, err := r.db.QueryContext(ctx, query, domain.BookingStatusRejected, time.Now(), domain.BookingStatusPending, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b := domain.Booking{}
		var created, updated time.Time
		if err := rows.Scan(&b.ID, &b.CourtID, &b.UserUID, &b.UserEmail, &b.Date, pq.Array(&b.Slots), &b.TotalPriceCents, &b.Status, &created, &updated); err != nil {
			return nil, err
		}
		b.CreatedOn = created.Format(time.RFC3339)
		b.UpdatedOn = updated.Format(time.RFC3339)
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) ListApprovedBefore(ctx context.Context, cutoff string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b JOIN courts c ON c.id = b.court_id
	          WHERE b.status = $1 AND b.date <= $2`
	rows, err := r.db.QueryContext(ctx, query, domain.BookingStatusApproved, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM bookings`).Scan(&count)
	return count, err
}

func (r *bookingRepository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM bookings WHERE status = $1`, status).Scan(&count)
	return count, err
}
