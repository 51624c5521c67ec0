package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"sportnex-backend/internal/domain"
)

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "court_id", "name", "user_uid", "user_email", "date", "slots", "total_price_cents", "status", "created_on", "updated_on"})
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	booking := &domain.Booking{
		CourtID:         1,
		UserUID:         "uid-1",
		UserEmail:       "u1@test.com",
		Date:            "2026-09-10",
		Slots:           []string{"10:00 AM - 11:00 AM"},
		TotalPriceCents: 2500,
		Status:          domain.BookingStatusPending,
	}

	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(booking.CourtID, booking.UserUID, booking.UserEmail, booking.Date, sqlmock.AnyArg(), booking.TotalPriceCents, booking.Status, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	err = repo.Create(ctx, booking)
	assert.NoError(t, err)
	assert.Equal(t, int32(42), booking.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM bookings b JOIN courts c ON c.id = b.court_id WHERE b.id = \$1`).
			WithArgs(int32(42)).
			WillReturnRows(bookingRows().
				AddRow(42, 1, "Center Court", "uid-1", "u1@test.com", "2026-09-10", []byte(`{"10:00 AM - 11:00 AM"}`), 2500, "PENDING", now, now))

		booking, err := repo.GetByID(ctx, 42)
		assert.NoError(t, err)
		assert.Equal(t, "Center Court", booking.CourtName)
		assert.Equal(t, []string{"10:00 AM - 11:00 AM"}, booking.Slots)
		assert.Equal(t, domain.BookingStatusPending, booking.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM bookings b JOIN courts c ON c.id = b.court_id WHERE b.id = \$1`).
			WithArgs(int32(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET status").
			WithArgs(domain.BookingStatusApproved, sqlmock.AnyArg(), int32(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, 42, domain.BookingStatusApproved)
		assert.NoError(t, err)
	})

	t.Run("MissingRow", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET status").
			WithArgs(domain.BookingStatusApproved, sqlmock.AnyArg(), int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, 99, domain.BookingStatusApproved)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestBookingRepository_FindOverlapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) AND b.slots && \$4`).
		WithArgs(int32(1), "2026-09-10", domain.BookingStatusRejected, sqlmock.AnyArg()).
		WillReturnRows(bookingRows().
			AddRow(7, 1, "Center Court", "uid-2", "u2@test.com", "2026-09-10", []byte(`{"10:00 AM - 11:00 AM"}`), 2500, "CONFIRMED", now, now))

	taken, err := repo.FindOverlapping(ctx, 1, "2026-09-10", []string{"10:00 AM - 11:00 AM"})
	assert.NoError(t, err)
	assert.Len(t, taken, 1)
	assert.Equal(t, int32(7), taken[0].ID)
}

func TestBookingRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("AllStatuses", func(t *testing.T) {
		mock.ExpectQuery(`SELECT count\(\*\) FROM bookings b JOIN courts c`).
			WithArgs("uid-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(`SELECT (.+) ORDER BY b.created_on DESC LIMIT \$2 OFFSET \$3`).
			WithArgs("uid-1", int32(20), int32(0)).
			WillReturnRows(bookingRows().
				AddRow(42, 1, "Center Court", "uid-1", "u1@test.com", "2026-09-10", []byte(`{"10:00 AM - 11:00 AM"}`), 2500, "PENDING", now, now))

		bookings, total, err := repo.ListByUser(ctx, "uid-1", "", 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, bookings, 1)
	})

	t.Run("StatusFilter", func(t *testing.T) {
		mock.ExpectQuery(`SELECT count\(\*\) FROM bookings b JOIN courts c`).
			WithArgs("uid-1", domain.BookingStatusConfirmed).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT (.+) ORDER BY b.created_on DESC LIMIT \$3 OFFSET \$4`).
			WithArgs("uid-1", domain.BookingStatusConfirmed, int32(20), int32(0)).
			WillReturnRows(bookingRows())

		bookings, total, err := repo.ListByUser(ctx, "uid-1", domain.BookingStatusConfirmed, 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), total)
		assert.Empty(t, bookings)
	})
}

func TestBookingRepository_RejectPendingBefore(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("UPDATE bookings SET status").
		WithArgs(domain.BookingStatusRejected, sqlmock.AnyArg(), domain.BookingStatusPending, "2026-08-30").
		WillReturnRows(sqlmock.NewRows([]string{"id", "court_id", "user_uid", "user_email", "date", "slots", "total_price_cents", "status", "created_on", "updated_on"}).
			AddRow(11, 1, "uid-1", "u1@test.com", "2026-08-20", []byte(`{"10:00 AM - 11:00 AM"}`), 2500, "REJECTED", now, now))

	rejected, err := repo.RejectPendingBefore(ctx, "2026-08-30")
	assert.NoError(t, err)
	assert.Len(t, rejected, 1)
	assert.Equal(t, domain.BookingStatusRejected, rejected[0].Status)
}
