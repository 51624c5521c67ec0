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

func couponRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "code", "discount_percent", "description", "valid_from", "valid_to", "active", "created_on", "updated_on"})
}

func TestCouponRepository_GetByCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCouponRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("CaseInsensitive", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM coupons WHERE upper\(code\) = upper\(\$1\)`).
			WithArgs("save10").
			WillReturnRows(couponRows().AddRow(1, "SAVE10", 10, "Ten percent off", nil, nil, true, now, now))

		coupon, err := repo.GetByCode(ctx, "save10")
		assert.NoError(t, err)
		assert.Equal(t, "SAVE10", coupon.Code)
		assert.Nil(t, coupon.ValidTo)
	})

	t.Run("Unknown", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM coupons WHERE upper\(code\) = upper\(\$1\)`).
			WithArgs("NOPE").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByCode(ctx, "NOPE")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestCouponRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCouponRepository(db)
	ctx := context.Background()

	coupon := &domain.Coupon{Code: "SAVE10", DiscountPercent: 10, Description: "Ten percent off", Active: true}

	mock.ExpectQuery("INSERT INTO coupons").
		WithArgs("SAVE10", int32(10), "Ten percent off", nil, nil, true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	err = repo.Create(ctx, coupon)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), coupon.ID)
}

func TestCouponRepository_DeactivateExpired(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCouponRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectExec("UPDATE coupons SET active = false").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	count, err := repo.DeactivateExpired(ctx, now)
	assert.NoError(t, err)
	assert.Equal(t, int32(3), count)
}
