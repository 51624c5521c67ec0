package postgres

import (
	"database/sql"
	"fmt"

	"sportnex-backend/internal/repository"

	_ "github.com/lib/pq"
)

// orderAndPage appends the trailing ORDER BY / LIMIT / OFFSET clause, with
// placeholder numbers continuing after the argCount args already bound.
func orderAndPage(order string, argCount int) string {
	return fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", order, argCount+1, argCount+2)
}

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.CourtRepository
	repository.BookingRepository
	repository.PaymentRepository
	repository.CouponRepository
	repository.AnnouncementRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		CourtRepository:        NewCourtRepository(db),
		BookingRepository:      NewBookingRepository(db),
		PaymentRepository:      NewPaymentRepository(db),
		CouponRepository:       NewCouponRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
