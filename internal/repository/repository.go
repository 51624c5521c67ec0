package repository

import (
	"context"
	"time"

	"sportnex-backend/internal/domain"
)

type UserRepository interface {
	// Upsert creates the user on first sign-in or refreshes the profile
	// fields on subsequent ones. The stored role is never overwritten.
	Upsert(ctx context.Context, user *domain.User) error
	GetByUID(ctx context.Context, uid string) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
	UpdateRole(ctx context.Context, uid string, role domain.Role) error
	List(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error)
	Search(ctx context.Context, query string, page, pageSize int32) ([]domain.User, int32, error)
	Count(ctx context.Context) (int32, error)
	CountByRole(ctx context.Context, role domain.Role) (int32, error)
}

type CourtRepository interface {
	Create(ctx context.Context, court *domain.Court) error
	GetByID(ctx context.Context, id int32) (*domain.Court, error)
	Update(ctx context.Context, court *domain.Court) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Court, int32, error)
	Count(ctx context.Context) (int32, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error
	Delete(ctx context.Context, id int32) error
	ListByUser(ctx context.Context, uid string, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error)
	ListByStatus(ctx context.Context, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error)
	// FindOverlapping returns non-rejected bookings holding any of the given
	// slots on the court and date.
	FindOverlapping(ctx context.Context, courtID int32, date string, slots []string) ([]domain.Booking, error)
	// RejectPendingBefore flags pending bookings dated strictly before the
	// cutoff as rejected and returns them.
	RejectPendingBefore(ctx context.Context, cutoff string) ([]domain.Booking, error)
	ListApprovedBefore(ctx context.Context, cutoff string) ([]domain.Booking, error)
	Count(ctx context.Context) (int32, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int32, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByUser(ctx context.Context, uid string, page, pageSize int32) ([]domain.Payment, int32, error)
	ListAll(ctx context.Context, page, pageSize int32) ([]domain.Payment, int32, error)
	CountCompleted(ctx context.Context) (int32, error)
	RevenueCents(ctx context.Context) (int64, error)
}

type CouponRepository interface {
	Create(ctx context.Context, coupon *domain.Coupon) error
	GetByID(ctx context.Context, id int32) (*domain.Coupon, error)
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
	Update(ctx context.Context, coupon *domain.Coupon) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Coupon, int32, error)
	DeactivateExpired(ctx context.Context, now time.Time) (int32, error)
}

type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) error
	GetByID(ctx context.Context, id int32) (*domain.Announcement, error)
	Update(ctx context.Context, a *domain.Announcement) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Announcement, int32, error)
	ListForAudiences(ctx context.Context, audiences []domain.AnnouncementAudience, page, pageSize int32) ([]domain.Announcement, int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, uid string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id int32, uid string) error
}
