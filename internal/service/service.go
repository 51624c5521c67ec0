package service

import (
	"context"
	"errors"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/security"
)

// Error classes the API layer maps onto HTTP statuses. Specific failures wrap
// one of these with fmt.Errorf("%w: ...").
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidInput      = errors.New("invalid input")
	ErrSlotTaken         = errors.New("slot already booked")
	ErrInvalidTransition = errors.New("invalid booking state for this action")
	ErrInvalidCoupon     = errors.New("invalid coupon")
)

type UserService interface {
	// Upsert registers the user on first sign-in and refreshes profile
	// fields afterwards; the stored role survives re-upserts.
	Upsert(ctx context.Context, claims *security.Claims) (*domain.User, error)
	GetByUID(ctx context.Context, uid string) (*domain.User, error)
	UpdateProfile(ctx context.Context, uid string, update ProfileUpdate) (*domain.User, error)
	ListMembers(ctx context.Context, search string, page, pageSize int32) ([]domain.User, int32, error)
	ChangeRole(ctx context.Context, uid string, role domain.Role) (*domain.User, error)
	Stats(ctx context.Context) (*domain.AdminStats, error)
}

type ProfileUpdate struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type CourtService interface {
	List(ctx context.Context, page, pageSize int32) ([]domain.Court, int32, error)
	Get(ctx context.Context, id int32) (*domain.Court, error)
	Create(ctx context.Context, court *domain.Court) error
	Update(ctx context.Context, court *domain.Court) error
	Delete(ctx context.Context, id int32) error
}

type CreateBookingInput struct {
	CourtID int32    `json:"court_id"`
	Date    string   `json:"date"` // YYYY-MM-DD
	Slots   []string `json:"slots"`
}

type BookingService interface {
	Create(ctx context.Context, uid, email string, input CreateBookingInput) (*domain.Booking, error)
	ListMine(ctx context.Context, uid string, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error)
	ListAll(ctx context.Context, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error)
	Approve(ctx context.Context, id int32) (*domain.Booking, error)
	Reject(ctx context.Context, id int32) (*domain.Booking, error)
	// Cancel deletes the booking. Owners may cancel pending or approved
	// bookings; admins may cancel on a user's behalf.
	Cancel(ctx context.Context, uid string, isAdmin bool, id int32) error
	// Confirm moves an approved booking to confirmed after a successful
	// payment. Only the payment service calls it.
	Confirm(ctx context.Context, id int32) (*domain.Booking, error)
}

type CouponService interface {
	Create(ctx context.Context, coupon *domain.Coupon) error
	Update(ctx context.Context, coupon *domain.Coupon) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Coupon, int32, error)
	// Validate returns the coupon if it is active and within its validity
	// window; otherwise ErrInvalidCoupon.
	Validate(ctx context.Context, code string) (*domain.Coupon, error)
}

type CouponQuote struct {
	Code               string `json:"code"`
	DiscountPercent    int32  `json:"discount_percent"`
	OriginalPriceCents int32  `json:"original_price_cents"`
	DiscountCents      int32  `json:"discount_cents"`
	FinalPriceCents    int32  `json:"final_price_cents"`
}

type ProcessPaymentInput struct {
	BookingID       int32  `json:"booking_id"`
	CouponCode      string `json:"coupon_code"`
	PaymentMethodID string `json:"payment_method_id"`
}

type PaymentService interface {
	QuoteCoupon(ctx context.Context, uid string, bookingID int32, code string) (*CouponQuote, error)
	Process(ctx context.Context, uid string, input ProcessPaymentInput) (*domain.Payment, error)
	History(ctx context.Context, uid string, page, pageSize int32) ([]domain.Payment, int32, error)
	ListAll(ctx context.Context, page, pageSize int32) ([]domain.Payment, int32, error)
}

type AnnouncementService interface {
	Create(ctx context.Context, a *domain.Announcement) error
	Update(ctx context.Context, a *domain.Announcement) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Announcement, int32, error)
	ListFor(ctx context.Context, role domain.Role, page, pageSize int32) ([]domain.Announcement, int32, error)
}

type NotificationService interface {
	List(ctx context.Context, uid string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id int32, uid string) error
}

type EmailService interface {
	SendBookingApproved(ctx context.Context, email, courtName, date string, slots []string) error
	SendBookingRejected(ctx context.Context, email, courtName, date string) error
	SendPaymentReceipt(ctx context.Context, email, courtName string, finalPriceCents int32, transactionID string) error
	SendPaymentReminder(ctx context.Context, email, courtName, date string) error
}
