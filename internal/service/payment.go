package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/logger"
	"sportnex-backend/internal/payments"
	"sportnex-backend/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
	bookingSvc  BookingService
	couponSvc   CouponService
	gateway     payments.Gateway
	emailSvc    EmailService
	currency    string
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	bookingSvc BookingService,
	couponSvc CouponService,
	gateway payments.Gateway,
	emailSvc EmailService,
	currency string,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		bookingSvc:  bookingSvc,
		couponSvc:   couponSvc,
		gateway:     gateway,
		emailSvc:    emailSvc,
		currency:    currency,
	}
}

// QuoteCoupon validates the code against the caller's approved booking and
// returns the discounted price without charging anything.
func (s *paymentService) QuoteCoupon(ctx context.Context, uid string, bookingID int32, code string) (*CouponQuote, error) {
	booking, err := s.payableBooking(ctx, uid, bookingID)
	if err != nil {
		return nil, err
	}

	coupon, err := s.couponSvc.Validate(ctx, code)
	if err != nil {
		return nil, err
	}

	discount := DiscountCents(booking.TotalPriceCents, coupon.DiscountPercent)
	return &CouponQuote{
		Code:               coupon.Code,
		DiscountPercent:    coupon.DiscountPercent,
		OriginalPriceCents: booking.TotalPriceCents,
		DiscountCents:      discount,
		FinalPriceCents:    booking.TotalPriceCents - discount,
	}, nil
}

func (s *paymentService) Process(ctx context.Context, uid string, input ProcessPaymentInput) (*domain.Payment, error) {
	if input.PaymentMethodID == "" {
		return nil, fmt.Errorf("%w: payment method is required", ErrInvalidInput)
	}

	booking, err := s.payableBooking(ctx, uid, input.BookingID)
	if err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		BookingID:          booking.ID,
		UserUID:            uid,
		OriginalPriceCents: booking.TotalPriceCents,
		FinalPriceCents:    booking.TotalPriceCents,
		Status:             domain.PaymentStatusPending,
	}

	// The coupon is re-validated server-side; the quoted discount the client
	// displayed is never trusted.
	if input.CouponCode != "" {
		coupon, err := s.couponSvc.Validate(ctx, input.CouponCode)
		if err != nil {
			return nil, err
		}
		payment.CouponCode = coupon.Code
		payment.DiscountPercent = coupon.DiscountPercent
		payment.DiscountCents = DiscountCents(booking.TotalPriceCents, coupon.DiscountPercent)
		payment.FinalPriceCents = booking.TotalPriceCents - payment.DiscountCents
	}

	description := fmt.Sprintf("SportNex booking %d: %s on %s", booking.ID, booking.CourtName, booking.Date)
	txID, err := s.gateway.Charge(ctx, int64(payment.FinalPriceCents), s.currency, input.PaymentMethodID, description)
	if err != nil {
		payment.Status = domain.PaymentStatusFailed
		payment.TransactionID = txID
		if createErr := s.paymentRepo.Create(ctx, payment); createErr != nil {
			logger.Warn("failed payment record not persisted", "booking_id", booking.ID, "error", createErr)
		}
		return nil, err
	}

	payment.Status = domain.PaymentStatusCompleted
	payment.TransactionID = txID
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		// The charge went through; losing the record is worse than a dup row,
		// so surface the error after logging the transaction id.
		logger.Error("completed payment record not persisted", "booking_id", booking.ID, "transaction_id", txID, "error", err)
		return nil, err
	}

	if _, err := s.bookingSvc.Confirm(ctx, booking.ID); err != nil {
		logger.Error("paid booking not confirmed", "booking_id", booking.ID, "transaction_id", txID, "error", err)
		return nil, err
	}

	if err := s.emailSvc.SendPaymentReceipt(ctx, booking.UserEmail, booking.CourtName, payment.FinalPriceCents, txID); err != nil {
		logger.Warn("receipt email failed", "booking_id", booking.ID, "error", err)
	}
	return payment, nil
}

func (s *paymentService) History(ctx context.Context, uid string, page, pageSize int32) ([]domain.Payment, int32, error) {
	return s.paymentRepo.ListByUser(ctx, uid, page, pageSize)
}

func (s *paymentService) ListAll(ctx context.Context, page, pageSize int32) ([]domain.Payment, int32, error) {
	return s.paymentRepo.ListAll(ctx, page, pageSize)
}

// payableBooking loads the booking and enforces the two payment
// preconditions: the caller owns it and it is exactly approved.
func (s *paymentService) payableBooking(ctx context.Context, uid string, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
		}
		return nil, err
	}
	if booking.UserUID != uid {
		return nil, fmt.Errorf("%w: booking %d belongs to another user", ErrForbidden, bookingID)
	}
	if booking.Status != domain.BookingStatusApproved {
		return nil, fmt.Errorf("%w: booking %d is %s; only approved bookings can be paid", ErrInvalidTransition, bookingID, booking.Status)
	}
	return booking, nil
}
