package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/events"
	"sportnex-backend/internal/logger"
	"sportnex-backend/internal/repository"
)

const dateLayout = "2006-01-02"

// Producer publishes booking lifecycle events. Nil producers are tolerated so
// the service runs without a broker.
type Producer interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	courtRepo   repository.CourtRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
	producer    Producer
	topic       string
	windowDays  int
}

type BookingServiceOption func(*bookingService)

// WithProducer enables lifecycle event publishing to the given topic.
func WithProducer(p Producer, topic string) BookingServiceOption {
	return func(s *bookingService) {
		s.producer = p
		s.topic = topic
	}
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	courtRepo repository.CourtRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	windowDays int,
	opts ...BookingServiceOption,
) BookingService {
	s := &bookingService{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
		windowDays:  windowDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *bookingService) Create(ctx context.Context, uid, email string, input CreateBookingInput) (*domain.Booking, error) {
	if input.Date == "" {
		return nil, fmt.Errorf("%w: booking date is required", ErrInvalidInput)
	}
	if len(input.Slots) == 0 {
		return nil, fmt.Errorf("%w: at least one time slot is required", ErrInvalidInput)
	}

	if _, err := time.Parse(dateLayout, input.Date); err != nil {
		return nil, fmt.Errorf("%w: booking date must be YYYY-MM-DD", ErrInvalidInput)
	}

	// Both boundaries are bookable: today and today+window. Comparing the
	// formatted strings keeps the check free of timezone drift.
	now := time.Now()
	today := now.Format(dateLayout)
	latest := now.AddDate(0, 0, s.windowDays).Format(dateLayout)
	if input.Date < today {
		return nil, fmt.Errorf("%w: booking date is in the past", ErrInvalidInput)
	}
	if input.Date > latest {
		return nil, fmt.Errorf("%w: booking date is more than %d days ahead", ErrInvalidInput, s.windowDays)
	}

	court, err := s.courtRepo.GetByID(ctx, input.CourtID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: court %d", ErrNotFound, input.CourtID)
		}
		return nil, err
	}

	seen := make(map[string]bool, len(input.Slots))
	for _, slot := range input.Slots {
		if !court.HasSlot(slot) {
			return nil, fmt.Errorf("%w: slot %q is not offered by %s", ErrInvalidInput, slot, court.Name)
		}
		if seen[slot] {
			return nil, fmt.Errorf("%w: slot %q selected twice", ErrInvalidInput, slot)
		}
		seen[slot] = true
	}

	taken, err := s.bookingRepo.FindOverlapping(ctx, court.ID, input.Date, input.Slots)
	if err != nil {
		return nil, err
	}
	if len(taken) > 0 {
		return nil, fmt.Errorf("%w: %s on %s", ErrSlotTaken, strings.Join(taken[0].Slots, ", "), input.Date)
	}

	booking := &domain.Booking{
		CourtID:         court.ID,
		CourtName:       court.Name,
		UserUID:         uid,
		UserEmail:       email,
		Date:            input.Date,
		Slots:           input.Slots,
		TotalPriceCents: TotalPriceCents(len(input.Slots), court.PricePerSessionCents),
		Status:          domain.BookingStatusPending,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeBookingCreated, booking)
	return booking, nil
}

func (s *bookingService) ListMine(ctx context.Context, uid string, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.ListByUser(ctx, uid, status, page, pageSize)
}

func (s *bookingService) ListAll(ctx context.Context, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.ListByStatus(ctx, status, page, pageSize)
}

func (s *bookingService) Approve(ctx context.Context, id int32) (*domain.Booking, error) {
	booking, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking %d is %s, not pending", ErrInvalidTransition, id, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatusApproved); err != nil {
		return nil, err
	}
	booking.Status = domain.BookingStatusApproved

	s.notify(ctx, booking, "Booking Approved",
		fmt.Sprintf("Your booking for %s on %s was approved. Complete payment to confirm it.", booking.CourtName, booking.Date),
		"BOOKING_APPROVED")
	if err := s.emailSvc.SendBookingApproved(ctx, booking.UserEmail, booking.CourtName, booking.Date, booking.Slots); err != nil {
		logger.Warn("approval email failed", "booking_id", id, "error", err)
	}
	s.publish(ctx, events.TypeBookingApproved, booking)
	return booking, nil
}

func (s *bookingService) Reject(ctx context.Context, id int32) (*domain.Booking, error) {
	booking, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking %d is %s, not pending", ErrInvalidTransition, id, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatusRejected); err != nil {
		return nil, err
	}
	booking.Status = domain.BookingStatusRejected

	s.notify(ctx, booking, "Booking Rejected",
		fmt.Sprintf("Your booking for %s on %s was rejected.", booking.CourtName, booking.Date),
		"BOOKING_REJECTED")
	if err := s.emailSvc.SendBookingRejected(ctx, booking.UserEmail, booking.CourtName, booking.Date); err != nil {
		logger.Warn("rejection email failed", "booking_id", id, "error", err)
	}
	s.publish(ctx, events.TypeBookingRejected, booking)
	return booking, nil
}

func (s *bookingService) Cancel(ctx context.Context, uid string, isAdmin bool, id int32) error {
	booking, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if booking.UserUID != uid && !isAdmin {
		return fmt.Errorf("%w: booking %d belongs to another user", ErrForbidden, id)
	}
	if booking.Status != domain.BookingStatusPending && booking.Status != domain.BookingStatusApproved {
		return fmt.Errorf("%w: only pending or approved bookings can be cancelled", ErrInvalidTransition)
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.TypeBookingCancelled, booking)
	return nil
}

func (s *bookingService) Confirm(ctx context.Context, id int32) (*domain.Booking, error) {
	booking, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusApproved {
		return nil, fmt.Errorf("%w: booking %d is %s, not approved", ErrInvalidTransition, id, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatusConfirmed); err != nil {
		return nil, err
	}
	booking.Status = domain.BookingStatusConfirmed

	s.notify(ctx, booking, "Booking Confirmed",
		fmt.Sprintf("Your booking for %s on %s is confirmed. See you on court!", booking.CourtName, booking.Date),
		"BOOKING_CONFIRMED")
	s.publish(ctx, events.TypeBookingConfirmed, booking)
	return booking, nil
}

func (s *bookingService) get(ctx context.Context, id int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, id)
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) notify(ctx context.Context, booking *domain.Booking, title, message, noteType string) {
	note := &domain.Notification{
		UserUID: booking.UserUID,
		Title:   title,
		Message: message,
		Attributes: map[string]string{
			"type":       noteType,
			"booking_id": fmt.Sprintf("%d", booking.ID),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("notification write failed", "booking_id", booking.ID, "error", err)
	}
}

func (s *bookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.topic == "" {
		return
	}
	event := events.BookingEvent{
		Type:            eventType,
		BookingID:       booking.ID,
		CourtID:         booking.CourtID,
		UserUID:         booking.UserUID,
		Date:            booking.Date,
		Slots:           booking.Slots,
		TotalPriceCents: booking.TotalPriceCents,
		Status:          string(booking.Status),
		OccurredAt:      time.Now(),
	}
	if err := s.producer.Publish(ctx, s.topic, fmt.Sprintf("%d", booking.ID), event); err != nil {
		logger.Warn("event publish failed", "type", eventType, "booking_id", booking.ID, "error", err)
	}
}
