package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"sportnex-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Upsert(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateProfile(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) UpdateRole(ctx context.Context, uid string, role domain.Role) error {
	args := m.Called(ctx, uid, role)
	return args.Error(0)
}
func (m *MockUserRepo) List(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.User), args.Get(1).(int32), args.Error(2)
}
func (m *MockUserRepo) Search(ctx context.Context, query string, page, pageSize int32) ([]domain.User, int32, error) {
	args := m.Called(ctx, query, page, pageSize)
	return args.Get(0).([]domain.User), args.Get(1).(int32), args.Error(2)
}
func (m *MockUserRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockUserRepo) CountByRole(ctx context.Context, role domain.Role) (int32, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int32), args.Error(1)
}

// MockCourtRepo
type MockCourtRepo struct {
	mock.Mock
}

func (m *MockCourtRepo) Create(ctx context.Context, court *domain.Court) error {
	args := m.Called(ctx, court)
	return args.Error(0)
}
func (m *MockCourtRepo) GetByID(ctx context.Context, id int32) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Court), args.Error(1)
}
func (m *MockCourtRepo) Update(ctx context.Context, court *domain.Court) error {
	args := m.Called(ctx, court)
	return args.Error(0)
}
func (m *MockCourtRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCourtRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Court, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Court), args.Get(1).(int32), args.Error(2)
}
func (m *MockCourtRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockBookingRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookingRepo) ListByUser(ctx context.Context, uid string, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, uid, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) ListByStatus(ctx context.Context, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) FindOverlapping(ctx context.Context, courtID int32, date string, slots []string) ([]domain.Booking, error) {
	args := m.Called(ctx, courtID, date, slots)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) RejectPendingBefore(ctx context.Context, cutoff string) ([]domain.Booking, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListApprovedBefore(ctx context.Context, cutoff string) ([]domain.Booking, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockBookingRepo) CountByStatus(ctx context.Context, status domain.BookingStatus) (int32, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int32), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByUser(ctx context.Context, uid string, page, pageSize int32) ([]domain.Payment, int32, error) {
	args := m.Called(ctx, uid, page, pageSize)
	return args.Get(0).([]domain.Payment), args.Get(1).(int32), args.Error(2)
}
func (m *MockPaymentRepo) ListAll(ctx context.Context, page, pageSize int32) ([]domain.Payment, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Payment), args.Get(1).(int32), args.Error(2)
}
func (m *MockPaymentRepo) CountCompleted(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockPaymentRepo) RevenueCents(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCouponRepo
type MockCouponRepo struct {
	mock.Mock
}

func (m *MockCouponRepo) Create(ctx context.Context, coupon *domain.Coupon) error {
	args := m.Called(ctx, coupon)
	return args.Error(0)
}
func (m *MockCouponRepo) GetByID(ctx context.Context, id int32) (*domain.Coupon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coupon), args.Error(1)
}
func (m *MockCouponRepo) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coupon), args.Error(1)
}
func (m *MockCouponRepo) Update(ctx context.Context, coupon *domain.Coupon) error {
	args := m.Called(ctx, coupon)
	return args.Error(0)
}
func (m *MockCouponRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCouponRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Coupon, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Coupon), args.Get(1).(int32), args.Error(2)
}
func (m *MockCouponRepo) DeactivateExpired(ctx context.Context, now time.Time) (int32, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int32), args.Error(1)
}

// MockAnnouncementRepo
type MockAnnouncementRepo struct {
	mock.Mock
}

func (m *MockAnnouncementRepo) Create(ctx context.Context, a *domain.Announcement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAnnouncementRepo) GetByID(ctx context.Context, id int32) (*domain.Announcement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Announcement), args.Error(1)
}
func (m *MockAnnouncementRepo) Update(ctx context.Context, a *domain.Announcement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAnnouncementRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAnnouncementRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Announcement, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Announcement), args.Get(1).(int32), args.Error(2)
}
func (m *MockAnnouncementRepo) ListForAudiences(ctx context.Context, audiences []domain.AnnouncementAudience, page, pageSize int32) ([]domain.Announcement, int32, error) {
	args := m.Called(ctx, audiences, page, pageSize)
	return args.Get(0).([]domain.Announcement), args.Get(1).(int32), args.Error(2)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, uid string, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, uid, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id int32, uid string) error {
	args := m.Called(ctx, id, uid)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingApproved(ctx context.Context, email, courtName, date string, slots []string) error {
	args := m.Called(ctx, email, courtName, date, slots)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingRejected(ctx context.Context, email, courtName, date string) error {
	args := m.Called(ctx, email, courtName, date)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReceipt(ctx context.Context, email, courtName string, finalPriceCents int32, transactionID string) error {
	args := m.Called(ctx, email, courtName, finalPriceCents, transactionID)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReminder(ctx context.Context, email, courtName, date string) error {
	args := m.Called(ctx, email, courtName, date)
	return args.Error(0)
}

// MockGateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Charge(ctx context.Context, amountCents int64, currency, paymentMethodID, description string) (string, error) {
	args := m.Called(ctx, amountCents, currency, paymentMethodID, description)
	return args.String(0), args.Error(1)
}

// MockProducer
type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	args := m.Called(ctx, topic, key, payload)
	return args.Error(0)
}

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, uid, email string, input CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, uid, email, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) ListMine(ctx context.Context, uid string, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, uid, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingService) ListAll(ctx context.Context, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingService) Approve(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) Reject(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) Cancel(ctx context.Context, uid string, isAdmin bool, id int32) error {
	args := m.Called(ctx, uid, isAdmin, id)
	return args.Error(0)
}
func (m *MockBookingService) Confirm(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
