package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/payments"
	"sportnex-backend/internal/security"
	"sportnex-backend/internal/service"
)

// MockPaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) QuoteCoupon(ctx context.Context, uid string, bookingID int32, code string) (*service.CouponQuote, error) {
	args := m.Called(ctx, uid, bookingID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CouponQuote), args.Error(1)
}
func (m *MockPaymentService) Process(ctx context.Context, uid string, input service.ProcessPaymentInput) (*domain.Payment, error) {
	args := m.Called(ctx, uid, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) History(ctx context.Context, uid string, page, pageSize int32) ([]domain.Payment, int32, error) {
	args := m.Called(ctx, uid, page, pageSize)
	return args.Get(0).([]domain.Payment), args.Get(1).(int32), args.Error(2)
}
func (m *MockPaymentService) ListAll(ctx context.Context, page, pageSize int32) ([]domain.Payment, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Payment), args.Get(1).(int32), args.Error(2)
}

func paymentTestRouter(paymentsSvc service.PaymentService) (http.Handler, *security.DevTokenManager) {
	mgr := security.NewDevTokenManager("test-secret")
	router := NewRouter(RouterDeps{
		Verifier: mgr,
		Payments: paymentsSvc,
	})
	return router, mgr
}

func TestPaymentHandler_ValidateCoupon(t *testing.T) {
	t.Run("Quote", func(t *testing.T) {
		mockPayments := new(MockPaymentService)
		router, mgr := paymentTestRouter(mockPayments)

		mockPayments.On("QuoteCoupon", mock.Anything, "uid-1", int32(3), "SAVE10").
			Return(&service.CouponQuote{Code: "SAVE10", DiscountPercent: 10, OriginalPriceCents: 5000, DiscountCents: 500, FinalPriceCents: 4500}, nil).Once()

		body := `{"booking_id": 3, "coupon_code": "SAVE10"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/validate-coupon", strings.NewReader(body))
		req.Header.Set("Authorization", bearer(t, mgr, "uid-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var quote service.CouponQuote
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
		assert.Equal(t, int32(4500), quote.FinalPriceCents)
	})

	t.Run("BadCouponIs400", func(t *testing.T) {
		mockPayments := new(MockPaymentService)
		router, mgr := paymentTestRouter(mockPayments)

		mockPayments.On("QuoteCoupon", mock.Anything, "uid-1", int32(3), "NOPE").
			Return(nil, fmt.Errorf("%w: code %q not recognized", service.ErrInvalidCoupon, "NOPE")).Once()

		body := `{"booking_id": 3, "coupon_code": "NOPE"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/validate-coupon", strings.NewReader(body))
		req.Header.Set("Authorization", bearer(t, mgr, "uid-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPaymentHandler_Process(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		mockPayments := new(MockPaymentService)
		router, mgr := paymentTestRouter(mockPayments)

		input := service.ProcessPaymentInput{BookingID: 3, PaymentMethodID: "pm_123"}
		mockPayments.On("Process", mock.Anything, "uid-1", input).
			Return(&domain.Payment{ID: 9, Status: domain.PaymentStatusCompleted, FinalPriceCents: 5000}, nil).Once()

		body := `{"booking_id": 3, "payment_method_id": "pm_123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
		req.Header.Set("Authorization", bearer(t, mgr, "uid-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("DeclineIs402", func(t *testing.T) {
		mockPayments := new(MockPaymentService)
		router, mgr := paymentTestRouter(mockPayments)

		mockPayments.On("Process", mock.Anything, "uid-1", mock.Anything).
			Return(nil, fmt.Errorf("%w: card_declined", payments.ErrChargeDeclined)).Once()

		body := `{"booking_id": 3, "payment_method_id": "pm_123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
		req.Header.Set("Authorization", bearer(t, mgr, "uid-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	})

	t.Run("UnpayableStateIs409", func(t *testing.T) {
		mockPayments := new(MockPaymentService)
		router, mgr := paymentTestRouter(mockPayments)

		mockPayments.On("Process", mock.Anything, "uid-1", mock.Anything).
			Return(nil, fmt.Errorf("%w: booking 3 is PENDING", service.ErrInvalidTransition)).Once()

		body := `{"booking_id": 3, "payment_method_id": "pm_123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
		req.Header.Set("Authorization", bearer(t, mgr, "uid-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
