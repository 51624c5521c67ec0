package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"sportnex-backend/internal/security"
	"sportnex-backend/internal/service"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Verifier      security.TokenVerifier
	Users         service.UserService
	Courts        service.CourtService
	Bookings      service.BookingService
	Coupons       service.CouponService
	Payments      service.PaymentService
	Announcements service.AnnouncementService
	Notifications service.NotificationService
}

// NewRouter builds the full /api/v1 route table. Everything except the health
// check requires a bearer token; /admin additionally requires the admin role.
func NewRouter(deps RouterDeps) *mux.Router {
	userHandler := NewUserHandler(deps.Users)
	courtHandler := NewCourtHandler(deps.Courts)
	bookingHandler := NewBookingHandler(deps.Bookings)
	couponHandler := NewCouponHandler(deps.Coupons)
	paymentHandler := NewPaymentHandler(deps.Payments)
	announcementHandler := NewAnnouncementHandler(deps.Announcements, deps.Users)
	notificationHandler := NewNotificationHandler(deps.Notifications)

	auth := NewAuthMiddleware(deps.Verifier)
	admin := NewAdminMiddleware(deps.Users)

	root := mux.NewRouter()
	root.Use(RecoveryMiddleware, LoggingMiddleware, CORSMiddleware)

	root.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)

	api := root.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.Handler)

	api.HandleFunc("/users", userHandler.HandleUpsert).Methods(http.MethodPost)
	api.HandleFunc("/users/me", userHandler.HandleMe).Methods(http.MethodGet)
	api.HandleFunc("/users/me", userHandler.HandleUpdateProfile).Methods(http.MethodPatch)
	api.HandleFunc("/users/me/role", userHandler.HandleMyRole).Methods(http.MethodGet)

	api.HandleFunc("/courts", courtHandler.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/courts/{id:[0-9]+}", courtHandler.HandleGet).Methods(http.MethodGet)

	api.HandleFunc("/bookings", bookingHandler.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/bookings", bookingHandler.HandleListMine).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id:[0-9]+}", bookingHandler.HandleCancel).Methods(http.MethodDelete)

	api.HandleFunc("/payments/validate-coupon", paymentHandler.HandleValidateCoupon).Methods(http.MethodPost)
	api.HandleFunc("/payments", paymentHandler.HandleProcess).Methods(http.MethodPost)
	api.HandleFunc("/payments", paymentHandler.HandleHistory).Methods(http.MethodGet)

	api.HandleFunc("/announcements", announcementHandler.HandleListFor).Methods(http.MethodGet)

	api.HandleFunc("/notifications", notificationHandler.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id:[0-9]+}/read", notificationHandler.HandleMarkAsRead).Methods(http.MethodPut)

	adminAPI := api.PathPrefix("/admin").Subrouter()
	adminAPI.Use(admin.Handler)

	adminAPI.HandleFunc("/stats", userHandler.HandleStats).Methods(http.MethodGet)

	adminAPI.HandleFunc("/users", userHandler.HandleListUsers).Methods(http.MethodGet)
	adminAPI.HandleFunc("/users/{uid}/role", userHandler.HandleChangeRole).Methods(http.MethodPatch)

	adminAPI.HandleFunc("/courts", courtHandler.HandleCreate).Methods(http.MethodPost)
	adminAPI.HandleFunc("/courts/{id:[0-9]+}", courtHandler.HandleUpdate).Methods(http.MethodPut)
	adminAPI.HandleFunc("/courts/{id:[0-9]+}", courtHandler.HandleDelete).Methods(http.MethodDelete)

	adminAPI.HandleFunc("/bookings", bookingHandler.HandleListAll).Methods(http.MethodGet)
	adminAPI.HandleFunc("/bookings/{id:[0-9]+}/approve", bookingHandler.HandleApprove).Methods(http.MethodPut)
	adminAPI.HandleFunc("/bookings/{id:[0-9]+}/reject", bookingHandler.HandleReject).Methods(http.MethodPut)
	adminAPI.HandleFunc("/bookings/{id:[0-9]+}", bookingHandler.HandleAdminCancel).Methods(http.MethodDelete)

	adminAPI.HandleFunc("/coupons", couponHandler.HandleList).Methods(http.MethodGet)
	adminAPI.HandleFunc("/coupons", couponHandler.HandleCreate).Methods(http.MethodPost)
	adminAPI.HandleFunc("/coupons/{id:[0-9]+}", couponHandler.HandleUpdate).Methods(http.MethodPut)
	adminAPI.HandleFunc("/coupons/{id:[0-9]+}", couponHandler.HandleDelete).Methods(http.MethodDelete)

	adminAPI.HandleFunc("/payments", paymentHandler.HandleListAll).Methods(http.MethodGet)

	adminAPI.HandleFunc("/announcements", announcementHandler.HandleList).Methods(http.MethodGet)
	adminAPI.HandleFunc("/announcements", announcementHandler.HandleCreate).Methods(http.MethodPost)
	adminAPI.HandleFunc("/announcements/{id:[0-9]+}", announcementHandler.HandleUpdate).Methods(http.MethodPut)
	adminAPI.HandleFunc("/announcements/{id:[0-9]+}", announcementHandler.HandleDelete).Methods(http.MethodDelete)

	return root
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
